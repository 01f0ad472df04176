package services

import (
	"context"
	"fmt"

	"github.com/orion-labs/orionwiki/internal/chunker"
	"github.com/orion-labs/orionwiki/internal/core/domain"
	"github.com/orion-labs/orionwiki/internal/core/ports/driven"
	"github.com/orion-labs/orionwiki/internal/core/ports/driving"
	"github.com/orion-labs/orionwiki/internal/logger"
	"github.com/orion-labs/orionwiki/internal/repofs"
	"github.com/orion-labs/orionwiki/internal/vectorindex"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// IndexService builds the retrieval index for a repository: chunk every
// eligible document, embed all chunks, create a vector index sized to the
// observed embedding dimension, add all records and persist. Each build
// is a full rebuild; incremental re-indexing is a non-goal.
type IndexService struct {
	splitter *chunker.Splitter
	batcher  *EmbeddingBatcher
	store    driven.WikiStore
}

// NewIndexService creates an index service.
func NewIndexService(splitter *chunker.Splitter, batcher *EmbeddingBatcher, store driven.WikiStore) *IndexService {
	return &IndexService{
		splitter: splitter,
		batcher:  batcher,
		store:    store,
	}
}

// BuildIndex builds and persists the index for the repository.
func (s *IndexService) BuildIndex(ctx context.Context, repoID, repoPath string) error {
	logger.Section("Index Build")
	logger.Info("building index for %s from %s", repoID, repoPath)

	ix, err := s.BuildInMemory(ctx, repoPath)
	if err != nil {
		return err
	}

	vectorPath, metaPath := s.store.IndexPaths(repoID)
	if err := ix.Save(vectorPath, metaPath); err != nil {
		return fmt.Errorf("persist index for %s: %w", repoID, err)
	}
	logger.Info("persisted %d vectors (dim %d) for %s", ix.Len(), ix.Dim(), repoID)
	return nil
}

// BuildInMemory builds an index for the repository without touching
// durable storage. Used by ephemeral mode.
func (s *IndexService) BuildInMemory(ctx context.Context, repoPath string) (*vectorindex.Index, error) {
	docs, err := repofs.LoadDocuments(repoPath)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmptyCorpus, repoPath)
	}

	var (
		records []domain.Chunk
		texts   []string
	)
	for _, doc := range docs {
		docRecords, docTexts := s.splitter.SplitDocument(doc)
		records = append(records, docRecords...)
		texts = append(texts, docTexts...)
	}
	logger.Debug("chunked %d documents into %d chunks", len(docs), len(records))

	embeddings, err := s.batcher.EmbedAll(ctx, texts)
	if err != nil {
		return nil, err
	}
	if len(embeddings) == 0 {
		return nil, domain.ErrEmptyEmbeddings
	}

	ix, err := vectorindex.New(len(embeddings[0]))
	if err != nil {
		return nil, err
	}
	if err := ix.Add(embeddings, records); err != nil {
		return nil, err
	}
	return ix, nil
}

// LoadIndex loads the persisted index for the repository.
func (s *IndexService) LoadIndex(repoID string) (*vectorindex.Index, error) {
	vectorPath, metaPath := s.store.IndexPaths(repoID)
	return vectorindex.Load(vectorPath, metaPath)
}
