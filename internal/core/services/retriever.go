package services

import (
	"context"

	"github.com/orion-labs/orionwiki/internal/core/domain"
	"github.com/orion-labs/orionwiki/internal/logger"
	"github.com/orion-labs/orionwiki/internal/vectorindex"
)

// Retrieval depths used by the call sites. Each caller states its own k;
// there is no single global default.
const (
	askTopK      = 10
	researchTopK = 12
	pageTopK     = 12
)

// Retriever embeds a query string and returns the nearest chunk records
// from a vector index. It has no side effects beyond the single external
// embedding call.
type Retriever struct {
	batcher *EmbeddingBatcher
}

// NewRetriever creates a retriever using the given batcher for query
// embeddings.
func NewRetriever(batcher *EmbeddingBatcher) *Retriever {
	return &Retriever{batcher: batcher}
}

// Retrieve returns the top-k records with distances for the query text.
func (r *Retriever) Retrieve(ctx context.Context, ix *vectorindex.Index, query string, k int) ([]domain.RetrievedChunk, error) {
	embedding, err := r.batcher.EmbedOne(ctx, query)
	if err != nil {
		return nil, err
	}

	hits, err := ix.Search(embedding, k)
	if err != nil {
		return nil, err
	}
	logger.Debug("retrieved %d/%d chunks for query of %d chars", len(hits), k, len(query))
	return hits, nil
}
