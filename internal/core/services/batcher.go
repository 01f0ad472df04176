package services

import (
	"context"
	"fmt"

	"github.com/orion-labs/orionwiki/internal/core/domain"
	"github.com/orion-labs/orionwiki/internal/core/ports/driven"
	"github.com/orion-labs/orionwiki/internal/logger"
)

// EmbeddingBatcher turns a list of texts into vectors by splitting the
// list into bounded-size batches, one external request per batch. Batches
// are issued sequentially; batch i+1 is not sent until batch i's response
// arrived. The embedding service must preserve input order within a
// batch, so concatenating responses in batch order preserves the overall
// input order.
type EmbeddingBatcher struct {
	service   driven.EmbeddingService
	batchSize int
}

// NewEmbeddingBatcher creates a batcher over the given embedding service.
// Non-positive batch sizes fall back to the configured default.
func NewEmbeddingBatcher(service driven.EmbeddingService, batchSize int) *EmbeddingBatcher {
	if batchSize <= 0 {
		batchSize = domain.DefaultEmbedBatchSize
	}
	return &EmbeddingBatcher{service: service, batchSize: batchSize}
}

// EmbedAll embeds texts in order. Empty input yields an empty result
// without any external call. Any request failure aborts the whole
// operation: callers must not assume any vectors were produced on error.
func (b *EmbeddingBatcher) EmbedAll(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	all := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += b.batchSize {
		end := start + b.batchSize
		if end > len(texts) {
			end = len(texts)
		}

		logger.Debug("embedding batch %d..%d of %d texts", start, end, len(texts))
		vectors, err := b.service.EmbedBatch(ctx, texts[start:end])
		if err != nil {
			return nil, fmt.Errorf("%w: batch %d..%d: %v", domain.ErrEmbeddingFailure, start, end, err)
		}
		if len(vectors) != end-start {
			return nil, fmt.Errorf("%w: batch %d..%d returned %d vectors for %d texts",
				domain.ErrEmbeddingFailure, start, end, len(vectors), end-start)
		}
		all = append(all, vectors...)
	}
	return all, nil
}

// EmbedOne embeds a single text as a one-element batch.
func (b *EmbeddingBatcher) EmbedOne(ctx context.Context, text string) ([]float32, error) {
	vectors, err := b.EmbedAll(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}
