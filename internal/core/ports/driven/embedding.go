package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// Note: This is separate from the vector index, which stores and searches
// vectors. EmbeddingService generates vectors; the index stores them.
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts in one request.
	// The result is index-aligned and order-preserving with the input;
	// implementations must preserve input order within a batch.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
