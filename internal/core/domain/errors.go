package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// Every failure in the core is terminal for the enclosing operation:
// there is no automatic retry and no partial or degraded result. Callers
// match these with errors.Is and translate them at the boundary.
var (
	// ErrEmptyCorpus indicates a repository yielded no eligible documents
	// to index.
	ErrEmptyCorpus = errors.New("no documents found in repository")

	// ErrEmptyEmbeddings indicates the embedding step produced no vectors.
	// Normally only reachable when the corpus itself is empty.
	ErrEmptyEmbeddings = errors.New("no embeddings created for repository")

	// ErrDimensionMismatch indicates a vector's length does not match the
	// index dimension. The failing add leaves the index unchanged.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrEmbeddingFailure indicates an external embedding call failed.
	// No partial vectors are returned on this error.
	ErrEmbeddingFailure = errors.New("embedding request failed")

	// ErrChatFailure indicates an external chat completion call failed.
	ErrChatFailure = errors.New("chat request failed")

	// ErrOutlineParse indicates the model's outline response could not be
	// parsed as a JSON section array after all fallback strategies.
	ErrOutlineParse = errors.New("failed to parse wiki outline")

	// ErrIndexNotFound indicates no persisted index exists for the
	// repository. A build must run before retrieval.
	ErrIndexNotFound = errors.New("index not found for repository")

	// ErrSectionNotFound indicates the requested section id is not part of
	// the repository's outline.
	ErrSectionNotFound = errors.New("wiki section not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
