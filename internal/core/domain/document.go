package domain

// Document represents one ingested repository file.
type Document struct {
	// ID is unique within one index build (e.g. "doc_0", "doc_1", ...).
	ID string

	// Path is the file path relative to the repository root.
	Path string

	// Text is the full file contents, decoded permissively: invalid
	// UTF-8 sequences are dropped during ingestion, never fatal.
	Text string
}

// Chunk is the atomic unit of retrieval: a bounded-length substring of
// one document, stored in the vector index alongside its embedding.
type Chunk struct {
	// DocID links to the parent Document.
	DocID string `json:"doc_id"`

	// ChunkID is the 0-based ordinal of the chunk within its document.
	ChunkID int `json:"chunk_id"`

	// Path is the source file path, carried for citation.
	Path string `json:"path"`

	// Text is the chunk content, capped at the stored-text limit.
	Text string `json:"text"`
}

// RetrievedChunk is a chunk record copy annotated with a retrieval score.
// Scores are squared Euclidean distances to the query vector; lower is
// more relevant. The stored metadata is never mutated in place.
type RetrievedChunk struct {
	Chunk

	// Score is the squared L2 distance between the chunk embedding and
	// the query embedding.
	Score float32 `json:"score"`
}
