// Package chunker provides fixed-size text chunking with overlap.
package chunker

import (
	"github.com/orion-labs/orionwiki/internal/core/domain"
)

// Splitter splits document text into overlapping fixed-size windows.
// It is deterministic and pure; construction validates the window/overlap
// relationship and operation never fails.
type Splitter struct {
	window  int
	overlap int
	textCap int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithWindow sets the chunk window in characters.
func WithWindow(window int) Option {
	return func(s *Splitter) {
		if window > 0 {
			s.window = window
		}
	}
}

// WithOverlap sets the overlap between consecutive chunks in characters.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// WithStoredTextCap caps the chunk text carried in index metadata.
func WithStoredTextCap(cap int) Option {
	return func(s *Splitter) {
		if cap > 0 {
			s.textCap = cap
		}
	}
}

// New creates a splitter with the given options. Defaults come from the
// indexing configuration defaults.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		window:  domain.DefaultChunkSize,
		overlap: domain.DefaultChunkOverlap,
		textCap: domain.DefaultStoredTextCap,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Overlap must stay below the window or the cursor cannot advance.
	if s.overlap >= s.window {
		s.overlap = s.window / 4
	}

	return s
}

// FromConfig creates a splitter from an explicit indexing configuration.
func FromConfig(cfg domain.IndexingConfig) *Splitter {
	return New(
		WithWindow(cfg.ChunkSize),
		WithOverlap(cfg.ChunkOverlap),
		WithStoredTextCap(cfg.StoredTextCap),
	)
}

// Split returns the ordered chunk sequence for text. Consecutive chunks
// overlap by exactly the configured overlap except the final chunk, which
// may be shorter than the window; together the chunks cover the whole
// text with no gaps. Window and overlap are measured in characters
// (runes), never bytes, so a chunk boundary cannot land inside a
// multibyte sequence. Empty text yields no chunks.
func (s *Splitter) Split(text string) []string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil
	}

	estimated := n/(s.window-s.overlap) + 1
	chunks := make([]string, 0, estimated)

	start := 0
	for start < n {
		end := start + s.window
		if end > n {
			end = n
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == n {
			break
		}
		start = end - s.overlap
		if start < 0 {
			start = 0
		}
	}

	return chunks
}

// SplitDocument splits a document and wraps each piece in a chunk record
// with its 0-based ordinal. Stored text is capped at the configured limit;
// the full text is still returned separately for embedding.
func (s *Splitter) SplitDocument(doc domain.Document) (records []domain.Chunk, texts []string) {
	pieces := s.Split(doc.Text)
	if len(pieces) == 0 {
		return nil, nil
	}

	records = make([]domain.Chunk, 0, len(pieces))
	texts = make([]string, 0, len(pieces))
	for i, piece := range pieces {
		stored := piece
		// The cap is in characters too; truncating at a byte offset
		// could leave a dangling partial rune in the metadata.
		if r := []rune(stored); len(r) > s.textCap {
			stored = string(r[:s.textCap])
		}
		records = append(records, domain.Chunk{
			DocID:   doc.ID,
			ChunkID: i,
			Path:    doc.Path,
			Text:    stored,
		})
		texts = append(texts, piece)
	}
	return records, texts
}
