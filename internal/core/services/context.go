package services

import (
	"strings"

	"github.com/orion-labs/orionwiki/internal/core/domain"
)

// AssembleContext renders retrieved records into a single text block
// usable as model input. Each record becomes a labeled, delimited block;
// blocks are concatenated in input order.
func AssembleContext(records []domain.RetrievedChunk) string {
	blocks := make([]string, 0, len(records))
	for _, r := range records {
		blocks = append(blocks, "File: "+r.Path+"\n\n"+r.Text+"\n---")
	}
	return strings.Join(blocks, "\n\n")
}

// CitedPaths returns the source paths of the records with duplicates
// removed, preserving first-seen order. Deduplication uses the path
// identifier only, not the content.
func CitedPaths(records []domain.RetrievedChunk) []string {
	seen := make(map[string]bool, len(records))
	paths := make([]string, 0, len(records))
	for _, r := range records {
		if seen[r.Path] {
			continue
		}
		seen[r.Path] = true
		paths = append(paths, r.Path)
	}
	return paths
}

// RenderTranscript joins prior research iterations as label\ncontent
// blocks for feeding back into later iterations.
func RenderTranscript(iterations []domain.ResearchIteration) string {
	if len(iterations) == 0 {
		return ""
	}
	parts := make([]string, 0, len(iterations))
	for _, it := range iterations {
		parts = append(parts, it.Label+"\n"+it.Content+"\n")
	}
	return strings.Join(parts, "\n\n")
}
