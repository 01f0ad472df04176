package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/orion-labs/orionwiki/internal/core/domain"
)

// outlineSnippetLen caps the raw-response snippet carried on a parse
// failure for diagnosis.
const outlineSnippetLen = 300

// outlineStrategies are the ordered candidate extractors applied to the
// model's raw outline response. Each one is total: it returns a candidate
// JSON string and whether it applies, and never fails itself.
var outlineStrategies = []func(string) (string, bool){
	outlineDirect,
	outlineStripFences,
	outlineBracketSpan,
}

// outlineDirect returns the raw response unchanged.
func outlineDirect(raw string) (string, bool) {
	return raw, true
}

// outlineStripFences removes a single leading/trailing fenced-code marker
// line pair if present (```json ... ``` or ``` ... ```).
func outlineStripFences(raw string) (string, bool) {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) == 0 || !strings.HasPrefix(strings.TrimSpace(lines[0]), "```") {
		return "", false
	}
	lines = lines[1:]
	if n := len(lines); n > 0 && strings.HasPrefix(strings.TrimSpace(lines[n-1]), "```") {
		lines = lines[:n-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), true
}

// outlineBracketSpan extracts the substring between the first '[' and the
// last ']'.
func outlineBracketSpan(raw string) (string, bool) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || start >= end {
		return "", false
	}
	return raw[start : end+1], true
}

// parseOutline parses the model's raw outline response into sections,
// trying each extraction strategy in order. Section objects with unknown
// or missing fields are rejected. When every strategy fails, the error
// carries a truncated snippet of the raw response.
func parseOutline(raw string) (domain.Outline, error) {
	for _, strategy := range outlineStrategies {
		candidate, ok := strategy(raw)
		if !ok {
			continue
		}
		sections, err := decodeSections(candidate)
		if err != nil {
			continue
		}
		return sections, nil
	}

	snippet := strings.ReplaceAll(strings.TrimSpace(raw), "\n", "\\n")
	if len(snippet) > outlineSnippetLen {
		snippet = snippet[:outlineSnippetLen]
	}
	return nil, fmt.Errorf("%w: response starts with %q", domain.ErrOutlineParse, snippet)
}

// decodeSections parses a JSON array of section objects, rejecting
// unknown fields at construction rather than tolerating open maps.
func decodeSections(candidate string) (domain.Outline, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(candidate)))
	dec.DisallowUnknownFields()

	var sections domain.Outline
	if err := dec.Decode(&sections); err != nil {
		return nil, err
	}
	if err := sections.Validate(); err != nil {
		return nil, err
	}
	return sections, nil
}
