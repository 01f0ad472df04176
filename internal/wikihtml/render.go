// Package wikihtml renders generated wiki markdown into a single
// self-contained HTML page with a section sidebar. Mermaid code blocks
// are promoted to diagram containers so a browser-side renderer can
// turn them into SVG.
package wikihtml

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to HTML.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a renderer with GitHub-flavored extensions.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(ghtml.WithUnsafe()),
		),
	}
}

// Render converts one markdown document to an HTML fragment. The second
// return value reports whether the document contained a mermaid diagram.
func (r *Renderer) Render(markdown string) (string, bool, error) {
	prepared, diagrams := extractMermaid(markdown)

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(prepared), &buf); err != nil {
		return "", false, fmt.Errorf("render markdown: %w", err)
	}

	out := buf.String()
	for i, diagram := range diagrams {
		div := `<div class="mermaid">` + "\n" + html.EscapeString(diagram) + "\n</div>"
		token := mermaidToken(i)
		if strings.Contains(out, "<p>"+token+"</p>") {
			out = strings.Replace(out, "<p>"+token+"</p>", div, 1)
		} else {
			out = strings.Replace(out, token, div, 1)
		}
	}
	return out, len(diagrams) > 0, nil
}

func mermaidToken(i int) string {
	return fmt.Sprintf("@@ORIONWIKI-MERMAID-%d@@", i)
}

// mermaidFirstLines are diagram openers that mark an untagged fenced
// block as mermaid content. Models sometimes drop the language tag.
var mermaidFirstLines = []string{"graph ", "graph\t", "flowchart ", "sequenceDiagram"}

// extractMermaid pulls mermaid fenced blocks out of the markdown,
// replacing each with a placeholder token. Blocks fenced as mermaid are
// always extracted; untagged blocks are promoted when their first line
// looks like a diagram opener.
func extractMermaid(markdown string) (string, []string) {
	var (
		out       []string
		diagrams  []string
		block     []string
		fenceInfo string
		inFence   bool
	)

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case !inFence && strings.HasPrefix(trimmed, "```"):
			inFence = true
			fenceInfo = strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
			block = []string{line}
		case inFence && strings.HasPrefix(trimmed, "```"):
			inFence = false
			isMermaid := fenceInfo == "mermaid"
			if !isMermaid && fenceInfo == "" && len(block) > 1 {
				// Promote untagged blocks that open like a diagram.
				isMermaid = looksLikeMermaid(strings.TrimSpace(block[1]))
			}
			if isMermaid {
				diagrams = append(diagrams, strings.Join(block[1:], "\n"))
				out = append(out, mermaidToken(len(diagrams)-1))
			} else {
				out = append(out, block...)
				out = append(out, line)
			}
			block = nil
		case inFence:
			block = append(block, line)
		default:
			out = append(out, line)
		}
	}
	if inFence {
		// Unterminated fence; emit as-is.
		out = append(out, block...)
	}
	return strings.Join(out, "\n"), diagrams
}

func looksLikeMermaid(firstLine string) bool {
	for _, opener := range mermaidFirstLines {
		if strings.HasPrefix(firstLine, opener) || firstLine == strings.TrimSpace(opener) {
			return true
		}
	}
	return false
}
