package cli

import (
	"github.com/charmbracelet/glamour"
)

// renderWidth is the word-wrap width for terminal markdown output.
const renderWidth = 100

// renderMarkdown pretty-prints markdown for the terminal. With plain set,
// or when the renderer cannot be built, the raw markdown is returned.
func renderMarkdown(markdown string, plain bool) string {
	if plain {
		return markdown
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(renderWidth),
	)
	if err != nil {
		return markdown
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
