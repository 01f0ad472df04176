package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown_PlainReturnsInput(t *testing.T) {
	md := "# Title\n\nsome *styled* text"
	assert.Equal(t, md, renderMarkdown(md, true))
}

func TestRenderMarkdown_StyledKeepsContent(t *testing.T) {
	out := renderMarkdown("# Title\n\nbody text", false)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "body text")
}
