package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orion-labs/orionwiki/internal/core/domain"
)

func TestWikiCmd_HasSubcommands(t *testing.T) {
	commands := wikiCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "build")
	assert.Contains(t, commandNames, "outline")
	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "export")
}

func TestWikiBuildCmd_ListsGeneratedSections(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	mock := wikiService.(*mockWikiService)
	mock.pages = []domain.WikiPage{
		{Section: mock.outline[0], Markdown: "# Architecture"},
		{Section: mock.outline[1], Markdown: "# Storage"},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"wiki", "build", "/tmp/demo-repo"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "demo-repo", mock.repoID)
	assert.False(t, mock.ephemeral)
	assert.Contains(t, buf.String(), "Generated 2 pages")
	assert.Contains(t, buf.String(), "high-level-architecture")
	assert.Contains(t, buf.String(), "storage-layer")
}

func TestWikiBuildCmd_EphemeralFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	mock := wikiService.(*mockWikiService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"wiki", "build", "--ephemeral", "/tmp/demo-repo"})
	defer func() {
		rootCmd.SetArgs(nil)
		wikiEphemeral = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.True(t, mock.ephemeral)
}

func TestWikiBuildCmd_HTMLFlagWritesSite(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	mock := wikiService.(*mockWikiService)
	mock.pages = []domain.WikiPage{
		{Section: mock.outline[0], Markdown: "# Architecture\n\ncomponents"},
	}
	out := filepath.Join(t.TempDir(), "site.html")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"wiki", "build", "--html", out, "/tmp/demo-repo"})
	defer func() {
		rootCmd.SetArgs(nil)
		wikiBuildHTML = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "High Level Architecture")
}

func TestWikiOutlineCmd_PrintsSections(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"wiki", "outline", "demo-repo"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "high-level-architecture")
	assert.Contains(t, buf.String(), "overview")
	assert.Contains(t, buf.String(), "storage-layer")
}

func TestWikiShowCmd_PrintsPage(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"wiki", "show", "--plain", "demo-repo", "storage-layer"})
	defer func() {
		rootCmd.SetArgs(nil)
		wikiPlain = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "# Storage Layer")
}

func TestWikiShowCmd_UnknownSection(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"wiki", "show", "demo-repo", "no-such-section"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrSectionNotFound)
}

func TestWikiExportCmd_WritesSingleFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	out := filepath.Join(t.TempDir(), "wiki.html")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"wiki", "export", "-o", out, "demo-repo"})
	defer func() {
		rootCmd.SetArgs(nil)
		wikiExportOut = "wiki.html"
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Exported 2 pages")
	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Storage Layer")
}

func TestWikiCmds_ErrorWithoutService(t *testing.T) {
	oldWiki := wikiService
	wikiService = nil
	defer func() {
		wikiService = oldWiki
	}()

	for _, args := range [][]string{
		{"wiki", "build", "/tmp/demo-repo"},
		{"wiki", "outline", "demo-repo"},
		{"wiki", "show", "demo-repo", "storage-layer"},
		{"wiki", "export", "demo-repo"},
	} {
		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		rootCmd.SetArgs(args)

		err := rootCmd.Execute()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
	}
	rootCmd.SetArgs(nil)
}
