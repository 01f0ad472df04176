package wikifs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orion-labs/orionwiki/internal/core/domain"
)

func TestStore_OutlineRoundtrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	outline := domain.Outline{
		{ID: "high-level-architecture", Title: "High Level Architecture", Description: "Overview.", Keywords: []string{"architecture"}},
		{ID: "getting-started", Title: "Getting Started", Description: "Setup.", Keywords: []string{"install", "setup"}},
	}
	require.NoError(t, store.SaveOutline("owner_repo", outline))

	loaded, err := store.LoadOutline("owner_repo")
	require.NoError(t, err)
	assert.Equal(t, outline, loaded)
}

func TestStore_LoadOutline_Missing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.LoadOutline("never-saved")
	assert.ErrorIs(t, err, domain.ErrIndexNotFound)
}

func TestStore_PageRoundtrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	_, ok, err := store.GetPage("owner_repo", "getting-started")
	require.NoError(t, err)
	assert.False(t, ok, "empty cache misses")

	markdown := "# Getting Started\n\nInstall the thing."
	require.NoError(t, store.PutPage("owner_repo", "getting-started", markdown))

	got, ok, err := store.GetPage("owner_repo", "getting-started")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, markdown, got, "cached markdown returned byte for byte")
}

func TestStore_PagesAreKeyedPerRepoAndSection(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.PutPage("repo-a", "intro", "A intro"))
	require.NoError(t, store.PutPage("repo-b", "intro", "B intro"))
	require.NoError(t, store.PutPage("repo-a", "usage", "A usage"))

	got, ok, err := store.GetPage("repo-a", "intro")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "A intro", got)

	got, ok, err = store.GetPage("repo-b", "intro")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "B intro", got)
}

func TestStore_IndexPaths(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	vectorPath, metaPath := store.IndexPaths("owner_repo")
	assert.Equal(t, filepath.Join(dir, "indexes", "owner_repo.index"), vectorPath)
	assert.Equal(t, filepath.Join(dir, "indexes", "owner_repo.meta.json"), metaPath)
}

func TestStore_SanitizesIdentifiers(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.PutPage("../evil", "a/b", "content"))

	// Path separators are replaced; the file stays inside the wiki dir.
	entries, err := os.ReadDir(filepath.Join(dir, "wiki"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".._evil_a_b.md", entries[0].Name())

	got, ok, err := store.GetPage("../evil", "a/b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "content", got)
}

func TestNewStore_RequiresDataDir(t *testing.T) {
	_, err := NewStore("")
	assert.Error(t, err)
}
