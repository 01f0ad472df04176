package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orion-labs/orionwiki/internal/core/domain"
)

func TestIndexService_BuildAndLoad(t *testing.T) {
	h := newTestHarness(t)
	ctx := context.Background()

	require.NoError(t, h.indexes.BuildIndex(ctx, "demo", h.repoDir))

	ix, err := h.indexes.LoadIndex("demo")
	require.NoError(t, err)
	assert.Equal(t, 3, ix.Len(), "1000+300 chars at window 800 / overlap 200")
	assert.Equal(t, 3, ix.Dim())
}

func TestIndexService_BuildInMemory_ChunkRecords(t *testing.T) {
	h := newTestHarness(t)

	ix, err := h.indexes.BuildInMemory(context.Background(), h.repoDir)
	require.NoError(t, err)
	require.Equal(t, 3, ix.Len())

	// Exact-match query resolves to the chunk it came from at distance 0.
	hits, err := h.retriever.Retrieve(context.Background(), ix, strings.Repeat("b", 300), 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "README.md", hits[0].Path)
	assert.Zero(t, hits[0].Score)
	assert.Equal(t, 0, hits[0].ChunkID)
}

func TestIndexService_BuildInMemory_EmptyCorpus(t *testing.T) {
	h := newTestHarness(t)

	_, err := h.indexes.BuildInMemory(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
}

func TestIndexService_BuildIndex_EmbeddingFailure(t *testing.T) {
	h := newTestHarness(t)
	h.embed.err = assert.AnError

	err := h.indexes.BuildIndex(context.Background(), "demo", h.repoDir)
	require.ErrorIs(t, err, domain.ErrEmbeddingFailure)

	_, err = h.indexes.LoadIndex("demo")
	assert.ErrorIs(t, err, domain.ErrIndexNotFound, "nothing persisted on failure")
}

func TestIndexService_LoadIndex_Missing(t *testing.T) {
	h := newTestHarness(t)

	_, err := h.indexes.LoadIndex("never-built")
	assert.ErrorIs(t, err, domain.ErrIndexNotFound)
}
