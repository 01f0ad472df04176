package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddingService_EmbedBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/embeddings", r.URL.Path)
		var req embeddingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, []string{"first", "second"}, req.Input)

		// Entries deliberately out of order; the adapter re-aligns by index.
		if _, err := w.Write([]byte(`{"data": [
			{"index": 1, "embedding": [0.25, 0.5]},
			{"index": 0, "embedding": [1.0, 2.0]}
		]}`)); err != nil {
			t.Error(err)
		}
	}))
	defer server.Close()

	svc, err := NewEmbeddingService(EmbedConfig{APIKey: "k", BaseURL: server.URL, RateLimit: fastLimit})
	require.NoError(t, err)

	embeddings, err := svc.EmbedBatch(context.Background(), []string{"first", "second"})
	require.NoError(t, err)
	require.Len(t, embeddings, 2)
	assert.Equal(t, []float32{1.0, 2.0}, embeddings[0])
	assert.Equal(t, []float32{0.25, 0.5}, embeddings[1])
}

func TestEmbeddingService_EmbedBatch_Empty(t *testing.T) {
	svc, err := NewEmbeddingService(EmbedConfig{APIKey: "k", BaseURL: "http://unreachable.invalid", RateLimit: fastLimit})
	require.NoError(t, err)

	embeddings, err := svc.EmbedBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, embeddings, "no request for empty input")
}

func TestEmbeddingService_MissingEmbedding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if _, err := w.Write([]byte(`{"data": [{"index": 0, "embedding": [1.0]}]}`)); err != nil {
			t.Error(err)
		}
	}))
	defer server.Close()

	svc, err := NewEmbeddingService(EmbedConfig{APIKey: "k", BaseURL: server.URL, RateLimit: fastLimit})
	require.NoError(t, err)

	_, err = svc.EmbedBatch(context.Background(), []string{"a", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing embedding")
}

func TestEmbeddingService_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		if _, err := w.Write([]byte(`{"error": {"message": "input too long", "type": "invalid_request_error"}}`)); err != nil {
			t.Error(err)
		}
	}))
	defer server.Close()

	svc, err := NewEmbeddingService(EmbedConfig{APIKey: "k", BaseURL: server.URL, RateLimit: fastLimit})
	require.NoError(t, err)

	_, err = svc.EmbedBatch(context.Background(), []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input too long")
}

func TestEmbeddingService_Embed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if _, err := w.Write([]byte(`{"data": [{"index": 0, "embedding": [3.0, 4.0]}]}`)); err != nil {
			t.Error(err)
		}
	}))
	defer server.Close()

	svc, err := NewEmbeddingService(EmbedConfig{APIKey: "k", BaseURL: server.URL, Model: "embed-x", RateLimit: fastLimit})
	require.NoError(t, err)

	embedding, err := svc.Embed(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, []float32{3.0, 4.0}, embedding)
	assert.Equal(t, "embed-x", svc.ModelName())
}

func TestEmbeddingService_RequiresAPIKey(t *testing.T) {
	_, err := NewEmbeddingService(EmbedConfig{})
	assert.Error(t, err)
}
