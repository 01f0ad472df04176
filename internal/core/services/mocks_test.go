package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orion-labs/orionwiki/internal/chunker"
	"github.com/orion-labs/orionwiki/internal/core/domain"
	"github.com/orion-labs/orionwiki/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockEmbedding implements driven.EmbeddingService for testing. Vectors
// are a deterministic function of the input text so order preservation
// can be verified.
type mockEmbedding struct {
	mu      sync.Mutex
	fn      func(text string) []float32
	err     error
	batches [][]string
}

func defaultEmbedFn(text string) []float32 {
	var sum float32
	for _, b := range []byte(text) {
		sum += float32(b)
	}
	return []float32{sum, float32(len(text)), 1}
}

func newMockEmbedding() *mockEmbedding {
	return &mockEmbedding{fn: defaultEmbedFn}
}

func (m *mockEmbedding) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := m.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

func (m *mockEmbedding) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.batches = append(m.batches, append([]string(nil), texts...))
	vectors := make([][]float32, len(texts))
	for i, t := range texts {
		vectors[i] = m.fn(t)
	}
	return vectors, nil
}

func (m *mockEmbedding) ModelName() string          { return "mock-embed" }
func (m *mockEmbedding) Ping(context.Context) error { return nil }
func (m *mockEmbedding) Close() error               { return nil }

func (m *mockEmbedding) batchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.batches)
}

// mockChat implements driven.ChatService for testing. It replays scripted
// responses and records every message list it receives.
type mockChat struct {
	mu        sync.Mutex
	responses []string
	err       error
	calls     [][]driven.ChatMessage
}

func (m *mockChat) Chat(_ context.Context, messages []driven.ChatMessage) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	m.calls = append(m.calls, append([]driven.ChatMessage(nil), messages...))
	if len(m.responses) == 0 {
		return "mock answer", nil
	}
	resp := m.responses[0]
	if len(m.responses) > 1 {
		m.responses = m.responses[1:]
	}
	return resp, nil
}

func (m *mockChat) ModelName() string          { return "mock-chat" }
func (m *mockChat) Ping(context.Context) error { return nil }
func (m *mockChat) Close() error               { return nil }

func (m *mockChat) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// mockPrompts implements driven.PromptStore with minimal templates that
// keep fmt verbs aligned with the real defaults.
type mockPrompts struct{}

func (mockPrompts) Load(name string) (string, error) {
	switch name {
	case driven.PromptRAGUser:
		return "system: %s\ncontexts: %s\nhistory: %s\nquestion: %s", nil
	case driven.PromptOutlineUser:
		return "repo: %s\ndescription: %s\ntree: %s", nil
	case driven.PromptPageUser:
		return "section: %s\ncontexts: %s", nil
	case driven.PromptResearchIntermediate:
		return "intermediate iteration {iteration}", nil
	default:
		return "prompt " + name, nil
	}
}

func (mockPrompts) Reload() {}

// mockWikiStore implements driven.WikiStore in memory, with index paths
// rooted in a test temp dir.
type mockWikiStore struct {
	mu       sync.Mutex
	dir      string
	outlines map[string]domain.Outline
	pages    map[string]string
	puts     int
}

func newMockWikiStore(dir string) *mockWikiStore {
	return &mockWikiStore{
		dir:      dir,
		outlines: make(map[string]domain.Outline),
		pages:    make(map[string]string),
	}
}

func (m *mockWikiStore) SaveOutline(repoID string, outline domain.Outline) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outlines[repoID] = outline
	return nil
}

func (m *mockWikiStore) LoadOutline(repoID string) (domain.Outline, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.outlines[repoID]
	if !ok {
		return nil, domain.ErrIndexNotFound
	}
	return o, nil
}

func (m *mockWikiStore) GetPage(repoID, sectionID string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	md, ok := m.pages[repoID+"/"+sectionID]
	return md, ok, nil
}

func (m *mockWikiStore) PutPage(repoID, sectionID, markdown string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[repoID+"/"+sectionID] = markdown
	m.puts++
	return nil
}

func (m *mockWikiStore) IndexPaths(repoID string) (string, string) {
	return filepath.Join(m.dir, repoID+".index"), filepath.Join(m.dir, repoID+".meta.json")
}

// --- Shared harness ---

// testHarness wires every core service against the mocks, with index
// files rooted in a per-test temp dir.
type testHarness struct {
	embed     *mockEmbedding
	chat      *mockChat
	store     *mockWikiStore
	indexes   *IndexService
	retriever *Retriever
	research  *ResearchService
	ask       *AskService
	wiki      *WikiService
	repoDir   string
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()

	h := &testHarness{
		embed: newMockEmbedding(),
		chat:  &mockChat{},
		store: newMockWikiStore(t.TempDir()),
	}
	batcher := NewEmbeddingBatcher(h.embed, 4)
	splitter := chunker.New(chunker.WithWindow(800), chunker.WithOverlap(200))
	h.indexes = NewIndexService(splitter, batcher, h.store)
	h.retriever = NewRetriever(batcher)
	h.research = NewResearchService(h.indexes, h.retriever, h.chat, mockPrompts{})
	h.ask = NewAskService(h.indexes, h.retriever, h.chat, mockPrompts{})
	h.wiki = NewWikiService(h.indexes, h.retriever, h.research, h.chat, mockPrompts{}, h.store)
	h.repoDir = writeTestRepo(t)
	return h
}

// writeTestRepo lays out a two-file repository: with an 800-char window
// and 200-char overlap the 1000-char file splits into two chunks and the
// 300-char file into one.
func writeTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"main.go":   strings.Repeat("a", 1000),
		"README.md": strings.Repeat("b", 300),
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}
