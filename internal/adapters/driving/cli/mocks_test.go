package cli

import (
	"context"

	"github.com/orion-labs/orionwiki/internal/core/domain"
)

type mockIndexService struct {
	repoID   string
	repoPath string
	err      error
}

func (m *mockIndexService) BuildIndex(_ context.Context, repoID, repoPath string) error {
	m.repoID = repoID
	m.repoPath = repoPath
	return m.err
}

type mockAskService struct {
	answer  string
	sources []string
	err     error

	repoID   string
	question string
}

func (m *mockAskService) Ask(_ context.Context, repoID, question string, _ []domain.ChatTurn) (string, []string, error) {
	m.repoID = repoID
	m.question = question
	return m.answer, m.sources, m.err
}

type mockResearchService struct {
	result domain.ResearchResult
	err    error

	iterations int
}

func (m *mockResearchService) Run(_ context.Context, repoID, question string, maxIterations int) (domain.ResearchResult, error) {
	m.iterations = maxIterations
	return m.result, m.err
}

type mockWikiService struct {
	outline domain.Outline
	pages   []domain.WikiPage
	err     error

	repoID    string
	repoPath  string
	ephemeral bool
}

func (m *mockWikiService) GenerateOutline(_ context.Context, repoID, repoPath string) (domain.Outline, error) {
	return m.outline, m.err
}

func (m *mockWikiService) GeneratePage(_ context.Context, _ string, section domain.WikiSection) (domain.WikiPage, error) {
	if m.err != nil {
		return domain.WikiPage{}, m.err
	}
	for _, p := range m.pages {
		if p.Section.ID == section.ID {
			return p, nil
		}
	}
	return domain.WikiPage{Section: section, Markdown: "# " + section.Title}, nil
}

func (m *mockWikiService) BuildWiki(_ context.Context, repoID, repoPath string) (domain.Outline, []domain.WikiPage, error) {
	m.repoID = repoID
	m.repoPath = repoPath
	m.ephemeral = false
	return m.outline, m.pages, m.err
}

func (m *mockWikiService) BuildWikiEphemeral(_ context.Context, repoID, repoPath string) (domain.Outline, []domain.WikiPage, error) {
	m.repoID = repoID
	m.repoPath = repoPath
	m.ephemeral = true
	return m.outline, m.pages, m.err
}

func (m *mockWikiService) Outline(repoID string) (domain.Outline, error) {
	m.repoID = repoID
	return m.outline, m.err
}

func (m *mockWikiService) PageForSectionID(ctx context.Context, repoID, sectionID string) (domain.WikiPage, error) {
	if m.err != nil {
		return domain.WikiPage{}, m.err
	}
	section, ok := m.outline.Find(sectionID)
	if !ok {
		return domain.WikiPage{}, domain.ErrSectionNotFound
	}
	return m.GeneratePage(ctx, repoID, section)
}

func cliTestOutline() domain.Outline {
	return domain.Outline{
		{ID: "high-level-architecture", Title: "High Level Architecture", Description: "overview", Keywords: []string{"design"}},
		{ID: "storage-layer", Title: "Storage Layer", Description: "persistence", Keywords: []string{"disk"}},
	}
}

// setupTestServices wires mock services into the package vars and returns
// a cleanup that restores the previous ones.
func setupTestServices() func() {
	oldIndex, oldAsk, oldResearch, oldWiki := indexService, askService, researchService, wikiService

	indexService = &mockIndexService{}
	askService = &mockAskService{answer: "mock answer", sources: []string{"main.go"}}
	researchService = &mockResearchService{result: domain.ResearchResult{
		FinalAnswer: "mock conclusion",
		Iterations: []domain.ResearchIteration{
			{Stage: domain.StageFinal, Label: "## Final Conclusion (iteration 1)", Content: "mock conclusion"},
		},
	}}
	wikiService = &mockWikiService{outline: cliTestOutline()}

	return func() {
		indexService = oldIndex
		askService = oldAsk
		researchService = oldResearch
		wikiService = oldWiki
	}
}
