package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/orion-labs/orionwiki/internal/core/domain"
	"github.com/orion-labs/orionwiki/internal/core/ports/driven"
	"github.com/orion-labs/orionwiki/internal/core/ports/driving"
	"github.com/orion-labs/orionwiki/internal/logger"
	"github.com/orion-labs/orionwiki/internal/repofs"
	"github.com/orion-labs/orionwiki/internal/vectorindex"
)

// Ensure WikiService implements the interface.
var _ driving.WikiService = (*WikiService)(nil)

// architectureQuestion drives the deep-research run that produces the
// designated architecture page.
const architectureQuestion = "Provide a high-level architecture overview of this repository. " +
	"Describe the main components, services, data flows and how they interact. " +
	"If helpful, include a single Mermaid diagram (flow chart or sequence diagram) " +
	"using the allowed templates to visualise the overall architecture."

// architectureIterations is the research depth for the architecture page.
const architectureIterations = 3

// WikiService generates documentation outlines and per-section pages over
// an indexed repository, caching pages by (repository, section-id).
type WikiService struct {
	indexes   *IndexService
	retriever *Retriever
	research  *ResearchService
	chat      driven.ChatService
	prompts   driven.PromptStore
	store     driven.WikiStore
}

// NewWikiService creates a wiki service.
func NewWikiService(
	indexes *IndexService,
	retriever *Retriever,
	research *ResearchService,
	chat driven.ChatService,
	prompts driven.PromptStore,
	store driven.WikiStore,
) *WikiService {
	return &WikiService{
		indexes:   indexes,
		retriever: retriever,
		research:  research,
		chat:      chat,
		prompts:   prompts,
		store:     store,
	}
}

// GenerateOutline produces the section list for the repository with one
// chat call over the file-tree summary, guarantees the architecture
// section is present and first, and persists the outline.
func (s *WikiService) GenerateOutline(ctx context.Context, repoID, repoPath string) (domain.Outline, error) {
	outline, err := s.generateOutline(ctx, repoID, repoPath)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveOutline(repoID, outline); err != nil {
		return nil, fmt.Errorf("persist outline for %s: %w", repoID, err)
	}
	return outline, nil
}

// GenerateOutlineEphemeral is the outline path with no durable writes.
func (s *WikiService) GenerateOutlineEphemeral(ctx context.Context, repoID, repoPath string) (domain.Outline, error) {
	return s.generateOutline(ctx, repoID, repoPath)
}

func (s *WikiService) generateOutline(ctx context.Context, repoID, repoPath string) (domain.Outline, error) {
	logger.Section("Wiki Outline")

	fileTree, err := repofs.FileTreeSummary(repoPath)
	if err != nil {
		return nil, err
	}

	systemPrompt, err := s.prompts.Load(driven.PromptOutlineSystem)
	if err != nil {
		return nil, err
	}
	userTemplate, err := s.prompts.Load(driven.PromptOutlineUser)
	if err != nil {
		return nil, err
	}
	userPrompt := fmt.Sprintf(userTemplate, repoID, "", fileTree)

	raw, err := s.chat.Chat(ctx, []driven.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: outline: %v", domain.ErrChatFailure, err)
	}

	outline, err := parseOutline(raw)
	if err != nil {
		return nil, err
	}
	outline = domain.EnsureArchitectureSection(outline)
	logger.Info("outline holds %d sections", len(outline))
	return outline, nil
}

// GeneratePage returns the page for a section. On cache hit the stored
// markdown is returned unchanged with no model call. On miss the page is
// generated, cached under (repoID, section.ID) and returned. The
// designated architecture section bypasses the single-call path: it is
// produced by a full research run.
func (s *WikiService) GeneratePage(ctx context.Context, repoID string, section domain.WikiSection) (domain.WikiPage, error) {
	cached, ok, err := s.store.GetPage(repoID, section.ID)
	if err != nil {
		return domain.WikiPage{}, err
	}
	if ok {
		logger.Debug("cache hit for %s/%s", repoID, section.ID)
		return domain.WikiPage{Section: section, Markdown: cached}, nil
	}

	var markdown string
	if section.ID == domain.ArchitectureSectionID {
		result, err := s.research.Run(ctx, repoID, architectureQuestion, architectureIterations)
		if err != nil {
			return domain.WikiPage{}, err
		}
		markdown = result.FinalAnswer
	} else {
		ix, err := s.indexes.LoadIndex(repoID)
		if err != nil {
			return domain.WikiPage{}, err
		}
		markdown, err = s.generatePageMarkdown(ctx, ix, section)
		if err != nil {
			return domain.WikiPage{}, err
		}
	}

	if err := s.store.PutPage(repoID, section.ID, markdown); err != nil {
		return domain.WikiPage{}, fmt.Errorf("cache page %s/%s: %w", repoID, section.ID, err)
	}
	return domain.WikiPage{Section: section, Markdown: markdown}, nil
}

// generatePageMarkdown is the single-call page path: retrieve context for
// the section's title plus keywords (not its description), assemble and
// issue one chat call.
func (s *WikiService) generatePageMarkdown(ctx context.Context, ix *vectorindex.Index, section domain.WikiSection) (string, error) {
	query := strings.Join(append([]string{section.Title}, section.Keywords...), " ")
	records, err := s.retriever.Retrieve(ctx, ix, query, pageTopK)
	if err != nil {
		return "", err
	}

	systemPrompt, err := s.prompts.Load(driven.PromptPageSystem)
	if err != nil {
		return "", err
	}
	userTemplate, err := s.prompts.Load(driven.PromptPageUser)
	if err != nil {
		return "", err
	}

	sectionJSON, err := json.Marshal(section)
	if err != nil {
		return "", err
	}
	userPrompt := fmt.Sprintf(userTemplate, string(sectionJSON), AssembleContext(records))

	markdown, err := s.chat.Chat(ctx, []driven.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	})
	if err != nil {
		return "", fmt.Errorf("%w: page %s: %v", domain.ErrChatFailure, section.ID, err)
	}
	return markdown, nil
}

// BuildWiki builds the index, the outline and every page for the
// repository. Previously cached pages are re-used without model calls.
func (s *WikiService) BuildWiki(ctx context.Context, repoID, repoPath string) (domain.Outline, []domain.WikiPage, error) {
	if err := s.indexes.BuildIndex(ctx, repoID, repoPath); err != nil {
		return nil, nil, err
	}

	outline, err := s.GenerateOutline(ctx, repoID, repoPath)
	if err != nil {
		return nil, nil, err
	}

	pages := make([]domain.WikiPage, 0, len(outline))
	for _, section := range outline {
		page, err := s.GeneratePage(ctx, repoID, section)
		if err != nil {
			return nil, nil, err
		}
		pages = append(pages, page)
	}
	return outline, pages, nil
}

// BuildWikiEphemeral regenerates everything from scratch with an
// in-memory index and no cache reads or writes. All sections take the
// single-call page path; no durable state is retained.
func (s *WikiService) BuildWikiEphemeral(ctx context.Context, repoID, repoPath string) (domain.Outline, []domain.WikiPage, error) {
	ix, err := s.indexes.BuildInMemory(ctx, repoPath)
	if err != nil {
		return nil, nil, err
	}

	outline, err := s.GenerateOutlineEphemeral(ctx, repoID, repoPath)
	if err != nil {
		return nil, nil, err
	}

	pages := make([]domain.WikiPage, 0, len(outline))
	for _, section := range outline {
		markdown, err := s.generatePageMarkdown(ctx, ix, section)
		if err != nil {
			return nil, nil, err
		}
		pages = append(pages, domain.WikiPage{Section: section, Markdown: markdown})
	}
	return outline, pages, nil
}

// Outline returns the persisted outline for the repository.
func (s *WikiService) Outline(repoID string) (domain.Outline, error) {
	return s.store.LoadOutline(repoID)
}

// PageForSectionID resolves a section id against the persisted outline
// and returns its page.
func (s *WikiService) PageForSectionID(ctx context.Context, repoID, sectionID string) (domain.WikiPage, error) {
	outline, err := s.store.LoadOutline(repoID)
	if err != nil {
		return domain.WikiPage{}, err
	}
	section, ok := outline.Find(sectionID)
	if !ok {
		return domain.WikiPage{}, fmt.Errorf("%w: %s in %s", domain.ErrSectionNotFound, sectionID, repoID)
	}
	return s.GeneratePage(ctx, repoID, section)
}
