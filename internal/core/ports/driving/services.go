// Package driving provides interfaces for application entry points (primary/inbound ports).
// The CLI and the HTTP API depend on these, never on concrete services.
package driving

import (
	"context"

	"github.com/orion-labs/orionwiki/internal/core/domain"
)

// IndexService builds the semantic retrieval index for a repository.
type IndexService interface {
	// BuildIndex chunks every eligible document under repoPath, embeds the
	// chunks and persists the index under the repository identifier.
	// Fails with domain.ErrEmptyCorpus when no eligible documents exist.
	BuildIndex(ctx context.Context, repoID, repoPath string) error
}

// AskService answers a single question over an indexed repository.
type AskService interface {
	// Ask retrieves context for the question and issues one chat call.
	// It returns the answer plus the deduplicated source paths that were
	// fed to the model. History is optional prior conversation turns.
	Ask(ctx context.Context, repoID, question string, history []domain.ChatTurn) (answer string, citedPaths []string, err error)
}

// ResearchService runs the bounded multi-turn deep-research process.
type ResearchService interface {
	// Run executes up to maxIterations retrieve/generate iterations
	// (clamped to [1,5]) and returns the final answer with the full
	// transcript. Any failure aborts the whole run with no partial result.
	Run(ctx context.Context, repoID, question string, maxIterations int) (domain.ResearchResult, error)
}

// WikiService generates documentation outlines and pages.
type WikiService interface {
	// GenerateOutline asks the model for a section list and guarantees
	// the designated architecture section is present and first.
	GenerateOutline(ctx context.Context, repoID, repoPath string) (domain.Outline, error)

	// GeneratePage returns the page for a section, generating and caching
	// it on first request and serving the cache afterwards.
	GeneratePage(ctx context.Context, repoID string, section domain.WikiSection) (domain.WikiPage, error)

	// BuildWiki builds the index, the outline and every page for the
	// repository, returning the full page set in outline order.
	BuildWiki(ctx context.Context, repoID, repoPath string) (domain.Outline, []domain.WikiPage, error)

	// BuildWikiEphemeral regenerates everything with an in-memory index
	// and no cache reads or writes; nothing durable is retained.
	BuildWikiEphemeral(ctx context.Context, repoID, repoPath string) (domain.Outline, []domain.WikiPage, error)

	// Outline returns the persisted outline for the repository.
	Outline(repoID string) (domain.Outline, error)

	// PageForSectionID resolves a section id against the persisted
	// outline and returns its page. Fails with domain.ErrSectionNotFound
	// for unknown ids.
	PageForSectionID(ctx context.Context, repoID, sectionID string) (domain.WikiPage, error)
}
