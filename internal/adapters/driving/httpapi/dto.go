package httpapi

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/orion-labs/orionwiki/internal/core/domain"
)

// GenerateWikiRequest is the request body for the generate endpoints.
// RepoName overrides the identifier derived from the path's base name.
type GenerateWikiRequest struct {
	RepoPath string `json:"repo_path"`
	RepoName string `json:"repo_name,omitempty"`
}

func (r GenerateWikiRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RepoPath, validation.Required),
	)
}

// GenerateWikiResponse is returned by POST /api/generate.
type GenerateWikiResponse struct {
	RepoID   string         `json:"repo_id"`
	Sections domain.Outline `json:"sections"`
}

// GenerateWikiEphemeralResponse additionally carries the full HTML site,
// since nothing is persisted for a later fetch.
type GenerateWikiEphemeralResponse struct {
	RepoID   string         `json:"repo_id"`
	Sections domain.Outline `json:"sections"`
	HTML     string         `json:"html"`
}

// GetWikiPageRequest is the request body for POST /api/wiki_page.
type GetWikiPageRequest struct {
	RepoID    string `json:"repo_id"`
	SectionID string `json:"section_id"`
}

func (r GetWikiPageRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RepoID, validation.Required),
		validation.Field(&r.SectionID, validation.Required),
	)
}

// GetWikiPageResponse wraps a single generated page.
type GetWikiPageResponse struct {
	RepoID    string          `json:"repo_id"`
	SectionID string          `json:"section_id"`
	Page      domain.WikiPage `json:"page"`
}

// AskRequest is the request body for POST /api/ask.
type AskRequest struct {
	RepoID   string            `json:"repo_id"`
	Question string            `json:"question"`
	History  []domain.ChatTurn `json:"history,omitempty"`
}

func (r AskRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RepoID, validation.Required),
		validation.Field(&r.Question, validation.Required),
	)
}

// AskResponse carries the answer plus the source paths fed to the model.
type AskResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}

// DeepResearchRequest is the request body for POST /api/deep_research.
// MaxIterations is clamped server-side; zero means the default.
type DeepResearchRequest struct {
	RepoID        string `json:"repo_id"`
	Question      string `json:"question"`
	MaxIterations int    `json:"max_iterations,omitempty"`
}

func (r DeepResearchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RepoID, validation.Required),
		validation.Field(&r.Question, validation.Required),
		validation.Field(&r.MaxIterations, validation.Min(0)),
	)
}

// DeepResearchResponse is the full research outcome with the transcript.
type DeepResearchResponse struct {
	FinalAnswer string                     `json:"final_answer"`
	Iterations  []domain.ResearchIteration `json:"iterations"`
}
