package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/orion-labs/orionwiki/internal/core/domain"
	"github.com/orion-labs/orionwiki/internal/core/ports/driving"
	"github.com/orion-labs/orionwiki/internal/logger"
	"github.com/orion-labs/orionwiki/internal/repofs"
	"github.com/orion-labs/orionwiki/internal/wikihtml"
)

const defaultResearchIterations = 3

// maxBodyBytes bounds request bodies; payloads are small JSON documents.
const maxBodyBytes = 1 << 20

// Handler holds API route handlers.
type Handler struct {
	ask      driving.AskService
	research driving.ResearchService
	wiki     driving.WikiService
}

// NewHandler creates a new Handler.
func NewHandler(ask driving.AskService, research driving.ResearchService, wiki driving.WikiService) *Handler {
	return &Handler{ask: ask, research: research, wiki: wiki}
}

// decode reads and validates a JSON request body. On failure it writes a
// 400 response and returns false.
func decode(w http.ResponseWriter, r *http.Request, req interface{ Validate() error }) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid request body"))
		return false
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return false
	}
	return true
}

// repoIDFor resolves the identifier for a generate request.
func repoIDFor(req GenerateWikiRequest) string {
	if req.RepoName != "" {
		return repofs.NormalizeRepoID(req.RepoName)
	}
	return repofs.NormalizeRepoID(req.RepoPath)
}

// GenerateWiki handles POST /api/generate. It indexes the repository,
// generates the outline and every page, and persists all of it.
func (h *Handler) GenerateWiki(w http.ResponseWriter, r *http.Request) {
	var req GenerateWikiRequest
	if !decode(w, r, &req) {
		return
	}
	repoID := repoIDFor(req)
	logger.Info("POST /api/generate repo_id=%s path=%s", repoID, req.RepoPath)

	outline, _, err := h.wiki.BuildWiki(r.Context(), repoID, req.RepoPath)
	if err != nil {
		h.writeError(w, "generate wiki", err)
		return
	}
	writeJSON(w, http.StatusOK, GenerateWikiResponse{RepoID: repoID, Sections: outline})
}

// GenerateWikiEphemeral handles POST /api/generate_ephemeral. The index
// lives only in memory and the full HTML site comes back in the response;
// nothing is written to disk.
func (h *Handler) GenerateWikiEphemeral(w http.ResponseWriter, r *http.Request) {
	var req GenerateWikiRequest
	if !decode(w, r, &req) {
		return
	}
	repoID := repoIDFor(req)
	logger.Info("POST /api/generate_ephemeral repo_id=%s path=%s", repoID, req.RepoPath)

	outline, pages, err := h.wiki.BuildWikiEphemeral(r.Context(), repoID, req.RepoPath)
	if err != nil {
		h.writeError(w, "generate ephemeral wiki", err)
		return
	}
	html, err := wikihtml.BuildSite(repoID, pages)
	if err != nil {
		h.writeError(w, "render ephemeral wiki", err)
		return
	}
	writeJSON(w, http.StatusOK, GenerateWikiEphemeralResponse{
		RepoID:   repoID,
		Sections: outline,
		HTML:     html,
	})
}

// GetWikiPage handles POST /api/wiki_page. Cached pages are served from
// disk; a miss generates and caches the page first.
func (h *Handler) GetWikiPage(w http.ResponseWriter, r *http.Request) {
	var req GetWikiPageRequest
	if !decode(w, r, &req) {
		return
	}
	page, err := h.wiki.PageForSectionID(r.Context(), req.RepoID, req.SectionID)
	if err != nil {
		h.writeError(w, "wiki page", err)
		return
	}
	writeJSON(w, http.StatusOK, GetWikiPageResponse{
		RepoID:    req.RepoID,
		SectionID: req.SectionID,
		Page:      page,
	})
}

// GetWikiHTML handles GET /api/wiki_html/{repo_id}. It assembles the full
// site from the persisted outline and the cached pages; sections without a
// cached page are generated on the way through.
func (h *Handler) GetWikiHTML(w http.ResponseWriter, r *http.Request) {
	repoID := chi.URLParam(r, "repo_id")
	logger.Info("GET /api/wiki_html repo_id=%s", repoID)

	outline, err := h.wiki.Outline(repoID)
	if err != nil {
		h.writeError(w, "wiki html", err)
		return
	}
	pages := make([]domain.WikiPage, 0, len(outline))
	for _, section := range outline {
		page, err := h.wiki.GeneratePage(r.Context(), repoID, section)
		if err != nil {
			h.writeError(w, "wiki html", err)
			return
		}
		pages = append(pages, page)
	}
	html, err := wikihtml.BuildSite(repoID, pages)
	if err != nil {
		h.writeError(w, "wiki html", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(html)); err != nil {
		logger.Warn("write html response failed: %v", err)
	}
}

// Ask handles POST /api/ask.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if !decode(w, r, &req) {
		return
	}
	logger.Info("POST /api/ask repo_id=%s", req.RepoID)

	answer, sources, err := h.ask.Ask(r.Context(), req.RepoID, req.Question, req.History)
	if err != nil {
		h.writeError(w, "ask", err)
		return
	}
	if sources == nil {
		sources = []string{}
	}
	writeJSON(w, http.StatusOK, AskResponse{Answer: answer, Sources: sources})
}

// DeepResearch handles POST /api/deep_research.
func (h *Handler) DeepResearch(w http.ResponseWriter, r *http.Request) {
	var req DeepResearchRequest
	if !decode(w, r, &req) {
		return
	}
	iterations := req.MaxIterations
	if iterations == 0 {
		iterations = defaultResearchIterations
	}
	logger.Info("POST /api/deep_research repo_id=%s iterations=%d", req.RepoID, iterations)

	result, err := h.research.Run(r.Context(), req.RepoID, req.Question, iterations)
	if err != nil {
		h.writeError(w, "deep research", err)
		return
	}
	writeJSON(w, http.StatusOK, DeepResearchResponse{
		FinalAnswer: result.FinalAnswer,
		Iterations:  result.Iterations,
	})
}

// writeError maps domain errors to HTTP statuses. Domain failures keep
// their original message for diagnosis; only errors outside the domain
// taxonomy are reported as an opaque 500.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrIndexNotFound),
		errors.Is(err, domain.ErrSectionNotFound):
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
	case errors.Is(err, domain.ErrEmptyCorpus),
		errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
	case errors.Is(err, domain.ErrEmbeddingFailure),
		errors.Is(err, domain.ErrChatFailure):
		// The upstream model endpoint failed, not this service.
		logger.Warn("%s failed: %v", op, err)
		writeJSON(w, http.StatusBadGateway, errorBody(err.Error()))
	case errors.Is(err, domain.ErrOutlineParse),
		errors.Is(err, domain.ErrEmptyEmbeddings):
		logger.Warn("%s failed: %v", op, err)
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
	default:
		logger.Warn("%s failed: %v", op, err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}
