package httpapi

import (
	"github.com/go-chi/chi/v5"

	"github.com/orion-labs/orionwiki/internal/core/ports/driving"
)

// NewRouter creates a chi router with all API routes mounted under /api.
func NewRouter(ask driving.AskService, research driving.ResearchService, wiki driving.WikiService) chi.Router {
	h := NewHandler(ask, research, wiki)

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(CORSMiddleware)

	r.Route("/api", func(r chi.Router) {
		// Wiki generation.
		r.Post("/generate", h.GenerateWiki)
		r.Post("/generate_ephemeral", h.GenerateWikiEphemeral)

		// Wiki reads.
		r.Post("/wiki_page", h.GetWikiPage)
		r.Get("/wiki_html/{repo_id}", h.GetWikiHTML)

		// Retrieval-augmented question answering.
		r.Post("/ask", h.Ask)
		r.Post("/deep_research", h.DeepResearch)
	})

	return r
}
