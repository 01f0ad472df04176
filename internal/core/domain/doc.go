// Package domain contains the core business entities for OrionWiki:
// ingested documents and their chunks, retrieval results, wiki outlines
// and pages, and the deep-research transcript. Types here have no
// dependencies on adapters or external services.
package domain
