// Package services implements the application core: the embedding
// batcher, retrieval and context assembly, the index build pipeline, the
// deep-research orchestrator and the wiki artifact manager. Services
// depend only on domain types and the driven ports; adapters are
// injected at construction.
package services
