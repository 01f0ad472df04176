package driven

import "github.com/orion-labs/orionwiki/internal/core/domain"

// WikiStore persists the durable wiki artifacts per repository identifier:
// the outline and one markdown page per (repository, section-id) pair.
// A cached page is permanent until externally deleted; there is no expiry
// or invalidation mechanism.
type WikiStore interface {
	// SaveOutline writes the outline for the repository.
	SaveOutline(repoID string, outline domain.Outline) error

	// LoadOutline reads the outline for the repository.
	// Returns domain.ErrIndexNotFound when no outline has been saved.
	LoadOutline(repoID string) (domain.Outline, error)

	// GetPage returns the cached markdown for (repoID, sectionID).
	// The second return value reports whether the cache held an entry.
	GetPage(repoID, sectionID string) (string, bool, error)

	// PutPage caches the markdown for (repoID, sectionID).
	PutPage(repoID, sectionID, markdown string) error

	// IndexPaths returns the co-located vector and metadata file paths
	// for the repository's persisted index. The two artifacts must always
	// be written and loaded together.
	IndexPaths(repoID string) (vectorPath, metaPath string)
}
