// Package wikifs persists wiki artifacts and index files under a data
// directory on the local filesystem.
//
// Layout:
//
//	<dataDir>/indexes/<repo>.index      binary vector file
//	<dataDir>/indexes/<repo>.meta.json  chunk metadata
//	<dataDir>/wiki/<repo>_outline.json  outline
//	<dataDir>/wiki/<repo>_<section>.md  cached pages
package wikifs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/orion-labs/orionwiki/internal/core/domain"
	"github.com/orion-labs/orionwiki/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.WikiStore = (*Store)(nil)

// Store is a file-based WikiStore. Pages are cached permanently; the only
// invalidation mechanism is deleting the files.
type Store struct {
	mu      sync.Mutex
	dataDir string
}

// NewStore creates a store rooted at dataDir. Directories are created
// lazily on first write.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("wikifs: data directory is required")
	}
	return &Store{dataDir: dataDir}, nil
}

// DataDir returns the root data directory.
func (s *Store) DataDir() string {
	return s.dataDir
}

// IndexPaths returns the co-located vector and metadata file paths for
// the repository.
func (s *Store) IndexPaths(repoID string) (string, string) {
	base := filepath.Join(s.dataDir, "indexes", sanitize(repoID))
	return base + ".index", base + ".meta.json"
}

// SaveOutline writes the outline as pretty-printed JSON.
func (s *Store) SaveOutline(repoID string, outline domain.Outline) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(outline, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal outline: %w", err)
	}
	path := s.outlinePath(repoID)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create wiki directory: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// LoadOutline reads the outline. Returns domain.ErrIndexNotFound when no
// outline has been saved for the repository.
func (s *Store) LoadOutline(repoID string) (domain.Outline, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.outlinePath(repoID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: no outline for %s", domain.ErrIndexNotFound, repoID)
		}
		return nil, fmt.Errorf("read outline: %w", err)
	}

	var outline domain.Outline
	if err := json.Unmarshal(data, &outline); err != nil {
		return nil, fmt.Errorf("parse outline for %s: %w", repoID, err)
	}
	return outline, nil
}

// GetPage returns the cached markdown for (repoID, sectionID). The bool
// reports whether the cache held an entry.
func (s *Store) GetPage(repoID, sectionID string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.pagePath(repoID, sectionID))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read page %s/%s: %w", repoID, sectionID, err)
	}
	return string(data), true, nil
}

// PutPage caches the markdown for (repoID, sectionID).
func (s *Store) PutPage(repoID, sectionID, markdown string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.pagePath(repoID, sectionID)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create wiki directory: %w", err)
	}
	return os.WriteFile(path, []byte(markdown), 0600)
}

func (s *Store) outlinePath(repoID string) string {
	return filepath.Join(s.dataDir, "wiki", sanitize(repoID)+"_outline.json")
}

func (s *Store) pagePath(repoID, sectionID string) string {
	return filepath.Join(s.dataDir, "wiki", sanitize(repoID)+"_"+sanitize(sectionID)+".md")
}

// sanitize keeps repository and section identifiers from escaping the
// data directory or colliding with path syntax.
func sanitize(id string) string {
	out := make([]rune, 0, len(id))
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
