// Package repofs ingests a source-code repository from the local
// filesystem: it walks the tree, filters eligible files and produces the
// document set the indexing pipeline consumes.
package repofs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/orion-labs/orionwiki/internal/core/domain"
	"github.com/orion-labs/orionwiki/internal/logger"
)

// IncludedExtensions lists the file extensions read during ingestion.
var IncludedExtensions = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".tsx": true, ".java": true,
	".kt": true, ".go": true, ".cs": true, ".cpp": true, ".c": true,
	".rs": true, ".php": true, ".rb": true, ".md": true, ".txt": true,
	".json": true, ".yml": true, ".yaml": true,
}

// ExcludedDirs lists directory names skipped entirely during the walk.
var ExcludedDirs = map[string]bool{
	".git": true, ".github": true, "node_modules": true, "dist": true,
	"build": true, "__pycache__": true, ".venv": true, ".idea": true,
	".vscode": true,
}

// maxTreeEntries caps the file-tree summary fed into the outline prompt.
const maxTreeEntries = 200

// ListFiles returns the relative paths of all eligible files under
// repoPath, sorted for deterministic document ids.
func ListFiles(repoPath string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(repoPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if ExcludedDirs[d.Name()] && path != repoPath {
				return filepath.SkipDir
			}
			return nil
		}
		if !IncludedExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		rel, err := filepath.Rel(repoPath, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk repository: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// LoadDocuments reads every eligible file under repoPath into a document.
// File contents are decoded permissively: invalid UTF-8 sequences are
// dropped, never fatal. Unreadable files are skipped with a warning.
func LoadDocuments(repoPath string) ([]domain.Document, error) {
	files, err := ListFiles(repoPath)
	if err != nil {
		return nil, err
	}

	docs := make([]domain.Document, 0, len(files))
	for _, rel := range files {
		data, err := os.ReadFile(filepath.Join(repoPath, filepath.FromSlash(rel)))
		if err != nil {
			logger.Warn("skipping unreadable file %s: %v", rel, err)
			continue
		}
		docs = append(docs, domain.Document{
			ID:   fmt.Sprintf("doc_%d", len(docs)),
			Path: rel,
			Text: strings.ToValidUTF8(string(data), ""),
		})
	}
	return docs, nil
}

// FileTreeSummary renders a truncated listing of eligible files for use
// inside the outline prompt.
func FileTreeSummary(repoPath string) (string, error) {
	files, err := ListFiles(repoPath)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(files)+1)
	for i, f := range files {
		if i >= maxTreeEntries {
			lines = append(lines, "... (truncated)")
			break
		}
		lines = append(lines, f)
	}
	return strings.Join(lines, "\n"), nil
}

// NormalizeRepoID derives a repository identifier from a git URL or a
// local path: "https://github.com/owner/repo(.git)" becomes "owner_repo",
// a bare directory becomes its base name.
func NormalizeRepoID(ref string) string {
	ref = strings.TrimSuffix(strings.TrimRight(ref, "/"), ".git")
	parts := strings.Split(ref, "/")
	if len(parts) >= 2 && parts[len(parts)-2] != "" && strings.Contains(ref, "://") {
		return parts[len(parts)-2] + "_" + parts[len(parts)-1]
	}
	return filepath.Base(ref)
}
