// Package discovery locates Git repositories beneath a root directory.
package discovery

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Discover walks root and returns every directory holding a .git directory,
// the root itself included. The walk does not prune into matched
// repositories, so nested checkouts are reported as their own entries.
// Results are absolute paths, deduplicated, in first-encounter order.
// Unreadable directories are skipped and do not fail the walk.
func Discover(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("directory not found: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", absRoot)
	}

	seen := make(map[string]bool)
	repos := make([]string, 0)

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Debug("skipping unreadable path", "path", path, "error", err)

			return nil // Continue walking
		}

		if !d.IsDir() {
			return nil
		}

		if isGitRepo(path) && !seen[path] {
			seen[path] = true
			repos = append(repos, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning directories: %w", err)
	}

	return repos, nil
}

// isGitRepo reports whether path contains a .git directory. A .git file
// (worktree or submodule pointer) does not count.
func isGitRepo(path string) bool {
	info, err := os.Stat(filepath.Join(path, ".git"))

	return err == nil && info.IsDir()
}
