// Package gitmeta extracts catalog metadata (size, modification time, remote
// URL) from repository working trees.
package gitmeta

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bylickilabs/GithubRepoCatalog/internal/model"
)

// Collector builds catalog records for discovered repositories.
type Collector struct {
	// Resolver performs origin remote URL lookups
	Resolver *Resolver
}

// NewCollector returns a Collector with the default remote resolver.
func NewCollector() *Collector {
	return &Collector{Resolver: NewResolver()}
}

// Collect builds the catalog record for the repository at path. The returned
// record carries no ID; the store assigns one. A stat failure on the root
// directory is the only error.
func (c *Collector) Collect(ctx context.Context, path string) (model.Repository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return model.Repository{}, fmt.Errorf("failed to stat repository: %w", err)
	}

	return model.Repository{
		Name:      filepath.Base(path),
		Path:      path,
		SizeBytes: DirSizeBytes(path),
		Mtime:     info.ModTime().Unix(),
		RemoteURL: c.Resolver.RemoteURL(ctx, path),
	}, nil
}

// DirSizeBytes sums the sizes of regular files under path. Every .git
// subtree is pruned from the walk, so repository history never counts toward
// the working tree size. Unreadable entries contribute nothing.
func DirSizeBytes(path string) int64 {
	var total int64

	_ = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Continue walking
		}

		if d.IsDir() {
			if d.Name() == ".git" && p != path {
				return fs.SkipDir
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return nil
		}

		total += fi.Size()

		return nil
	})

	return total
}
