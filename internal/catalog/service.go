// Package catalog wires discovery, metadata collection and the store into
// the operations the commands expose.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bylickilabs/GithubRepoCatalog/internal/discovery"
	"github.com/bylickilabs/GithubRepoCatalog/internal/gitmeta"
	"github.com/bylickilabs/GithubRepoCatalog/internal/model"
	"github.com/bylickilabs/GithubRepoCatalog/internal/store"
	"github.com/google/uuid"
)

// Collector gathers one repository's catalog record.
type Collector interface {
	Collect(ctx context.Context, path string) (model.Repository, error)
}

// Service runs the catalog operations against a store.
type Service struct {
	Store     store.Store
	Collector Collector
}

// NewService returns a Service over st with the default metadata collector.
func NewService(st store.Store) *Service {
	return &Service{Store: st, Collector: gitmeta.NewCollector()}
}

// ScanResult summarizes one scan pass.
type ScanResult struct {
	// ScanID tags the log lines of this pass
	ScanID string `json:"scan_id"`

	// Root is the directory the scan walked
	Root string `json:"root"`

	// Found counts the repositories discovered under Root
	Found int `json:"found"`

	// Stored counts the records written to the catalog
	Stored int `json:"stored"`

	// Skipped counts repositories dropped after collect or store failures
	Skipped int `json:"skipped"`

	// Elapsed is the wall time of the whole pass
	Elapsed time.Duration `json:"elapsed"`

	// Repos holds the collected records in discovery order
	Repos []model.Repository `json:"repos"`
}

// Scan walks root for Git repositories and upserts each one into the
// store. A failed collect or upsert drops that repository and the scan
// continues. With dryRun set the store is never written.
func (s *Service) Scan(ctx context.Context, root string, dryRun bool) (ScanResult, error) {
	start := time.Now()
	res := ScanResult{ScanID: uuid.New().String(), Root: root, Repos: []model.Repository{}}

	paths, err := discovery.Discover(root)
	if err != nil {
		return res, err
	}
	res.Found = len(paths)

	slog.Info("scan started", "scan_id", res.ScanID, "root", root, "found", res.Found, "dry_run", dryRun)

	for _, path := range paths {
		repo, err := s.Collector.Collect(ctx, path)
		if err != nil {
			slog.Warn("skipping repository", "scan_id", res.ScanID, "path", path, "error", err)
			res.Skipped++
			continue
		}

		if !dryRun {
			if err := s.Store.Upsert(repo); err != nil {
				slog.Warn("failed to store repository", "scan_id", res.ScanID, "path", path, "error", err)
				res.Skipped++
				continue
			}
			res.Stored++
		}

		res.Repos = append(res.Repos, repo)
	}

	res.Elapsed = time.Since(start)
	slog.Info("scan finished", "scan_id", res.ScanID, "found", res.Found,
		"stored", res.Stored, "skipped", res.Skipped, "elapsed", res.Elapsed)

	return res, nil
}

// List returns every cataloged repository in catalog order.
func (s *Service) List() ([]model.Repository, error) {
	return s.Store.ListAll()
}

// Search returns the repositories whose name or path contains query.
func (s *Service) Search(query string) ([]model.Repository, error) {
	return s.Store.Search(query)
}

// Resolve turns a repo argument into a catalog record. An existing
// directory wins and is enriched from the catalog when known there;
// otherwise the argument must name exactly one cataloged repository.
func (s *Service) Resolve(arg string) (model.Repository, error) {
	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return model.Repository{}, fmt.Errorf("failed to resolve path: %w", err)
		}

		repo, err := s.Store.GetByPath(abs)
		if err == nil {
			return repo, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return model.Repository{}, err
		}
		return model.Repository{Name: filepath.Base(abs), Path: abs}, nil
	}

	matches, err := s.Store.FindByName(arg)
	if err != nil {
		return model.Repository{}, err
	}

	switch len(matches) {
	case 0:
		return model.Repository{}, fmt.Errorf("no repository named %q in the catalog", arg)
	case 1:
		return matches[0], nil
	default:
		paths := make([]string, 0, len(matches))
		for _, m := range matches {
			paths = append(paths, m.Path)
		}
		return model.Repository{}, fmt.Errorf("name %q is ambiguous, matches: %s", arg, strings.Join(paths, ", "))
	}
}
