package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bylickilabs/GithubRepoCatalog/internal/model"
	"github.com/bylickilabs/GithubRepoCatalog/internal/store"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	st, err := store.Open(store.Options{
		Backend: store.BackendSQLite,
		Path:    filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, st.Close()) })

	return NewService(st)
}

func mkRepo(t *testing.T, root string, parts ...string) string {
	t.Helper()
	dir := filepath.Join(append([]string{root}, parts...)...)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))
	return dir
}

func writeRemote(t *testing.T, repo, url string) {
	t.Helper()
	cfg := fmt.Sprintf("[remote \"origin\"]\n\turl = %s\n", url)
	require.NoError(t, os.WriteFile(filepath.Join(repo, ".git", "config"), []byte(cfg), 0o644))
}

func TestScan_CatalogsDiscoveredRepos(t *testing.T) {
	root := t.TempDir()
	alpha := mkRepo(t, root, "alpha")
	writeRemote(t, alpha, "git@github.com:u/alpha.git")
	require.NoError(t, os.WriteFile(filepath.Join(alpha, "main.go"), []byte("package main\n"), 0o644))
	mkRepo(t, root, "nested", "beta")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "plain"), 0o755))

	svc := newTestService(t)

	res, err := svc.Scan(context.Background(), root, false)
	require.NoError(t, err)
	require.Equal(t, 2, res.Found)
	require.Equal(t, 2, res.Stored)
	require.Zero(t, res.Skipped)
	require.NotEmpty(t, res.ScanID)
	require.Len(t, res.Repos, 2)

	all, err := svc.List()
	require.NoError(t, err)
	require.Len(t, all, 2)

	byPath := make(map[string]model.Repository, len(all))
	for _, r := range all {
		byPath[r.Path] = r
	}
	require.Equal(t, "alpha", byPath[alpha].Name)
	require.Equal(t, "git@github.com:u/alpha.git", byPath[alpha].RemoteURL)
	require.Equal(t, int64(len("package main\n")), byPath[alpha].SizeBytes)
}

func TestScan_DryRunWritesNothing(t *testing.T) {
	root := t.TempDir()
	mkRepo(t, root, "alpha")
	mkRepo(t, root, "beta")

	svc := newTestService(t)

	res, err := svc.Scan(context.Background(), root, true)
	require.NoError(t, err)
	require.Equal(t, 2, res.Found)
	require.Zero(t, res.Stored)
	require.Len(t, res.Repos, 2)

	all, err := svc.List()
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestScan_RescanKeepsIDs(t *testing.T) {
	root := t.TempDir()
	mkRepo(t, root, "alpha")
	mkRepo(t, root, "beta")

	svc := newTestService(t)

	_, err := svc.Scan(context.Background(), root, false)
	require.NoError(t, err)

	before, err := svc.List()
	require.NoError(t, err)

	_, err = svc.Scan(context.Background(), root, false)
	require.NoError(t, err)

	after, err := svc.List()
	require.NoError(t, err)
	require.Len(t, after, len(before))

	ids := make(map[string]int64, len(before))
	for _, r := range before {
		ids[r.Path] = r.ID
	}
	for _, r := range after {
		require.Equal(t, ids[r.Path], r.ID, "id changed for %s", r.Path)
	}
}

type failingCollector struct {
	inner Collector
	fail  string
}

func (c failingCollector) Collect(ctx context.Context, path string) (model.Repository, error) {
	if filepath.Base(path) == c.fail {
		return model.Repository{}, errors.New("metadata collection broke")
	}
	return c.inner.Collect(ctx, path)
}

func TestScan_SkipsFailedCollect(t *testing.T) {
	root := t.TempDir()
	mkRepo(t, root, "alpha")
	mkRepo(t, root, "beta")

	svc := newTestService(t)
	svc.Collector = failingCollector{inner: svc.Collector, fail: "beta"}

	res, err := svc.Scan(context.Background(), root, false)
	require.NoError(t, err)
	require.Equal(t, 2, res.Found)
	require.Equal(t, 1, res.Stored)
	require.Equal(t, 1, res.Skipped)

	all, err := svc.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "alpha", all[0].Name)
}

func TestScan_MissingRoot(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Scan(context.Background(), filepath.Join(t.TempDir(), "nope"), false)
	require.Error(t, err)
}

func TestResolve(t *testing.T) {
	svc := newTestService(t)

	tmp := t.TempDir()
	cataloged := mkRepo(t, tmp, "cataloged")
	uncataloged := mkRepo(t, tmp, "uncataloged")

	require.NoError(t, svc.Store.Upsert(model.Repository{
		Name: "cataloged", Path: cataloged, Mtime: 100,
		RemoteURL: "https://github.com/u/cataloged.git",
	}))
	require.NoError(t, svc.Store.Upsert(model.Repository{Name: "solo", Path: "/data/solo", Mtime: 200}))
	require.NoError(t, svc.Store.Upsert(model.Repository{Name: "dup", Path: "/a/dup", Mtime: 300}))
	require.NoError(t, svc.Store.Upsert(model.Repository{Name: "dup", Path: "/b/dup", Mtime: 400}))

	t.Run("existing dir enriched from catalog", func(t *testing.T) {
		got, err := svc.Resolve(cataloged)
		require.NoError(t, err)
		require.Equal(t, cataloged, got.Path)
		require.Equal(t, "https://github.com/u/cataloged.git", got.RemoteURL)
		require.NotZero(t, got.ID)
	})

	t.Run("existing dir unknown to catalog", func(t *testing.T) {
		got, err := svc.Resolve(uncataloged)
		require.NoError(t, err)
		require.Equal(t, uncataloged, got.Path)
		require.Equal(t, "uncataloged", got.Name)
		require.Zero(t, got.ID)
		require.Empty(t, got.RemoteURL)
	})

	t.Run("unique name", func(t *testing.T) {
		got, err := svc.Resolve("solo")
		require.NoError(t, err)
		require.Equal(t, "/data/solo", got.Path)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := svc.Resolve("ghost")
		require.ErrorContains(t, err, `no repository named "ghost"`)
	})

	t.Run("ambiguous name lists candidates", func(t *testing.T) {
		_, err := svc.Resolve("dup")
		require.ErrorContains(t, err, "/a/dup")
		require.ErrorContains(t, err, "/b/dup")
	})
}
