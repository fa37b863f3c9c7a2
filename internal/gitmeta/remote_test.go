package gitmeta

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeGit writes an executable script standing in for the git binary.
func fakeGit(t *testing.T, body string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake git script requires a POSIX shell")
	}

	script := filepath.Join(t.TempDir(), "fakegit")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"+body), 0o755))

	return script
}

func gitConfigRepo(t *testing.T, config string) string {
	t.Helper()

	repo := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))

	if config != "" {
		require.NoError(t, os.WriteFile(filepath.Join(repo, ".git", "config"), []byte(config), 0o644))
	}

	return repo
}

func TestResolver_ConfigWins(t *testing.T) {
	repo := gitConfigRepo(t, "[remote \"origin\"]\n\turl = git@github.com:user/repo.git\n")

	r := &Resolver{
		GitPath: fakeGit(t, "echo https://wrong.example/from-git.git\n"),
		Timeout: time.Second,
	}

	require.Equal(t, "git@github.com:user/repo.git", r.RemoteURL(context.Background(), repo))
}

func TestResolver_FallbackTrimsOutput(t *testing.T) {
	// No origin section in the config, so the git client answers. Its
	// trailing newline must not survive.
	repo := gitConfigRepo(t, "[core]\n\tbare = false\n")

	r := &Resolver{
		GitPath: fakeGit(t, "echo '  https://github.com/user/fallback.git  '\n"),
		Timeout: time.Second,
	}

	require.Equal(t, "https://github.com/user/fallback.git", r.RemoteURL(context.Background(), repo))
}

func TestResolver_FallbackNonZeroExit(t *testing.T) {
	repo := gitConfigRepo(t, "")

	r := &Resolver{
		GitPath: fakeGit(t, "echo 'fatal: not a git repository' >&2\nexit 128\n"),
		Timeout: time.Second,
	}

	require.Empty(t, r.RemoteURL(context.Background(), repo))
}

func TestResolver_FallbackMissingBinary(t *testing.T) {
	repo := gitConfigRepo(t, "")

	r := &Resolver{
		GitPath: filepath.Join(t.TempDir(), "no-such-git"),
		Timeout: time.Second,
	}

	require.Empty(t, r.RemoteURL(context.Background(), repo))
}

func TestResolver_FallbackTimeout(t *testing.T) {
	repo := gitConfigRepo(t, "")

	r := &Resolver{
		GitPath: fakeGit(t, "sleep 2\necho too-late\n"),
		Timeout: 100 * time.Millisecond,
	}

	require.Empty(t, r.RemoteURL(context.Background(), repo))
}

func TestRemoteFromConfig_MissingPieces(t *testing.T) {
	tests := []struct {
		name   string
		config string
	}{
		{"no config file", ""},
		{"no origin section", "[core]\n\tbare = false\n"},
		{"origin without url", "[remote \"origin\"]\n\tfetch = +refs/heads/*:refs/remotes/origin/*\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := gitConfigRepo(t, tt.config)
			require.Empty(t, remoteFromConfig(repo))
		})
	}
}
