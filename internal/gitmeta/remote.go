package gitmeta

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/ini.v1"
)

// remoteQueryTimeout bounds the external git fallback query.
const remoteQueryTimeout = 5 * time.Second

// Resolver resolves the origin remote URL of a repository. The primary
// source is the repository's .git/config; when that yields nothing the
// external git client is asked, bounded by Timeout.
type Resolver struct {
	// GitPath is the git executable used for the fallback query
	GitPath string

	// Timeout bounds the fallback query
	Timeout time.Duration
}

// NewResolver returns a Resolver using the git binary from PATH.
func NewResolver() *Resolver {
	return &Resolver{
		GitPath: "git",
		Timeout: remoteQueryTimeout,
	}
}

// RemoteURL returns the origin remote URL for the repository at path, or the
// empty string when neither the config file nor the git client can answer.
func (r *Resolver) RemoteURL(ctx context.Context, path string) string {
	if u := remoteFromConfig(path); u != "" {
		return u
	}

	return r.remoteFromGit(ctx, path)
}

// remoteFromConfig reads the url key of the [remote "origin"] section in
// .git/config. Any failure reads as "no answer".
func remoteFromConfig(path string) string {
	cfgPath := filepath.Join(path, ".git", "config")
	if _, err := os.Stat(cfgPath); err != nil {
		return ""
	}

	cfg, err := ini.Load(cfgPath)
	if err != nil {
		slog.Debug("unparseable git config", "path", cfgPath, "error", err)

		return ""
	}

	sec, err := cfg.GetSection(`remote "origin"`)
	if err != nil || !sec.HasKey("url") {
		return ""
	}

	return strings.TrimSpace(sec.Key("url").String())
}

// remoteFromGit asks the external git client. Non-zero exit, missing binary
// and timeout all read as "no answer".
func (r *Resolver) remoteFromGit(ctx context.Context, path string) string {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.GitPath, "-C", path, "remote", "get-url", "origin")

	output, err := cmd.Output()
	if err != nil {
		slog.Debug("git remote query failed", "path", path, "error", err)

		return ""
	}

	return strings.TrimSpace(string(output))
}
