// Package giturl normalizes git remote urls into addresses a browser
// can open.
package giturl

import (
	"fmt"
	"net/url"
	"strings"
)

// IsURL checks if the given string looks like a git remote url.
func IsURL(u string) bool {
	return strings.HasPrefix(u, "git@") || isSupportedProtocol(u)
}

func isSupportedProtocol(u string) bool {
	return strings.HasPrefix(u, "ssh:") ||
		strings.HasPrefix(u, "git+ssh:") ||
		strings.HasPrefix(u, "git:") ||
		strings.HasPrefix(u, "http:") ||
		strings.HasPrefix(u, "git+https:") ||
		strings.HasPrefix(u, "https:")
}

func isPossibleProtocol(u string) bool {
	return isSupportedProtocol(u) ||
		strings.HasPrefix(u, "ftp:") ||
		strings.HasPrefix(u, "ftps:") ||
		strings.HasPrefix(u, "file:")
}

// Parse normalizes git remote urls, including scp-like syntax
// (git@github.com:owner/repo).
func Parse(rawURL string) (*url.URL, error) {
	if !isPossibleProtocol(rawURL) &&
		strings.ContainsRune(rawURL, ':') &&
		// not a Windows path
		!strings.ContainsRune(rawURL, '\\') {
		// support scp-like syntax for ssh protocol
		rawURL = "ssh://" + strings.Replace(rawURL, ":", "/", 1)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	switch u.Scheme {
	case "git+https":
		u.Scheme = "https"
	case "git+ssh":
		u.Scheme = "ssh"
	}

	if u.Scheme != "ssh" {
		return u, nil
	}

	if strings.HasPrefix(u.Path, "//") {
		u.Path = strings.TrimPrefix(u.Path, "/")
	}

	u.Host = strings.TrimSuffix(u.Host, ":"+u.Port())

	return u, nil
}

// BrowseURL turns a git remote into the https address a browser can open.
// ssh, git and scp-like remotes are rewritten to https on the same host;
// a trailing .git is dropped. Remotes without a web counterpart (local
// paths, file urls) are rejected.
func BrowseURL(remote string) (string, error) {
	u, err := Parse(remote)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "http", "https":
	case "ssh", "git":
		u.Scheme = "https"
		u.User = nil
	default:
		return "", fmt.Errorf("cannot open %q in a browser", remote)
	}

	u.Path = strings.TrimSuffix(u.Path, ".git")
	u.RawQuery = ""
	u.Fragment = ""

	return u.String(), nil
}
