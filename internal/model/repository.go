package model

import (
	"fmt"
	"time"
)

// MtimeLayout is the display layout for repository modification times.
const MtimeLayout = "2006-01-02 15:04"

// Repository represents one cataloged Git repository.
type Repository struct {
	// ID is the catalog primary key; it reflects insertion order and is
	// preserved across upserts of the same path
	ID int64 `json:"id"`

	// Name is the repository directory base name
	Name string `json:"name"`

	// Path is the absolute filesystem path; unique within the catalog
	Path string `json:"path"`

	// SizeBytes is the working tree size with the .git subtree excluded
	SizeBytes int64 `json:"size_bytes"`

	// Mtime is the root directory modification time in Unix seconds
	Mtime int64 `json:"mtime"`

	// RemoteURL is the origin remote URL; empty when none could be resolved
	RemoteURL string `json:"remote_url,omitempty"`
}

// SizeMB renders SizeBytes as mebibytes with two decimals, e.g. "12.40".
func (r Repository) SizeMB() string {
	return fmt.Sprintf("%.2f", float64(r.SizeBytes)/(1024*1024))
}

// Modified returns the root directory modification time.
func (r Repository) Modified() time.Time {
	return time.Unix(r.Mtime, 0)
}

// ModifiedString renders the modification time in the catalog display layout.
func (r Repository) ModifiedString() string {
	return r.Modified().Format(MtimeLayout)
}

// HasRemote reports whether an origin remote URL was resolved.
func (r Repository) HasRemote() bool {
	return r.RemoteURL != ""
}
