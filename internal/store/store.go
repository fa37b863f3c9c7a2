package store

import (
	"errors"
	"fmt"

	"github.com/bylickilabs/GithubRepoCatalog/internal/model"
)

// ErrNotFound is returned by lookups when no record matches.
var ErrNotFound = errors.New("repository not found")

// Backend selects the storage engine.
type Backend string

const (
	// BackendSQLite is the default engine
	BackendSQLite Backend = "sqlite"

	// BackendBolt is the embedded key-value alternative
	BackendBolt Backend = "bolt"
)

// Options configures Open.
type Options struct {
	// Backend selects the engine; empty selects sqlite
	Backend Backend

	// Path is the database file location; its directory is created on demand
	Path string
}

// Store defines the catalog operations used by the app.
type Store interface {
	Ping() error

	// Upsert inserts repo keyed by its path, or updates name, size, mtime
	// and remote URL in place. The id of an existing record is preserved.
	Upsert(repo model.Repository) error

	// ListAll returns every record ordered by mtime descending, insertion
	// order breaking ties.
	ListAll() ([]model.Repository, error)

	// Search returns the records whose name or path contains query,
	// case-insensitively, in ListAll order. An empty query lists all.
	Search(query string) ([]model.Repository, error)

	// GetByPath returns the record stored under path, or ErrNotFound.
	GetByPath(path string) (model.Repository, error)

	// FindByName returns the records whose name equals name,
	// case-insensitively, in ListAll order.
	FindByName(name string) ([]model.Repository, error)

	GetConfig() (model.Config, error)
	SaveConfig(cfg model.Config) error

	Close() error
}

// Open opens the catalog store described by opts.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case BackendBolt:
		return newBoltStore(opts.Path)
	case BackendSQLite, "":
		return newSQLiteStore(opts.Path)
	default:
		return nil, fmt.Errorf("unknown store backend: %q", opts.Backend)
	}
}
