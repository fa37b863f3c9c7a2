// Package model defines the data structures used throughout repocat.
//
// This package contains the core domain models that represent the
// application's data. These models are shared by the catalog store backends
// and the CLI rendering layer.
//
// # Repository
//
// The [Repository] struct represents one cataloged Git repository:
//
//	type Repository struct {
//	    ID        int64  // Catalog primary key (insertion order)
//	    Name      string // Directory base name
//	    Path      string // Absolute filesystem path (unique)
//	    SizeBytes int64  // Working tree size, .git excluded
//	    Mtime     int64  // Root directory mtime (Unix seconds)
//	    RemoteURL string // origin remote URL, "" when absent
//	}
//
// # Config
//
// The [Config] struct holds the persisted application settings:
//
//	type Config struct {
//	    DefaultRoot string // Scan root used when none is given
//	    OpenCommand string // Override for the file manager command
//	}
package model
