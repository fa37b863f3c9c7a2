package model

// Config holds the persisted application settings.
type Config struct {
	// DefaultRoot is the directory scanned when `repocat scan` is called
	// without an argument
	DefaultRoot string `json:"default_root"`

	// OpenCommand overrides the platform file manager command used by
	// `repocat open` (xdg-open, open, explorer)
	OpenCommand string `json:"open_command"`
}

// DefaultConfig returns a Config with zero-value defaults; an unset field
// means "not configured" rather than a baked-in guess.
func DefaultConfig() Config {
	return Config{}
}
