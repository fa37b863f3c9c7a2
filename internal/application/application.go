package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "repocat"

	// AppDisplayName is the human-facing product name
	AppDisplayName = "GitHub Repo Catalog & Archiver"

	// AppVersion is the released application version
	AppVersion = "1.1.0"

	// ProjectURL points at the project home
	ProjectURL = "https://github.com/bylickilabs"

	// DBFileName is the default sqlite catalog file inside the app directory
	DBFileName = "repos.db"

	// BoltFileName is the default bolt catalog file inside the app directory
	BoltFileName = "repos.bolt.db"

	// StartupErrorFileName receives fatal startup errors before the process exits
	StartupErrorFileName = "startup_error.log"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the repocat configuration directory path.
// Linux: ~/.config/repocat (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\repocat (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, errDir
}

// EnsureApplicationDirectory returns the configuration directory, creating it
// if it does not exist yet.
func EnsureApplicationDirectory() (string, error) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create app directory: %w", err)
	}

	return dir, nil
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		// Windows: use AppData\Local (via UserCacheDir)
		baseDir, err = os.UserCacheDir()
	default:
		// Linux/others: use ~/.config (via UserConfigDir)
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
	}

	appDir = filepath.Join(baseDir, AppName)
}
