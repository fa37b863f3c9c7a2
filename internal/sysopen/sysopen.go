// Package sysopen hands filesystem paths to the desktop environment.
package sysopen

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open shows path in the system file manager. A non-empty command
// overrides the platform default and receives the path as its only
// argument. The handler is started, not waited for.
func Open(path, command string) error {
	name := command
	if name == "" {
		switch runtime.GOOS {
		case "windows":
			name = "explorer"
		case "darwin":
			name = "open"
		default:
			name = "xdg-open"
		}
	}

	cmd := exec.Command(name, path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", name, err)
	}
	return nil
}
