package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteStartupError(t *testing.T) {
	dir := t.TempDir()

	WriteStartupError(dir, "startup_error.log", errors.New("store open failed"))
	WriteStartupError(dir, "startup_error.log", errors.New("second failure"))

	data, err := os.ReadFile(filepath.Join(dir, "startup_error.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "store open failed") {
		t.Errorf("log missing first error: %q", content)
	}

	if !strings.Contains(content, "second failure") {
		t.Errorf("log missing appended error: %q", content)
	}

	if got := strings.Count(content, "\n"); got != 2 {
		t.Errorf("line count = %d, want 2", got)
	}
}

func TestWriteStartupError_NilError(t *testing.T) {
	dir := t.TempDir()

	WriteStartupError(dir, "startup_error.log", nil)

	if _, err := os.Stat(filepath.Join(dir, "startup_error.log")); !os.IsNotExist(err) {
		t.Error("nil error should not create the log file")
	}
}
