package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
}

func readEntries(t *testing.T, zipPath string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("Failed to open archive: %v", err)
	}
	defer func() { _ = zr.Close() }()

	entries := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("Failed to open entry %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			t.Fatalf("Failed to read entry %s: %v", f.Name, err)
		}
		entries[f.Name] = string(data)
	}
	return entries
}

func TestCreateArchive(t *testing.T) {
	tempDir := t.TempDir()
	repoDir := filepath.Join(tempDir, "test-repo")
	zipPath := filepath.Join(tempDir, "test-repo.zip")

	files := map[string]string{
		"README.md":   "# Test Repository\n",
		"src/main.go": "package main\n\nfunc main() {}\n",
		"src/util.go": "package main\n\nfunc util() {}\n",
		".gitignore":  "*.log\n",
		".git/config": "[core]\n\trepositoryformatversion = 0\n",
		".git/HEAD":   "ref: refs/heads/main\n",
	}
	writeTree(t, repoDir, files)

	sum, err := Create(repoDir, zipPath, false)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("entries", func(t *testing.T) {
		entries := readEntries(t, zipPath)

		want := map[string]string{
			"README.md":   files["README.md"],
			"src/main.go": files["src/main.go"],
			"src/util.go": files["src/util.go"],
			".gitignore":  files[".gitignore"],
		}
		if len(entries) != len(want) {
			t.Errorf("entry count = %d, want %d (%v)", len(entries), len(want), entries)
		}
		for name, content := range want {
			if entries[name] != content {
				t.Errorf("entry %s = %q, want %q", name, entries[name], content)
			}
		}
		for name := range entries {
			if name == ".git/config" || name == ".git/HEAD" {
				t.Errorf(".git entry %s should not be archived", name)
			}
		}
	})

	t.Run("summary", func(t *testing.T) {
		if sum.Written != 4 {
			t.Errorf("Written = %d, want 4", sum.Written)
		}
		if sum.Skipped != 0 {
			t.Errorf("Skipped = %d, want 0", sum.Skipped)
		}

		var wantBytes int64
		for _, name := range []string{"README.md", "src/main.go", "src/util.go", ".gitignore"} {
			wantBytes += int64(len(files[name]))
		}
		if sum.BytesRead != wantBytes {
			t.Errorf("BytesRead = %d, want %d", sum.BytesRead, wantBytes)
		}

		fi, err := os.Stat(zipPath)
		if err != nil {
			t.Fatalf("Failed to stat archive: %v", err)
		}
		if sum.OutputSize != fi.Size() {
			t.Errorf("OutputSize = %d, want %d", sum.OutputSize, fi.Size())
		}
	})

	t.Run("deflate method", func(t *testing.T) {
		zr, err := zip.OpenReader(zipPath)
		if err != nil {
			t.Fatalf("Failed to open archive: %v", err)
		}
		defer func() { _ = zr.Close() }()

		for _, f := range zr.File {
			if f.Method != zip.Deflate {
				t.Errorf("entry %s method = %d, want deflate", f.Name, f.Method)
			}
		}
	})
}

func TestCreateArchiveIncludeGit(t *testing.T) {
	tempDir := t.TempDir()
	repoDir := filepath.Join(tempDir, "repo")
	zipPath := filepath.Join(tempDir, "repo.zip")

	writeTree(t, repoDir, map[string]string{
		"file.txt":    "content",
		".git/config": "[core]\n",
	})

	sum, err := Create(repoDir, zipPath, true)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if sum.Written != 2 {
		t.Errorf("Written = %d, want 2", sum.Written)
	}

	entries := readEntries(t, zipPath)
	if _, ok := entries[".git/config"]; !ok {
		t.Error(".git/config should be archived when includeGit is set")
	}
}

func TestCreateArchivePrunesNestedGit(t *testing.T) {
	tempDir := t.TempDir()
	repoDir := filepath.Join(tempDir, "repo")
	zipPath := filepath.Join(tempDir, "repo.zip")

	writeTree(t, repoDir, map[string]string{
		"vendored/app.txt":  "app",
		"vendored/.git/HEAD": "ref: refs/heads/main\n",
		".git/HEAD":         "ref: refs/heads/main\n",
	})

	_, err := Create(repoDir, zipPath, false)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	entries := readEntries(t, zipPath)
	if _, ok := entries["vendored/app.txt"]; !ok {
		t.Error("vendored/app.txt should be archived")
	}
	for name := range entries {
		if name == "vendored/.git/HEAD" || name == ".git/HEAD" {
			t.Errorf("nested .git entry %s should not be archived", name)
		}
	}
}

func TestCreateArchiveEmptyTree(t *testing.T) {
	tempDir := t.TempDir()
	repoDir := filepath.Join(tempDir, "repo")
	zipPath := filepath.Join(tempDir, "repo.zip")

	if err := os.MkdirAll(filepath.Join(repoDir, "empty", "deeper"), 0755); err != nil {
		t.Fatalf("Failed to create dirs: %v", err)
	}

	sum, err := Create(repoDir, zipPath, false)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if sum.Written != 0 {
		t.Errorf("Written = %d, want 0", sum.Written)
	}

	entries := readEntries(t, zipPath)
	if len(entries) != 0 {
		t.Errorf("entries = %v, want none", entries)
	}
}

func TestCreateArchiveInvalidSource(t *testing.T) {
	tempDir := t.TempDir()
	zipPath := filepath.Join(tempDir, "out.zip")

	filePath := filepath.Join(tempDir, "not-a-dir.txt")
	if err := os.WriteFile(filePath, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	tests := []struct {
		name string
		src  string
	}{
		{"missing", filepath.Join(tempDir, "nonexistent")},
		{"regular file", filePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Create(tt.src, zipPath, false); err == nil {
				t.Error("Create() expected error")
			}
		})
	}
}

func TestCreateArchiveOutputInsideSource(t *testing.T) {
	tempDir := t.TempDir()
	repoDir := filepath.Join(tempDir, "repo")
	zipPath := filepath.Join(repoDir, "repo.zip")

	writeTree(t, repoDir, map[string]string{"file.txt": "content"})

	sum, err := Create(repoDir, zipPath, false)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if sum.Written != 1 {
		t.Errorf("Written = %d, want 1", sum.Written)
	}

	entries := readEntries(t, zipPath)
	if _, ok := entries["repo.zip"]; ok {
		t.Error("archive should not contain itself")
	}
}

func TestCreateArchiveIgnoresSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	tempDir := t.TempDir()
	repoDir := filepath.Join(tempDir, "repo")
	zipPath := filepath.Join(tempDir, "repo.zip")

	writeTree(t, repoDir, map[string]string{"real.txt": "content"})
	if err := os.Symlink(filepath.Join(repoDir, "real.txt"), filepath.Join(repoDir, "link.txt")); err != nil {
		t.Fatalf("Failed to create symlink: %v", err)
	}

	sum, err := Create(repoDir, zipPath, false)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if sum.Written != 1 {
		t.Errorf("Written = %d, want 1", sum.Written)
	}
	if sum.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", sum.Skipped)
	}

	entries := readEntries(t, zipPath)
	if _, ok := entries["link.txt"]; ok {
		t.Error("symlink should not become an entry")
	}
}
