// Package archive writes plain zip snapshots of repository working trees.
package archive

import (
	"archive/zip"
	"compress/flate"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Summary reports what a Create call did.
type Summary struct {
	Written    int   // file entries written to the archive
	Skipped    int   // files dropped after read failures
	BytesRead  int64 // uncompressed bytes behind the written entries
	OutputSize int64 // size of the finished zip on disk
}

// Create archives the working tree under srcDir into a zip file at destZip,
// compressing every entry at the best deflate ratio. Entry names are
// slash-separated paths relative to srcDir. Any .git subtree is left out
// unless includeGit is set. Only regular files become entries; files that
// cannot be read are counted in Summary.Skipped and never abort the archive.
func Create(srcDir, destZip string, includeGit bool) (Summary, error) {
	var sum Summary

	info, err := os.Stat(srcDir)
	if err != nil {
		return sum, fmt.Errorf("failed to stat %s: %w", srcDir, err)
	}
	if !info.IsDir() {
		return sum, fmt.Errorf("%s is not a directory", srcDir)
	}

	absDest, err := filepath.Abs(destZip)
	if err != nil {
		return sum, fmt.Errorf("failed to resolve output path: %w", err)
	}

	out, err := os.Create(destZip)
	if err != nil {
		return sum, fmt.Errorf("failed to create output file: %w", err)
	}

	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestCompression)
	})

	walkErr := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			slog.Debug("skipping unreadable path", "path", path, "error", err)
			return nil
		}

		if d.IsDir() {
			if !includeGit && d.Name() == ".git" && path != srcDir {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		// The zip being written must not archive itself.
		if abs, absErr := filepath.Abs(path); absErr == nil && abs == absDest {
			return nil
		}

		name, relErr := filepath.Rel(srcDir, path)
		if relErr != nil {
			name = d.Name()
		}
		name = filepath.ToSlash(name)

		fi, err := d.Info()
		if err != nil {
			slog.Debug("skipping file", "path", path, "error", err)
			sum.Skipped++
			return nil
		}

		src, err := os.Open(path)
		if err != nil {
			slog.Debug("skipping file", "path", path, "error", err)
			sum.Skipped++
			return nil
		}
		defer func() { _ = src.Close() }()

		header, err := zip.FileInfoHeader(fi)
		if err != nil {
			sum.Skipped++
			return nil
		}
		header.Name = name
		header.Method = zip.Deflate

		w, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}

		n, err := io.Copy(w, src)
		if err != nil {
			// The truncated entry stays behind; later files are unaffected.
			slog.Debug("skipping file after read failure", "path", path, "error", err)
			sum.Skipped++
			return nil
		}

		sum.Written++
		sum.BytesRead += n
		return nil
	})
	if walkErr != nil {
		_ = zw.Close()
		_ = out.Close()
		return sum, fmt.Errorf("failed to archive %s: %w", srcDir, walkErr)
	}

	if err := zw.Close(); err != nil {
		_ = out.Close()
		return sum, fmt.Errorf("failed to close zip: %w", err)
	}
	if err := out.Close(); err != nil {
		return sum, fmt.Errorf("failed to close output file: %w", err)
	}

	fi, err := os.Stat(destZip)
	if err != nil {
		return sum, fmt.Errorf("failed to stat output file: %w", err)
	}
	sum.OutputSize = fi.Size()

	return sum, nil
}
