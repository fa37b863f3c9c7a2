// Package preview picks the image file that best represents a repository,
// rating every image under the usual asset directories against the
// 1280x640 social preview shape.
package preview

import (
	"errors"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrUnavailable means no decoder is wired in, so images cannot be rated.
	ErrUnavailable = errors.New("image decoding unavailable")
	// ErrNoImage means the decoder ran but no usable candidate was found.
	ErrNoImage = errors.New("no preview image found")
)

const (
	targetWidth  = 1280
	targetHeight = 640
	targetRatio  = 2.0
)

// candidateDirs are probed in order directly beneath the repository root.
var candidateDirs = []string{"assets", "Assets", "media", "Media"}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
}

// Image is a rated preview candidate.
type Image struct {
	Path   string  `json:"path"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Score  float64 `json:"score"`
}

// Selector finds the best preview image for a repository. A nil Decoder
// marks the capability as unavailable rather than meaning "no image".
type Selector struct {
	Decoder Decoder
}

// NewSelector returns a Selector backed by the stdlib decoders plus webp.
func NewSelector() *Selector {
	return &Selector{Decoder: StdDecoder{}}
}

// Pick returns the candidate with the lowest score. Ties keep the first
// candidate encountered. Returns ErrUnavailable without touching the disk
// when no decoder is configured, and ErrNoImage when every candidate is
// missing or undecodable.
func (s *Selector) Pick(repoPath string) (Image, error) {
	if s.Decoder == nil {
		return Image{}, ErrUnavailable
	}

	best := Image{Score: 1e18}
	for _, path := range Candidates(repoPath) {
		w, h, err := s.Decoder.Dimensions(path)
		if err != nil {
			slog.Debug("skipping undecodable image", "path", path, "error", err)
			continue
		}

		score := Score(w, h)
		if score < best.Score {
			best = Image{Path: path, Width: w, Height: h, Score: score}
		}
	}

	if best.Path == "" {
		return Image{}, ErrNoImage
	}
	return best, nil
}

// Candidates lists every image file under the repository's candidate asset
// directories, walking each directory recursively. Directories are visited
// in candidateDirs order; missing ones are skipped.
func Candidates(repoPath string) []string {
	var out []string

	for _, dir := range candidateDirs {
		root := filepath.Join(repoPath, dir)

		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			continue
		}

		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				slog.Debug("skipping unreadable path", "path", path, "error", err)
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if imageExts[strings.ToLower(filepath.Ext(path))] {
				out = append(out, path)
			}
			return nil
		})
	}

	return out
}

// Score rates an image by closeness to the 1280x640 target. Lower is
// better; an exact match lands far below every near miss, and degenerate
// dimensions score so badly they only win when nothing else decodes.
func Score(width, height int) float64 {
	if width <= 0 || height <= 0 {
		return 1e9
	}

	ar := float64(width) / float64(height)
	score := math.Abs(ar-targetRatio) * 1000.0
	score += math.Abs(float64(width-targetWidth)) + math.Abs(float64(height-targetHeight))
	if width == targetWidth && height == targetHeight {
		score -= 5000.0
	}
	return score
}
