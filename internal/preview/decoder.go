package preview

import (
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Decoder measures an image file without decoding pixel data.
type Decoder interface {
	Dimensions(path string) (width, height int, err error)
}

// StdDecoder reads dimensions with image.DecodeConfig. It understands
// png, jpeg, gif and webp.
type StdDecoder struct{}

func (StdDecoder) Dimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = f.Close() }()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
