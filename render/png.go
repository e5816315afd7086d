package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// FramePath names frame n inside dir, zero-padded so files sort in frame order.
func FramePath(dir string, n int) string {
	return filepath.Join(dir, fmt.Sprintf("frame_%05d.png", n))
}

func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
