// Package snapshot writes rendered frames to disk.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

var ErrEmpty = errors.New("snapshot: empty image")

// WithExt appends ".png" unless path already ends in it (any case).
func WithExt(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return path
	}
	return path + ".png"
}

// Save encodes img as PNG at path, replacing any existing file.
func Save(path string, img image.Image) (err error) {
	if img == nil || img.Bounds().Empty() {
		return ErrEmpty
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("snapshot: %w", cerr)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return nil
}
