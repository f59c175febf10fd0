package album

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Decode reads just the image header from r and returns an untitled photo
// of that size together with the detected format.
func Decode(r io.Reader) (*Photo, string, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	return NewPhoto("", cfg.Width, cfg.Height), format, nil
}

// Load opens an image file and returns a photo sized from its header. The
// photo is named after the file without its extension.
func Load(path string) (*Photo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open photo: %w", err)
	}
	defer f.Close()
	p, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	base := filepath.Base(path)
	p.Name = strings.TrimSuffix(base, filepath.Ext(base))
	p.Path = path
	return p, nil
}

// LoadDir adds every decodable image in dir to a new album, in directory
// order. Files that are not images are skipped; any other failure to read a
// file stops the load.
func LoadDir(dir string) (*Album, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read photo dir: %w", err)
	}
	a := New()
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		p, err := Load(filepath.Join(dir, e.Name()))
		if errors.Is(err, ErrUnsupportedImage) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load photo dir: %w", err)
		}
		a.Add(p)
	}
	return a, nil
}
