package album_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/lighttable/internal/album"
)

func TestThumbnail(t *testing.T) {
	dir := t.TempDir()
	wide := writeImage(t, dir, "wide.png", 400, 100)
	small := writeImage(t, dir, "small.bmp", 20, 30)

	img, err := album.Thumbnail(wide, 64)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())

	img, err = album.Thumbnail(small, 64)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())

	junk := filepath.Join(dir, "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("nope"), 0o644))
	_, err = album.Thumbnail(junk, 64)
	assert.ErrorIs(t, err, album.ErrUnsupportedImage)
}
