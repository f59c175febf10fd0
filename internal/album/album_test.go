package album_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/lighttable/internal/album"
)

func threePhotos() (*album.Album, []*album.Photo) {
	ps := []*album.Photo{
		album.NewPhoto("a", 10, 10),
		album.NewPhoto("b", 10, 10),
		album.NewPhoto("c", 10, 10),
	}
	return album.New(ps...), ps
}

func TestEmptyAlbum(t *testing.T) {
	a := album.New()
	_, err := a.Current()
	assert.ErrorIs(t, err, album.ErrNoPhoto)
	assert.Equal(t, -1, a.Index())
	assert.False(t, a.Next())
	assert.False(t, a.Previous())
	_, err = a.DeleteCurrent()
	assert.ErrorIs(t, err, album.ErrNoPhoto)

	var zero album.Album
	_, err = zero.Current()
	assert.ErrorIs(t, err, album.ErrNoPhoto)
	zero.Add(album.NewPhoto("x", 1, 1))
	p, err := zero.Current()
	require.NoError(t, err)
	assert.Equal(t, "x", p.Name)
}

func TestNavigationStopsAtEnds(t *testing.T) {
	a, ps := threePhotos()
	assert.False(t, a.Previous())
	assert.Equal(t, 0, a.Index())

	assert.True(t, a.Next())
	assert.True(t, a.Next())
	assert.False(t, a.Next())
	cur, err := a.Current()
	require.NoError(t, err)
	assert.Same(t, ps[2], cur)

	assert.True(t, a.Previous())
	assert.Equal(t, 1, a.Index())
}

func TestDeleteCurrent(t *testing.T) {
	a, ps := threePhotos()
	a.Next()
	a.Next()

	removed, err := a.DeleteCurrent()
	require.NoError(t, err)
	assert.Same(t, ps[2], removed)
	assert.Equal(t, 1, a.Index())

	a.Previous()
	removed, err = a.DeleteCurrent()
	require.NoError(t, err)
	assert.Same(t, ps[0], removed)
	cur, err := a.Current()
	require.NoError(t, err)
	assert.Same(t, ps[1], cur, "first slot is taken by the next photo")

	_, err = a.DeleteCurrent()
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())
	_, err = a.Current()
	assert.ErrorIs(t, err, album.ErrNoPhoto)
}

func TestToggleTag(t *testing.T) {
	p := album.NewPhoto("p", 1, 1)
	assert.True(t, p.ToggleTag(album.Work))
	assert.True(t, p.ToggleTag(album.Travel))
	assert.Equal(t, []album.Tag{album.Travel, album.Work}, p.Tags())
	assert.False(t, p.ToggleTag(album.Work))
	assert.False(t, p.HasTag(album.Work))
	assert.True(t, p.HasTag(album.Travel))
}

func TestParseTag(t *testing.T) {
	tag, err := album.ParseTag("school")
	require.NoError(t, err)
	assert.Equal(t, album.School, tag)
	assert.Equal(t, "School", tag.String())

	_, err = album.ParseTag("pets")
	assert.ErrorIs(t, err, album.ErrUnknownTag)
	assert.Equal(t, "Tag(9)", album.Tag(9).String())
}

func TestPhotoFace(t *testing.T) {
	p := album.NewPhoto("p", 100, 50)
	assert.False(t, p.Flipped())
	p.Flip()
	assert.True(t, p.Flipped())
	p.SetFlipped(false)
	assert.False(t, p.Flipped())

	assert.Equal(t, 0, p.Annotations().Len())
}
