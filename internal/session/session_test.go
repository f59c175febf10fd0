package session_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/lighttable/internal/album"
	"github.com/example/lighttable/internal/annotation"
	"github.com/example/lighttable/internal/dispatch"
	"github.com/example/lighttable/internal/gesture"
	"github.com/example/lighttable/internal/session"
)

func ev(x, y int, b mouse.Button, dir mouse.Direction) mouse.Event {
	return mouse.Event{X: float32(x), Y: float32(y), Button: b, Direction: dir}
}

func press(s *session.Session, b mouse.Button, x, y int) {
	s.HandleMouse(ev(x, y, b, mouse.DirPress))
}

func move(s *session.Session, x, y int) {
	s.HandleMouse(ev(x, y, mouse.ButtonNone, mouse.DirNone))
}

func release(s *session.Session, b mouse.Button, x, y int) (dispatch.Outcome, bool) {
	return s.HandleMouse(ev(x, y, b, mouse.DirRelease))
}

func newSession(t *testing.T, opts ...session.Option) (*session.Session, *album.Photo) {
	t.Helper()
	a := album.New(album.NewPhoto("a", 200, 200), album.NewPhoto("b", 200, 200))
	p, err := a.Current()
	require.NoError(t, err)
	return session.New(dispatch.New(a), opts...), p
}

func TestRightDragDispatchesGesture(t *testing.T) {
	s, _ := newSession(t)
	press(s, mouse.ButtonRight, 100, 100)
	assert.True(t, s.Stroking())
	move(s, 110, 110)
	move(s, 100, 120)
	out, ok := release(s, mouse.ButtonRight, 100, 120)
	require.True(t, ok)
	assert.False(t, s.Stroking())
	assert.Equal(t, "CD", out.Vector)
	assert.Equal(t, gesture.RightAngle, out.Gesture)
	assert.Equal(t, 1, s.Dispatcher().Album().Index())
}

func TestPressIgnoredWhileStroking(t *testing.T) {
	s, p := newSession(t)
	p.Flip()
	press(s, mouse.ButtonRight, 100, 100)
	press(s, mouse.ButtonLeft, 50, 50)
	press(s, mouse.ButtonRight, 10, 10)
	move(s, 110, 110)
	out, ok := release(s, mouse.ButtonRight, 110, 110)
	require.True(t, ok)
	assert.Equal(t, "C", out.Vector)
	assert.Equal(t, 0, p.Annotations().Len(), "left press during a stroke draws nothing")

	_, ok = release(s, mouse.ButtonRight, 0, 0)
	assert.False(t, ok, "no stroke in flight")
}

func TestDrawingNeedsAnnotationFace(t *testing.T) {
	s, p := newSession(t)
	press(s, mouse.ButtonLeft, 10, 10)
	move(s, 20, 20)
	release(s, mouse.ButtonLeft, 20, 20)
	assert.Equal(t, 0, p.Annotations().Len())

	flipped, err := s.Flip()
	require.NoError(t, err)
	assert.True(t, flipped)

	s.SetOrigin(image.Pt(5, 5))
	press(s, mouse.ButtonLeft, 10, 10)
	move(s, 20, 20)
	move(s, 300, 300)
	move(s, 30, 30)
	release(s, mouse.ButtonLeft, 30, 30)

	require.Equal(t, 1, p.Annotations().Len())
	line := p.Annotations().All()[0].(*annotation.PolyLine)
	assert.Equal(t, []image.Point{{5, 5}, {15, 15}, {25, 25}}, line.Points())
}

func TestPostItAndTyping(t *testing.T) {
	s, p := newSession(t, session.WithMode(album.Text))
	p.Flip()
	press(s, mouse.ButtonLeft, 60, 40)
	move(s, 10, 10)
	release(s, mouse.ButtonLeft, 10, 10)

	note := s.Note()
	require.NotNil(t, note)
	assert.Equal(t, image.Rect(10, 10, 60, 40), note.Rect())

	for _, r := range "hi!" {
		s.HandleKey(key.Event{Rune: r, Direction: key.DirPress})
		s.HandleKey(key.Event{Rune: r, Direction: key.DirRelease})
	}
	s.Handle(key.Event{Rune: -1, Code: key.CodeDeleteBackspace, Direction: key.DirPress})
	assert.Equal(t, "hi", note.Text())

	s.SetMode(album.Drawing)
	s.HandleKey(key.Event{Rune: 'x', Direction: key.DirPress})
	assert.Equal(t, "hi", note.Text(), "typing only reaches notes in text mode")
}

func TestDragSelectedAnnotations(t *testing.T) {
	s, p := newSession(t)
	p.Flip()
	press(s, mouse.ButtonLeft, 10, 10)
	move(s, 20, 20)
	release(s, mouse.ButtonLeft, 20, 20)

	layer := p.Annotations()
	pal := s.Dispatcher().Palette()
	require.Equal(t, 1, layer.SelectWithin(image.Rect(0, 0, 50, 50), image.Point{}, pal))

	press(s, mouse.ButtonLeft, 11, 11)
	move(s, 16, 13)
	move(s, 21, 16)
	release(s, mouse.ButtonLeft, 21, 16)

	require.Equal(t, 1, layer.Len())
	line := layer.All()[0].(*annotation.PolyLine)
	assert.Equal(t, []image.Point{{20, 15}, {30, 25}}, line.Points())
	assert.True(t, line.Selected())

	press(s, mouse.ButtonLeft, 100, 100)
	release(s, mouse.ButtonLeft, 100, 100)
	assert.False(t, line.Selected())
	assert.Equal(t, pal.Ink, line.Ink())
	assert.Equal(t, 2, layer.Len())
}

func TestFlipWithoutPhoto(t *testing.T) {
	s := session.New(dispatch.New(album.New()))
	_, err := s.Flip()
	assert.ErrorIs(t, err, album.ErrNoPhoto)
}
