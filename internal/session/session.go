// Package session turns raw pointer and keyboard events into gesture
// strokes and annotation edits for the photo on the light table.
//
// A right-button drag records a gesture stroke that is handed to the
// dispatcher on release. On the annotation face a left-button drag either
// moves the selected annotations or creates a new one, depending on where
// it starts and on the annotation mode.
package session

import (
	"image"
	"unicode"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/lighttable/internal/album"
	"github.com/example/lighttable/internal/annotation"
	"github.com/example/lighttable/internal/dispatch"
	"github.com/example/lighttable/internal/gesture"
)

// Session holds the interaction state between pointer events.
type Session struct {
	d    *dispatch.Dispatcher
	mode album.Mode

	stroke *gesture.Stroke

	leftDown  bool
	dragging  bool
	dragStart image.Point
	line      *annotation.PolyLine
	note      *annotation.PostIt
	anchor    image.Point
}

// Option configures a Session.
type Option func(*Session)

// WithMode sets the initial annotation mode.
func WithMode(m album.Mode) Option { return func(s *Session) { s.mode = m } }

// New returns a session feeding strokes to d.
func New(d *dispatch.Dispatcher, opts ...Option) *Session {
	s := &Session{d: d}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatcher returns the dispatcher strokes are sent to.
func (s *Session) Dispatcher() *dispatch.Dispatcher { return s.d }

// Mode returns the annotation mode.
func (s *Session) Mode() album.Mode { return s.mode }

// SetMode switches between drawing and text annotations.
func (s *Session) SetMode(m album.Mode) { s.mode = m }

// SetOrigin moves the photo within the view.
func (s *Session) SetOrigin(p image.Point) { s.d.SetOrigin(p) }

// Stroking reports whether a gesture stroke is in flight.
func (s *Session) Stroking() bool { return s.stroke != nil }

// Flip turns the current photo over and returns whether it now shows its
// annotation face.
func (s *Session) Flip() (bool, error) {
	p, err := s.d.Album().Current()
	if err != nil {
		return false, err
	}
	p.Flip()
	s.endEdit()
	return p.Flipped(), nil
}

// Note returns the post-it that receives typed text, if any.
func (s *Session) Note() *annotation.PostIt { return s.note }

// Handle routes a mouse or key event. The bool result reports whether a
// gesture was dispatched, in which case the outcome is valid.
func (s *Session) Handle(e interface{}) (dispatch.Outcome, bool) {
	switch e := e.(type) {
	case mouse.Event:
		return s.HandleMouse(e)
	case key.Event:
		s.HandleKey(e)
	}
	return dispatch.Outcome{}, false
}

// HandleMouse processes one pointer event.
func (s *Session) HandleMouse(e mouse.Event) (dispatch.Outcome, bool) {
	p := image.Pt(int(e.X), int(e.Y))
	switch e.Direction {
	case mouse.DirPress:
		s.press(e.Button, p)
	case mouse.DirNone:
		s.move(p)
	case mouse.DirRelease:
		return s.release(e.Button)
	}
	return dispatch.Outcome{}, false
}

func (s *Session) press(b mouse.Button, p image.Point) {
	if s.stroke != nil || s.leftDown {
		return
	}
	switch b {
	case mouse.ButtonRight:
		s.stroke = gesture.NewStroke(p)
	case mouse.ButtonLeft:
		s.leftDown = true
		s.pressAnnotation(p)
	}
}

func (s *Session) pressAnnotation(p image.Point) {
	photo, err := s.d.Album().Current()
	if err != nil || !photo.Flipped() {
		return
	}
	layer := photo.Annotations()
	origin := s.d.Origin()
	local := p.Sub(origin)
	if layer.HasSelection() && layer.HitSelected(local) {
		s.dragging = true
		s.dragStart = p
		layer.BeginDrag()
		return
	}
	if !photo.Contains(origin, p) {
		return
	}
	pal := s.d.Palette()
	if layer.HasSelection() {
		layer.Deselect(pal)
	}
	switch s.mode {
	case album.Text:
		s.note = annotation.NewPostIt(local, pal.PostIt)
		s.anchor = local
		layer.Add(s.note)
	default:
		s.line = annotation.NewPolyLine(pal.Ink)
		s.line.AddPoint(local)
		layer.Add(s.line)
	}
}

func (s *Session) move(p image.Point) {
	if s.stroke != nil {
		s.stroke.Add(p)
		return
	}
	if !s.leftDown {
		return
	}
	photo, err := s.d.Album().Current()
	if err != nil || !photo.Flipped() {
		return
	}
	layer := photo.Annotations()
	if s.dragging {
		layer.DragBy(p.Sub(s.dragStart))
		return
	}
	origin := s.d.Origin()
	if !photo.Contains(origin, p) {
		return
	}
	local := p.Sub(origin)
	switch s.mode {
	case album.Text:
		if s.note != nil {
			s.note.Stretch(s.anchor, local)
		}
	default:
		if s.line == nil {
			s.line = annotation.NewPolyLine(s.d.Palette().Ink)
			layer.Add(s.line)
		}
		s.line.AddPoint(local)
	}
}

func (s *Session) release(b mouse.Button) (dispatch.Outcome, bool) {
	switch b {
	case mouse.ButtonRight:
		if s.stroke == nil {
			break
		}
		stroke := s.stroke
		s.stroke = nil
		out := s.d.Dispatch(stroke)
		switch out.Effect {
		case dispatch.NextPhoto, dispatch.PreviousPhoto, dispatch.DeletePhoto:
			s.endEdit()
		}
		return out, true
	case mouse.ButtonLeft:
		s.leftDown = false
		s.dragging = false
		s.line = nil
	}
	return dispatch.Outcome{}, false
}

// HandleKey types into the current post-it when the annotation face is up
// in text mode.
func (s *Session) HandleKey(e key.Event) {
	if e.Direction == key.DirRelease || !s.typing() {
		return
	}
	switch e.Code {
	case key.CodeDeleteBackspace, key.CodeDeleteForward:
		s.note.Backspace()
		return
	}
	if e.Rune >= 0 && unicode.IsPrint(e.Rune) {
		s.note.AddText(string(e.Rune))
	}
}

func (s *Session) typing() bool {
	if s.mode != album.Text || s.note == nil {
		return false
	}
	photo, err := s.d.Album().Current()
	return err == nil && photo.Flipped()
}

func (s *Session) endEdit() {
	s.line = nil
	s.note = nil
	s.leftDown = false
	s.dragging = false
}
