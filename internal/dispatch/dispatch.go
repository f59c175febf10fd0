// Package dispatch turns recognized pen gestures into album and annotation
// commands and reports a short status line for each stroke.
package dispatch

import (
	"image"

	"github.com/example/lighttable/internal/album"
	"github.com/example/lighttable/internal/gesture"
	"github.com/example/lighttable/internal/palette"
)

// Status lines reported for non-tag outcomes.
const (
	StatusNext         = ">"
	StatusPrevious     = "<"
	StatusDelete       = "Delete"
	StatusSelection    = "Selection"
	StatusUnrecognized = "Unrecognized gesture"
)

// Effect is the command a gesture triggered.
type Effect int

const (
	NoEffect Effect = iota
	NextPhoto
	PreviousPhoto
	ToggleTag
	DeletePhoto
	SelectAnnotations
	DeleteAnnotations
)

var effectNames = [...]string{
	NoEffect:          "none",
	NextPhoto:         "next-photo",
	PreviousPhoto:     "previous-photo",
	ToggleTag:         "toggle-tag",
	DeletePhoto:       "delete-photo",
	SelectAnnotations: "select-annotations",
	DeleteAnnotations: "delete-annotations",
}

func (e Effect) String() string {
	if e < 0 || int(e) >= len(effectNames) {
		return "unknown"
	}
	return effectNames[e]
}

// tagFor maps the normal-face tag gestures to their category.
var tagFor = map[gesture.Gesture]album.Tag{
	gesture.UpArrow:   album.Travel,
	gesture.DownArrow: album.Family,
	gesture.LetterW:   album.Work,
	gesture.LetterS:   album.School,
}

// Outcome describes what one stroke did.
type Outcome struct {
	Gesture gesture.Gesture
	Context gesture.Context
	Effect  Effect
	Status  string
	Vector  string

	// Tag and Tagged are set for ToggleTag; Tagged is the state after the toggle.
	Tag    album.Tag
	Tagged bool

	// Moved is false when Next or Previous was already at the end.
	Moved bool
	// Photo is the photo the gesture acted on. For DeletePhoto it has
	// already left the album.
	Photo *album.Photo

	Selected int
	Deleted  int
}

// Listener receives every outcome after it has been applied.
type Listener func(Outcome)

// Dispatcher applies gestures to an album.
type Dispatcher struct {
	album      *album.Album
	recognizer *gesture.Recognizer
	palette    *palette.Palette
	origin     image.Point
	listeners  []Listener
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithRecognizer replaces the default bounded-head recognizer.
func WithRecognizer(r *gesture.Recognizer) Option {
	return func(d *Dispatcher) { d.recognizer = r }
}

// WithPalette sets the inks used for selection.
func WithPalette(p *palette.Palette) Option {
	return func(d *Dispatcher) { d.palette = p }
}

// WithOrigin sets where the photo sits in view coordinates.
func WithOrigin(p image.Point) Option {
	return func(d *Dispatcher) { d.origin = p }
}

// WithStatusListener registers fn to receive every outcome.
func WithStatusListener(fn Listener) Option {
	return func(d *Dispatcher) { d.listeners = append(d.listeners, fn) }
}

// New returns a Dispatcher acting on a.
func New(a *album.Album, opts ...Option) *Dispatcher {
	d := &Dispatcher{album: a}
	for _, opt := range opts {
		opt(d)
	}
	if d.recognizer == nil {
		d.recognizer = gesture.NewRecognizer()
	}
	if d.palette == nil {
		d.palette = palette.Default()
	}
	return d
}

// Album returns the album the dispatcher acts on.
func (d *Dispatcher) Album() *album.Album { return d.album }

// Palette returns the active palette.
func (d *Dispatcher) Palette() *palette.Palette { return d.palette }

// Recognizer returns the recognizer used for matching.
func (d *Dispatcher) Recognizer() *gesture.Recognizer { return d.recognizer }

// Origin returns the photo's view origin.
func (d *Dispatcher) Origin() image.Point { return d.origin }

// SetOrigin moves the photo's view origin.
func (d *Dispatcher) SetOrigin(p image.Point) { d.origin = p }

// AddListener registers fn to receive every later outcome.
func (d *Dispatcher) AddListener(fn Listener) { d.listeners = append(d.listeners, fn) }

// Dispatch encodes the stroke, matches it against the gestures eligible
// for the current photo's face and applies the result.
func (d *Dispatcher) Dispatch(s *gesture.Stroke) Outcome {
	photo, err := d.album.Current()
	if err != nil {
		return d.emit(Outcome{Vector: s.Vector(), Status: StatusUnrecognized})
	}
	ctx := gesture.ContextFor(photo.Flipped())
	vector, g := d.recognizer.Recognize(s, ctx)
	out := Outcome{Gesture: g, Context: ctx, Vector: vector, Photo: photo}
	if ctx == gesture.Annotation {
		d.annotationFace(&out, photo, s)
	} else {
		d.photoFace(&out, photo)
	}
	return d.emit(out)
}

func (d *Dispatcher) photoFace(out *Outcome, photo *album.Photo) {
	switch out.Gesture {
	case gesture.RightAngle:
		out.Effect, out.Status = NextPhoto, StatusNext
		out.Moved = d.album.Next()
	case gesture.LeftAngle:
		out.Effect, out.Status = PreviousPhoto, StatusPrevious
		out.Moved = d.album.Previous()
	case gesture.UpArrow, gesture.DownArrow, gesture.LetterW, gesture.LetterS:
		tag := tagFor[out.Gesture]
		out.Effect, out.Status = ToggleTag, tag.String()
		out.Tag = tag
		out.Tagged = photo.ToggleTag(tag)
	case gesture.LowercasePhi:
		out.Effect, out.Status = DeletePhoto, StatusDelete
		// Current was checked by the caller.
		removed, _ := d.album.DeleteCurrent()
		out.Photo = removed
	default:
		out.Status = StatusUnrecognized
	}
}

func (d *Dispatcher) annotationFace(out *Outcome, photo *album.Photo, s *gesture.Stroke) {
	layer := photo.Annotations()
	switch out.Gesture {
	case gesture.Circle:
		out.Effect, out.Status = SelectAnnotations, StatusSelection
		if box, ok := s.Bounds(); ok {
			out.Selected = layer.SelectWithin(box, d.origin, d.palette)
		}
	case gesture.LowercasePhi:
		out.Effect, out.Status = DeleteAnnotations, StatusDelete
		out.Deleted = layer.DeleteSelected()
	default:
		out.Status = StatusUnrecognized
	}
}

func (d *Dispatcher) emit(out Outcome) Outcome {
	for _, fn := range d.listeners {
		fn(out)
	}
	return out
}
