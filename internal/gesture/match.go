package gesture

import (
	"fmt"
	"strings"
)

// Context selects which templates are eligible for a stroke.
type Context int

const (
	// Normal is the photo face of a picture.
	Normal Context = iota
	// Annotation is the flipped face that carries the annotations.
	Annotation
)

// ContextFor maps a photo's flipped flag to a Context.
func ContextFor(flipped bool) Context {
	if flipped {
		return Annotation
	}
	return Normal
}

func (c Context) String() string {
	switch c {
	case Normal:
		return "normal"
	case Annotation:
		return "annotation"
	}
	return fmt.Sprintf("context(%d)", int(c))
}

// HeadMode controls how the bounded wildcard at the start of a template
// behaves.
type HeadMode int

const (
	// HeadBounded lets the head wildcard take any 0 to 2 symbols. This is
	// looser than the literal "{0,2}+" templates: a bare "CD" is a
	// RightAngle here but matches nothing under HeadPossessive.
	HeadBounded HeadMode = iota
	// HeadPossessive makes the head take min(2, len(vector)) symbols and
	// never give them back, as the "{0,2}+" quantifier is written.
	HeadPossessive
)

func (m HeadMode) String() string {
	switch m {
	case HeadBounded:
		return "bounded"
	case HeadPossessive:
		return "possessive"
	}
	return fmt.Sprintf("headmode(%d)", int(m))
}

// ParseHeadMode accepts "bounded" or "possessive".
func ParseHeadMode(s string) (HeadMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bounded":
		return HeadBounded, nil
	case "possessive":
		return HeadPossessive, nil
	}
	return HeadBounded, fmt.Errorf("%w: %q", ErrUnknownHeadMode, s)
}

// Recognizer matches direction vectors against the template library.
// It holds no per-call state and is safe to share.
type Recognizer struct {
	head HeadMode
}

// Option configures a Recognizer.
type Option func(*Recognizer)

// WithHeadMode selects how head wildcards are matched.
func WithHeadMode(m HeadMode) Option { return func(r *Recognizer) { r.head = m } }

// NewRecognizer returns a Recognizer with the provided options applied.
func NewRecognizer(opts ...Option) *Recognizer {
	r := &Recognizer{head: HeadBounded}
	for _, o := range opts {
		o(r)
	}
	return r
}

// HeadMode reports the configured head mode.
func (r *Recognizer) HeadMode() HeadMode { return r.head }

// Match returns the first eligible gesture, in priority order, whose
// template accepts vector. It returns None when nothing matches.
func (r *Recognizer) Match(vector string, ctx Context) Gesture {
	if vector == "" {
		return None
	}
	possessive := r.head == HeadPossessive
	for _, e := range library {
		if !e.eligible(ctx) {
			continue
		}
		if e.pattern.match(vector, possessive) {
			return e.gesture
		}
	}
	return None
}

// Recognize encodes the stroke and matches it. The vector is returned so
// callers can report it alongside the result.
func (r *Recognizer) Recognize(s *Stroke, ctx Context) (string, Gesture) {
	vector := s.Vector()
	return vector, r.Match(vector, ctx)
}

var defaultRecognizer = NewRecognizer()

// Recognize matches vector with the default bounded-head recognizer.
func Recognize(vector string, ctx Context) Gesture {
	return defaultRecognizer.Match(vector, ctx)
}
