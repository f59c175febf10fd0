package album

import (
	"image"
	"sort"

	"github.com/example/lighttable/internal/annotation"
)

// Mode selects what a left-button drag creates on the annotation face.
type Mode int

const (
	Drawing Mode = iota
	Text
)

func (m Mode) String() string {
	if m == Text {
		return "text"
	}
	return "drawing"
}

// Photo is one picture on the light table together with its back side.
// The zero value is an untagged, unflipped photo of unknown size.
type Photo struct {
	Name   string
	Path   string
	Width  int
	Height int

	flipped     bool
	tags        map[Tag]bool
	annotations annotation.Layer
}

// NewPhoto returns an unflipped, untagged photo.
func NewPhoto(name string, width, height int) *Photo {
	return &Photo{Name: name, Width: width, Height: height, tags: make(map[Tag]bool)}
}

// Flipped reports whether the annotation face is showing.
func (p *Photo) Flipped() bool { return p.flipped }

// Flip turns the photo over.
func (p *Photo) Flip() { p.flipped = !p.flipped }

// SetFlipped shows the requested face.
func (p *Photo) SetFlipped(f bool) { p.flipped = f }

// Annotations returns the photo's annotation layer.
func (p *Photo) Annotations() *annotation.Layer { return &p.annotations }

// Bounds returns the photo rectangle at the given view origin. A photo with
// unknown size has empty bounds.
func (p *Photo) Bounds(origin image.Point) image.Rectangle {
	return image.Rect(0, 0, p.Width, p.Height).Add(origin)
}

// Contains reports whether a view point falls on the photo. Photos of
// unknown size accept every point.
func (p *Photo) Contains(origin, pt image.Point) bool {
	if p.Width <= 0 || p.Height <= 0 {
		return true
	}
	return pt.In(p.Bounds(origin))
}

// AddTag adds t.
func (p *Photo) AddTag(t Tag) {
	if p.tags == nil {
		p.tags = make(map[Tag]bool)
	}
	p.tags[t] = true
}

// RemoveTag removes t.
func (p *Photo) RemoveTag(t Tag) { delete(p.tags, t) }

// HasTag reports whether t is set.
func (p *Photo) HasTag(t Tag) bool { return p.tags[t] }

// ToggleTag flips t and reports whether it is now set.
func (p *Photo) ToggleTag(t Tag) bool {
	if p.tags[t] {
		delete(p.tags, t)
		return false
	}
	p.AddTag(t)
	return true
}

// Tags returns the set tags in display order.
func (p *Photo) Tags() []Tag {
	out := make([]Tag, 0, len(p.tags))
	for t := range p.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
