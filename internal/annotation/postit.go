package annotation

import (
	"image"
	"image/color"
)

// PostIt is a rectangular note holding typed text.
type PostIt struct {
	rect     image.Rectangle
	saved    image.Point
	hasSaved bool
	text     []rune
	ink      color.RGBA
	selected bool
}

// NewPostIt returns a zero-sized note anchored at p.
func NewPostIt(p image.Point, ink color.RGBA) *PostIt {
	return &PostIt{rect: image.Rectangle{Min: p, Max: p}, ink: ink}
}

// Stretch resizes the note to span anchor and cur, whichever way the
// pointer was dragged.
func (n *PostIt) Stretch(anchor, cur image.Point) {
	n.rect = image.Rectangle{Min: anchor, Max: cur}.Canon()
}

// Rect returns the note's position and size.
func (n *PostIt) Rect() image.Rectangle { return n.rect }

// AddText appends typed text.
func (n *PostIt) AddText(s string) {
	n.text = append(n.text, []rune(s)...)
}

// Backspace removes the last character, if any.
func (n *PostIt) Backspace() {
	if len(n.text) > 0 {
		n.text = n.text[:len(n.text)-1]
	}
}

// Text returns the note's contents.
func (n *PostIt) Text() string { return string(n.text) }

func (n *PostIt) Selected() bool { return n.selected }
func (n *PostIt) SetSelected(s bool) { n.selected = s }
func (n *PostIt) Ink() color.RGBA { return n.ink }
func (n *PostIt) SetInk(ink color.RGBA) { n.ink = ink }

// Within requires the whole note rectangle to be inside box.
func (n *PostIt) Within(box image.Rectangle, origin image.Point) bool {
	r := n.rect.Add(origin)
	return inside(box, r.Min) && inside(box, r.Max)
}

// Hit reports whether p falls on the note, edges included.
func (n *PostIt) Hit(p image.Point) bool {
	return inside(n.rect, p)
}

func (n *PostIt) SavePosition() {
	n.saved = n.rect.Min
	n.hasSaved = true
}

func (n *PostIt) MoveBy(delta image.Point) {
	if !n.hasSaved {
		n.SavePosition()
	}
	n.rect = n.rect.Add(n.saved.Add(delta).Sub(n.rect.Min))
}
