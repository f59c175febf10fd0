package annotation

import (
	"image"

	"github.com/example/lighttable/internal/palette"
)

// Layer is the ordered set of annotations on one photo.
type Layer struct {
	items []Annotation
}

// Add appends an annotation on top of the others.
func (l *Layer) Add(a Annotation) {
	l.items = append(l.items, a)
}

// Len returns the number of annotations.
func (l *Layer) Len() int { return len(l.items) }

// All returns the annotations in drawing order.
func (l *Layer) All() []Annotation {
	out := make([]Annotation, len(l.items))
	copy(out, l.items)
	return out
}

// Selected returns the selected annotations in drawing order.
func (l *Layer) Selected() []Annotation {
	var out []Annotation
	for _, a := range l.items {
		if a.Selected() {
			out = append(out, a)
		}
	}
	return out
}

// HasSelection reports whether any annotation is selected.
func (l *Layer) HasSelection() bool {
	for _, a := range l.items {
		if a.Selected() {
			return true
		}
	}
	return false
}

// SelectWithin selects every annotation lying inside box once shifted by
// origin and paints it with the palette's selection ink. Annotations that
// were already selected stay selected. It returns how many annotations the
// box caught.
func (l *Layer) SelectWithin(box image.Rectangle, origin image.Point, p *palette.Palette) int {
	n := 0
	for _, a := range l.items {
		if !a.Within(box, origin) {
			continue
		}
		a.SetSelected(true)
		a.SetInk(p.Selected)
		n++
	}
	return n
}

// Deselect clears the selection and restores the regular inks.
func (l *Layer) Deselect(p *palette.Palette) {
	for _, a := range l.items {
		if !a.Selected() {
			continue
		}
		a.SetSelected(false)
		switch a.(type) {
		case *PostIt:
			a.SetInk(p.PostIt)
		default:
			a.SetInk(p.Ink)
		}
	}
}

// DeleteSelected removes the selected annotations and returns how many went.
func (l *Layer) DeleteSelected() int {
	kept := l.items[:0]
	for _, a := range l.items {
		if !a.Selected() {
			kept = append(kept, a)
		}
	}
	removed := len(l.items) - len(kept)
	for i := len(kept); i < len(l.items); i++ {
		l.items[i] = nil
	}
	l.items = kept
	return removed
}

// HitSelected reports whether a photo-relative point grabs a selected
// annotation.
func (l *Layer) HitSelected(p image.Point) bool {
	for _, a := range l.items {
		if a.Selected() && a.Hit(p) {
			return true
		}
	}
	return false
}

// BeginDrag records the position of every selected annotation.
func (l *Layer) BeginDrag() {
	for _, a := range l.items {
		if a.Selected() {
			a.SavePosition()
		}
	}
}

// DragBy moves the selected annotations to their recorded positions plus delta.
func (l *Layer) DragBy(delta image.Point) {
	for _, a := range l.items {
		if a.Selected() {
			a.MoveBy(delta)
		}
	}
}
