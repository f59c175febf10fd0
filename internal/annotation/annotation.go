// Package annotation holds the polylines and post-it notes drawn on the back
// of a photo, and the selection and drag operations gestures apply to them.
//
// Annotation coordinates are relative to the photo. Gesture strokes are
// captured in view coordinates, so selection takes the view origin of the
// photo and translates annotations by it before comparing.
package annotation

import (
	"image"
	"image/color"
)

// hitTolerance is how far, in pixels on each axis, a click may land from a
// polyline vertex and still grab it.
const hitTolerance = 5

// Annotation is a mark on the annotation face of a photo.
type Annotation interface {
	Selected() bool
	SetSelected(bool)
	Ink() color.RGBA
	SetInk(color.RGBA)
	// Within reports whether the annotation, shifted by origin, lies inside
	// box. Both edges of box are inclusive.
	Within(box image.Rectangle, origin image.Point) bool
	// Hit reports whether a photo-relative point grabs the annotation.
	Hit(p image.Point) bool
	// SavePosition records the current position as the base for MoveBy.
	SavePosition()
	// MoveBy places the annotation at its saved position plus delta.
	MoveBy(delta image.Point)
}

func inside(box image.Rectangle, p image.Point) bool {
	return p.X >= box.Min.X && p.X <= box.Max.X && p.Y >= box.Min.Y && p.Y <= box.Max.Y
}
