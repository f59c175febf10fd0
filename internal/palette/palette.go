package palette

import (
	"image/color"
)

// Palette holds the ink colours used for annotations and gesture strokes.
type Palette struct {
	Name string

	Ink        color.RGBA // New polylines and deselected polylines
	Selected   color.RGBA // Annotations picked up by a circle gesture
	PostIt     color.RGBA // Post-it background
	PostItText color.RGBA
	Gesture    color.RGBA // Trail of a stroke while it is being drawn
}

// Default returns the built-in palette used when nothing else is configured.
func Default() *Palette {
	return &Palette{
		Name:       "Default",
		Ink:        color.RGBA{0, 0, 0, 255},
		Selected:   color.RGBA{255, 0, 0, 255},
		PostIt:     color.RGBA{255, 255, 0, 255},
		PostItText: color.RGBA{0, 0, 0, 255},
		Gesture:    color.RGBA{255, 0, 0, 255},
	}
}

// Clone returns a copy of p that can be modified independently.
func (p *Palette) Clone() *Palette {
	c := *p
	return &c
}
