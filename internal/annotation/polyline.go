package annotation

import (
	"image"
	"image/color"
)

// PolyLine is a freehand ink line.
type PolyLine struct {
	points   []image.Point
	saved    []image.Point
	ink      color.RGBA
	selected bool
}

// NewPolyLine returns an empty line drawn with ink.
func NewPolyLine(ink color.RGBA) *PolyLine {
	return &PolyLine{ink: ink}
}

// AddPoint extends the line.
func (l *PolyLine) AddPoint(p image.Point) {
	l.points = append(l.points, p)
}

// Points returns a copy of the vertices.
func (l *PolyLine) Points() []image.Point {
	out := make([]image.Point, len(l.points))
	copy(out, l.points)
	return out
}

func (l *PolyLine) Selected() bool { return l.selected }
func (l *PolyLine) SetSelected(s bool) { l.selected = s }
func (l *PolyLine) Ink() color.RGBA { return l.ink }
func (l *PolyLine) SetInk(ink color.RGBA) { l.ink = ink }

// Within requires every vertex to be inside box. A line with no vertices is
// trivially inside.
func (l *PolyLine) Within(box image.Rectangle, origin image.Point) bool {
	for _, p := range l.points {
		if !inside(box, p.Add(origin)) {
			return false
		}
	}
	return true
}

// Hit reports whether p is within hitTolerance of any vertex.
func (l *PolyLine) Hit(p image.Point) bool {
	for _, v := range l.points {
		d := p.Sub(v)
		if d.X > -hitTolerance && d.X < hitTolerance && d.Y > -hitTolerance && d.Y < hitTolerance {
			return true
		}
	}
	return false
}

func (l *PolyLine) SavePosition() {
	l.saved = l.Points()
}

func (l *PolyLine) MoveBy(delta image.Point) {
	if l.saved == nil {
		l.SavePosition()
	}
	moved := make([]image.Point, len(l.saved))
	for i, p := range l.saved {
		moved[i] = p.Add(delta)
	}
	l.points = moved
}
