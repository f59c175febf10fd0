package gesture

import "image"

// Stroke is the ordered sequence of pointer positions captured between a
// pointer press and its release. Points can only be appended.
type Stroke struct {
	points []image.Point
}

// NewStroke returns a stroke seeded with the given points.
func NewStroke(points ...image.Point) *Stroke {
	s := &Stroke{}
	for _, p := range points {
		s.Add(p)
	}
	return s
}

// Add appends a position to the stroke.
func (s *Stroke) Add(p image.Point) {
	s.points = append(s.points, p)
}

// Len returns the number of captured points.
func (s *Stroke) Len() int {
	if s == nil {
		return 0
	}
	return len(s.points)
}

// Points returns a copy of the captured points.
func (s *Stroke) Points() []image.Point {
	if s == nil {
		return nil
	}
	out := make([]image.Point, len(s.points))
	copy(out, s.points)
	return out
}

// Bounds returns the smallest box containing every point of the stroke.
// Unlike image.Rectangle conventions, Max is inclusive: it is the largest
// x and y seen. An empty stroke yields the zero rectangle and false.
func (s *Stroke) Bounds() (image.Rectangle, bool) {
	if s.Len() == 0 {
		return image.Rectangle{}, false
	}
	r := image.Rectangle{Min: s.points[0], Max: s.points[0]}
	for _, p := range s.points[1:] {
		if p.X < r.Min.X {
			r.Min.X = p.X
		}
		if p.Y < r.Min.Y {
			r.Min.Y = p.Y
		}
		if p.X > r.Max.X {
			r.Max.X = p.X
		}
		if p.Y > r.Max.Y {
			r.Max.Y = p.Y
		}
	}
	return r, true
}

// Vector encodes the stroke into its direction vector.
func (s *Stroke) Vector() string {
	if s == nil {
		return ""
	}
	return Encode(s.points)
}
