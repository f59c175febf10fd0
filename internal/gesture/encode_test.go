package gesture_test

import (
	"image"
	"testing"

	"github.com/example/lighttable/internal/gesture"
	"github.com/stretchr/testify/assert"
)

// TestEncode_ShortStrokes verifies that zero or one point yields no symbols.
func TestEncode_ShortStrokes(t *testing.T) {
	assert.Equal(t, "", gesture.Encode(nil))
	assert.Equal(t, "", gesture.Encode([]image.Point{}))
	assert.Equal(t, "", gesture.Encode([]image.Point{image.Pt(3, 4)}))
	assert.Equal(t, "", gesture.NewStroke().Vector())

	var nilStroke *gesture.Stroke
	assert.Equal(t, "", nilStroke.Vector())
	assert.Equal(t, 0, nilStroke.Len())
}

// TestEncode_HorizontalOnTopEdge pins the prev.Y == 0 behaviour: a
// horizontal stroke along y = 0 emits one E per step.
func TestEncode_HorizontalOnTopEdge(t *testing.T) {
	pts := []image.Point{image.Pt(0, 0), image.Pt(10, 0), image.Pt(20, 0)}
	assert.Equal(t, "EE", gesture.Encode(pts))
}

// TestEncode_PerStep pins the exact symbols appended by a single step for
// representative diff combinations, including the steps that emit nothing
// and the steps that emit two symbols.
func TestEncode_PerStep(t *testing.T) {
	cases := []struct {
		name     string
		from, to image.Point
		want     string
	}{
		{"duplicate point", image.Pt(5, 5), image.Pt(5, 5), ""},
		{"duplicate on top edge", image.Pt(0, 0), image.Pt(0, 0), ""},
		{"straight down", image.Pt(5, 5), image.Pt(5, 9), "S"},
		{"straight up", image.Pt(5, 5), image.Pt(5, 1), "N"},
		{"down from top edge", image.Pt(5, 0), image.Pt(5, 9), "S"},
		{"right along top edge", image.Pt(5, 0), image.Pt(9, 0), "E"},
		{"left along top edge", image.Pt(5, 0), image.Pt(1, 0), "W"},
		{"right-down from top edge", image.Pt(5, 0), image.Pt(9, 4), "EC"},
		{"left-down from top edge", image.Pt(5, 0), image.Pt(1, 4), "WD"},
		{"horizontal away from top edge", image.Pt(5, 3), image.Pt(9, 3), ""},
		{"up-left", image.Pt(5, 5), image.Pt(1, 1), "A"},
		{"down-left", image.Pt(5, 5), image.Pt(1, 9), "D"},
		{"up-right", image.Pt(5, 5), image.Pt(9, 1), "B"},
		{"down-right", image.Pt(5, 5), image.Pt(9, 9), "C"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, gesture.Encode([]image.Point{tc.from, tc.to}))
		})
	}
}

// TestEncode_OneSymbolPerStepOffTheTopEdge checks the max(0, n-1) length for
// strokes whose steps all move and never start on y = 0.
func TestEncode_OneSymbolPerStepOffTheTopEdge(t *testing.T) {
	pts := []image.Point{
		image.Pt(10, 50), image.Pt(20, 40), image.Pt(30, 35), image.Pt(40, 40),
		image.Pt(50, 50), image.Pt(50, 60), image.Pt(40, 70), image.Pt(30, 75),
		image.Pt(20, 70), image.Pt(10, 60), image.Pt(10, 50), image.Pt(20, 40),
	}
	v := gesture.Encode(pts)
	assert.Equal(t, "BBCCSDDAANB", v)
	assert.Len(t, v, len(pts)-1)
}

// TestStroke_Bounds checks the inclusive bounding box and that Points copies.
func TestStroke_Bounds(t *testing.T) {
	s := gesture.NewStroke(image.Pt(4, 9), image.Pt(-2, 3), image.Pt(7, 5))
	r, ok := s.Bounds()
	assert.True(t, ok)
	assert.Equal(t, image.Rect(-2, 3, 7, 9), r)

	pts := s.Points()
	pts[0] = image.Pt(100, 100)
	assert.Equal(t, image.Pt(4, 9), s.Points()[0], "Points must return a copy")

	_, ok = gesture.NewStroke().Bounds()
	assert.False(t, ok)
}
