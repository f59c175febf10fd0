package gesture

import (
	"image"
	"strings"
)

// Encode converts consecutive point pairs into direction symbols.
//
// Every step compares the previous point with the current one using
// diffX = prev.X - cur.X and diffY = prev.Y - cur.Y and runs each of the
// following checks in turn, so a single step can emit zero, one or two
// symbols:
//
//   - diffX == 0: S when diffY < 0, N when diffY > 0
//   - prev.Y == 0: E when diffX < 0, W when diffX > 0
//   - both diffs non-zero: A, D, B or C for the four diagonals
//
// The horizontal check looks at the previous point's y coordinate rather than
// diffY. The templates were tuned against that behaviour and depend on it.
func Encode(points []image.Point) string {
	if len(points) <= 1 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(points) - 1)
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		diffX := prev.X - cur.X
		diffY := prev.Y - cur.Y
		if diffX == 0 {
			if diffY < 0 {
				sb.WriteByte(byte(South))
			} else if diffY > 0 {
				sb.WriteByte(byte(North))
			}
		}
		if prev.Y == 0 {
			if diffX < 0 {
				sb.WriteByte(byte(East))
			} else if diffX > 0 {
				sb.WriteByte(byte(West))
			}
		}
		switch {
		case diffX > 0 && diffY > 0:
			sb.WriteByte(byte(Northwest))
		case diffX > 0 && diffY < 0:
			sb.WriteByte(byte(Southwest))
		case diffX < 0 && diffY > 0:
			sb.WriteByte(byte(Northeast))
		case diffX < 0 && diffY < 0:
			sb.WriteByte(byte(Southeast))
		}
	}
	return sb.String()
}
