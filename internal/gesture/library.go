package gesture

import (
	"fmt"
	"strings"
)

// Gesture identifies a recognised template.
type Gesture int

const (
	// None means the vector matched no eligible template.
	None Gesture = iota
	RightAngle
	LeftAngle
	LowercasePhi
	UpArrow
	DownArrow
	LetterS
	LetterW
	Circle
)

// Templates for the eight gestures. The leading and trailing ".{0,2}+" give
// the stroke up to two stray symbols at either end.
const (
	RightAngleTemplate   = "^.{0,2}+[ECS]+[WDS]+.{0,2}+$"
	LeftAngleTemplate    = "^.{0,2}+[WDS]+[ECS]+.{0,2}+$"
	LowercasePhiTemplate = "^.{0,2}+[WDS]+[DSC]+[ECS]+[BEC]+[NBE]+[NAB]+[WAN]+[WDA]+[DSC]+.{0,2}+$"
	UpArrowTemplate      = "^.{0,2}+[NBE]+[ECS]+.{0,2}+$"
	DownArrowTemplate    = "^.{0,2}+[ECS]+[NBE]+.{0,2}+$"
	LetterSTemplate      = "^.{0,2}+[AWD]+[WDS]+[DSC]+[ECS]+[BEC]+[ECS]+[DSC]+[WDS]+[WDA]+.{0,2}+$"
	LetterWTemplate      = "^.{0,2}+[ECS]+[NBE]+[ECS]+[NBE]+.{0,2}+$"
	CircleTemplate       = "^.{0,2}+[ECB]+[SCD]+[WAD]+[NAB]+[ECB].{0,2}+$"
)

var gestureNames = [...]string{
	None:         "none",
	RightAngle:   "right-angle",
	LeftAngle:    "left-angle",
	LowercasePhi: "lowercase-phi",
	UpArrow:      "up-arrow",
	DownArrow:    "down-arrow",
	LetterS:      "letter-s",
	LetterW:      "letter-w",
	Circle:       "circle",
}

// String returns the kebab-case name of the gesture.
func (g Gesture) String() string {
	if g < 0 || int(g) >= len(gestureNames) {
		return fmt.Sprintf("gesture(%d)", int(g))
	}
	return gestureNames[g]
}

// ParseGesture looks a gesture up by the name String returns.
func ParseGesture(name string) (Gesture, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for g, n := range gestureNames {
		if g != int(None) && n == name {
			return Gesture(g), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownGesture, name)
}

type entry struct {
	gesture  Gesture
	pattern  *Pattern
	contexts []Context
}

// library is ordered by matching priority. Circle goes first but only the
// annotation face may use it; lowercase phi is shared by both faces.
var library = []entry{
	{Circle, MustCompile(CircleTemplate), []Context{Annotation}},
	{LowercasePhi, MustCompile(LowercasePhiTemplate), []Context{Normal, Annotation}},
	{RightAngle, MustCompile(RightAngleTemplate), []Context{Normal}},
	{LeftAngle, MustCompile(LeftAngleTemplate), []Context{Normal}},
	{UpArrow, MustCompile(UpArrowTemplate), []Context{Normal}},
	{DownArrow, MustCompile(DownArrowTemplate), []Context{Normal}},
	{LetterW, MustCompile(LetterWTemplate), []Context{Normal}},
	{LetterS, MustCompile(LetterSTemplate), []Context{Normal}},
}

func (e entry) eligible(ctx Context) bool {
	for _, c := range e.contexts {
		if c == ctx {
			return true
		}
	}
	return false
}

func lookup(g Gesture) (entry, bool) {
	for _, e := range library {
		if e.gesture == g {
			return e, true
		}
	}
	return entry{}, false
}

// Gestures returns every gesture in matching priority order.
func Gestures() []Gesture {
	out := make([]Gesture, len(library))
	for i, e := range library {
		out[i] = e.gesture
	}
	return out
}

// Template returns the template string of g, or "" for None.
func Template(g Gesture) string {
	e, ok := lookup(g)
	if !ok {
		return ""
	}
	return e.pattern.String()
}

// PatternOf returns the compiled pattern of g, or nil for None.
func PatternOf(g Gesture) *Pattern {
	e, ok := lookup(g)
	if !ok {
		return nil
	}
	return e.pattern
}

// Eligible reports whether g may be recognised in ctx.
func Eligible(g Gesture, ctx Context) bool {
	e, ok := lookup(g)
	return ok && e.eligible(ctx)
}
