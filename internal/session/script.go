package session

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/lighttable/internal/album"
	"github.com/example/lighttable/internal/dispatch"
)

// ErrBadScript is returned for replay scripts that cannot be parsed.
var ErrBadScript = errors.New("session: bad script")

// Step is one parsed replay command.
type Step struct {
	Line   int
	Op     string
	Button mouse.Button
	Points []image.Point
	Size   image.Point
	Mode   album.Mode
	Text   string
}

// Script is a parsed replay script.
type Script []Step

// ParseScript reads a replay script. Blank lines and lines starting with #
// are skipped.
func ParseScript(r io.Reader) (Script, error) {
	var out Script
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		st, err := parseStep(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadScript, n, err)
		}
		st.Line = n
		out = append(out, st)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return out, nil
}

// ParseStep parses a single replay command.
func ParseStep(line string) (Step, error) {
	st, err := parseStep(strings.TrimSpace(line))
	if err != nil {
		return Step{}, fmt.Errorf("%w: %v", ErrBadScript, err)
	}
	return st, nil
}

func parseStep(line string) (Step, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Step{}, errors.New("empty command")
	}
	st := Step{Op: fields[0]}
	args := fields[1:]
	switch st.Op {
	case "photo":
		if len(args) < 1 || len(args) > 2 {
			return st, errors.New("usage: photo <path>|<name> [WxH]")
		}
		st.Text = args[0]
		if len(args) == 2 {
			size, err := parseSize(args[1])
			if err != nil {
				return st, err
			}
			st.Size = size
		}
	case "flip", "backspace":
		if len(args) != 0 {
			return st, fmt.Errorf("%s takes no arguments", st.Op)
		}
	case "mode":
		if len(args) != 1 {
			return st, errors.New("usage: mode drawing|text")
		}
		m, err := ParseMode(args[0])
		if err != nil {
			return st, err
		}
		st.Mode = m
	case "origin", "move":
		if len(args) != 2 {
			return st, fmt.Errorf("usage: %s x y", st.Op)
		}
		p, err := parsePoint(args[0], args[1])
		if err != nil {
			return st, err
		}
		st.Points = []image.Point{p}
	case "press", "release":
		if len(args) != 3 {
			return st, fmt.Errorf("usage: %s left|right x y", st.Op)
		}
		b, err := parseButton(args[0])
		if err != nil {
			return st, err
		}
		p, err := parsePoint(args[1], args[2])
		if err != nil {
			return st, err
		}
		st.Button = b
		st.Points = []image.Point{p}
	case "stroke":
		if len(args) == 0 {
			return st, errors.New("usage: stroke x,y ...")
		}
		for _, a := range args {
			x, y, ok := strings.Cut(a, ",")
			if !ok {
				return st, fmt.Errorf("bad point %q", a)
			}
			p, err := parsePoint(x, y)
			if err != nil {
				return st, err
			}
			st.Points = append(st.Points, p)
		}
	case "type":
		text := strings.TrimSpace(strings.TrimPrefix(line, "type"))
		if text == "" {
			return st, errors.New("usage: type <text>")
		}
		st.Text = text
	default:
		return st, fmt.Errorf("unknown command %q", st.Op)
	}
	return st, nil
}

// ParseMode parses an annotation mode name.
func ParseMode(s string) (album.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "drawing", "draw":
		return album.Drawing, nil
	case "text":
		return album.Text, nil
	}
	return album.Drawing, fmt.Errorf("unknown annotation mode %q", s)
}

func parseButton(s string) (mouse.Button, error) {
	switch s {
	case "left":
		return mouse.ButtonLeft, nil
	case "right":
		return mouse.ButtonRight, nil
	}
	return mouse.ButtonNone, fmt.Errorf("unknown button %q", s)
}

func parsePoint(xs, ys string) (image.Point, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return image.Point{}, fmt.Errorf("bad x %q", xs)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return image.Point{}, fmt.Errorf("bad y %q", ys)
	}
	return image.Pt(x, y), nil
}

func parseSize(s string) (image.Point, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return image.Point{}, fmt.Errorf("bad size %q", s)
	}
	w, err1 := strconv.Atoi(ws)
	h, err2 := strconv.Atoi(hs)
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return image.Point{}, fmt.Errorf("bad size %q", s)
	}
	return image.Pt(w, h), nil
}

// Run executes every step and returns the outcomes of the gestures that
// were dispatched.
func (s *Session) Run(script Script) ([]dispatch.Outcome, error) {
	var outs []dispatch.Outcome
	for _, st := range script {
		out, ok, err := s.Exec(st)
		if err != nil {
			return outs, fmt.Errorf("line %d: %w", st.Line, err)
		}
		if ok {
			outs = append(outs, out)
		}
	}
	return outs, nil
}

// Exec performs one step. The bool result reports whether a gesture was
// dispatched.
func (s *Session) Exec(st Step) (dispatch.Outcome, bool, error) {
	var none dispatch.Outcome
	switch st.Op {
	case "photo":
		var p *album.Photo
		if st.Size != (image.Point{}) {
			p = album.NewPhoto(st.Text, st.Size.X, st.Size.Y)
		} else {
			var err error
			if p, err = album.Load(st.Text); err != nil {
				return none, false, err
			}
		}
		s.d.Album().Add(p)
	case "flip":
		if _, err := s.Flip(); err != nil {
			return none, false, err
		}
	case "mode":
		s.SetMode(st.Mode)
	case "origin":
		s.SetOrigin(st.Points[0])
	case "press":
		out, ok := s.HandleMouse(mouseEvent(st.Points[0], st.Button, mouse.DirPress))
		return out, ok, nil
	case "move":
		out, ok := s.HandleMouse(mouseEvent(st.Points[0], mouse.ButtonNone, mouse.DirNone))
		return out, ok, nil
	case "release":
		out, ok := s.HandleMouse(mouseEvent(st.Points[0], st.Button, mouse.DirRelease))
		return out, ok, nil
	case "stroke":
		pts := st.Points
		s.HandleMouse(mouseEvent(pts[0], mouse.ButtonRight, mouse.DirPress))
		for _, p := range pts[1:] {
			s.HandleMouse(mouseEvent(p, mouse.ButtonNone, mouse.DirNone))
		}
		out, ok := s.HandleMouse(mouseEvent(pts[len(pts)-1], mouse.ButtonRight, mouse.DirRelease))
		return out, ok, nil
	case "type":
		for _, r := range st.Text {
			s.HandleKey(key.Event{Rune: r, Direction: key.DirPress})
		}
	case "backspace":
		s.HandleKey(key.Event{Rune: -1, Code: key.CodeDeleteBackspace, Direction: key.DirPress})
	default:
		return none, false, fmt.Errorf("%w: unknown command %q", ErrBadScript, st.Op)
	}
	return none, false, nil
}

func mouseEvent(p image.Point, b mouse.Button, dir mouse.Direction) mouse.Event {
	return mouse.Event{X: float32(p.X), Y: float32(p.Y), Button: b, Direction: dir}
}
