package gesture

import (
	"fmt"
	"strconv"
	"strings"
)

// Unbounded marks an Element without an upper repetition limit.
const Unbounded = -1

// Class is a set of symbols a single position of a vector may hold.
type Class struct {
	any     bool
	members string
}

// AnySymbol matches every symbol.
var AnySymbol = Class{any: true}

// ClassOf returns the class holding exactly the given directions.
func ClassOf(dirs ...Direction) Class {
	var sb strings.Builder
	for _, d := range dirs {
		if strings.IndexByte(sb.String(), byte(d)) < 0 {
			sb.WriteByte(byte(d))
		}
	}
	return Class{members: sb.String()}
}

// Contains reports whether b is a member of the class.
func (c Class) Contains(b byte) bool {
	return c.any || strings.IndexByte(c.members, b) >= 0
}

// IsAny reports whether the class is the wildcard.
func (c Class) IsAny() bool { return c.any }

// String renders the class the way templates spell it.
func (c Class) String() string {
	if c.any {
		return "."
	}
	if len(c.members) == 1 {
		return c.members
	}
	return "[" + c.members + "]"
}

// Element is one phase of a pattern: a run of Min to Max symbols drawn from
// Class. A possessive element always takes the longest run it can and never
// gives symbols back to later elements.
type Element struct {
	Class      Class
	Min        int
	Max        int
	Possessive bool
}

// String renders the element in template syntax.
func (e Element) String() string {
	var q string
	switch {
	case e.Min == 1 && e.Max == 1:
		q = ""
	case e.Min == 1 && e.Max == Unbounded:
		q = "+"
	case e.Min == 0 && e.Max == Unbounded:
		q = "*"
	case e.Min == 0 && e.Max == 1:
		q = "?"
	case e.Min == e.Max:
		q = "{" + strconv.Itoa(e.Min) + "}"
	case e.Max == Unbounded:
		q = "{" + strconv.Itoa(e.Min) + ",}"
	default:
		q = "{" + strconv.Itoa(e.Min) + "," + strconv.Itoa(e.Max) + "}"
	}
	if e.Possessive {
		q += "+"
	}
	return e.Class.String() + q
}

// run returns how many symbols starting at pos the element could consume.
func (e Element) run(vector string, pos int) int {
	n := 0
	for pos+n < len(vector) && (e.Max == Unbounded || n < e.Max) && e.Class.Contains(vector[pos+n]) {
		n++
	}
	return n
}

// Pattern is a compiled template. The whole vector must be consumed by the
// elements, in order.
type Pattern struct {
	source   string
	elements []Element
}

// Compile parses an anchored template such as "^.{0,2}+[ECS]+[WDS]+.{0,2}+$".
//
// Supported syntax: the ^ and $ anchors (both required), the . wildcard,
// bracketed symbol classes, bare symbols, and the quantifiers +, *, ?, {m},
// {m,} and {m,n}. A + directly after a quantifier makes it possessive.
func Compile(template string) (*Pattern, error) {
	c := compiler{src: template}
	elements, err := c.parse()
	if err != nil {
		return nil, err
	}
	return &Pattern{source: template, elements: elements}, nil
}

// MustCompile is like Compile but panics on malformed templates.
func MustCompile(template string) *Pattern {
	p, err := Compile(template)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the template the pattern was compiled from.
func (p *Pattern) String() string { return p.source }

// Elements returns a copy of the compiled elements.
func (p *Pattern) Elements() []Element {
	out := make([]Element, len(p.elements))
	copy(out, p.elements)
	return out
}

// Match reports whether vector satisfies the pattern with every wildcard run
// free to take anywhere between its bounds.
func (p *Pattern) Match(vector string) bool {
	return p.match(vector, false)
}

// MatchPossessive is like Match but honours possessive quantifiers, so a
// leading ".{0,2}+" always swallows min(2, len(vector)) symbols.
func (p *Pattern) MatchPossessive(vector string) bool {
	return p.match(vector, true)
}

// match simulates the element sequence over the set of reachable offsets.
func (p *Pattern) match(vector string, possessive bool) bool {
	n := len(vector)
	cur := make([]bool, n+1)
	next := make([]bool, n+1)
	cur[0] = true
	for _, e := range p.elements {
		reached := false
		for i := range next {
			next[i] = false
		}
		for pos := 0; pos <= n; pos++ {
			if !cur[pos] {
				continue
			}
			r := e.run(vector, pos)
			if r < e.Min {
				continue
			}
			if possessive && e.Possessive {
				next[pos+r] = true
				reached = true
				continue
			}
			for k := e.Min; k <= r; k++ {
				next[pos+k] = true
				reached = true
			}
		}
		if !reached {
			return false
		}
		cur, next = next, cur
	}
	return cur[n]
}

type compiler struct {
	src string
	pos int
}

func (c *compiler) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %q at offset %d: %s", ErrBadTemplate, c.src, c.pos, fmt.Sprintf(format, args...))
}

func (c *compiler) parse() ([]Element, error) {
	if !strings.HasPrefix(c.src, "^") {
		return nil, c.errorf("missing leading ^")
	}
	c.pos = 1
	var elements []Element
	for c.pos < len(c.src) {
		if c.src[c.pos] == '$' {
			if c.pos != len(c.src)-1 {
				return nil, c.errorf("$ before end of template")
			}
			if len(elements) == 0 {
				return nil, c.errorf("empty template")
			}
			return elements, nil
		}
		class, err := c.atom()
		if err != nil {
			return nil, err
		}
		e := Element{Class: class}
		if err := c.quantifier(&e); err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}
	return nil, c.errorf("missing trailing $")
}

func (c *compiler) atom() (Class, error) {
	switch ch := c.src[c.pos]; ch {
	case '.':
		c.pos++
		return AnySymbol, nil
	case '[':
		end := strings.IndexByte(c.src[c.pos:], ']')
		if end < 0 {
			return Class{}, c.errorf("unterminated class")
		}
		body := c.src[c.pos+1 : c.pos+end]
		if body == "" {
			return Class{}, c.errorf("empty class")
		}
		dirs := make([]Direction, 0, len(body))
		for i := 0; i < len(body); i++ {
			d := Direction(body[i])
			if !d.Valid() {
				return Class{}, c.errorf("symbol %q is not a direction", body[i])
			}
			dirs = append(dirs, d)
		}
		c.pos += end + 1
		return ClassOf(dirs...), nil
	default:
		d := Direction(ch)
		if !d.Valid() {
			return Class{}, c.errorf("unexpected %q", ch)
		}
		c.pos++
		return ClassOf(d), nil
	}
}

func (c *compiler) quantifier(e *Element) error {
	e.Min, e.Max = 1, 1
	if c.pos >= len(c.src) {
		return nil
	}
	switch c.src[c.pos] {
	case '+':
		e.Min, e.Max = 1, Unbounded
		c.pos++
	case '*':
		e.Min, e.Max = 0, Unbounded
		c.pos++
	case '?':
		e.Min, e.Max = 0, 1
		c.pos++
	case '{':
		end := strings.IndexByte(c.src[c.pos:], '}')
		if end < 0 {
			return c.errorf("unterminated repetition")
		}
		body := c.src[c.pos+1 : c.pos+end]
		lo, hi, found := strings.Cut(body, ",")
		least, err := strconv.Atoi(lo)
		if err != nil || least < 0 {
			return c.errorf("bad repetition %q", body)
		}
		most := least
		if found {
			if hi == "" {
				most = Unbounded
			} else if most, err = strconv.Atoi(hi); err != nil || most < least {
				return c.errorf("bad repetition %q", body)
			}
		}
		e.Min, e.Max = least, most
		c.pos += end + 1
	default:
		return nil
	}
	if c.pos < len(c.src) && c.src[c.pos] == '+' {
		e.Possessive = true
		c.pos++
	}
	return nil
}
