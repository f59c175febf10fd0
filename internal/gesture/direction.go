package gesture

// Direction is one symbol of a direction vector.
type Direction byte

const (
	North     Direction = 'N'
	South     Direction = 'S'
	East      Direction = 'E'
	West      Direction = 'W'
	Northeast Direction = 'B'
	Northwest Direction = 'A'
	Southeast Direction = 'C'
	Southwest Direction = 'D'
)

// Directions lists the alphabet in compass order starting at north.
var Directions = []Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}

var directionNames = map[Direction]string{
	North:     "north",
	South:     "south",
	East:      "east",
	West:      "west",
	Northeast: "northeast",
	Northwest: "northwest",
	Southeast: "southeast",
	Southwest: "southwest",
}

// Valid reports whether d belongs to the alphabet.
func (d Direction) Valid() bool {
	_, ok := directionNames[d]
	return ok
}

// Name returns the compass name of d, or "" for bytes outside the alphabet.
func (d Direction) Name() string {
	return directionNames[d]
}

// String returns the single-letter symbol used in direction vectors.
func (d Direction) String() string {
	return string(rune(d))
}
