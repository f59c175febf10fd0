package album

import (
	"fmt"
	"strings"
)

// Tag is one of the fixed photo categories.
type Tag int

const (
	Travel Tag = iota
	Family
	School
	Work
)

var tagNames = [...]string{
	Travel: "Travel",
	Family: "Family",
	School: "School",
	Work:   "Work",
}

// Tags lists every tag in display order.
func Tags() []Tag { return []Tag{Travel, Family, School, Work} }

func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return fmt.Sprintf("Tag(%d)", int(t))
	}
	return tagNames[t]
}

// ParseTag looks a tag up by name, ignoring case.
func ParseTag(s string) (Tag, error) {
	for i, name := range tagNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Tag(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTag, s)
}
