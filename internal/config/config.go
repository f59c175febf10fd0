package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/lighttable/internal/palette"
)

// Notify holds notification settings.
type Notify struct {
	Gesture      bool
	Delete       bool
	Unrecognized bool
}

// Config holds the application configuration.
type Config struct {
	Palette        string
	PhotoDir       string
	Head           string
	AnnotationMode string
	Notify         Notify
	Palettes       map[string]*palette.Palette
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Palette: "", // empty so the env and built-in defaults still apply
		Notify: Notify{
			Gesture:      false,
			Delete:       true,
			Unrecognized: false,
		},
		Palettes: make(map[string]*palette.Palette),
	}
}

// Lookup returns the palette defined in the config under name.
func (c *Config) Lookup(name string) (*palette.Palette, bool) {
	p, ok := c.Palettes[name]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Palette != "" {
		fmt.Fprintf(&sb, "palette = %s\n", c.Palette)
	}
	if c.PhotoDir != "" {
		fmt.Fprintf(&sb, "photo_dir = %s\n", c.PhotoDir)
	}
	if c.Head != "" {
		fmt.Fprintf(&sb, "head = %s\n", c.Head)
	}
	if c.AnnotationMode != "" {
		fmt.Fprintf(&sb, "annotation_mode = %s\n", c.AnnotationMode)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "gesture = %v\n", c.Notify.Gesture)
	fmt.Fprintf(&sb, "delete = %v\n", c.Notify.Delete)
	fmt.Fprintf(&sb, "unrecognized = %v\n", c.Notify.Unrecognized)
	sb.WriteString("\n")

	// Sorted for deterministic output
	var names []string
	for name := range c.Palettes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := c.Palettes[name]
		fmt.Fprintf(&sb, "[palette.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", p.Name)
		fmt.Fprintf(&sb, "Ink: %s\n", palette.Hex(p.Ink))
		fmt.Fprintf(&sb, "Selected: %s\n", palette.Hex(p.Selected))
		fmt.Fprintf(&sb, "PostIt: %s\n", palette.Hex(p.PostIt))
		fmt.Fprintf(&sb, "PostItText: %s\n", palette.Hex(p.PostItText))
		fmt.Fprintf(&sb, "Gesture: %s\n", palette.Hex(p.Gesture))
		sb.WriteString("\n")
	}

	return sb.String()
}
