// Package clipboard copies direction vectors to and from the desktop
// clipboard as plain text.
package clipboard

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/example/lighttable/internal/gesture"
)

var (
	errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")
	// ErrNotVector is returned when the clipboard text is not a direction vector.
	ErrNotVector = errors.New("clipboard does not hold a direction vector")
)

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// WriteVector publishes a direction vector.
func WriteVector(vector string) error {
	v, err := cleanVector(vector)
	if err != nil {
		return err
	}
	return WriteText(v)
}

// ReadVector reads a direction vector, ignoring surrounding whitespace.
func ReadVector() (string, error) {
	text, err := ReadText()
	if err != nil {
		return "", err
	}
	return cleanVector(text)
}

func cleanVector(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i := 0; i < len(s); i++ {
		if !gesture.Direction(s[i]).Valid() {
			return "", fmt.Errorf("%w: unexpected %q at %d", ErrNotVector, s[i], i)
		}
	}
	return s, nil
}
