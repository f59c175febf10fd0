package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/lighttable/internal/gesture"
	"github.com/example/lighttable/internal/palette"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	var currentPalette *palette.Palette

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			currentPalette = nil

			if strings.HasPrefix(currentSection, "palette.") {
				name := strings.TrimPrefix(currentSection, "palette.")
				// Start with defaults so missing keys are fine
				currentPalette = palette.Default()
				currentPalette.Name = name
				cfg.Palettes[name] = currentPalette
			}
			continue
		}

		// Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") && len(value) >= 2 {
			value = value[1 : len(value)-1]
		}

		if currentPalette != nil {
			if err := palette.SetField(currentPalette, key, value); err != nil {
				return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
			}
		} else if currentSection == "notify" {
			if err := setNotifyField(&cfg.Notify, key, value); err != nil {
				return nil, fmt.Errorf("error in section [notify]: %w", err)
			}
		} else if currentSection == "" {
			if err := setRootField(cfg, key, value); err != nil {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "palette":
		cfg.Palette = value
	case "photo_dir":
		cfg.PhotoDir = value
	case "head":
		if _, err := gesture.ParseHeadMode(value); err != nil {
			return err
		}
		cfg.Head = value
	case "annotation_mode":
		switch strings.ToLower(value) {
		case "drawing", "text":
		default:
			return fmt.Errorf("invalid annotation_mode %q", value)
		}
		cfg.AnnotationMode = strings.ToLower(value)
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "gesture":
		n.Gesture = b
	case "delete":
		n.Delete = b
	case "unrecognized":
		n.Unrecognized = b
	}
	return nil
}
