package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Loader finds, reads and writes the configuration file.
type Loader struct {
	Version      string // Build version, used to determine dev mode
	OverridePath string // Set at compile time if needed
	Home         string // Defaults to the user's home directory
	WorkDir      string // Defaults to the current directory
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load attempts to load the configuration.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil // No config file found, return defaults
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// GetConfigPath returns the path to the configuration file, or empty string if not found.
func (l *Loader) GetConfigPath() string {
	// 1. Variable override path
	if l.OverridePath != "" {
		if _, err := os.Stat(l.OverridePath); err == nil {
			return l.OverridePath
		}
	}

	// 2. Local run directory (dev mode)
	if l.Version == "dev" {
		localPath := filepath.Join(l.workDir(), ".lighttablerc")
		if _, err := os.Stat(localPath); err == nil {
			return localPath
		}
	}

	// 3. XDG Config Path
	xdgPath := l.DefaultPath()
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}

	// Fallback names
	xdgPath = filepath.Join(l.home(), ".config", "lighttable", "lighttable.rc")
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}

	return ""
}

// DefaultPath is where a new configuration file is written.
func (l *Loader) DefaultPath() string {
	return filepath.Join(l.home(), ".config", "lighttable", "config.rc")
}

// Save writes cfg to the file Load would read, or to DefaultPath when no
// file exists yet. It returns the path written.
func (l *Loader) Save(cfg *Config) (string, error) {
	path := l.GetConfigPath()
	if path == "" {
		path = l.DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(cfg.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return path, nil
}

func (l *Loader) home() string {
	if l.Home != "" {
		return l.Home
	}
	home, _ := os.UserHomeDir()
	return home
}

func (l *Loader) workDir() string {
	if l.WorkDir != "" {
		return l.WorkDir
	}
	wd, _ := os.Getwd()
	return wd
}
