// Package settings persists the player's sound options between sessions.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Sound holds the options-menu values.
type Sound struct {
	Music  bool    `yaml:"music"`
	SFX    bool    `yaml:"sfx"`
	Volume float64 `yaml:"volume"`
}

// VolumeStep is how far one slider nudge moves the volume.
const VolumeStep = 0.1

// Default returns the settings used on first launch.
func Default() Sound {
	return Sound{Music: true, SFX: true, Volume: 0.8}
}

// SetVolume clamps v to [0, 1] and rounds it to the slider's resolution.
func (s *Sound) SetVolume(v float64) {
	v = float64(int(v*100+0.5)) / 100
	s.Volume = min(max(v, 0), 1)
}

// Dir returns the directory holding settings.yaml.
// Follows the XDG base directory layout: $XDG_CONFIG_HOME/maze-friend,
// defaulting to ~/.config/maze-friend.
func Dir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "maze-friend"), nil
}

// Path returns the default settings file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.yaml"), nil
}

// Load reads settings from path. A missing file yields Default().
func Load(path string) (Sound, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	s.SetVolume(s.Volume)
	return s, nil
}

// Save writes s to path, creating parent directories.
func Save(path string, s Sound) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
