// Package config loads the game configuration: the friend's command table,
// maze size, chaser tuning, and opening monologue.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"maze-friend/internal/command"
)

//go:embed default.yaml
var defaultYAML []byte

// Config is the parsed game configuration.
type Config struct {
	Commands []string `yaml:"commands"`
	MaxCount int      `yaml:"max_count"`

	Maze struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"maze"`

	Chaser struct {
		// HeadStart is how many steps the friend takes before the chaser moves.
		HeadStart int `yaml:"head_start"`
	} `yaml:"chaser"`

	Chat struct {
		MaxMessages int `yaml:"max_messages"`
	} `yaml:"chat"`

	Monologue struct {
		Interval time.Duration `yaml:"interval"`
		Lines    []string      `yaml:"lines"`
	} `yaml:"monologue"`
}

// Default returns the embedded configuration.
func Default() *Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded config: %v", err))
	}
	return cfg
}

// Load reads path on top of the defaults. An empty path returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data over the embedded defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		return nil, fmt.Errorf("decode defaults: %w", err)
	}
	// Keys present in data win; sequences replace the default lists.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the command table, then reports every other invalid setting.
func (c *Config) Validate() error {
	if _, err := command.NewTable(c.Commands); err != nil {
		return err
	}
	var errs []error
	if c.MaxCount < 0 {
		errs = append(errs, fmt.Errorf("max_count must be >= 0, got %d", c.MaxCount))
	}
	if c.Maze.Width < 5 || c.Maze.Height < 5 {
		errs = append(errs, fmt.Errorf("maze must be at least 5x5, got %dx%d", c.Maze.Width, c.Maze.Height))
	}
	if c.Chaser.HeadStart < 0 {
		errs = append(errs, fmt.Errorf("chaser.head_start must be >= 0, got %d", c.Chaser.HeadStart))
	}
	if c.Chat.MaxMessages < 1 {
		errs = append(errs, fmt.Errorf("chat.max_messages must be >= 1, got %d", c.Chat.MaxMessages))
	}
	if c.Monologue.Interval < 0 {
		errs = append(errs, fmt.Errorf("monologue.interval must be >= 0, got %v", c.Monologue.Interval))
	}
	return errors.Join(errs...)
}
