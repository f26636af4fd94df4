// Package config loads duelcore settings from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/duelcore.yaml
var defaultYAML []byte

// FileName is the config file name searched for in the user and local directories.
const FileName = "duelcore.yaml"

var ErrInvalid = errors.New("invalid config")

// Config holds everything needed to set up and run a game.
type Config struct {
	// Catalog is a YAML or JSON card catalog path; empty uses the embedded one.
	Catalog string `yaml:"catalog"`
	Decks   Decks  `yaml:"decks"`
	Names   Names  `yaml:"names"`

	StartingPlayer int   `yaml:"starting_player"`
	Seed           int64 `yaml:"seed"`
	NoShuffle      bool  `yaml:"no_shuffle"`
	// MaxTurns bounds simulated games; 0 means unbounded.
	MaxTurns int    `yaml:"max_turns"`
	LogLevel string `yaml:"log_level"`
}

// Decks names the deck source for each seat. A value is a plain deck list,
// or a YAML deck file optionally suffixed with "#N" to pick the Nth deck.
type Decks struct {
	Player0 string `yaml:"player0"`
	Player1 string `yaml:"player1"`
}

type Names struct {
	Player0 string `yaml:"player0"`
	Player1 string `yaml:"player1"`
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Config{MaxTurns: 200, LogLevel: "info"}
	}
	return cfg
}

// Load reads the configuration.
// Search order: customPath -> ~/.duelcore/duelcore.yaml -> ./configs/duelcore.yaml -> embedded default
// Values missing from a file keep their defaults.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		loaded := cfg
		if err := yaml.Unmarshal(data, &loaded); err == nil {
			return loaded, loaded.Validate()
		}
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.StartingPlayer != 0 && c.StartingPlayer != 1 {
		return fmt.Errorf("starting_player must be 0 or 1, got %d: %w", c.StartingPlayer, ErrInvalid)
	}
	if c.MaxTurns < 0 {
		return fmt.Errorf("max_turns must not be negative: %w", ErrInvalid)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q: %w", c.LogLevel, ErrInvalid)
	}
	return nil
}

// PlayerNames returns both seat names.
func (c Config) PlayerNames() [2]string {
	return [2]string{c.Names.Player0, c.Names.Player1}
}

// DeckSpecs returns both seat deck sources.
func (c Config) DeckSpecs() [2]string {
	return [2]string{c.Decks.Player0, c.Decks.Player1}
}

// userConfigPath returns the user config file path, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".duelcore", FileName)
}
