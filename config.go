package cardboard

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the board configuration. CardWidth and CardHeight are the full
// default footprint of objects that have no Size of their own.
type Config struct {
	CardWidth  float64 `toml:"card_width"`
	CardHeight float64 `toml:"card_height"`
}

// DefaultConfig returns the default configuration: 100x144 cards.
func DefaultConfig() Config {
	return Config{CardWidth: 100, CardHeight: 144}
}

// Validate reports whether the default card size is usable.
func (c Config) Validate() error {
	if c.CardWidth <= 0 || c.CardHeight <= 0 {
		return fmt.Errorf("cardboard: card size must be positive, got %vx%v", c.CardWidth, c.CardHeight)
	}
	return nil
}

// LoadConfig reads a TOML config file. Keys missing from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("cardboard: failed to read config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the config to path as TOML.
func (c Config) Save(path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("cardboard: failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("cardboard: failed to write config %s: %w", path, err)
	}
	return nil
}
