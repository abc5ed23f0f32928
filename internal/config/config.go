// Package config provides YAML-based configuration loading for Fish Feast.
// Gameplay tuning is fixed in code; this covers the terminal projection,
// frame pacing, input handling, persistence and the spectator feed.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all configuration for a Fish Feast process.
type Config struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Frame   FrameConfig   `yaml:"frame"`
	Input   InputConfig   `yaml:"input"`
	Storage StorageConfig `yaml:"storage"`
	Feed    FeedConfig    `yaml:"feed"`
}

// ArenaConfig maps terminal cells onto arena units.
type ArenaConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // Arena units per terminal column
	CellHeight float64 `yaml:"cell_height"` // Arena units per terminal row
	MinWidth   float64 `yaml:"min_width"`   // Smallest arena width in units
	MinHeight  float64 `yaml:"min_height"`  // Smallest arena height in units
}

// FrameConfig defines how often the terminal requests a frame.
type FrameConfig struct {
	TickRate int `yaml:"tick_rate"` // Frames per second
}

// InputConfig defines pointer and keyboard sampling parameters.
type InputConfig struct {
	DeadZone  float64 `yaml:"dead_zone"`   // Drag dead zone in display units
	KeyHoldMS int     `yaml:"key_hold_ms"` // How long a key press counts as held
}

// KeyHold returns the key hold window as a duration.
func (c InputConfig) KeyHold() time.Duration {
	return time.Duration(c.KeyHoldMS) * time.Millisecond
}

// StorageConfig defines where scores are persisted.
type StorageConfig struct {
	Path    string `yaml:"path"`     // SQLite database path, ~ is expanded
	BestKey string `yaml:"best_key"` // Name the best score is stored under
}

// FeedConfig defines the spectator WebSocket feed.
type FeedConfig struct {
	Address string `yaml:"address"` // Listen address, empty disables the feed
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	var errs []error

	if c.Arena.CellWidth <= 0 || c.Arena.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("arena cell size must be positive, got %gx%g", c.Arena.CellWidth, c.Arena.CellHeight))
	}
	if c.Arena.MinWidth < 0 || c.Arena.MinHeight < 0 {
		errs = append(errs, errors.New("arena minimum size must not be negative"))
	}
	if c.Frame.TickRate < 1 || c.Frame.TickRate > 240 {
		errs = append(errs, fmt.Errorf("frame tick_rate must be in [1, 240], got %d", c.Frame.TickRate))
	}
	if c.Input.DeadZone < 0 {
		errs = append(errs, fmt.Errorf("input dead_zone must not be negative, got %g", c.Input.DeadZone))
	}
	if c.Input.KeyHoldMS < 0 {
		errs = append(errs, fmt.Errorf("input key_hold_ms must not be negative, got %d", c.Input.KeyHoldMS))
	}
	if c.Storage.BestKey == "" {
		errs = append(errs, errors.New("storage best_key must not be empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
