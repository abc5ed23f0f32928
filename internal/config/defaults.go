package config

import (
	_ "embed"
)

//go:embed defaults/fishfeast.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/fishfeast.yaml and is used if the embedded file fails to parse.
func DefaultConfig() Config {
	return Config{
		Arena: ArenaConfig{
			CellWidth:  8,
			CellHeight: 16,
			MinWidth:   320,
			MinHeight:  320,
		},
		Frame: FrameConfig{
			TickRate: 60,
		},
		Input: InputConfig{
			DeadZone:  6,
			KeyHoldMS: 500,
		},
		Storage: StorageConfig{
			Path:    "~/.fishfeast/scores.db",
			BestKey: "fish-best",
		},
	}
}
