package config

import (
	_ "embed"
)

//go:embed defaults/runeward.yaml
var defaultYAML []byte

// Default returns the standard ruin configuration.
func Default() Config {
	return Config{
		Game: GameSection{
			Width:     30,
			Height:    20,
			Pickups:   6,
			Runes:     3,
			Enemies:   3,
			AltarBand: 3,
		},
		Map: MapSection{
			Rooms:       6,
			MinRoomSize: 4,
			MaxRoomSize: 8,
			WallScatter: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
