// Package config provides YAML-based configuration loading for the
// Runeward engine and platform.
package config

import (
	"github.com/calderforge/runeward/internal/game"
	"github.com/calderforge/runeward/internal/mapgen"
)

// Config is the on-disk configuration of the ruin.
type Config struct {
	Game GameSection `yaml:"game"`
	Map  MapSection  `yaml:"map"`
}

// GameSection holds the episode constants.
type GameSection struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Pickups   int `yaml:"pickups"`
	Runes     int `yaml:"runes"`
	Enemies   int `yaml:"enemies"`
	AltarBand int `yaml:"altar_band"`
}

// MapSection holds the generation shape.
type MapSection struct {
	Rooms       int `yaml:"rooms"`
	MinRoomSize int `yaml:"min_room_size"`
	MaxRoomSize int `yaml:"max_room_size"`
	WallScatter int `yaml:"wall_scatter"`
}

// GameConfig converts the file form into the engine's configuration.
func (c Config) GameConfig() game.Config {
	return game.Config{
		Width:     c.Game.Width,
		Height:    c.Game.Height,
		Pickups:   c.Game.Pickups,
		Runes:     c.Game.Runes,
		Enemies:   c.Game.Enemies,
		AltarBand: c.Game.AltarBand,
		Map: mapgen.Params{
			Rooms:       c.Map.Rooms,
			MinRoomSize: c.Map.MinRoomSize,
			MaxRoomSize: c.Map.MaxRoomSize,
			WallScatter: c.Map.WallScatter,
		},
	}
}
