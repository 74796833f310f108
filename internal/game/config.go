package game

import (
	"fmt"

	"github.com/calderforge/runeward/internal/mapgen"
)

// Config carries every knob an episode depends on. Nothing in here is
// baked into engine logic; the platform layer supplies it.
type Config struct {
	Width     int // grid width in cells
	Height    int // grid height in cells
	Pickups   int // total pickups, runes and fragments together
	Runes     int // runes required for victory
	Enemies   int // guardians roaming the ruin
	AltarBand int // altar must lie within this many tiles of an edge

	Map mapgen.Params // generation shape of the ruin
}

// DefaultConfig returns the standard ruin: a 30x20 map holding six
// pickups, three of them runes, and three guardians.
func DefaultConfig() Config {
	return Config{
		Width:     30,
		Height:    20,
		Pickups:   6,
		Runes:     3,
		Enemies:   3,
		AltarBand: 3,
		Map:       mapgen.DefaultParams(),
	}
}

// Validate reports the first problem with the configuration.
func (c Config) Validate() error {
	if c.Width < 5 || c.Height < 5 {
		return fmt.Errorf("game: map %dx%d too small to play", c.Width, c.Height)
	}
	if c.Pickups < 1 {
		return fmt.Errorf("game: need at least one pickup, got %d", c.Pickups)
	}
	if c.Runes < 1 || c.Runes > c.Pickups {
		return fmt.Errorf("game: rune count %d must be within [1,%d]", c.Runes, c.Pickups)
	}
	if c.Enemies < 0 {
		return fmt.Errorf("game: negative enemy count %d", c.Enemies)
	}
	if c.AltarBand < 1 {
		return fmt.Errorf("game: altar band %d must be at least 1", c.AltarBand)
	}
	return nil
}
