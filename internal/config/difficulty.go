package config

import (
	"fmt"

	"github.com/calderforge/runeward/internal/game"
)

// Preset scales an episode configuration up or down without touching
// the map dimensions: more or fewer guardians, more or less rubble,
// and extra decoy fragments on the harder settings.
type Preset struct {
	Name         string
	EnemyDelta   int     // added to the configured guardian count
	PickupDelta  int     // added to the configured pickup count
	ScatterScale float64 // multiplies the rubble scatter
}

// Presets, mildest first.
var presets = []Preset{
	{Name: "easy", EnemyDelta: -1, PickupDelta: 0, ScatterScale: 0.5},
	{Name: "normal", EnemyDelta: 0, PickupDelta: 0, ScatterScale: 1.0},
	{Name: "hard", EnemyDelta: 2, PickupDelta: 2, ScatterScale: 1.5},
}

// PresetByName looks up a difficulty preset.
func PresetByName(name string) (Preset, error) {
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("config: unknown difficulty preset %q", name)
}

// Apply returns a copy of the configuration with the preset applied.
// Counts never drop below the playable minimum.
func (p Preset) Apply(cfg game.Config) game.Config {
	cfg.Enemies += p.EnemyDelta
	if cfg.Enemies < 0 {
		cfg.Enemies = 0
	}

	cfg.Pickups += p.PickupDelta
	if cfg.Pickups < cfg.Runes {
		cfg.Pickups = cfg.Runes
	}

	cfg.Map.WallScatter = int(float64(cfg.Map.WallScatter) * p.ScatterScale)

	return cfg
}
