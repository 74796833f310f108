package game

import (
	"sort"

	"github.com/calderforge/runeward/internal/grid"
)

// Snapshot captures the complete episode state for rendering,
// determinism testing, and replay. Read-only: mutating a snapshot
// never touches the game it came from.
type Snapshot struct {
	Seed   int64
	Width  int
	Height int
	Cells  []grid.Cell // row-major copy of the map

	Player  grid.Point
	Altar   grid.Point
	Pickups []grid.Point // uncollected, in placement order
	Runes   []grid.Point // rune flags, sorted row-major
	Enemies []grid.Point

	RunesCollected int
	RunesRequired  int
	Moves          int
	GameOver       bool
	Victory        bool
	Message        string
}

// Snapshot returns a read-only copy of the episode for renderers and
// determinism checks.
func (g *Game) Snapshot() Snapshot {
	cells := make([]grid.Cell, len(g.grid.Cells))
	copy(cells, g.grid.Cells)

	pickups := make([]grid.Point, len(g.pickups))
	copy(pickups, g.pickups)
	enemies := make([]grid.Point, len(g.enemies))
	copy(enemies, g.enemies)

	runes := make([]grid.Point, 0, len(g.runes))
	for p := range g.runes {
		runes = append(runes, p)
	}
	sort.Slice(runes, func(i, j int) bool {
		if runes[i].Y != runes[j].Y {
			return runes[i].Y < runes[j].Y
		}
		return runes[i].X < runes[j].X
	})

	return Snapshot{
		Seed:           g.seed,
		Width:          g.grid.W,
		Height:         g.grid.H,
		Cells:          cells,
		Player:         g.player,
		Altar:          g.altar,
		Pickups:        pickups,
		Runes:          runes,
		Enemies:        enemies,
		RunesCollected: g.runesCollected,
		RunesRequired:  g.cfg.Runes,
		Moves:          g.moves,
		GameOver:       g.gameOver,
		Victory:        g.victory,
		Message:        g.message,
	}
}

// IsFloor reports whether the snapshot cell at p is open ground.
// Out-of-bounds reads as wall, like the live grid.
func (s *Snapshot) IsFloor(p grid.Point) bool {
	if p.X < 0 || p.X >= s.Width || p.Y < 0 || p.Y >= s.Height {
		return false
	}
	return s.Cells[p.Y*s.Width+p.X] == grid.Floor
}

// Hash folds the snapshot into one comparable value for determinism
// tests. The message is presentation, not simulation, and stays out
// of the hash.
func (s Snapshot) Hash() uint64 {
	h := uint64(s.Seed)
	h = h*31 + uint64(s.Width)
	h = h*31 + uint64(s.Height)
	for _, c := range s.Cells {
		h = h*31 + uint64(c)
	}
	h = hashPoint(h, s.Player)
	h = hashPoint(h, s.Altar)
	h = h*31 + uint64(len(s.Pickups))
	for _, p := range s.Pickups {
		h = hashPoint(h, p)
	}
	h = h*31 + uint64(len(s.Runes))
	for _, p := range s.Runes {
		h = hashPoint(h, p)
	}
	h = h*31 + uint64(len(s.Enemies))
	for _, p := range s.Enemies {
		h = hashPoint(h, p)
	}
	h = h*31 + uint64(s.RunesCollected)
	h = h*31 + uint64(s.RunesRequired)
	h = h*31 + uint64(s.Moves)
	h = h*31 + boolBit(s.GameOver)
	h = h*31 + boolBit(s.Victory)
	return h
}

func hashPoint(h uint64, p grid.Point) uint64 {
	h = h*31 + uint64(p.X)
	h = h*31 + uint64(p.Y)
	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
