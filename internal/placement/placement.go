// Package placement seats the warden, the altar, the pickups, and the
// guardians on distinct floor cells of a generated map.
package placement

import (
	"errors"
	"fmt"

	"github.com/calderforge/runeward/internal/grid"
	"github.com/calderforge/runeward/internal/rng"
)

// ErrInsufficientSpace reports that the map does not hold enough free
// floor cells for everything that must be seated.
var ErrInsufficientSpace = errors.New("placement: insufficient floor space")

// Spec says how much of everything to seat.
type Spec struct {
	Pickups   int // total pickups, runes and fragments together
	Runes     int // pickups flagged as true runes
	Enemies   int // guardians
	AltarBand int // altar must lie within this many tiles of an edge
}

// Layout is the seating produced for one episode. All positions are
// floor cells and pairwise distinct.
type Layout struct {
	Player  grid.Point
	Altar   grid.Point
	Pickups []grid.Point
	Runes   map[grid.Point]bool
	Enemies []grid.Point
}

// Place seats everything for one episode. The free pool is the grid's
// floor cells in row-major order, and every stage samples without
// replacement from what the earlier stages left behind.
//
// Draw order is fixed: player, altar, pickups, enemies, rune flags.
// Changing it changes every seed's layout.
func Place(g *grid.Grid, stream *rng.Stream, spec Spec) (Layout, error) {
	if spec.Pickups < 0 || spec.Runes < 0 || spec.Enemies < 0 {
		return Layout{}, fmt.Errorf("placement: negative count in %+v", spec)
	}
	if spec.Runes > spec.Pickups {
		return Layout{}, fmt.Errorf("placement: %d runes among %d pickups: %w",
			spec.Runes, spec.Pickups, ErrInsufficientSpace)
	}

	pool := g.FloorCells()
	need := 2 + spec.Pickups + spec.Enemies
	if len(pool) < need {
		return Layout{}, fmt.Errorf("placement: need %d floor cells, have %d: %w",
			need, len(pool), ErrInsufficientSpace)
	}

	var out Layout

	// player
	i := stream.Intn(len(pool))
	out.Player = pool[i]
	pool = removeAt(pool, i)

	// altar, restricted to the border band
	band := make([]int, 0, len(pool))
	for idx, p := range pool {
		if inBand(g, p, spec.AltarBand) {
			band = append(band, idx)
		}
	}
	if len(band) == 0 {
		return Layout{}, fmt.Errorf("placement: no free cell within %d tiles of an edge for the altar: %w",
			spec.AltarBand, ErrInsufficientSpace)
	}
	ai := band[stream.Intn(len(band))]
	out.Altar = pool[ai]
	pool = removeAt(pool, ai)

	// pickups
	out.Pickups, pool = drawFrom(pool, stream, spec.Pickups)

	// enemies
	out.Enemies, pool = drawFrom(pool, stream, spec.Enemies)

	// rune flags among the pickups
	out.Runes = make(map[grid.Point]bool, spec.Runes)
	for _, idx := range stream.SampleIndices(len(out.Pickups), spec.Runes) {
		out.Runes[out.Pickups[idx]] = true
	}

	return out, nil
}

// inBand reports whether p lies within band tiles of any grid edge.
func inBand(g *grid.Grid, p grid.Point, band int) bool {
	return p.X < band || p.X > g.W-1-band || p.Y < band || p.Y > g.H-1-band
}

// drawFrom samples k points without replacement, returning them in
// draw order along with the shrunken pool.
func drawFrom(pool []grid.Point, stream *rng.Stream, k int) ([]grid.Point, []grid.Point) {
	idxs := stream.SampleIndices(len(pool), k)
	drawn := make([]grid.Point, k)
	taken := make(map[int]bool, k)
	for n, idx := range idxs {
		drawn[n] = pool[idx]
		taken[idx] = true
	}
	rest := make([]grid.Point, 0, len(pool)-k)
	for idx, p := range pool {
		if !taken[idx] {
			rest = append(rest, p)
		}
	}
	return drawn, rest
}

func removeAt(pts []grid.Point, i int) []grid.Point {
	return append(pts[:i], pts[i+1:]...)
}
