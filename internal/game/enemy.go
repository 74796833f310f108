package game

import (
	"github.com/calderforge/runeward/internal/grid"
	"github.com/calderforge/runeward/internal/rng"
)

// nextEnemyPos computes one guardian's greedy pursuit step. Preference
// order: the diagonal toward the warden when both axes differ, then
// the horizontal leg, then the vertical leg, then the first open cell
// of a shuffled cardinal scan, then staying put. The order and the
// shuffle's stream draws are part of the determinism contract. No
// pathfinding: a guardian stuck behind a wall stays stuck.
func nextEnemyPos(enemy, player grid.Point, g *grid.Grid, stream *rng.Stream) grid.Point {
	dx := sign(player.X - enemy.X)
	dy := sign(player.Y - enemy.Y)

	if dx != 0 && dy != 0 {
		if p := enemy.Add(dx, dy); g.IsFloor(p) {
			return p
		}
	}
	if dx != 0 {
		if p := enemy.Add(dx, 0); g.IsFloor(p) {
			return p
		}
	}
	if dy != 0 {
		if p := enemy.Add(0, dy); g.IsFloor(p) {
			return p
		}
	}

	scan := []grid.Point{
		enemy.Add(1, 0),
		enemy.Add(-1, 0),
		enemy.Add(0, 1),
		enemy.Add(0, -1),
	}
	stream.Shuffle(len(scan), func(i, j int) {
		scan[i], scan[j] = scan[j], scan[i]
	})
	for _, p := range scan {
		if g.IsFloor(p) {
			return p
		}
	}
	return enemy
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
