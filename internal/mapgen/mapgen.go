// Package mapgen builds the ruin map: rooms carved out of solid rock,
// rubble scattered through the interior, and L-shaped corridors
// chaining the rooms together.
package mapgen

import (
	"fmt"

	"github.com/calderforge/runeward/internal/grid"
	"github.com/calderforge/runeward/internal/rng"
)

// Params configures procedural generation for one ruin.
type Params struct {
	Rooms       int // rooms carved into the rock
	MinRoomSize int // smallest room edge, in cells
	MaxRoomSize int // largest room edge, in cells
	WallScatter int // rubble cells dropped through the interior after carving
}

// DefaultParams returns the generation shape of the standard ruin.
func DefaultParams() Params {
	return Params{
		Rooms:       6,
		MinRoomSize: 4,
		MaxRoomSize: 8,
		WallScatter: 30,
	}
}

// Generate builds a w x h map from the stream. The border is always
// wall, consecutive rooms are connected by corridors, and corridor
// carving overwrites rubble so the room chain stays open. Rubble may
// still pocket off floor cells away from the chain; callers must not
// assume every floor cell is reachable.
//
// Draw order is fixed: rooms, then rubble, then corridor bends.
// Changing it changes the map every seed produces.
func Generate(w, h int, stream *rng.Stream, p Params) (*grid.Grid, error) {
	g, _, err := generate(w, h, stream, p)
	return g, err
}

func generate(w, h int, stream *rng.Stream, p Params) (*grid.Grid, []grid.Rect, error) {
	if err := validate(w, h, p); err != nil {
		return nil, nil, err
	}
	g := grid.New(w, h)
	rooms := carveRooms(g, stream, p)
	scatterRubble(g, stream, p.WallScatter)
	for i := 1; i < len(rooms); i++ {
		carveCorridor(g, rooms[i-1].Center(), rooms[i].Center(), stream)
	}
	return g, rooms, nil
}

func validate(w, h int, p Params) error {
	if p.Rooms < 1 {
		return fmt.Errorf("mapgen: need at least one room, got %d", p.Rooms)
	}
	if p.MinRoomSize < 1 || p.MaxRoomSize < p.MinRoomSize {
		return fmt.Errorf("mapgen: bad room size range [%d,%d]", p.MinRoomSize, p.MaxRoomSize)
	}
	if p.WallScatter < 0 {
		return fmt.Errorf("mapgen: negative wall scatter %d", p.WallScatter)
	}
	if w < p.MinRoomSize+2 || h < p.MinRoomSize+2 {
		return fmt.Errorf("mapgen: %dx%d map cannot hold a %d-cell room inside its border", w, h, p.MinRoomSize)
	}
	return nil
}

// carveRooms digs rectangles of floor at random interior positions.
// Rooms may overlap; overlap just merges open space.
func carveRooms(g *grid.Grid, stream *rng.Stream, p Params) []grid.Rect {
	maxW := p.MaxRoomSize
	if maxW > g.W-2 {
		maxW = g.W - 2
	}
	maxH := p.MaxRoomSize
	if maxH > g.H-2 {
		maxH = g.H - 2
	}

	rooms := make([]grid.Rect, 0, p.Rooms)
	for i := 0; i < p.Rooms; i++ {
		rw := stream.IntBetween(p.MinRoomSize, maxW)
		rh := stream.IntBetween(p.MinRoomSize, maxH)
		x := stream.IntBetween(1, g.W-1-rw)
		y := stream.IntBetween(1, g.H-1-rh)
		room := grid.Rect{X1: x, Y1: y, X2: x + rw - 1, Y2: y + rh - 1}
		for yy := room.Y1; yy <= room.Y2; yy++ {
			for xx := room.X1; xx <= room.X2; xx++ {
				g.Set(grid.Pt(xx, yy), grid.Floor)
			}
		}
		rooms = append(rooms, room)
	}
	return rooms
}

// scatterRubble drops single wall cells through the interior. Rubble
// that lands on a corridor is carved away again afterwards.
func scatterRubble(g *grid.Grid, stream *rng.Stream, count int) {
	for i := 0; i < count; i++ {
		x := stream.IntBetween(1, g.W-2)
		y := stream.IntBetween(1, g.H-2)
		g.Set(grid.Pt(x, y), grid.Wall)
	}
}

// carveCorridor digs an L-shaped tunnel between two points, leg order
// chosen by the stream.
func carveCorridor(g *grid.Grid, from, to grid.Point, stream *rng.Stream) {
	if stream.Intn(2) == 0 {
		carveH(g, from.X, to.X, from.Y)
		carveV(g, from.Y, to.Y, to.X)
	} else {
		carveV(g, from.Y, to.Y, from.X)
		carveH(g, from.X, to.X, to.Y)
	}
}

func carveH(g *grid.Grid, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		carveCell(g, grid.Pt(x, y))
	}
}

func carveV(g *grid.Grid, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		carveCell(g, grid.Pt(x, y))
	}
}

// carveCell opens a single cell, refusing to break the border.
func carveCell(g *grid.Grid, p grid.Point) {
	if p.X < 1 || p.X > g.W-2 || p.Y < 1 || p.Y > g.H-2 {
		return
	}
	g.Set(p, grid.Floor)
}
