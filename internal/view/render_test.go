package view

import (
	"strings"
	"testing"

	"github.com/calderforge/runeward/internal/game"
	"github.com/calderforge/runeward/internal/grid"
)

// corridorSnapshot builds a small hand-made episode view: a 10x5 map
// with one open row, the warden at the left end, a pickup in the
// middle, the altar at the right end, one guardian.
func corridorSnapshot() game.Snapshot {
	const w, h = 10, 5
	cells := make([]grid.Cell, w*h)
	for x := 1; x < w-1; x++ {
		cells[2*w+x] = grid.Floor
	}
	return game.Snapshot{
		Seed:           42,
		Width:          w,
		Height:         h,
		Cells:          cells,
		Player:         grid.Point{X: 1, Y: 2},
		Altar:          grid.Point{X: 8, Y: 2},
		Pickups:        []grid.Point{{X: 5, Y: 2}},
		Runes:          []grid.Point{{X: 5, Y: 2}},
		Enemies:        []grid.Point{{X: 6, Y: 2}},
		RunesRequired:  3,
		RunesCollected: 1,
		Moves:          7,
		Message:        "A rune hums in your hand! (1/3)",
	}
}

func TestRenderGlyphs(t *testing.T) {
	snap := corridorSnapshot()
	s := Render(snap)

	if got := s.Get(snap.Player.X, snap.Player.Y); got != '@' {
		t.Errorf("player cell = %q, expected '@'", got)
	}
	if got := s.Get(snap.Altar.X, snap.Altar.Y); got != 'Ω' {
		t.Errorf("altar cell = %q, expected 'Ω'", got)
	}
	if got := s.Get(5, 2); got != '*' {
		t.Errorf("pickup cell = %q, expected '*'", got)
	}
	if got := s.Get(6, 2); got != 'g' {
		t.Errorf("enemy cell = %q, expected 'g'", got)
	}
	if got := s.Get(0, 0); got != '#' {
		t.Errorf("border cell = %q, expected '#'", got)
	}
	if got := s.Get(2, 2); got != '·' {
		t.Errorf("floor cell = %q, expected '·'", got)
	}
}

func TestRenderColors(t *testing.T) {
	snap := corridorSnapshot()
	s := Render(snap)

	if c := s.GetCell(snap.Player.X, snap.Player.Y); c.Color != ColorBrightGreen {
		t.Errorf("player color = %d, expected bright green", c.Color)
	}
	if c := s.GetCell(6, 2); c.Color != ColorBrightRed {
		t.Errorf("enemy color = %d, expected bright red", c.Color)
	}
}

func TestRenderHUD(t *testing.T) {
	snap := corridorSnapshot()
	s := Render(snap)

	status := strings.TrimRight(s.Row(snap.Height), " ")
	if status != "runes 1/3  moves 7  pickups left 1" {
		t.Errorf("status line = %q", status)
	}
	if msg := strings.TrimRight(s.Row(snap.Height+1), " "); msg != snap.Message {
		t.Errorf("message line = %q, expected %q", msg, snap.Message)
	}
	if seed := strings.TrimRight(s.Row(snap.Height+2), " "); seed != "seed 42" {
		t.Errorf("seed line = %q", seed)
	}
}

func TestRenderPlayerDrawnLast(t *testing.T) {
	snap := corridorSnapshot()
	// Guardian has just caught the warden: same cell.
	snap.Enemies = []grid.Point{snap.Player}

	s := Render(snap)
	if got := s.Get(snap.Player.X, snap.Player.Y); got != '@' {
		t.Errorf("player should be drawn over the guardian, got %q", got)
	}
}

func TestRenderGameOverBanner(t *testing.T) {
	snap := corridorSnapshot()
	snap.GameOver = true
	snap.Victory = true

	s := Render(snap)
	frame := s.String()
	if !strings.Contains(frame, "THE RUIN IS RESTORED") {
		t.Error("victory frame should contain the victory banner")
	}
	if !strings.Contains(frame, "r restart") {
		t.Error("terminal frame should show the restart hint")
	}

	snap.Victory = false
	frame = Render(snap).String()
	if !strings.Contains(frame, "THE RUIN GOES DARK") {
		t.Error("defeat frame should contain the defeat banner")
	}
}

func TestRenderASCII(t *testing.T) {
	snap := corridorSnapshot()
	out := RenderASCII(snap)

	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "Seed: 42 | Runes: 1/3 | Moves: 7") {
		t.Errorf("header = %q", lines[0])
	}

	// Header + rule, then the map rows.
	mapRow := lines[2+2]
	if mapRow != "#@...*g.A#" {
		t.Errorf("corridor row = %q, expected \"#@...*g.A#\"", mapRow)
	}
	if lines[2] != strings.Repeat("#", snap.Width) {
		t.Errorf("top border row = %q", lines[2])
	}

	if !strings.Contains(out, snap.Message) {
		t.Error("ASCII output should include the message footer")
	}
}

func TestRenderASCIIRunesIndistinguishable(t *testing.T) {
	snap := corridorSnapshot()
	snap.Pickups = []grid.Point{{X: 4, Y: 2}, {X: 5, Y: 2}}
	snap.Runes = []grid.Point{{X: 5, Y: 2}}

	out := RenderASCII(snap)
	if strings.Count(out, "*") != 2 {
		t.Error("runes and fragments must share one glyph")
	}
}
