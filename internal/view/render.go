package view

import (
	"fmt"
	"strings"

	"github.com/calderforge/runeward/internal/game"
	"github.com/calderforge/runeward/internal/grid"
)

// Map glyphs. Runes and fragments share one glyph on purpose: the
// player cannot tell them apart until they step on one.
const (
	glyphWall   = '#'
	glyphFloor  = '·'
	glyphAltar  = 'Ω'
	glyphPickup = '*'
	glyphEnemy  = 'g'
	glyphPlayer = '@'
)

const minFrameWidth = 46

// Render draws one snapshot into a fresh frame: the map with the HUD
// lines below it. Read-only with respect to the snapshot; draw order
// is map, altar, pickups, guardians, warden last.
func Render(snap game.Snapshot) *Screen {
	w := snap.Width
	if w < minFrameWidth {
		w = minFrameWidth
	}
	s := NewScreen(w, snap.Height+3)

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			if snap.Cells[y*snap.Width+x] == grid.Floor {
				s.SetCell(x, y, Cell{Rune: glyphFloor, Color: ColorGray})
			} else {
				s.SetCell(x, y, Cell{Rune: glyphWall, Color: ColorBlue})
			}
		}
	}

	s.SetCell(snap.Altar.X, snap.Altar.Y, Cell{Rune: glyphAltar, Color: ColorBrightYellow})
	for _, p := range snap.Pickups {
		s.SetCell(p.X, p.Y, Cell{Rune: glyphPickup, Color: ColorBrightCyan})
	}
	for _, e := range snap.Enemies {
		s.SetCell(e.X, e.Y, Cell{Rune: glyphEnemy, Color: ColorBrightRed})
	}
	s.SetCell(snap.Player.X, snap.Player.Y, Cell{Rune: glyphPlayer, Color: ColorBrightGreen})

	if snap.GameOver {
		drawOutcome(s, snap)
	}

	s.DrawText(0, snap.Height, statusLine(snap), ColorWhite)
	s.DrawText(0, snap.Height+1, snap.Message, ColorBrightWhite)
	s.DrawText(0, snap.Height+2, fmt.Sprintf("seed %d", snap.Seed), ColorGray)

	return s
}

// drawOutcome overlays the terminal banner on the map area.
func drawOutcome(s *Screen, snap game.Snapshot) {
	banner := "*** THE RUIN GOES DARK ***"
	color := ColorBrightRed
	if snap.Victory {
		banner = "*** THE RUIN IS RESTORED ***"
		color = ColorBrightYellow
	}
	y := snap.Height / 2
	s.DrawTextCentered(y-1, banner, color)
	s.DrawTextCentered(y+1, "r restart · q quit", ColorWhite)
}

func statusLine(snap game.Snapshot) string {
	return fmt.Sprintf("runes %d/%d  moves %d  pickups left %d",
		snap.RunesCollected, snap.RunesRequired, snap.Moves, len(snap.Pickups))
}

// RenderASCII creates a plain-text representation of a snapshot for
// debugging, testing, and the map preview command. Same glyph scheme
// as Render, with '.' standing in for the floor dot.
func RenderASCII(snap game.Snapshot) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Seed: %d | Runes: %d/%d | Moves: %d\n",
		snap.Seed, snap.RunesCollected, snap.RunesRequired, snap.Moves))
	sb.WriteString(strings.Repeat("-", snap.Width) + "\n")

	rows := make([][]rune, snap.Height)
	for y := 0; y < snap.Height; y++ {
		rows[y] = make([]rune, snap.Width)
		for x := 0; x < snap.Width; x++ {
			if snap.Cells[y*snap.Width+x] == grid.Floor {
				rows[y][x] = '.'
			} else {
				rows[y][x] = glyphWall
			}
		}
	}

	put := func(p grid.Point, r rune) {
		if p.Y >= 0 && p.Y < snap.Height && p.X >= 0 && p.X < snap.Width {
			rows[p.Y][p.X] = r
		}
	}
	put(snap.Altar, 'A')
	for _, p := range snap.Pickups {
		put(p, glyphPickup)
	}
	for _, e := range snap.Enemies {
		put(e, glyphEnemy)
	}
	put(snap.Player, glyphPlayer)

	for _, row := range rows {
		sb.WriteString(string(row))
		sb.WriteString("\n")
	}

	if snap.Message != "" {
		sb.WriteString(strings.Repeat("-", snap.Width) + "\n")
		sb.WriteString(snap.Message + "\n")
	}

	return sb.String()
}
