// Package game implements the Runeward episode engine: one warden, a
// ruin full of guardians, and the runes that must come home to the
// altar. The engine is pure simulation; rendering and input capture
// live in the platform layer and talk to it through commands and
// snapshots only.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/calderforge/runeward/internal/grid"
	"github.com/calderforge/runeward/internal/mapgen"
	"github.com/calderforge/runeward/internal/placement"
	"github.com/calderforge/runeward/internal/rng"
)

var (
	// ErrInvalidDirection rejects an intent outside the four cardinals.
	ErrInvalidDirection = errors.New("game: invalid direction")
	// ErrInvalidCommand rejects a command the session does not know.
	ErrInvalidCommand = errors.New("game: invalid command")
)

// HUD messages, one per turn outcome.
const (
	msgIntro       = "You are the Warden: collect %d runes and return to the altar."
	msgRestart     = "A new ruin rises. Good luck."
	msgBlocked     = "You bump into a wall."
	msgRune        = "A rune hums in your hand! (%d/%d)"
	msgFragment    = "Only a dull fragment, not a rune."
	msgDefeat      = "A guardian catches you. The ruin goes dark."
	msgVictory     = "The runes blaze on the altar. The ruin is restored!"
	msgOverAlready = "The episode is over. Restart to walk the ruin again."
)

// Outcome classifies what one turn did.
type Outcome int

const (
	OutcomeMoved Outcome = iota
	OutcomeBlocked
	OutcomeRune
	OutcomeFragment
	OutcomeDefeat
	OutcomeVictory
	OutcomeRestarted
	OutcomeGameAlreadyOver
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeRune:
		return "rune"
	case OutcomeFragment:
		return "fragment"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeVictory:
		return "victory"
	case OutcomeRestarted:
		return "restarted"
	case OutcomeGameAlreadyOver:
		return "game_already_over"
	default:
		return "unknown"
	}
}

// Status is the compact state mirror shown in HUDs and results.
type Status struct {
	RunesCollected int
	RunesRequired  int
	PickupsLeft    int
	Moves          int
	GameOver       bool
	Victory        bool
	Message        string
}

// TurnResult reports what one command or intent did.
type TurnResult struct {
	Outcome Outcome
	Status  Status
}

// Game owns every piece of one episode's state: the map, the seeded
// stream, all entity positions, and the counters. All mutation goes
// through ApplyIntent and Restart; everything else reads.
type Game struct {
	cfg    Config
	seed   int64
	stream *rng.Stream

	grid    *grid.Grid
	player  grid.Point
	altar   grid.Point
	pickups []grid.Point        // uncollected, in placement order
	runes   map[grid.Point]bool // rune flags, fixed at placement
	enemies []grid.Point

	runesCollected int
	moves          int
	gameOver       bool
	victory        bool
	message        string
}

// New creates an episode from the configuration. Seed 0 means "pick
// one for me": the clock seeds the episode and the chosen value is
// recorded, so every run stays reproducible.
func New(cfg Config, seed int64) (*Game, error) {
	return newGame(cfg, seed)
}

func newGame(cfg Config, seed int64) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	stream := rng.New(seed)
	grd, err := mapgen.Generate(cfg.Width, cfg.Height, stream, cfg.Map)
	if err != nil {
		return nil, fmt.Errorf("game: generate map: %w", err)
	}
	layout, err := placement.Place(grd, stream, placement.Spec{
		Pickups:   cfg.Pickups,
		Runes:     cfg.Runes,
		Enemies:   cfg.Enemies,
		AltarBand: cfg.AltarBand,
	})
	if err != nil {
		return nil, fmt.Errorf("game: place entities: %w", err)
	}
	return &Game{
		cfg:     cfg,
		seed:    seed,
		stream:  stream,
		grid:    grd,
		player:  layout.Player,
		altar:   layout.Altar,
		pickups: layout.Pickups,
		runes:   layout.Runes,
		enemies: layout.Enemies,
		message: fmt.Sprintf(msgIntro, cfg.Runes),
	}, nil
}

// Restart replaces the whole episode with a freshly generated one.
// Seed 0 picks a new random seed. On failure the current episode is
// left untouched and stays playable.
func (g *Game) Restart(seed int64) error {
	next, err := newGame(g.cfg, seed)
	if err != nil {
		return err
	}
	next.message = msgRestart
	*g = *next
	return nil
}

// ApplyIntent advances the episode by exactly one turn. Resolution
// order is fixed: terminal episodes and blocked moves return early
// without moving a single guardian, then the player commits, pickups
// resolve, guardians pursue, and loss is checked before victory.
func (g *Game) ApplyIntent(dir Direction) (TurnResult, error) {
	switch dir {
	case DirUp, DirDown, DirLeft, DirRight:
	default:
		return TurnResult{}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}
	if g.gameOver {
		g.message = msgOverAlready
		return g.result(OutcomeGameAlreadyOver), nil
	}

	dx, dy := dir.Delta()
	next := g.player.Add(dx, dy)
	if !g.grid.IsFloor(next) {
		g.message = msgBlocked
		return g.result(OutcomeBlocked), nil
	}

	g.player = next
	g.moves++
	g.message = ""
	outcome := OutcomeMoved

	for i, p := range g.pickups {
		if p == next {
			g.pickups = append(g.pickups[:i], g.pickups[i+1:]...)
			if g.runes[p] {
				g.runesCollected++
				g.message = fmt.Sprintf(msgRune, g.runesCollected, g.cfg.Runes)
				outcome = OutcomeRune
			} else {
				g.message = msgFragment
				outcome = OutcomeFragment
			}
			break
		}
	}

	// Guardians step simultaneously: every pursuit is computed against
	// the pre-turn guardian layout and the already committed player.
	prev := make([]grid.Point, len(g.enemies))
	copy(prev, g.enemies)
	for i := range g.enemies {
		g.enemies[i] = nextEnemyPos(prev[i], g.player, g.grid, g.stream)
	}

	for _, e := range g.enemies {
		if e == g.player {
			g.gameOver = true
			g.victory = false
			g.message = msgDefeat
			return g.result(OutcomeDefeat), nil
		}
	}
	if g.runesCollected >= g.cfg.Runes && g.player == g.altar {
		g.gameOver = true
		g.victory = true
		g.message = msgVictory
		return g.result(OutcomeVictory), nil
	}

	return g.result(outcome), nil
}

// Dispatch routes one typed command into the engine. Directional
// commands become intents; restart regenerates with a fresh seed.
func (g *Game) Dispatch(cmd Command) (TurnResult, error) {
	switch cmd {
	case CmdUp:
		return g.ApplyIntent(DirUp)
	case CmdDown:
		return g.ApplyIntent(DirDown)
	case CmdLeft:
		return g.ApplyIntent(DirLeft)
	case CmdRight:
		return g.ApplyIntent(DirRight)
	case CmdRestart:
		if err := g.Restart(0); err != nil {
			return TurnResult{}, err
		}
		return g.result(OutcomeRestarted), nil
	default:
		return TurnResult{}, fmt.Errorf("%w: %d", ErrInvalidCommand, int(cmd))
	}
}

func (g *Game) result(o Outcome) TurnResult {
	return TurnResult{Outcome: o, Status: g.Status()}
}

// Status returns the compact state mirror for HUDs and results.
func (g *Game) Status() Status {
	return Status{
		RunesCollected: g.runesCollected,
		RunesRequired:  g.cfg.Runes,
		PickupsLeft:    len(g.pickups),
		Moves:          g.moves,
		GameOver:       g.gameOver,
		Victory:        g.victory,
		Message:        g.message,
	}
}

// Seed returns the seed the current episode was generated from.
func (g *Game) Seed() int64 {
	return g.seed
}

// Config returns the configuration the episode runs under.
func (g *Game) Config() Config {
	return g.cfg
}
