// Package blockshot provides the Blockshot puzzle game for the platform.
// The rules live in the core subpackage; this package loads the rule set,
// translates input into aim and fire commands, and draws the round.
package blockshot

import (
	"math/rand"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/blockshot/internal/core"
	"github.com/vovakirdan/blockshot/internal/config"
	"github.com/vovakirdan/blockshot/internal/games/blockshot/core"
	"github.com/vovakirdan/blockshot/internal/logging"
	"github.com/vovakirdan/blockshot/internal/registry"
)

// modeInfo describes one registered variant.
type modeInfo struct {
	id          string
	title       string
	description string
	mode        config.Mode
}

var modes = []modeInfo{
	{"blockshot", "Blockshot", "Normal, number and bomb blocks", config.ModeClassic},
	{"blockshot_numbers", "Blockshot: Numbers", "Merge numbers, clear with bombs", config.ModeNumbers},
	{"blockshot_colors", "Blockshot: Colors", "Match colors, clear with bombs", config.ModeColors},
}

// Package-level settings shared by every instance, set by the CLI before a
// game starts.
var (
	configPath string
	logger     = logging.Discard()
)

// SetConfigPath sets a custom config file. Empty uses the search order of
// config.Load.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger used by every game instance.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	logger = l
}

func init() {
	for _, m := range modes {
		registry.Register(m.id, func() registry.Game {
			return newGame(m)
		})
	}
}

// Game adapts a core.Sim to the platform's Game interface.
type Game struct {
	info modeInfo

	rng     *rand.Rand
	sim     *core.Sim
	err     error // Rule set could not be loaded
	final   *core.GameOverEvent
	paused  bool
	screenW int
	screenH int
}

// New creates a game for the given mode.
func New(mode config.Mode) *Game {
	for _, m := range modes {
		if m.mode == mode {
			return newGame(m)
		}
	}
	return newGame(modes[0])
}

// ModeID returns the registry ID of a mode preset.
func ModeID(mode config.Mode) (string, bool) {
	for _, m := range modes {
		if m.mode == mode {
			return m.id, true
		}
	}
	return "", false
}

func newGame(info modeInfo) *Game {
	return &Game{info: info}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.info.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.info.title
}

// Description returns a one-line summary of the mode.
func (g *Game) Description() string {
	return g.info.description
}

// Mode returns the kind preset this game plays with.
func (g *Game) Mode() config.Mode {
	return g.info.mode
}

// Reset loads the rule set and starts a new round.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.final = nil
	g.sim = nil
	g.err = nil

	settings, err := loadSettings(g.info.mode)
	if err != nil {
		g.err = err
		logger.Error("cannot load rules", "mode", g.info.mode, "error", err)
		return
	}

	sim, err := core.NewSim(settings, g.rng)
	if err != nil {
		g.err = err
		logger.Error("cannot start round", "mode", g.info.mode, "error", err)
		return
	}
	sim.OnGameOver(g.handleGameOver)
	g.sim = sim

	logger.Info("round started",
		"game", g.info.id,
		"seed", cfg.Seed,
		"rows", settings.Rows,
		"cols", settings.Cols,
		"kinds", len(settings.Kinds),
	)
}

// loadSettings reads the config and applies the mode preset.
func loadSettings(mode config.Mode) (core.Settings, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return core.Settings{}, err
	}
	config.ApplyMode(&cfg, mode)
	return cfg.ToSettings()
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionRestart) && g.State().GameOver {
		g.Reset(platformcore.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return platformcore.StepResult{State: g.State()}
	}

	if g.sim == nil || g.sim.Over() {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	if steps := in.Count(platformcore.ActionLeft) - in.Count(platformcore.ActionRight); steps != 0 {
		g.sim.NudgeAim(steps)
	}
	if in.Has(platformcore.ActionFire) {
		loaded := g.sim.Shooter().Loaded
		if g.sim.Fire() {
			logger.Debug("fired", "block", loaded, "angle", g.sim.Shooter().Angle)
		}
	}

	for _, ev := range g.sim.Step(1) {
		logEvent(ev)
	}

	return platformcore.StepResult{State: g.State()}
}

func logEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventPlace:
		logger.Debug("block placed", "row", ev.At.Row, "col", ev.At.Col, "block", ev.Block, "points", ev.Points)
	case core.EventMerge:
		logger.Debug("numbers merged", "row", ev.At.Row, "col", ev.At.Col, "value", ev.Block.Value)
	case core.EventExplode:
		logger.Debug("bomb exploded", "row", ev.At.Row, "col", ev.At.Col, "cleared", ev.Cleared, "points", ev.Points)
	case core.EventMatch:
		logger.Debug("region matched", "color", ev.Block.Color, "kind", ev.Block.Kind, "cleared", ev.Cleared, "points", ev.Points)
	}
}

func (g *Game) handleGameOver(ev core.GameOverEvent) {
	g.final = &ev
	logger.Info("game over",
		"game", g.info.id,
		"score", ev.Score,
		"ticks", ev.Tick,
		"fired", ev.Stats.Fired,
		"merges", ev.Stats.Merges,
		"matches", ev.Stats.Matches,
		"explosions", ev.Stats.Explosions,
	)
}

// State returns the current game state. A rule set that failed to load
// counts as game over so the player can leave or retry.
func (g *Game) State() platformcore.GameState {
	if g.sim == nil {
		return platformcore.GameState{GameOver: true}
	}
	return platformcore.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.Over(),
		Paused:   g.paused,
	}
}

// Snapshot returns a copy of the running round, or false before a round
// could be started.
func (g *Game) Snapshot() (core.Snapshot, bool) {
	if g.sim == nil {
		return core.Snapshot{}, false
	}
	return g.sim.Snapshot(), true
}
