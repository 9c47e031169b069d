package core

import "math"

// EventKind classifies what happened during a tick.
type EventKind uint8

const (
	EventPlace EventKind = iota
	EventMerge
	EventExplode
	EventMatch
	EventGameOver
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	switch k {
	case EventPlace:
		return "place"
	case EventMerge:
		return "merge"
	case EventExplode:
		return "explode"
	case EventMatch:
		return "match"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event records one grid mutation produced by a resolution.
type Event struct {
	Kind    EventKind
	At      Coord
	Block   Block // Placed or merged block, match color/kind
	Cleared int   // Cells removed by an explosion or match
	Points  int   // Score added by this event
}

// Stats counts what happened during a round.
type Stats struct {
	Fired      int
	Placed     int
	Merges     int
	Explosions int
	Matches    int
	Cleared    int
}

// Shooter holds the aim and the block that will be fired next.
type Shooter struct {
	X, Y   float64
	Angle  float64 // Radians; pi/2 points straight at the far wall
	Loaded Block
}

// Sim owns the whole mutable state of a round: grid, score, projectiles and
// shooter. It is single-writer: every mutation happens inside Step, Fire,
// SetAim or Reset, and callers must not invoke them concurrently.
type Sim struct {
	settings    Settings
	geo         Geometry
	grid        *Grid
	factory     *Factory
	shooter     Shooter
	projectiles ProjectileSet

	score int
	tick  uint64
	over  bool
	stats Stats

	events     []Event
	onGameOver func(GameOverEvent)
}

// NewSim validates the settings and starts a fresh round.
func NewSim(settings Settings, rng Rand) (*Sim, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	factory, err := NewFactory(settings.Kinds, settings.Palette, rng)
	if err != nil {
		return nil, err
	}

	s := &Sim{
		settings: settings,
		geo:      settings.Geometry(),
		factory:  factory,
	}
	s.Reset()
	return s, nil
}

// Reset restores the initial state: empty grid, zero score, no projectiles
// and a fresh block in the shooter.
func (s *Sim) Reset() {
	s.grid = NewGrid(s.settings.Rows, s.settings.Cols)
	s.projectiles.Clear()
	s.score = 0
	s.tick = 0
	s.over = false
	s.stats = Stats{}
	s.events = nil

	x, _ := s.geo.CellCenter(LossRow, s.settings.Cols/2)
	s.shooter = Shooter{
		X:      x,
		Y:      s.geo.Height() - s.geo.CellSize/2,
		Angle:  math.Pi / 2,
		Loaded: s.factory.Create(),
	}
}

// OnGameOver registers the listener notified when the round ends.
func (s *Sim) OnGameOver(fn func(GameOverEvent)) {
	s.onGameOver = fn
}

// SetAim points the shooter. Non-finite angles are ignored; finite ones are
// clamped so the shot always travels toward the far wall.
func (s *Sim) SetAim(angle float64) {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return
	}
	lo := s.settings.MinAim
	hi := math.Pi - s.settings.MinAim
	s.shooter.Angle = math.Max(lo, math.Min(hi, angle))
}

// NudgeAim rotates the aim by steps*AimStep. Positive steps turn left.
func (s *Sim) NudgeAim(steps int) {
	s.SetAim(s.shooter.Angle + float64(steps)*s.settings.AimStep)
}

// Load replaces the block waiting in the shooter.
func (s *Sim) Load(b Block) {
	s.shooter.Loaded = b
}

// Fire launches the loaded block along the current aim and reloads the
// shooter from the factory. Returns false once the round is over or when
// MaxInFlight projectiles are already travelling.
func (s *Sim) Fire() bool {
	if s.over {
		return false
	}
	if s.settings.MaxInFlight > 0 && s.projectiles.Len() >= s.settings.MaxInFlight {
		return false
	}

	dx := s.settings.Speed * math.Cos(s.shooter.Angle)
	dy := -s.settings.Speed * math.Sin(s.shooter.Angle)
	s.projectiles.Spawn(s.shooter.X, s.shooter.Y, dx, dy, s.shooter.Loaded, s.geo)
	s.shooter.Loaded = s.factory.Create()
	s.stats.Fired++
	return true
}

// Step advances the simulation by dt ticks. Every projectile is moved in
// firing order; a terminal one is removed and resolved before the next
// projectile moves, so resolutions never interleave. Returns the events
// produced during this step.
func (s *Sim) Step(dt float64) []Event {
	if s.over {
		return nil
	}
	s.tick++
	s.events = s.events[:0]

	s.projectiles.Sweep(func(p *Projectile) bool {
		if s.over {
			return true
		}
		p.Advance(s.geo, dt)
		imp, terminal := p.CheckTerminal(s.grid, s.geo)
		if !terminal {
			return false
		}
		s.resolve(p.Block, imp)
		return true
	})

	if s.over {
		s.projectiles.Clear()
	}

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *Sim) addScore(points int) {
	if points > 0 {
		s.score += points
	}
}

func (s *Sim) emit(ev Event) {
	s.events = append(s.events, ev)
}

// Grid returns the live grid. Callers outside the tick path should prefer
// Snapshot.
func (s *Sim) Grid() *Grid {
	return s.grid
}

// Geometry returns the pixel mapping in use.
func (s *Sim) Geometry() Geometry {
	return s.geo
}

// Settings returns the rule set of the round.
func (s *Sim) Settings() Settings {
	return s.settings
}

// Score returns the current score.
func (s *Sim) Score() int {
	return s.score
}

// Over reports whether the round has ended.
func (s *Sim) Over() bool {
	return s.over
}

// Tick returns the number of steps taken.
func (s *Sim) Tick() uint64 {
	return s.tick
}

// Stats returns the round counters.
func (s *Sim) Stats() Stats {
	return s.stats
}

// Shooter returns a copy of the shooter.
func (s *Sim) Shooter() Shooter {
	return s.shooter
}

// InFlight returns the number of projectiles travelling.
func (s *Sim) InFlight() int {
	return s.projectiles.Len()
}
