package core

// StateType represents the round state.
type StateType string

const (
	StatePlaying  StateType = "playing"
	StateGameOver StateType = "game_over"
)

// Snapshot is a read-only copy of the round for rendering and tests.
// Nothing in it aliases the simulation.
type Snapshot struct {
	Tick        uint64
	Score       int
	State       StateType
	Geometry    Geometry
	Grid        *Grid
	Projectiles []Projectile
	Shooter     Shooter
	Stats       Stats
}

// Snapshot captures the current state.
func (s *Sim) Snapshot() Snapshot {
	state := StatePlaying
	if s.over {
		state = StateGameOver
	}

	return Snapshot{
		Tick:        s.tick,
		Score:       s.score,
		State:       state,
		Geometry:    s.geo,
		Grid:        s.grid.Clone(),
		Projectiles: s.projectiles.Snapshot(),
		Shooter:     s.shooter,
		Stats:       s.stats,
	}
}
