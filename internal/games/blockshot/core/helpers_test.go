package core_test

import (
	"math"
	"testing"

	"github.com/vovakirdan/blockshot/internal/games/blockshot/core"
)

// scriptedRand replays a fixed sequence of draws, reduced modulo n.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

// newTestSim builds a classic 20x12 round with a zero random source.
func newTestSim(t *testing.T) *core.Sim {
	t.Helper()
	sim, err := core.NewSim(core.DefaultSettings(), &scriptedRand{})
	if err != nil {
		t.Fatalf("NewSim() failed: %v", err)
	}
	return sim
}

// fireStraight loads b, fires it at the far wall and steps until it
// resolves. Returns the events of every step.
func fireStraight(t *testing.T, sim *core.Sim, b core.Block) []core.Event {
	t.Helper()
	sim.SetAim(math.Pi / 2)
	sim.Load(b)
	if !sim.Fire() {
		t.Fatal("Fire() refused")
	}
	return runUntilIdle(t, sim)
}

func runUntilIdle(t *testing.T, sim *core.Sim) []core.Event {
	t.Helper()
	var events []core.Event
	for range 10000 {
		if sim.InFlight() == 0 {
			return events
		}
		events = append(events, sim.Step(1)...)
	}
	t.Fatalf("projectiles still in flight after 10000 steps")
	return nil
}

func countKind(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
