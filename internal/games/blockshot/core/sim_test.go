package core_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/blockshot/internal/games/blockshot/core"
)

// stackColumn fills rows [from, Rows) of col with alternating colors so no
// match forms.
func stackColumn(g *core.Grid, col, from int) {
	for row := from; row < g.Rows; row++ {
		color := core.ColorRed
		if row%2 == 1 {
			color = core.ColorGreen
		}
		g.Place(row, col, core.NewNormal(color))
	}
}

func TestGameOverWhenLossRowFills(t *testing.T) {
	sim := newTestSim(t)
	stackColumn(sim.Grid(), 6, 1)

	var calls []core.GameOverEvent
	sim.OnGameOver(func(ev core.GameOverEvent) {
		calls = append(calls, ev)
	})

	events := fireStraight(t, sim, core.NewNormal(core.ColorBlue))

	if !sim.Grid().Occupied(0, 6) {
		t.Fatal("block should settle on the loss row")
	}
	if !sim.Over() {
		t.Fatal("Over() = false after the loss row filled")
	}
	if len(calls) != 1 {
		t.Fatalf("listener called %d times, want 1", len(calls))
	}
	if calls[0].Score != sim.Score() {
		t.Errorf("event score = %d, want %d", calls[0].Score, sim.Score())
	}
	if countKind(events, core.EventGameOver) != 1 {
		t.Errorf("expected one game over event, got %v", events)
	}
	if sim.Snapshot().State != core.StateGameOver {
		t.Errorf("State = %v, want %v", sim.Snapshot().State, core.StateGameOver)
	}

	// Nothing moves or fires once the round is over.
	if sim.Fire() {
		t.Error("Fire() accepted after game over")
	}
	if ev := sim.Step(1); ev != nil {
		t.Errorf("Step() after game over = %v, want nil", ev)
	}
	if !sim.CheckGameOver() || len(calls) != 1 {
		t.Error("CheckGameOver() must not notify twice")
	}
}

func TestNoGameOverBelowLossRow(t *testing.T) {
	sim := newTestSim(t)
	stackColumn(sim.Grid(), 6, 2)

	fireStraight(t, sim, core.NewNormal(core.ColorBlue))

	if !sim.Grid().Occupied(1, 6) {
		t.Fatal("block should settle on row 1")
	}
	if sim.Over() {
		t.Error("Over() = true while the loss row is empty")
	}
}

func TestGameOverFromNumberPlacement(t *testing.T) {
	sim := newTestSim(t)
	stackColumn(sim.Grid(), 6, 1)

	fireStraight(t, sim, core.NewNumber(core.ColorBlue))

	if !sim.Over() {
		t.Error("number placed on the loss row should end the round")
	}
	if sim.Score() != 2 {
		t.Errorf("Score() = %d, want 2", sim.Score())
	}
}

func TestGameOverDiscardsInFlight(t *testing.T) {
	sim := newTestSim(t)
	stackColumn(sim.Grid(), 6, 1)
	sim.SetAim(math.Pi / 2)
	sim.Load(core.NewNormal(core.ColorBlue))
	sim.Fire()
	sim.SetAim(math.Pi / 4)
	sim.Fire()

	runUntilIdle(t, sim)

	if !sim.Over() {
		t.Fatal("round should be over")
	}
	if sim.InFlight() != 0 {
		t.Errorf("InFlight() = %d, want 0", sim.InFlight())
	}
	if sim.Stats().Placed != 1 {
		t.Errorf("Placed = %d, want 1", sim.Stats().Placed)
	}
}

func TestTopRowOccupied(t *testing.T) {
	g := core.NewGrid(20, 12)
	if core.TopRowOccupied(g) {
		t.Error("empty grid reported occupied")
	}
	g.Place(1, 0, core.NewNormal(core.ColorRed))
	if core.TopRowOccupied(g) {
		t.Error("row 1 is not the loss row")
	}
	g.Place(0, 11, core.NewNormal(core.ColorRed))
	if !core.TopRowOccupied(g) {
		t.Error("loss row occupied but not reported")
	}
}

func TestSetAim(t *testing.T) {
	settings := core.DefaultSettings()

	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"straight", math.Pi / 2, math.Pi / 2},
		{"below minimum", 0, settings.MinAim},
		{"negative", -1, settings.MinAim},
		{"above maximum", math.Pi, math.Pi - settings.MinAim},
		{"NaN ignored", math.NaN(), math.Pi / 2},
		{"infinity ignored", math.Inf(1), math.Pi / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sim := newTestSim(t)
			sim.SetAim(tc.angle)
			if got := sim.Shooter().Angle; got != tc.want {
				t.Errorf("Angle = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNudgeAim(t *testing.T) {
	sim := newTestSim(t)
	step := sim.Settings().AimStep

	sim.NudgeAim(2)
	if got, want := sim.Shooter().Angle, math.Pi/2+2*step; math.Abs(got-want) > 1e-9 {
		t.Errorf("Angle after NudgeAim(2) = %v, want %v", got, want)
	}

	sim.NudgeAim(-1000)
	if got := sim.Shooter().Angle; got != sim.Settings().MinAim {
		t.Errorf("Angle = %v, want clamp to %v", got, sim.Settings().MinAim)
	}
}

func TestFireReloadsShooter(t *testing.T) {
	sim, err := core.NewSim(core.DefaultSettings(), &scriptedRand{vals: []int{1, 2, 2, 3}})
	if err != nil {
		t.Fatalf("NewSim() failed: %v", err)
	}

	first := sim.Shooter().Loaded
	if first != core.NewNumber(core.ColorBlue) {
		t.Fatalf("initial block = %v, want blue number", first)
	}

	if !sim.Fire() {
		t.Fatal("Fire() refused")
	}
	if got := sim.Shooter().Loaded; got != core.NewBomb(core.ColorYellow) {
		t.Errorf("reloaded block = %v, want yellow bomb", got)
	}
	snap := sim.Snapshot()
	if len(snap.Projectiles) != 1 || snap.Projectiles[0].Block != first {
		t.Errorf("projectiles = %v, want the fired block", snap.Projectiles)
	}
	if snap.Stats.Fired != 1 {
		t.Errorf("Fired = %d, want 1", snap.Stats.Fired)
	}
}

func TestMaxInFlight(t *testing.T) {
	settings := core.DefaultSettings()
	settings.MaxInFlight = 2
	sim, err := core.NewSim(settings, &scriptedRand{})
	if err != nil {
		t.Fatalf("NewSim() failed: %v", err)
	}

	if !sim.Fire() || !sim.Fire() {
		t.Fatal("first two shots should be accepted")
	}
	if sim.Fire() {
		t.Error("third shot accepted with MaxInFlight = 2")
	}

	runUntilIdle(t, sim)
	if !sim.Fire() {
		t.Error("shot refused after the set drained")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	sim := newTestSim(t)
	fireStraight(t, sim, core.NewNumber(core.ColorRed))
	sim.Fire()
	sim.Step(1)

	snap := sim.Snapshot()
	snap.Grid.Get(19, 6).Value = 99
	snap.Grid.Remove(19, 6)
	snap.Projectiles[0].Y = -100

	if v := sim.Grid().Get(19, 6); v == nil || v.Value != 2 {
		t.Errorf("live grid changed through snapshot: %v", v)
	}
	if sim.Snapshot().Projectiles[0].Y == -100 {
		t.Error("live projectile changed through snapshot")
	}
	if snap.Tick == 0 {
		t.Error("Tick = 0, want a positive tick")
	}
}

func TestReset(t *testing.T) {
	sim := newTestSim(t)
	stackColumn(sim.Grid(), 6, 1)
	fireStraight(t, sim, core.NewNumber(core.ColorBlue))
	if !sim.Over() {
		t.Fatal("setup: round should be over")
	}

	sim.Reset()

	if sim.Over() || sim.Score() != 0 || sim.Tick() != 0 {
		t.Errorf("after Reset: over=%v score=%d tick=%d", sim.Over(), sim.Score(), sim.Tick())
	}
	if sim.Grid().FilledCount() != 0 {
		t.Errorf("FilledCount() = %d, want 0", sim.Grid().FilledCount())
	}
	if sim.Stats() != (core.Stats{}) {
		t.Errorf("Stats() = %+v, want zero", sim.Stats())
	}
	if !sim.Fire() {
		t.Error("Fire() refused after Reset")
	}
}

func TestShooterPosition(t *testing.T) {
	sim := newTestSim(t)
	sh := sim.Shooter()
	if sh.X != 195 || sh.Y != 585 {
		t.Errorf("shooter at (%v, %v), want (195, 585)", sh.X, sh.Y)
	}
	if sh.Angle != math.Pi/2 {
		t.Errorf("Angle = %v, want pi/2", sh.Angle)
	}
}

func TestDeterministicRounds(t *testing.T) {
	play := func() core.Snapshot {
		sim, err := core.NewSim(core.DefaultSettings(), rand.New(rand.NewSource(42)))
		if err != nil {
			t.Fatalf("NewSim() failed: %v", err)
		}
		aims := []float64{0.4, 1.2, math.Pi / 2, 2.0, 2.7, 0.9}
		for i := 0; i < 60 && !sim.Over(); i++ {
			sim.SetAim(aims[i%len(aims)])
			sim.Fire()
			for range 40 {
				sim.Step(1)
			}
		}
		runUntilIdle(t, sim)
		return sim.Snapshot()
	}

	a, b := play(), play()
	if a.Score != b.Score || a.Tick != b.Tick || a.State != b.State {
		t.Errorf("rounds diverged: %d/%d/%v vs %d/%d/%v", a.Score, a.Tick, a.State, b.Score, b.Tick, b.State)
	}
	if !a.Grid.Equal(b.Grid) {
		t.Error("grids diverged for the same seed")
	}
	if a.Stats != b.Stats {
		t.Errorf("stats diverged: %+v vs %+v", a.Stats, b.Stats)
	}
}

func TestRandomRoundsStayConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for round := range 20 {
		sim, err := core.NewSim(core.DefaultSettings(), rand.New(rand.NewSource(int64(round))))
		if err != nil {
			t.Fatalf("NewSim() failed: %v", err)
		}
		prevScore := 0
		for shot := 0; shot < 200 && !sim.Over(); shot++ {
			sim.SetAim(0.1 + rng.Float64()*(math.Pi-0.2))
			sim.Fire()
			for sim.InFlight() > 0 {
				sim.Step(1)
			}

			if sim.Score() < prevScore {
				t.Fatalf("round %d: score went down from %d to %d", round, prevScore, sim.Score())
			}
			prevScore = sim.Score()

			for _, c := range sim.Grid().FilledCoords() {
				b := sim.Grid().Get(c.Row, c.Col)
				if b.Kind == core.KindBomb {
					t.Fatalf("round %d: bomb stored at %v", round, c)
				}
				if b.Kind == core.KindNumber && (b.Value < core.StartValue || b.Value%2 != 0) {
					t.Fatalf("round %d: number %d at %v", round, b.Value, c)
				}
			}
			if sim.Over() != core.TopRowOccupied(sim.Grid()) {
				t.Fatalf("round %d: Over() = %v but loss row occupied = %v", round, sim.Over(), core.TopRowOccupied(sim.Grid()))
			}
		}
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*core.Settings)
		field  string
	}{
		{"defaults", func(*core.Settings) {}, ""},
		{"zero rows", func(s *core.Settings) { s.Rows = 0 }, "rows"},
		{"negative cols", func(s *core.Settings) { s.Cols = -3 }, "cols"},
		{"zero cell size", func(s *core.Settings) { s.CellSize = 0 }, "cell_size"},
		{"NaN speed", func(s *core.Settings) { s.Speed = math.NaN() }, "speed"},
		{"speed skips rows", func(s *core.Settings) { s.Speed = 30 }, "speed"},
		{"flat min aim", func(s *core.Settings) { s.MinAim = 0 }, "min_aim"},
		{"vertical min aim", func(s *core.Settings) { s.MinAim = math.Pi / 2 }, "min_aim"},
		{"zero aim step", func(s *core.Settings) { s.AimStep = 0 }, "aim_step"},
		{"negative in flight", func(s *core.Settings) { s.MaxInFlight = -1 }, "max_in_flight"},
		{"zero threshold", func(s *core.Settings) { s.MatchThreshold = 0 }, "match_threshold"},
		{"negative blast", func(s *core.Settings) { s.BlastRadius = -1 }, "blast_radius"},
		{"negative match bonus", func(s *core.Settings) { s.MatchBonus = -10 }, "match_bonus"},
		{"negative explode bonus", func(s *core.Settings) { s.ExplodeBonus = -5 }, "explode_bonus"},
		{"empty palette", func(s *core.Settings) { s.Palette = nil }, "palette"},
		{"unknown color", func(s *core.Settings) { s.Palette = []core.Color{core.ColorCount} }, "palette"},
		{"no kinds", func(s *core.Settings) { s.Kinds = nil }, "kinds"},
		{"unknown kind", func(s *core.Settings) { s.Kinds = []core.WeightedKind{{Kind: 9, Weight: 1}} }, "kinds"},
		{"zero weight", func(s *core.Settings) { s.Kinds[0].Weight = 0 }, "kinds"},
		{"single cell grid", func(s *core.Settings) { s.Rows, s.Cols = 1, 1 }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := core.DefaultSettings()
			tc.modify(&s)
			err := s.Validate()

			if tc.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			var cfgErr *core.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, want *ConfigError", err)
			}
			if cfgErr.Field != tc.field {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tc.field)
			}
			if _, err := core.NewSim(s, &scriptedRand{}); err == nil {
				t.Error("NewSim() accepted invalid settings")
			}
		})
	}
}
