package core_test

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/blockshot/internal/games/blockshot/core"
)

func TestNumberLandsAtFarWallOnEmptyGrid(t *testing.T) {
	sim := newTestSim(t)

	events := fireStraight(t, sim, core.NewNumber(core.ColorRed))

	got := sim.Grid().Get(19, 6)
	if got == nil {
		t.Fatal("expected block at (19, 6)")
	}
	if got.Kind != core.KindNumber || got.Value != 2 {
		t.Errorf("block at (19, 6) = %v, want number(2)", *got)
	}
	if sim.Score() != 2 {
		t.Errorf("Score() = %d, want 2", sim.Score())
	}
	if sim.Grid().FilledCount() != 1 {
		t.Errorf("FilledCount() = %d, want 1", sim.Grid().FilledCount())
	}
	if countKind(events, core.EventPlace) != 1 {
		t.Errorf("expected exactly one place event, got %v", events)
	}
	if sim.Over() {
		t.Error("round should still be running")
	}
}

func TestNumberMergesIntoStruckNumber(t *testing.T) {
	sim := newTestSim(t)
	sim.Grid().Place(19, 6, core.NewNumber(core.ColorGreen))
	before := sim.Grid().Get(19, 6)

	events := fireStraight(t, sim, core.NewNumber(core.ColorBlue))

	after := sim.Grid().Get(19, 6)
	if after != before {
		t.Error("merge should update the struck cell in place")
	}
	if after.Value != 4 {
		t.Errorf("merged value = %d, want 4", after.Value)
	}
	if after.Color != core.ColorGreen {
		t.Errorf("merged color = %v, want the struck cell's green", after.Color)
	}
	if sim.Score() != 4 {
		t.Errorf("Score() = %d, want 4 (post-merge value)", sim.Score())
	}
	if sim.Grid().FilledCount() != 1 {
		t.Errorf("merge must not create a cell, FilledCount() = %d", sim.Grid().FilledCount())
	}
	if countKind(events, core.EventMatch) != 0 {
		t.Error("merge must not run the match finder")
	}
}

func TestMergeScoresNewValueEachTime(t *testing.T) {
	sim := newTestSim(t)
	sim.Grid().Place(19, 6, core.NewNumber(core.ColorRed))

	fireStraight(t, sim, core.NewNumber(core.ColorRed)) // 4
	fireStraight(t, sim, core.NewNumber(core.ColorRed)) // 6

	if v := sim.Grid().Get(19, 6).Value; v != 6 {
		t.Errorf("value = %d, want 6", v)
	}
	if sim.Score() != 4+6 {
		t.Errorf("Score() = %d, want 10", sim.Score())
	}
}

func TestPlacementTriggersMatch(t *testing.T) {
	sim := newTestSim(t)
	for _, col := range []int{5, 6, 7} {
		sim.Grid().Place(19, col, core.NewNormal(core.ColorRed))
	}

	events := fireStraight(t, sim, core.NewNormal(core.ColorRed))

	if sim.Grid().FilledCount() != 0 {
		t.Errorf("all four cells should clear, %d remain", sim.Grid().FilledCount())
	}
	if sim.Score() != 40 {
		t.Errorf("Score() = %d, want 40", sim.Score())
	}
	if countKind(events, core.EventMatch) != 1 {
		t.Errorf("expected one match event, got %v", events)
	}
}

func TestBombClearsNeighborhood(t *testing.T) {
	sim := newTestSim(t)
	occupied := []core.Coord{core.At(19, 5), core.At(19, 6), core.At(19, 7), core.At(18, 5), core.At(18, 7)}
	colors := []core.Color{core.ColorRed, core.ColorGreen, core.ColorBlue, core.ColorYellow, core.ColorPurple}
	for i, c := range occupied {
		sim.Grid().Place(c.Row, c.Col, core.NewNormal(colors[i]))
	}
	// Outside the blast window.
	sim.Grid().Place(19, 9, core.NewNormal(core.ColorRed))

	fireStraight(t, sim, core.NewBomb(core.ColorRed))

	for _, c := range occupied {
		if sim.Grid().Occupied(c.Row, c.Col) {
			t.Errorf("(%d, %d) should be cleared", c.Row, c.Col)
		}
	}
	if !sim.Grid().Occupied(19, 9) {
		t.Error("(19, 9) is outside the blast and should survive")
	}
	if sim.Score() != 25 {
		t.Errorf("Score() = %d, want 25", sim.Score())
	}
}

func TestBombNeverMerges(t *testing.T) {
	tests := []struct {
		name   string
		target core.Block
	}{
		{"bomb on number", core.NewNumber(core.ColorRed)},
		{"bomb on bomb", core.NewBomb(core.ColorRed)},
		{"bomb on normal", core.NewNormal(core.ColorRed)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sim := newTestSim(t)
			sim.Grid().Place(19, 6, tc.target)

			events := fireStraight(t, sim, core.NewBomb(core.ColorRed))

			if countKind(events, core.EventMerge) != 0 {
				t.Error("bomb must not merge")
			}
			if countKind(events, core.EventExplode) != 1 {
				t.Error("bomb must explode")
			}
			if sim.Grid().Occupied(19, 6) {
				t.Error("struck cell should be cleared")
			}
			if sim.Score() != 5 {
				t.Errorf("Score() = %d, want 5", sim.Score())
			}
		})
	}
}

func TestNumberOnNormalIsPlaced(t *testing.T) {
	sim := newTestSim(t)
	sim.Grid().Place(19, 6, core.NewNormal(core.ColorRed))

	fireStraight(t, sim, core.NewNumber(core.ColorRed))

	got := sim.Grid().Get(18, 6)
	if got == nil || got.Kind != core.KindNumber {
		t.Fatalf("expected number at (18, 6), got %v", got)
	}
	if sim.Score() != 2 {
		t.Errorf("Score() = %d, want 2", sim.Score())
	}
}

func TestExplodeWindow(t *testing.T) {
	tests := []struct {
		name     string
		row, col int
		cleared  int
	}{
		{"interior", 10, 5, 9},
		{"loss row corner", 0, 0, 4},
		{"far wall corner", 19, 11, 4},
		{"left edge", 7, 0, 6},
		{"outside grid", -5, -5, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sim := newTestSim(t)
			fillGrid(sim.Grid())
			total := sim.Grid().FilledCount()

			got := sim.Explode(tc.row, tc.col)

			if got != tc.cleared {
				t.Errorf("Explode(%d, %d) cleared %d, want %d", tc.row, tc.col, got, tc.cleared)
			}
			if sim.Score() != 5*tc.cleared {
				t.Errorf("Score() = %d, want %d", sim.Score(), 5*tc.cleared)
			}
			if sim.Grid().FilledCount() != total-tc.cleared {
				t.Errorf("FilledCount() = %d, want %d", sim.Grid().FilledCount(), total-tc.cleared)
			}
		})
	}
}

func TestExplodeOnlyTouchesWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := range 200 {
		sim := newTestSim(t)
		g := sim.Grid()
		for row := range g.Rows {
			for col := range g.Cols {
				if rng.Intn(2) == 0 {
					g.Place(row, col, core.NewNormal(core.Color(rng.Intn(4))))
				}
			}
		}
		before := g.Clone()
		r, c := rng.Intn(g.Rows+2)-1, rng.Intn(g.Cols+2)-1

		nonEmpty := 0
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if before.Occupied(r+dr, c+dc) {
					nonEmpty++
				}
			}
		}

		sim.Explode(r, c)

		if sim.Score() != 5*nonEmpty {
			t.Fatalf("trial %d: Score() = %d, want %d", trial, sim.Score(), 5*nonEmpty)
		}
		for row := range g.Rows {
			for col := range g.Cols {
				inWindow := row >= r-1 && row <= r+1 && col >= c-1 && col <= c+1
				switch {
				case inWindow && g.Occupied(row, col):
					t.Fatalf("trial %d: (%d, %d) inside the window survived", trial, row, col)
				case !inWindow && before.Occupied(row, col) != g.Occupied(row, col):
					t.Fatalf("trial %d: (%d, %d) outside the window changed", trial, row, col)
				}
			}
		}
	}
}

func TestExplodeHonorsBlastRadius(t *testing.T) {
	settings := core.DefaultSettings()
	settings.BlastRadius = 2
	sim, err := core.NewSim(settings, &scriptedRand{})
	if err != nil {
		t.Fatalf("NewSim() failed: %v", err)
	}
	fillGrid(sim.Grid())

	if got := sim.Explode(10, 5); got != 25 {
		t.Errorf("Explode with radius 2 cleared %d, want 25", got)
	}
}

// fillGrid fills every cell with a checkerboard of colors so no region of
// three exists.
func fillGrid(g *core.Grid) {
	for row := range g.Rows {
		for col := range g.Cols {
			color := core.ColorRed
			if (row+col)%2 == 1 {
				color = core.ColorGreen
			}
			g.Place(row, col, core.NewNormal(color))
		}
	}
}
