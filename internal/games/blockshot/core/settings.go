package core

import (
	"fmt"
	"math"
)

// ConfigError describes a rejected setting.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Reason)
}

// WeightedKind is one entry of the candidate kind set used by the factory.
type WeightedKind struct {
	Kind   Kind
	Weight int
}

// Settings is the full rule set of a round.
type Settings struct {
	Rows     int
	Cols     int
	CellSize float64 // Pixels per cell side

	Speed       float64 // Projectile speed in pixels per tick
	MinAim      float64 // Lowest allowed elevation in radians, measured from either wall
	AimStep     float64 // Radians per aim nudge
	MaxInFlight int     // 0 means unlimited

	MatchThreshold int
	BlastRadius    int
	MatchBonus     int // Points per cleared cell of a match
	ExplodeBonus   int // Points per non-empty cell cleared by a bomb

	Palette []Color
	Kinds   []WeightedKind
}

// DefaultSettings returns the classic 20x12 rule set.
func DefaultSettings() Settings {
	return Settings{
		Rows:           20,
		Cols:           12,
		CellSize:       30,
		Speed:          6,
		MinAim:         0.15,
		AimStep:        0.05,
		MaxInFlight:    0,
		MatchThreshold: 3,
		BlastRadius:    1,
		MatchBonus:     10,
		ExplodeBonus:   5,
		Palette:        DefaultPalette(),
		Kinds: []WeightedKind{
			{Kind: KindNormal, Weight: 1},
			{Kind: KindNumber, Weight: 1},
			{Kind: KindBomb, Weight: 1},
		},
	}
}

// Geometry returns the pixel mapping for these settings.
func (s Settings) Geometry() Geometry {
	return Geometry{Rows: s.Rows, Cols: s.Cols, CellSize: s.CellSize}
}

// Validate checks the settings and returns a *ConfigError for the first
// problem found.
func (s Settings) Validate() error {
	switch {
	case s.Rows < 1:
		return &ConfigError{Field: "rows", Reason: fmt.Sprintf("must be positive, got %d", s.Rows)}
	case s.Cols < 1:
		return &ConfigError{Field: "cols", Reason: fmt.Sprintf("must be positive, got %d", s.Cols)}
	case !(s.CellSize > 0) || math.IsInf(s.CellSize, 0):
		return &ConfigError{Field: "cell_size", Reason: fmt.Sprintf("must be a positive number, got %v", s.CellSize)}
	case !(s.Speed > 0) || math.IsInf(s.Speed, 0):
		return &ConfigError{Field: "speed", Reason: fmt.Sprintf("must be a positive number, got %v", s.Speed)}
	case s.Speed >= s.CellSize:
		// Faster projectiles could skip a whole row between terminal checks.
		return &ConfigError{Field: "speed", Reason: fmt.Sprintf("must be below cell_size (%v), got %v", s.CellSize, s.Speed)}
	case !(s.MinAim > 0) || s.MinAim >= math.Pi/2:
		return &ConfigError{Field: "min_aim", Reason: fmt.Sprintf("must be in (0, pi/2), got %v", s.MinAim)}
	case !(s.AimStep > 0) || math.IsInf(s.AimStep, 0):
		return &ConfigError{Field: "aim_step", Reason: fmt.Sprintf("must be a positive number, got %v", s.AimStep)}
	case s.MaxInFlight < 0:
		return &ConfigError{Field: "max_in_flight", Reason: fmt.Sprintf("must not be negative, got %d", s.MaxInFlight)}
	case s.MatchThreshold < 1:
		return &ConfigError{Field: "match_threshold", Reason: fmt.Sprintf("must be at least 1, got %d", s.MatchThreshold)}
	case s.BlastRadius < 0:
		return &ConfigError{Field: "blast_radius", Reason: fmt.Sprintf("must not be negative, got %d", s.BlastRadius)}
	case s.MatchBonus < 0:
		return &ConfigError{Field: "match_bonus", Reason: fmt.Sprintf("must not be negative, got %d", s.MatchBonus)}
	case s.ExplodeBonus < 0:
		return &ConfigError{Field: "explode_bonus", Reason: fmt.Sprintf("must not be negative, got %d", s.ExplodeBonus)}
	case len(s.Palette) == 0:
		return &ConfigError{Field: "palette", Reason: "must contain at least one color"}
	case len(s.Kinds) == 0:
		return &ConfigError{Field: "kinds", Reason: "must contain at least one block kind"}
	}

	for _, c := range s.Palette {
		if c >= ColorCount {
			return &ConfigError{Field: "palette", Reason: fmt.Sprintf("unknown color %d", c)}
		}
	}
	for _, wk := range s.Kinds {
		if wk.Kind > KindBomb {
			return &ConfigError{Field: "kinds", Reason: fmt.Sprintf("unknown kind %d", wk.Kind)}
		}
		if wk.Weight <= 0 {
			return &ConfigError{Field: "kinds", Reason: fmt.Sprintf("weight of %s must be positive, got %d", wk.Kind, wk.Weight)}
		}
	}

	return nil
}
