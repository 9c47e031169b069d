// Package config loads the Blockshot rule set from YAML and converts it into
// the settings the game engine runs on.
package config

// BlockshotConfig is the YAML representation of a round's rules.
type BlockshotConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Shooter ShooterConfig `yaml:"shooter"`
	Scoring ScoringConfig `yaml:"scoring"`
	Blocks  BlocksConfig  `yaml:"blocks"`
}

// GridConfig defines the playfield.
type GridConfig struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	CellSize float64 `yaml:"cell_size"` // Pixels per cell side
}

// ShooterConfig defines projectile motion and aiming.
type ShooterConfig struct {
	Speed       float64 `yaml:"speed"`         // Pixels per tick, below cell_size
	MinAim      float64 `yaml:"min_aim"`       // Radians above either side wall
	AimStep     float64 `yaml:"aim_step"`      // Radians per key press
	MaxInFlight int     `yaml:"max_in_flight"` // 0 = unlimited
}

// ScoringConfig defines matches, explosions and their rewards.
type ScoringConfig struct {
	MatchThreshold int `yaml:"match_threshold"`
	MatchBonus     int `yaml:"match_bonus"`   // Per cleared cell
	ExplodeBonus   int `yaml:"explode_bonus"` // Per destroyed block
	BlastRadius    int `yaml:"blast_radius"`
}

// BlocksConfig defines what the block factory may produce.
type BlocksConfig struct {
	Palette []string     `yaml:"palette"`
	Kinds   []KindWeight `yaml:"kinds"`
}

// KindWeight is one weighted entry of the kind set.
type KindWeight struct {
	Kind   string `yaml:"kind"`
	Weight int    `yaml:"weight"`
}

// Mode is a named preset of the kind set.
type Mode string

const (
	ModeClassic Mode = "classic" // Normal, number and bomb blocks
	ModeNumbers Mode = "numbers" // Number and bomb blocks only
	ModeColors  Mode = "colors"  // Normal and bomb blocks only
)

// Modes lists the presets in display order.
func Modes() []Mode {
	return []Mode{ModeClassic, ModeNumbers, ModeColors}
}
