package config

import (
	_ "embed"
)

//go:embed defaults/blockshot.yaml
var defaultBlockshotYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultBlockshotYAML...)
}

// DefaultBlockshotConfig returns the classic 20x12 rule set.
func DefaultBlockshotConfig() BlockshotConfig {
	return BlockshotConfig{
		Grid: GridConfig{
			Rows:     20,
			Cols:     12,
			CellSize: 30,
		},
		Shooter: ShooterConfig{
			Speed:       6,
			MinAim:      0.15,
			AimStep:     0.05,
			MaxInFlight: 0,
		},
		Scoring: ScoringConfig{
			MatchThreshold: 3,
			MatchBonus:     10,
			ExplodeBonus:   5,
			BlastRadius:    1,
		},
		Blocks: BlocksConfig{
			Palette: []string{"red", "green", "blue", "yellow"},
			Kinds: []KindWeight{
				{Kind: "normal", Weight: 1},
				{Kind: "number", Weight: 1},
				{Kind: "bomb", Weight: 1},
			},
		},
	}
}
