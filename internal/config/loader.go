package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockshot/internal/games/blockshot/core"
)

// FileName is the config file looked up in the search directories.
const FileName = "blockshot.yaml"

// Load returns the Blockshot configuration.
// Search order: customPath -> ~/.blockshot/configs/blockshot.yaml ->
// ./configs/blockshot.yaml -> embedded default -> hardcoded default.
// Files only need the keys they change; the rest keep the default values.
// A custom path that cannot be read or parsed is an error; broken files in
// the search directories are skipped.
func Load(customPath string) (BlockshotConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	candidates := []string{filepath.Join("configs", FileName)}
	if p := userConfigPath(FileName); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultBlockshotYAML)
	if err != nil {
		return DefaultBlockshotConfig(), nil
	}
	return cfg, nil
}

// LoadFile reads and parses a single config file.
func LoadFile(path string) (BlockshotConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BlockshotConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return BlockshotConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultBlockshotConfig. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func Parse(data []byte) (BlockshotConfig, error) {
	cfg := DefaultBlockshotConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return BlockshotConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the per-user config file, or empty if the home
// directory is unknown.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockshot", "configs", filename)
}

// ParseMode converts a mode name. An empty name is classic.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeClassic, nil
	}
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("config: unknown mode %q", s)
}

// ApplyMode replaces the kind set with the preset of mode, keeping the
// configured weight of every kind the preset retains.
func ApplyMode(cfg *BlockshotConfig, mode Mode) {
	var keep []string
	switch mode {
	case ModeNumbers:
		keep = []string{"number", "bomb"}
	case ModeColors:
		keep = []string{"normal", "bomb"}
	default:
		return
	}

	weights := make(map[string]int, len(cfg.Blocks.Kinds))
	for _, kw := range cfg.Blocks.Kinds {
		weights[kw.Kind] = kw.Weight
	}

	kinds := make([]KindWeight, 0, len(keep))
	for _, k := range keep {
		w := weights[k]
		if w <= 0 {
			w = 1
		}
		kinds = append(kinds, KindWeight{Kind: k, Weight: w})
	}
	cfg.Blocks.Kinds = kinds
}

// ToSettings converts the configuration into engine settings and validates
// them. Every failure is a *core.ConfigError.
func (c BlockshotConfig) ToSettings() (core.Settings, error) {
	s := core.Settings{
		Rows:           c.Grid.Rows,
		Cols:           c.Grid.Cols,
		CellSize:       c.Grid.CellSize,
		Speed:          c.Shooter.Speed,
		MinAim:         c.Shooter.MinAim,
		AimStep:        c.Shooter.AimStep,
		MaxInFlight:    c.Shooter.MaxInFlight,
		MatchThreshold: c.Scoring.MatchThreshold,
		BlastRadius:    c.Scoring.BlastRadius,
		MatchBonus:     c.Scoring.MatchBonus,
		ExplodeBonus:   c.Scoring.ExplodeBonus,
	}

	for _, name := range c.Blocks.Palette {
		color, ok := core.ParseColor(name)
		if !ok {
			return core.Settings{}, &core.ConfigError{Field: "palette", Reason: fmt.Sprintf("unknown color %q", name)}
		}
		s.Palette = append(s.Palette, color)
	}
	for _, kw := range c.Blocks.Kinds {
		kind, ok := core.ParseKind(kw.Kind)
		if !ok {
			return core.Settings{}, &core.ConfigError{Field: "kinds", Reason: fmt.Sprintf("unknown kind %q", kw.Kind)}
		}
		s.Kinds = append(s.Kinds, core.WeightedKind{Kind: kind, Weight: kw.Weight})
	}

	if err := s.Validate(); err != nil {
		return core.Settings{}, err
	}
	return s, nil
}
