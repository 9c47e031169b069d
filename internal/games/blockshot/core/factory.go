package core

// Rand is the random source the factory draws from.
// *math/rand.Rand satisfies it; tests supply scripted sources.
type Rand interface {
	Intn(n int) int
}

// Factory produces new blocks from a weighted kind set and a palette.
type Factory struct {
	kinds   []WeightedKind
	total   int
	palette []Color
	rng     Rand
}

// NewFactory creates a factory. Kinds with non-positive weight are
// rejected, as is an empty palette.
func NewFactory(kinds []WeightedKind, palette []Color, rng Rand) (*Factory, error) {
	if len(palette) == 0 {
		return nil, &ConfigError{Field: "palette", Reason: "must contain at least one color"}
	}
	if len(kinds) == 0 {
		return nil, &ConfigError{Field: "kinds", Reason: "must contain at least one block kind"}
	}
	total := 0
	for _, wk := range kinds {
		if wk.Weight <= 0 {
			return nil, &ConfigError{Field: "kinds", Reason: "weights must be positive"}
		}
		total += wk.Weight
	}

	return &Factory{
		kinds:   append([]WeightedKind(nil), kinds...),
		total:   total,
		palette: append([]Color(nil), palette...),
		rng:     rng,
	}, nil
}

// Create draws a kind, then a color, and returns the new block.
func (f *Factory) Create() Block {
	return NewBlock(f.pickKind(), f.palette[f.rng.Intn(len(f.palette))])
}

// pickKind walks the cumulative weights.
func (f *Factory) pickKind() Kind {
	n := f.rng.Intn(f.total)
	for _, wk := range f.kinds {
		if n < wk.Weight {
			return wk.Kind
		}
		n -= wk.Weight
	}
	return f.kinds[len(f.kinds)-1].Kind
}
