// Package core provides the core game logic for the Blockshot puzzle game.
// This package is UI-agnostic and deterministic for a given random source.
package core

import (
	"fmt"
	"strings"
)

// StartValue is the value every freshly created number block carries.
const StartValue = 2

// Color represents a block color.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// ParseColor converts a string to a Color.
// Returns ColorRed and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return ColorRed, true
	case "green", "g":
		return ColorGreen, true
	case "blue", "b":
		return ColorBlue, true
	case "yellow", "y":
		return ColorYellow, true
	case "purple", "p":
		return ColorPurple, true
	default:
		return ColorRed, false
	}
}

// DefaultPalette returns the four colors a classic round draws from.
func DefaultPalette() []Color {
	return []Color{ColorRed, ColorGreen, ColorBlue, ColorYellow}
}

// Kind is the behavior class of a block.
type Kind uint8

const (
	KindNormal Kind = iota
	KindNumber
	KindBomb
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindNumber:
		return "number"
	case KindBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return KindNormal, true
	case "number":
		return KindNumber, true
	case "bomb":
		return KindBomb, true
	default:
		return KindNormal, false
	}
}

// Block is a single grid unit. Value is only meaningful for number blocks.
type Block struct {
	Color Color
	Kind  Kind
	Value int
}

// NewNormal returns a plain block of the given color.
func NewNormal(c Color) Block {
	return Block{Color: c, Kind: KindNormal}
}

// NewNumber returns a number block starting at StartValue.
func NewNumber(c Color) Block {
	return Block{Color: c, Kind: KindNumber, Value: StartValue}
}

// NewBomb returns a bomb block of the given color.
func NewBomb(c Color) Block {
	return Block{Color: c, Kind: KindBomb}
}

// NewBlock builds a block of the given kind.
func NewBlock(k Kind, c Color) Block {
	switch k {
	case KindNumber:
		return NewNumber(c)
	case KindBomb:
		return NewBomb(c)
	default:
		return NewNormal(c)
	}
}

// Matches reports whether two blocks belong to the same connected region.
func (b Block) Matches(other Block) bool {
	return b.Color == other.Color && b.Kind == other.Kind
}

func (b Block) String() string {
	if b.Kind == KindNumber {
		return fmt.Sprintf("%s/%s(%d)", b.Color, b.Kind, b.Value)
	}
	return fmt.Sprintf("%s/%s", b.Color, b.Kind)
}
