package generate

import "errors"

var (
	// ErrNegativeRadius indicates a negative disk radius.
	ErrNegativeRadius = errors.New("generate: radius must be non-negative")
	// ErrEmptyPalette indicates a palette with no glyphs.
	ErrEmptyPalette = errors.New("generate: palette must not be empty")
	// ErrBadOctaves indicates fewer than one noise octave.
	ErrBadOctaves = errors.New("generate: octaves must be at least 1")
)
