package raster

import (
	"maps"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Option customizes Draw.
type Option func(*config)

type config struct {
	face     font.Face
	padding  int
	fallback map[rune]rune
}

// DefaultFallback maps runes missing from basic bitmap faces to ASCII.
func DefaultFallback() map[rune]rune {
	return map[rune]rune{'⟨': '<', '⟩': '>'}
}

func newConfig(opts []Option) config {
	cfg := config{
		face:     basicfont.Face7x13,
		padding:  2,
		fallback: DefaultFallback(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithFace sets the font face. It should be monospace; cells are sized by
// the advance of 'M'. Panics on nil.
func WithFace(f font.Face) Option {
	if f == nil {
		panic("raster: WithFace(nil)")
	}
	return func(c *config) {
		c.face = f
	}
}

// WithPadding sets the margin in pixels. Panics if px < 0.
func WithPadding(px int) Option {
	if px < 0 {
		panic("raster: WithPadding(px<0)")
	}
	return func(c *config) {
		c.padding = px
	}
}

// WithFallback replaces the substitution table. A nil map disables substitution.
func WithFallback(m map[rune]rune) Option {
	return func(c *config) {
		c.fallback = maps.Clone(m)
	}
}
