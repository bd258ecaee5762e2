package board

// Option customizes how a board is drawn or parsed.
type Option func(*config)

type config struct {
	glyphs GlyphSet
}

func newConfig(opts []Option) config {
	cfg := config{glyphs: UnicodeGlyphs}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithGlyphs selects the runes outlines are drawn with.
// Panics when a rune is zero, when the brackets coincide, or when a bracket
// doubles as a stroke, since corner resolution tells brackets apart by rune.
func WithGlyphs(g GlyphSet) Option {
	if g.Left == 0 || g.Right == 0 || g.Horizontal == 0 || g.Slash == 0 || g.Backslash == 0 {
		panic("board: WithGlyphs with zero rune")
	}
	if g.Left == g.Right {
		panic("board: WithGlyphs with identical brackets")
	}
	for _, stroke := range []rune{g.Horizontal, g.Slash, g.Backslash} {
		if stroke == g.Left || stroke == g.Right {
			panic("board: WithGlyphs bracket reused as stroke")
		}
	}
	return func(c *config) {
		c.glyphs = g
	}
}
