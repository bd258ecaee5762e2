package generate

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/hexboard/board"
	"github.com/katalvlaran/hexboard/hex"
)

// Config holds generation parameters.
type Config struct {
	Radius      int     // hexagons farther than this from (0,0) are left empty
	Seed        int64   // noise seed (0 = random)
	Frequency   float64 // base noise frequency per hexagon step
	Octaves     int     // number of noise layers
	Persistence float64 // amplitude factor between layers
	Palette     []rune  // glyphs from lowest to highest noise value
}

// DefaultConfig returns a small island: water, sand, grass, forest, hills, peaks.
func DefaultConfig() Config {
	return Config{
		Radius:      4,
		Seed:        42,
		Frequency:   0.18,
		Octaves:     3,
		Persistence: 0.5,
		Palette:     []rune{'~', '.', ',', 'T', 'n', '^'},
	}
}

// Disk generates a board covering hex.Disk((0,0), cfg.Radius).
func Disk(cfg Config) (*board.Board[rune], error) {
	switch {
	case cfg.Radius < 0:
		return nil, ErrNegativeRadius
	case len(cfg.Palette) == 0:
		return nil, ErrEmptyPalette
	case cfg.Octaves < 1:
		return nil, ErrBadOctaves
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	noise := opensimplex.NewNormalized(seed)

	b := board.New[rune]()
	for _, c := range hex.Disk(hex.Coord{}, cfg.Radius) {
		x, y := plane(c)
		v := octaveNoise(noise, x, y, cfg.Octaves, cfg.Frequency, cfg.Persistence)
		b.Set(c, pick(cfg.Palette, v))
	}
	return b, nil
}

// plane places a coordinate in continuous space with unit neighbour spacing,
// matching the on-screen layout: r-q runs across, q+r runs up.
func plane(c hex.Coord) (x, y float64) {
	x = float64(c.R-c.Q) * math.Sqrt(3.0) / 2.0
	y = float64(c.Q+c.R) / 2.0
	return x, y
}

// octaveNoise layers several frequencies of noise; the result stays in [0,1).
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// pick maps v in [0,1) onto the palette.
func pick(palette []rune, v float64) rune {
	i := int(v * float64(len(palette)))
	return palette[min(max(i, 0), len(palette)-1)]
}
