// Package boardfile reads and writes YAML board documents for the CLI.
//
// A document lists occupied hexagons and their single-rune payloads:
//
//	glyphs: unicode   # or ascii
//	cells:
//	  - {q: 0, r: 0, v: a}
//	  - {q: 1, r: 0, v: b}
//
// Later cells overwrite earlier ones at the same coordinate.
package boardfile

import (
	"errors"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexboard/board"
	"github.com/katalvlaran/hexboard/hex"
)

// Glyph set names accepted in Document.Glyphs.
const (
	GlyphsUnicode = "unicode"
	GlyphsASCII   = "ascii"
)

var (
	// ErrEmptyValue indicates a cell without a payload rune.
	ErrEmptyValue = errors.New("boardfile: cell value is empty")
	// ErrMultiRune indicates a cell payload longer than one rune.
	ErrMultiRune = errors.New("boardfile: cell value must be a single character")
	// ErrNonPrintable indicates a control or other non-graphic payload rune,
	// which would break the fixed-cell rows of a drawing.
	ErrNonPrintable = errors.New("boardfile: cell value must be printable")
	// ErrUnknownGlyphs indicates an unrecognized glyph set name.
	ErrUnknownGlyphs = errors.New("boardfile: unknown glyph set")
)

// Cell is one hexagon in a document.
type Cell struct {
	Q int    `yaml:"q"`
	R int    `yaml:"r"`
	V string `yaml:"v"`
}

// Document is the YAML form of a board.
type Document struct {
	Glyphs string `yaml:"glyphs,omitempty"`
	Cells  []Cell `yaml:"cells"`
}

// Decode reads one document from r. Unknown fields are rejected and an
// empty input yields an empty document.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Document{}, nil
		}
		return nil, fmt.Errorf("boardfile: decode: %w", err)
	}
	return &doc, nil
}

// Board converts the document into a rune board.
func (d *Document) Board() (*board.Board[rune], error) {
	b := board.New[rune]()
	for i, c := range d.Cells {
		switch n := utf8.RuneCountInString(c.V); {
		case n == 0:
			return nil, fmt.Errorf("%w: cell %d at (%d,%d)", ErrEmptyValue, i, c.Q, c.R)
		case n > 1:
			return nil, fmt.Errorf("%w: cell %d at (%d,%d) has %q", ErrMultiRune, i, c.Q, c.R, c.V)
		}
		v, _ := utf8.DecodeRuneInString(c.V)
		if !unicode.IsGraphic(v) && v != ' ' {
			return nil, fmt.Errorf("%w: cell %d at (%d,%d) has %q", ErrNonPrintable, i, c.Q, c.R, c.V)
		}
		b.Set(hex.Coord{Q: c.Q, R: c.R}, v)
	}
	return b, nil
}

// GlyphSet resolves Document.Glyphs; empty means unicode.
func (d *Document) GlyphSet() (board.GlyphSet, error) {
	return ParseGlyphs(d.Glyphs)
}

// ParseGlyphs maps a glyph set name to its board.GlyphSet; empty means unicode.
func ParseGlyphs(name string) (board.GlyphSet, error) {
	switch name {
	case "", GlyphsUnicode:
		return board.UnicodeGlyphs, nil
	case GlyphsASCII:
		return board.ASCIIGlyphs, nil
	default:
		return board.GlyphSet{}, fmt.Errorf("%w: %q", ErrUnknownGlyphs, name)
	}
}

// FromBoard builds a document listing b's cells in hex.Compare order.
func FromBoard(b *board.Board[rune], glyphs string) *Document {
	doc := &Document{Glyphs: glyphs, Cells: make([]Cell, 0, b.Len())}
	for _, c := range b.Coords() {
		v, _ := b.Get(c)
		doc.Cells = append(doc.Cells, Cell{Q: c.Q, R: c.R, V: string(v)})
	}
	return doc
}

// Encode writes d to w as YAML.
func Encode(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("boardfile: encode: %w", err)
	}
	return enc.Close()
}
