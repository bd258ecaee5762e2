package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hexboard/board"
	"github.com/katalvlaran/hexboard/charmap"
	"github.com/katalvlaran/hexboard/generate"
	"github.com/katalvlaran/hexboard/internal/boardfile"
	"github.com/katalvlaran/hexboard/raster"
)

// outputOptions are shared by commands that draw a board.
type outputOptions struct {
	ascii bool
	png   string
}

func (o *outputOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.ascii, "ascii", false, "draw brackets with ASCII '<' and '>'")
	cmd.Flags().StringVar(&o.png, "png", "", "also write the drawing to this PNG file")
}

type generateOptions struct {
	radius  int
	seed    int64
	palette []rune
}

func runRender(cmd *cobra.Command, path string, opts outputOptions) error {
	doc, err := readDocument(cmd, path)
	if err != nil {
		return err
	}
	b, err := doc.Board()
	if err != nil {
		return err
	}
	glyphs, err := doc.GlyphSet()
	if err != nil {
		return err
	}
	if opts.ascii {
		glyphs = board.ASCIIGlyphs
	}
	return emit(cmd, b, glyphs, opts)
}

func runGenerate(cmd *cobra.Command, gen generateOptions, opts outputOptions) error {
	cfg := generate.DefaultConfig()
	cfg.Radius = gen.radius
	cfg.Seed = gen.seed
	cfg.Palette = gen.palette

	b, err := generate.Disk(cfg)
	if err != nil {
		return err
	}
	slog.Debug("generated board", "radius", cfg.Radius, "seed", cfg.Seed)

	glyphs := board.UnicodeGlyphs
	if opts.ascii {
		glyphs = board.ASCIIGlyphs
	}
	return emit(cmd, b, glyphs, opts)
}

func runParse(cmd *cobra.Command, path string, ascii bool) error {
	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	glyphs, name := board.UnicodeGlyphs, boardfile.GlyphsUnicode
	if ascii {
		glyphs, name = board.ASCIIGlyphs, boardfile.GlyphsASCII
	}
	b, err := board.Parse(string(data), board.WithGlyphs(glyphs))
	if err != nil {
		return err
	}
	slog.Info("parsed drawing",
		"hexagons", humanize.Comma(int64(b.Len())),
		"islands", len(b.Islands()),
	)
	return boardfile.Encode(cmd.OutOrStdout(), boardfile.FromBoard(b, name))
}

// emit prints the drawing and optionally writes the PNG.
func emit(cmd *cobra.Command, b *board.Board[rune], glyphs board.GlyphSet, opts outputOptions) error {
	cm := b.CharMap(board.Identity, board.WithGlyphs(glyphs))
	for _, p := range charmap.WideCells(cm) {
		slog.Warn("wide glyph breaks column alignment", "column", p.X, "row", p.Y, "glyph", string(cm[p]))
	}

	out := charmap.Render(cm)
	if out != "" {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
			return err
		}
	}
	slog.Info("rendered board",
		"hexagons", humanize.Comma(int64(b.Len())),
		"islands", len(b.Islands()),
		"size", humanize.Bytes(uint64(len(out))),
	)

	if opts.png == "" {
		return nil
	}
	f, err := os.Create(opts.png)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := raster.WritePNG(f, raster.Draw(cm)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close png: %w", err)
	}
	slog.Info("wrote png", "path", opts.png)
	return nil
}

func readDocument(cmd *cobra.Command, path string) (*boardfile.Document, error) {
	if path == "-" {
		return boardfile.Decode(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open board: %w", err)
	}
	defer f.Close()
	return boardfile.Decode(f)
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read drawing: %w", err)
	}
	return data, nil
}
