package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "hexboard",
		Short:         "Draw hexagon boards as terminal text",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLevel(logLevel)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(parseCmd())
	return rootCmd
}

func renderCmd() *cobra.Command {
	var opts outputOptions

	cmd := &cobra.Command{
		Use:   "render [board.yaml|-]",
		Short: "Render a YAML board document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, inputArg(args), opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func generateCmd() *cobra.Command {
	var (
		opts    outputOptions
		gen     generateOptions
		palette string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a procedurally generated disk of hexagons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen.palette = []rune(palette)
			return runGenerate(cmd, gen, opts)
		},
	}
	opts.bind(cmd)
	cmd.Flags().IntVarP(&gen.radius, "radius", "r", 4, "disk radius in hexagons")
	cmd.Flags().Int64Var(&gen.seed, "seed", 42, "noise seed (0 = random)")
	cmd.Flags().StringVar(&palette, "palette", "~.,Tn^", "glyphs from low to high terrain")
	return cmd
}

func parseCmd() *cobra.Command {
	var ascii bool

	cmd := &cobra.Command{
		Use:   "parse [drawing.txt|-]",
		Short: "Read a rendered drawing back into a YAML board document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, inputArg(args), ascii)
		},
	}
	cmd.Flags().BoolVar(&ascii, "ascii", false, "drawing uses ASCII brackets")
	return cmd
}

func inputArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: %w", s, err)
	}
	return level, nil
}
