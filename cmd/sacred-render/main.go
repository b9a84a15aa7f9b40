// Command sacred-render renders sacred sketches to SVG without a window.
//
//	sacred-render render --variant growth --seed hello -o growth.svg
//	sacred-render list
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/phanxgames/sacred"
	"github.com/phanxgames/sacred/svg"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "sacred-render",
		Short:        "Render sacred geometry sketches to SVG",
		SilenceUsage: true,
	}
	root.AddCommand(newRenderCmd(), newListCmd())
	return root
}

type renderOptions struct {
	variant    string
	seed       string
	width      int
	height     int
	at         time.Duration
	regenerate int
	shape      string
	pattern    string
	blend      string
	out        string
	verbose    bool
}

func newRenderCmd() *cobra.Command {
	var o renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame of a sketch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, o)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.variant, "variant", "growth", "sketch variant: growth, complementary or blend")
	f.StringVar(&o.seed, "seed", "", "seed string; empty picks a random one")
	f.IntVar(&o.width, "width", 800, "canvas width in pixels")
	f.IntVar(&o.height, "height", 800, "canvas height in pixels")
	f.DurationVar(&o.at, "at", time.Second, "time since start of the rendered frame")
	f.IntVar(&o.regenerate, "regenerate", 0, "regenerate this many times before rendering")
	f.StringVar(&o.shape, "shape", "", "force the active shape, e.g. Hexagon")
	f.StringVar(&o.pattern, "pattern", "", "force the active pattern, e.g. \"Seed Of Life\"")
	f.StringVar(&o.blend, "blend", "", "blend mode, e.g. MULTIPLY")
	f.StringVarP(&o.out, "out", "o", "", "output file; default <variant>.svg, - for stdout")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log debug output to stderr")
	return cmd
}

func runRender(cmd *cobra.Command, o renderOptions) error {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	variant, err := sacred.ParseVariant(o.variant)
	if err != nil {
		return err
	}
	sk, err := sacred.NewSketch(sacred.Config{
		Variant: variant,
		Seed:    o.seed,
		Debug:   o.verbose,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("new sketch: %w", err)
	}
	sk.OnResize(float64(o.width), float64(o.height))

	start := time.Now()
	if err := sk.Start(start); err != nil {
		return err
	}
	for range o.regenerate {
		if err := sk.Regenerate(start); err != nil {
			return err
		}
	}
	if err := applyOverrides(sk, o); err != nil {
		return err
	}

	frame := sk.Tick(start.Add(o.at))
	for _, err := range frame.Errors {
		logger.Warn("frame", "err", err)
	}

	w, closeOut, err := openOutput(cmd, o.out, variant)
	if err != nil {
		return err
	}
	if err := svg.Render(w, o.width, o.height, frame.Commands); err != nil {
		closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	logger.Info("rendered",
		"variant", variant.String(),
		"pattern", sk.ActivePatternDisplayName(),
		"commands", len(frame.Commands),
	)
	return nil
}

func applyOverrides(sk *sacred.Sketch, o renderOptions) error {
	if o.shape != "" {
		k, err := sacred.ParseShapeKind(o.shape)
		if err != nil {
			return err
		}
		if err := sk.SetShapeKind(k); err != nil {
			return err
		}
	}
	if o.pattern != "" {
		p, err := sacred.ParsePatternName(o.pattern)
		if err != nil {
			return err
		}
		if err := sk.SetPatternName(p); err != nil {
			return err
		}
	}
	if o.blend != "" {
		m, err := sacred.ParseBlendMode(o.blend)
		if err != nil {
			return err
		}
		sk.SetBlendMode(m)
	}
	return nil
}

func openOutput(cmd *cobra.Command, path string, v sacred.Variant) (io.Writer, func() error, error) {
	if path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	if path == "" {
		path = v.String() + ".svg"
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List variants, patterns, shapes and blend modes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "variants:")
			for _, v := range []sacred.Variant{sacred.VariantGrowth, sacred.VariantComplementary, sacred.VariantBlend} {
				fmt.Fprintf(out, "  %s\n", v)
			}
			fmt.Fprintln(out, "patterns:")
			for _, p := range sacred.DefaultCatalog().Names() {
				fmt.Fprintf(out, "  %s\n", p.DisplayName())
			}
			fmt.Fprintln(out, "shapes:")
			for _, k := range sacred.ShapeKinds() {
				fmt.Fprintf(out, "  %s\n", k)
			}
			fmt.Fprintln(out, "blend modes:")
			for _, m := range sacred.BlendModes() {
				fmt.Fprintf(out, "  %s\n", m)
			}
		},
	}
}
