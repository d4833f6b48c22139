package main

import (
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/imageview"
	"github.com/gogpu/imageview/internal/config"
)

func newRunCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
		flags      config.Overrides
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replay a scenario of host events and print the view state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg.Merge(flags)

			if verbose {
				imageview.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
				defer imageview.SetLogger(nil)
			}
			return run(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "scenario YAML file")
	cmd.Flags().StringVarP(&flags.Image, "image", "i", "", "image file to probe for dimensions")
	cmd.Flags().StringVar(&flags.ImageSize, "image-size", "", "placeholder image size, e.g. 800x600")
	cmd.Flags().IntVar(&flags.Width, "width", 0, "allocated width in pixels")
	cmd.Flags().IntVar(&flags.Height, "height", 0, "allocated height in pixels")
	cmd.Flags().Float64Var(&flags.Scale, "scale", 0, "fixed scale (default fits the window)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log engine events to stderr")

	return cmd
}

// run builds a view from cfg, replays its steps and writes the state after
// each one.
func run(w io.Writer, cfg *config.Config) error {
	img, err := scenarioImage(cfg)
	if err != nil {
		return err
	}

	var opts []imageview.Option
	if cfg.StepIncrement > 0 {
		opts = append(opts, imageview.WithStepIncrement(cfg.StepIncrement))
	}
	opts = append(opts, imageview.WithScale(cfg.Scale))
	if img != nil {
		opts = append(opts, imageview.WithImage(img))
	}

	v := imageview.New(opts...)
	defer v.Close()

	v.Allocate(imageview.Size{Width: cfg.Width, Height: cfg.Height})
	writeState(w, "initial", v)

	for i, step := range cfg.Steps {
		if err := apply(v, step); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		writeState(w, fmt.Sprintf("%d %s", i, step.Op), v)
	}
	return nil
}

// scenarioImage returns the image to attach: the probed file, a
// placeholder rectangle, or nil.
func scenarioImage(cfg *config.Config) (imageview.Image, error) {
	switch {
	case cfg.Image != "":
		_, bounds, err := probeImage(cfg.Image)
		if err != nil {
			return nil, err
		}
		return bounds, nil
	case cfg.ImageSize != "":
		width, height, err := config.ParseSize(cfg.ImageSize)
		if err != nil {
			return nil, err
		}
		return image.Rect(0, 0, width, height), nil
	default:
		return nil, nil
	}
}

func apply(v *imageview.View, s config.Step) error {
	switch s.Op {
	case config.OpAllocate:
		v.Allocate(imageview.Size{Width: s.Width, Height: s.Height})
	case config.OpScale:
		v.SetScale(s.Scale)
	case config.OpScaleAt:
		v.SetScaleAtPoint(s.Scale, s.X, s.Y)
	case config.OpFit:
		v.SetScaleToFit()
	case config.OpTranslate:
		v.Translate(s.DX, s.DY)
	case config.OpScrollH:
		v.HAdjustment().SetValue(s.Value)
	case config.OpScrollV:
		v.VAdjustment().SetValue(s.Value)
	case config.OpDetach:
		v.SetImage(nil)
	default:
		return fmt.Errorf("%w %q", config.ErrUnknownOp, s.Op)
	}
	return nil
}

func writeState(w io.Writer, label string, v *imageview.View) {
	h, vadj := v.HAdjustment(), v.VAdjustment()
	fmt.Fprintf(w, "%-12s scale=%g fitting=%t viewport=%v h=[%g %g %g] v=[%g %g %g]\n",
		label, v.Scale(), v.IsFitting(), v.Viewport(),
		h.Value(), h.Upper(), h.PageSize(),
		vadj.Value(), vadj.Upper(), vadj.PageSize())
}
