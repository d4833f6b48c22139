package main

import (
	"fmt"
	"image"
	"os"

	// Formats understood by probe and run.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/spf13/cobra"
)

func newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe FILE...",
		Short: "Print image formats and dimensions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				format, bounds, err := probeImage(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %dx%d\n", path, format, bounds.Dx(), bounds.Dy())
			}
			return nil
		},
	}
}

// probeImage reads only the header of the image at path and returns its
// format and bounds.
func probeImage(path string) (string, image.Rectangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", image.Rectangle{}, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return "", image.Rectangle{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return format, image.Rect(0, 0, cfg.Width, cfg.Height), nil
}
