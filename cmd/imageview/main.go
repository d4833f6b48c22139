// Command imageview replays host events against an imageview.View and
// prints the resulting viewport, scale and scrollbar state.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "imageview",
		Short:         "Inspect the viewport engine of a scalable image view",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newProbeCmd())
	rootCmd.AddCommand(newRunCmd())
	return rootCmd
}
