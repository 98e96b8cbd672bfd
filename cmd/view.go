package cmd

import (
	"io"

	"github.com/mj1618/window-viewer/internal/config"
	"github.com/mj1618/window-viewer/internal/logger"
	"github.com/mj1618/window-viewer/internal/viewer"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show live window information in the terminal",
	Long: `Poll the window under the mouse, the focused window and the active window
and show their properties in three tabs. The viewer never takes focus from the
windows it inspects.

Keys: tab/1-3 switch tabs, +/- change the update interval, a toggles ancestor
trees, r refreshes now, q quits.`,
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().Int("interval", config.DefaultIntervalMs, "Update interval in milliseconds (50-5000)")
	viewCmd.Flags().Bool("ancestors", true, "Show the parent/owner chain of each window")
}

func runView(cmd *cobra.Command, args []string) error {
	q, err := newQuerier()
	if err != nil {
		return err
	}
	cfg := displayConfig(cmd)

	// The viewer owns the terminal; console logging would corrupt it.
	if !logger.HasFile() {
		logger.SetOutput(io.Discard)
	}
	logger.Infof("viewer starting: interval=%dms ancestors=%v", cfg.IntervalMs(), cfg.ShowAncestors())

	ctx, cancel := signalContext(cmd)
	defer cancel()
	return viewer.Run(ctx, q, cfg)
}
