package cmd

import (
	"fmt"

	"github.com/mj1618/window-viewer/internal/platform"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open sample popup, tooltip and layered windows",
	Long: `Open a controller window with buttons that create windows which are hard to
inspect with ordinary tools: a popup that closes when it loses focus, a
non-activating tooltip that disappears after five seconds, and a
semi-transparent layered window. Run "window-viewer view" alongside it.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.Spawner == nil {
		return fmt.Errorf("demo windows not available on this platform")
	}

	ctx, cancel := signalContext(cmd)
	defer cancel()
	return provider.Spawner.RunDemo(ctx)
}
