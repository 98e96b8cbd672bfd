package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mj1618/window-viewer/internal/config"
	"github.com/mj1618/window-viewer/internal/platform"
	"github.com/spf13/cobra"
)

// newQuerier returns the platform window querier or an error explaining why
// none is available.
func newQuerier() (platform.WindowQuerier, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	if provider.Querier == nil {
		return nil, fmt.Errorf("window queries not available on this platform")
	}
	return provider.Querier, nil
}

// displayConfig builds the display settings: defaults, then the config file,
// then any flags the user set explicitly.
func displayConfig(cmd *cobra.Command) *config.Display {
	d := config.NewDisplay()
	fileConfig.Apply(d)
	if f := cmd.Flags().Lookup("interval"); f != nil && f.Changed {
		ms, _ := cmd.Flags().GetInt("interval")
		d.SetIntervalMs(ms)
	}
	if f := cmd.Flags().Lookup("ancestors"); f != nil && f.Changed {
		show, _ := cmd.Flags().GetBool("ancestors")
		d.SetShowAncestors(show)
	}
	return d
}

// signalContext is cancelled on Ctrl+C.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt)
}
