// Command window-viewer-demo opens the sample windows on its own, for
// distributing next to window-viewer.exe. It is equivalent to
// "window-viewer demo".
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mj1618/window-viewer/internal/platform"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.Spawner == nil {
		return fmt.Errorf("demo windows not available on this platform")
	}
	return provider.Spawner.RunDemo(ctx)
}
