package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mj1618/window-viewer/internal/output"
	"github.com/mj1618/window-viewer/internal/platform"
	"github.com/mj1618/window-viewer/internal/viewer"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print window information once and exit",
	Long:  "Print the same report the viewer shows for the window under the mouse, the focused window and/or the active window.",
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().String("target", "all", "Which window to inspect: mouse, focus, active, all")
	inspectCmd.Flags().Bool("ancestors", true, "Include the parent/owner chain")
	inspectCmd.Flags().Bool("no-color", false, "Disable colored section headers")
}

var headerColor = color.New(color.FgCyan, color.Bold)

func runInspect(cmd *cobra.Command, args []string) error {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		color.NoColor = true
	}

	targetName, _ := cmd.Flags().GetString("target")
	targets, err := parseTargets(targetName)
	if err != nil {
		return err
	}

	q, err := newQuerier()
	if err != nil {
		return err
	}

	r := viewer.NewRefresher(q, displayConfig(cmd))
	out := cmd.OutOrStdout()
	var failed []string
	for _, t := range targets {
		text, err := r.Render(t)
		if err != nil {
			text = "Error: " + err.Error()
			failed = append(failed, t.String())
		}
		fmt.Fprint(out, output.FormatTarget(headerColor.Sprint(t.String()), text))
	}
	if len(failed) > 0 {
		return fmt.Errorf("failed to inspect: %s", strings.Join(failed, ", "))
	}
	return nil
}

func parseTargets(name string) ([]platform.Target, error) {
	if name == "" || name == "all" {
		return platform.Targets(), nil
	}
	t, err := platform.ParseTarget(name)
	if err != nil {
		return nil, err
	}
	return []platform.Target{t}, nil
}
