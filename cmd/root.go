package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/window-viewer/internal/config"
	"github.com/mj1618/window-viewer/internal/logger"
	"github.com/mj1618/window-viewer/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "window-viewer",
	Short: "Inspect Win32 windows without stealing their focus",
	Long: `A terminal tool that shows live properties of the window under the mouse,
the focused window and the active window, including decoded style flags and
the parent/owner chain.`,
	SilenceUsage: true,
}

// fileConfig holds the settings loaded from the YAML config file. Commands
// layer their own flags on top of it.
var fileConfig = &config.File{}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("config", "", "Config file (default: <user config dir>/window-viewer/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path, _ := rootCmd.PersistentFlags().GetString("config")
		f, err := loadFileConfig(path)
		if err != nil {
			return err
		}
		fileConfig = f

		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		if level == "" {
			level = fileConfig.LogLevel
		}
		logger.SetLevel(level)

		logFile, _ := rootCmd.PersistentFlags().GetString("log-file")
		if logFile == "" {
			logFile = fileConfig.LogFile
		}
		if logFile != "" {
			if err := logger.SetOutputFile(logFile); err != nil {
				return err
			}
		}
		return nil
	}
	rootCmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		logger.CloseLogFile()
	}
}

// loadFileConfig reads the config file. An explicitly named file must exist;
// the default location is optional.
func loadFileConfig(path string) (*config.File, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		return config.LoadFile(path)
	}

	path, err := config.DefaultPath()
	if err != nil {
		logger.Debugf("no default config location: %v", err)
		return &config.File{}, nil
	}
	return config.LoadFile(path)
}
