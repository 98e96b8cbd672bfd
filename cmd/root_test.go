package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{"view", "inspect", "demo"}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_PersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "log-level", "log-file"} {
		f := rootCmd.PersistentFlags().Lookup(name)
		if f == nil {
			t.Errorf("expected persistent flag %q not found", name)
			continue
		}
		if f.Value.Type() != "string" {
			t.Errorf("flag %q: expected type string, got %q", name, f.Value.Type())
		}
	}
}

func TestLoadFileConfig_ExplicitMissing(t *testing.T) {
	_, err := loadFileConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for a missing explicit config file")
	}
}

func TestLoadFileConfig_Explicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("interval_ms: 250\nlog_level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := loadFileConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.IntervalMs == nil || *f.IntervalMs != 250 {
		t.Errorf("interval_ms: got %v", f.IntervalMs)
	}
	if f.LogLevel != "debug" {
		t.Errorf("log_level: got %q", f.LogLevel)
	}
}

func TestLoadFileConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("interval_ms: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadFileConfig(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
