package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/mj1618/window-viewer/internal/config"
	"github.com/mj1618/window-viewer/internal/model"
	"github.com/mj1618/window-viewer/internal/platform"
	"github.com/mj1618/window-viewer/internal/platform/fake"
	"github.com/spf13/cobra"
)

func TestInspectCommand_Flags(t *testing.T) {
	flags := inspectCmd.Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"target", "string"},
		{"ancestors", "bool"},
		{"no-color", "bool"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestParseTargets(t *testing.T) {
	tests := []struct {
		in      string
		want    []platform.Target
		wantErr bool
	}{
		{"all", platform.Targets(), false},
		{"", platform.Targets(), false},
		{"mouse", []platform.Target{platform.TargetMouse}, false},
		{"focus", []platform.Target{platform.TargetFocus}, false},
		{"active", []platform.Target{platform.TargetActive}, false},
		{"window", nil, true},
	}
	for _, tt := range tests {
		got, err := parseTargets(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseTargets(%q): err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("parseTargets(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseTargets(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func inspectTestQuerier() *fake.Querier {
	rect := platform.Rect{Left: 10, Top: 10, Right: 110, Bottom: 40}
	q := fake.New().
		Add(0x10, fake.Window{ClassName: "Button", Title: "OK", Rect: &rect, Style: model.WS_CHILD | model.WS_VISIBLE, Visible: true, Parent: 0x20}).
		Add(0x20, fake.Window{ClassName: "#32770", Title: "Dialog", Style: model.WS_POPUP})
	q.AtPoint = 0x10
	q.Foreground = 0x20
	return q
}

func runInspectTest(t *testing.T, args ...string) (string, error) {
	t.Helper()
	withFileConfig(t, &config.File{})
	origNoColor := color.NoColor
	t.Cleanup(func() { color.NoColor = origNoColor })

	cmd := &cobra.Command{}
	cmd.Flags().String("target", "all", "")
	cmd.Flags().Bool("ancestors", true, "")
	cmd.Flags().Bool("no-color", false, "")
	args = append([]string{"--no-color"}, args...)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	err := runInspect(cmd, nil)
	return buf.String(), err
}

func TestRunInspect_AllTargets(t *testing.T) {
	withProvider(t, inspectTestQuerier())

	out, err := runInspectTest(t)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"##### Window Under Mouse #####",
		"##### Focused Window #####",
		"##### Active Window #####",
		"Class Name: Button",
		"Class Name: #32770",
		"No focused window detected",
		"=== Ancestor Tree ===",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunInspect_SingleTargetNoAncestors(t *testing.T) {
	withProvider(t, inspectTestQuerier())

	out, err := runInspectTest(t, "--target", "mouse", "--ancestors=false")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "##### Window Under Mouse #####\n") {
		t.Errorf("unexpected header:\n%s", out)
	}
	if strings.Contains(out, "Active Window") {
		t.Errorf("only the mouse target should be printed:\n%s", out)
	}
	if strings.Contains(out, "Ancestor Tree") {
		t.Errorf("ancestor tree should be suppressed:\n%s", out)
	}
}

func TestRunInspect_UnknownTarget(t *testing.T) {
	withProvider(t, inspectTestQuerier())
	if _, err := runInspectTest(t, "--target", "window"); err == nil {
		t.Error("expected error for unknown target")
	}
}

func TestRunInspect_FailedTarget(t *testing.T) {
	q := inspectTestQuerier()
	q.Panic = 0x20
	withProvider(t, q)

	out, err := runInspectTest(t, "--target", "active")
	if err == nil {
		t.Fatal("expected error when a target fails")
	}
	if !strings.Contains(out, "Error:") {
		t.Errorf("failure should be reported in the output:\n%s", out)
	}
}

func TestRunInspect_Unsupported(t *testing.T) {
	orig := platform.NewProviderFunc
	platform.NewProviderFunc = nil
	defer func() { platform.NewProviderFunc = orig }()

	if _, err := runInspectTest(t); err != platform.ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}
