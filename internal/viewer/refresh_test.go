package viewer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mj1618/window-viewer/internal/config"
	"github.com/mj1618/window-viewer/internal/model"
	"github.com/mj1618/window-viewer/internal/output"
	"github.com/mj1618/window-viewer/internal/platform"
	"github.com/mj1618/window-viewer/internal/platform/fake"
)

func sampleQuerier() *fake.Querier {
	rect := platform.Rect{Left: 0, Top: 0, Right: 800, Bottom: 600}
	q := fake.New().
		Add(0x10, fake.Window{ClassName: "Button", Title: "OK", Style: model.WS_CHILD | model.WS_VISIBLE, Parent: 0x20}).
		Add(0x20, fake.Window{ClassName: "#32770", Title: "Dialog", Style: model.WS_POPUP, Rect: &rect, Owner: 0x30}).
		Add(0x30, fake.Window{ClassName: "Notepad", Title: "Untitled - Notepad", Rect: &rect})
	q.AtPoint = 0x10
	q.Focused = 0x10
	q.Foreground = 0x20
	return q
}

func fixedRefresher(q platform.WindowQuerier, cfg *config.Display) *Refresher {
	r := NewRefresher(q, cfg)
	r.now = func() time.Time { return time.Date(2024, 1, 2, 13, 4, 5, 0, time.UTC) }
	return r
}

func TestRefresh_AllTargets(t *testing.T) {
	res := fixedRefresher(sampleQuerier(), config.NewDisplay()).Refresh()

	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Status != "Updated at 13:04:05" {
		t.Errorf("status: got %q", res.Status)
	}
	for _, tg := range platform.Targets() {
		if !res.Updated[tg] {
			t.Errorf("%s should be updated", tg)
		}
	}
	if !strings.Contains(res.Texts[platform.TargetMouse], "Class Name: Button") {
		t.Errorf("mouse pane:\n%s", res.Texts[platform.TargetMouse])
	}
	if !strings.Contains(res.Texts[platform.TargetActive], "Class Name: #32770") {
		t.Errorf("active pane:\n%s", res.Texts[platform.TargetActive])
	}
	if !strings.Contains(res.Texts[platform.TargetMouse], "[2] 0x00000030 - Notepad") {
		t.Errorf("ancestor tree should reach the owner:\n%s", res.Texts[platform.TargetMouse])
	}
}

func TestRefresh_AncestorToggle(t *testing.T) {
	q := sampleQuerier()
	cfg := config.NewDisplay()
	r := fixedRefresher(q, cfg)

	on := r.Refresh().Texts[platform.TargetMouse]
	cfg.SetShowAncestors(false)
	off := r.Refresh().Texts[platform.TargetMouse]

	if !strings.Contains(on, "=== Ancestor Tree ===") {
		t.Error("tree expected with ancestors on")
	}
	if strings.Contains(off, "Ancestor Tree") {
		t.Errorf("tree must be absent with ancestors off:\n%s", off)
	}
}

func TestRefresh_AncestorsOffSkipsWalk(t *testing.T) {
	q := sampleQuerier()
	cfg := config.NewDisplay()
	cfg.SetShowAncestors(false)
	fixedRefresher(q, cfg).Refresh()

	if _, ok := q.Calls[0x30]; ok {
		t.Error("root window should not be queried when ancestors are hidden")
	}
}

func TestRefresh_NoWindows(t *testing.T) {
	res := fixedRefresher(fake.New(), config.NewDisplay()).Refresh()

	if res.Texts[platform.TargetMouse] != output.NoWindow {
		t.Errorf("mouse: got %q", res.Texts[platform.TargetMouse])
	}
	if res.Texts[platform.TargetFocus] != output.NoFocus {
		t.Errorf("focus: got %q", res.Texts[platform.TargetFocus])
	}
	if res.Texts[platform.TargetActive] != output.NoWindow {
		t.Errorf("active: got %q", res.Texts[platform.TargetActive])
	}
}

func TestRefresh_CursorErrorIsolated(t *testing.T) {
	q := sampleQuerier()
	q.CursorErr = errors.New("access denied")

	res := fixedRefresher(q, config.NewDisplay()).Refresh()
	if res.Updated[platform.TargetMouse] {
		t.Error("mouse pane should not update on error")
	}
	if !res.Updated[platform.TargetFocus] || !res.Updated[platform.TargetActive] {
		t.Error("other panes should still update")
	}
	if res.Status != "Error: cursor position: access denied" {
		t.Errorf("status: got %q", res.Status)
	}
}

func TestRefresh_PanicRecovered(t *testing.T) {
	q := sampleQuerier()
	q.Panic = 0x20 // foreground window, and an ancestor of the others

	res := fixedRefresher(q, config.NewDisplay()).Refresh()
	if res.Err == nil {
		t.Fatal("expected error from panicking adapter")
	}
	if !strings.HasPrefix(res.Status, "Error: ") {
		t.Errorf("status: got %q", res.Status)
	}
	if res.Updated[platform.TargetActive] {
		t.Error("active pane should not update")
	}

	// The next refresh works again once the window stops failing.
	q.Panic = 0
	if res := fixedRefresher(q, config.NewDisplay()).Refresh(); res.Err != nil {
		t.Errorf("recovery refresh failed: %v", res.Err)
	}
}
