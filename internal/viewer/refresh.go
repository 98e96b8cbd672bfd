package viewer

import (
	"fmt"
	"time"

	"github.com/mj1618/window-viewer/internal/config"
	"github.com/mj1618/window-viewer/internal/logger"
	"github.com/mj1618/window-viewer/internal/model"
	"github.com/mj1618/window-viewer/internal/output"
	"github.com/mj1618/window-viewer/internal/platform"
)

// Result is the outcome of one refresh. Texts and Updated are indexed by
// platform.Target; a pane whose cycle failed keeps its previous text.
type Result struct {
	Texts   [3]string
	Updated [3]bool
	Status  string
	Err     error
}

// Refresher samples the three target windows and formats them. It must run
// on the goroutine that owns the display.
type Refresher struct {
	q   platform.WindowQuerier
	cfg *config.Display
	now func() time.Time
}

func NewRefresher(q platform.WindowQuerier, cfg *config.Display) *Refresher {
	return &Refresher{q: q, cfg: cfg, now: time.Now}
}

// Refresh runs one independent cycle per target. A failing cycle does not
// stop the others; the first failure becomes the status line.
func (r *Refresher) Refresh() Result {
	var res Result
	for _, t := range platform.Targets() {
		text, err := r.Render(t)
		if err != nil {
			logger.Warnf("refresh %s: %v", t, err)
			if res.Err == nil {
				res.Err = err
			}
			continue
		}
		res.Texts[t] = text
		res.Updated[t] = true
	}

	if res.Err != nil {
		res.Status = fmt.Sprintf("Error: %v", res.Err)
	} else {
		res.Status = "Updated at " + r.now().Format("15:04:05")
	}
	return res
}

// Render formats the current window for t. A panic inside the native
// adapter is returned as an error.
func (r *Refresher) Render(t platform.Target) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s: %v", t, p)
		}
	}()

	h, err := r.handle(t)
	if err != nil {
		return "", err
	}
	if h == 0 && t == platform.TargetFocus {
		return output.NoFocus, nil
	}

	s := model.NewSnapshot(r.q, h)
	var ancestors []model.Snapshot
	if r.cfg.ShowAncestors() {
		ancestors = model.WalkAncestors(r.q, h)
	}
	return output.FormatSnapshot(s, ancestors), nil
}

func (r *Refresher) handle(t platform.Target) (platform.Handle, error) {
	switch t {
	case platform.TargetMouse:
		pt, err := r.q.CursorPos()
		if err != nil {
			return 0, fmt.Errorf("cursor position: %w", err)
		}
		return r.q.WindowFromPoint(pt), nil
	case platform.TargetFocus:
		return r.q.FocusedWindow(), nil
	case platform.TargetActive:
		return r.q.ForegroundWindow(), nil
	default:
		return 0, fmt.Errorf("unknown target %d", t)
	}
}
