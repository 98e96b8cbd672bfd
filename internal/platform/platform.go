package platform

import "context"

// WindowQuerier reads window metadata from the OS window manager.
//
// Every method is best-effort: a zero or stale handle yields a zero value
// (empty string, false, 0) instead of an error, since the window can vanish
// between the lookup and the detail query.
type WindowQuerier interface {
	// CursorPos returns the current mouse position.
	CursorPos() (Point, error)
	// WindowFromPoint returns the window at p, or 0.
	WindowFromPoint(p Point) Handle
	// FocusedWindow returns the control holding keyboard focus in the
	// foreground window's thread, or 0.
	FocusedWindow() Handle
	// ForegroundWindow returns the active window, or 0.
	ForegroundWindow() Handle

	ClassName(h Handle) string
	WindowText(h Handle) string
	WindowRect(h Handle) (Rect, bool)
	Style(h Handle) uint32
	ExStyle(h Handle) uint32
	IsVisible(h Handle) bool
	ProcessID(h Handle) uint32

	// Parent returns the parent window, or 0.
	Parent(h Handle) Handle
	// Owner returns the owner window, or 0.
	Owner(h Handle) Handle
}

// DemoSpawner opens sample windows for the viewer to inspect.
type DemoSpawner interface {
	// RunDemo blocks until the demo controller window is closed or ctx is done.
	RunDemo(ctx context.Context) error
}
