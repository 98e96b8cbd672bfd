//go:build windows

package windows

import (
	"fmt"
	"runtime"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/mj1618/window-viewer/internal/platform"
)

// classNameLen is the buffer size used for GetClassNameW. Longer names are
// truncated.
const classNameLen = 256

// Querier implements platform.WindowQuerier with user32 calls. Every method
// maps a null or stale handle to its zero value.
type Querier struct{}

// NewQuerier creates a new Win32 window querier.
func NewQuerier() *Querier {
	return &Querier{}
}

func (q *Querier) CursorPos() (platform.Point, error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return platform.Point{}, lastError("GetCursorPos")
	}
	return platform.Point{X: pt.X, Y: pt.Y}, nil
}

func (q *Querier) WindowFromPoint(p platform.Point) platform.Handle {
	return platform.Handle(windowFromPoint(p.X, p.Y))
}

// Thread and focus calls used by FocusedWindow. Tests replace them to
// observe the attach/detach sequence.
var (
	foregroundWindow   = func() uintptr { return uintptr(win.GetForegroundWindow()) }
	windowThreadID     = func(hwnd uintptr) uint32 { return win.GetWindowThreadProcessId(win.HWND(hwnd), nil) }
	currentThreadID    = windows.GetCurrentThreadId
	attachInput        = attachThreadInput
	focusOfThreadInput = getFocus
)

// FocusedWindow returns the keyboard-focus window of the foreground thread.
// GetFocus only sees the calling thread's input state, so the calling thread
// is attached to the foreground thread for the duration of the call. The
// attachment is released before returning on every path.
func (q *Querier) FocusedWindow() platform.Handle {
	fg := foregroundWindow()
	if fg == 0 {
		return 0
	}
	target := windowThreadID(fg)
	if target == 0 {
		return 0
	}

	// Attach and detach must happen on the same OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	self := currentThreadID()
	if target == self {
		return platform.Handle(focusOfThreadInput())
	}
	if !attachInput(self, target, true) {
		return 0
	}
	defer attachInput(self, target, false)
	return platform.Handle(focusOfThreadInput())
}

func (q *Querier) ForegroundWindow() platform.Handle {
	return platform.Handle(foregroundWindow())
}

func (q *Querier) ClassName(h platform.Handle) string {
	if h == 0 {
		return ""
	}
	var buf [classNameLen]uint16
	n, err := windows.GetClassName(windows.HWND(h), &buf[0], int32(len(buf)))
	if err != nil || n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

func (q *Querier) WindowText(h platform.Handle) string {
	if h == 0 {
		return ""
	}
	return getWindowText(uintptr(h))
}

func (q *Querier) WindowRect(h platform.Handle) (platform.Rect, bool) {
	if h == 0 {
		return platform.Rect{}, false
	}
	var r win.RECT
	if !win.GetWindowRect(win.HWND(h), &r) {
		return platform.Rect{}, false
	}
	return platform.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}, true
}

func (q *Querier) Style(h platform.Handle) uint32 {
	if h == 0 {
		return 0
	}
	return getWindowLong(uintptr(h), gwlStyle)
}

func (q *Querier) ExStyle(h platform.Handle) uint32 {
	if h == 0 {
		return 0
	}
	return getWindowLong(uintptr(h), gwlExStyle)
}

func (q *Querier) IsVisible(h platform.Handle) bool {
	if h == 0 {
		return false
	}
	return win.IsWindowVisible(win.HWND(h))
}

func (q *Querier) ProcessID(h platform.Handle) uint32 {
	if h == 0 {
		return 0
	}
	var pid uint32
	win.GetWindowThreadProcessId(win.HWND(h), &pid)
	return pid
}

func (q *Querier) Parent(h platform.Handle) platform.Handle {
	if h == 0 {
		return 0
	}
	return platform.Handle(getParent(uintptr(h)))
}

func (q *Querier) Owner(h platform.Handle) platform.Handle {
	if h == 0 {
		return 0
	}
	return platform.Handle(getOwner(uintptr(h)))
}

func lastError(op string) error {
	if err := windows.GetLastError(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s failed", op)
}

var _ platform.WindowQuerier = (*Querier)(nil)
