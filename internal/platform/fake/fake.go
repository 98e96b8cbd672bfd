// Package fake provides an in-memory platform.WindowQuerier for tests.
package fake

import (
	"github.com/mj1618/window-viewer/internal/platform"
)

// Window is the data the fake returns for one handle.
type Window struct {
	ClassName string
	Title     string
	Rect      *platform.Rect
	Style     uint32
	ExStyle   uint32
	Visible   bool
	PID       uint32
	Parent    platform.Handle
	Owner     platform.Handle
}

// Querier serves window data from a map. Unknown handles behave like stale
// native handles and return zero values.
type Querier struct {
	Windows map[platform.Handle]Window

	Cursor    platform.Point
	CursorErr error
	// AtPoint is returned by WindowFromPoint regardless of the point.
	AtPoint    platform.Handle
	Focused    platform.Handle
	Foreground platform.Handle

	// Panic, when set, is raised by ClassName for that handle to simulate a
	// failing native call.
	Panic platform.Handle

	// Calls counts adapter calls per handle, for asserting the null-handle
	// short circuit.
	Calls map[platform.Handle]int
}

// New returns an empty fake.
func New() *Querier {
	return &Querier{
		Windows: make(map[platform.Handle]Window),
		Calls:   make(map[platform.Handle]int),
	}
}

// Add registers w under h and returns the fake for chaining.
func (q *Querier) Add(h platform.Handle, w Window) *Querier {
	q.Windows[h] = w
	return q
}

func (q *Querier) get(h platform.Handle) Window {
	if q.Calls != nil {
		q.Calls[h]++
	}
	return q.Windows[h]
}

func (q *Querier) CursorPos() (platform.Point, error) {
	return q.Cursor, q.CursorErr
}

func (q *Querier) WindowFromPoint(p platform.Point) platform.Handle { return q.AtPoint }
func (q *Querier) FocusedWindow() platform.Handle                   { return q.Focused }
func (q *Querier) ForegroundWindow() platform.Handle                { return q.Foreground }

func (q *Querier) ClassName(h platform.Handle) string {
	if h != 0 && h == q.Panic {
		panic("fake: invalid window handle")
	}
	return q.get(h).ClassName
}

func (q *Querier) WindowText(h platform.Handle) string { return q.get(h).Title }

func (q *Querier) WindowRect(h platform.Handle) (platform.Rect, bool) {
	w := q.get(h)
	if w.Rect == nil {
		return platform.Rect{}, false
	}
	return *w.Rect, true
}

func (q *Querier) Style(h platform.Handle) uint32     { return q.get(h).Style }
func (q *Querier) ExStyle(h platform.Handle) uint32   { return q.get(h).ExStyle }
func (q *Querier) IsVisible(h platform.Handle) bool   { return q.get(h).Visible }
func (q *Querier) ProcessID(h platform.Handle) uint32 { return q.get(h).PID }

func (q *Querier) Parent(h platform.Handle) platform.Handle { return q.Windows[h].Parent }
func (q *Querier) Owner(h platform.Handle) platform.Handle  { return q.Windows[h].Owner }

var _ platform.WindowQuerier = (*Querier)(nil)
