package model

import "github.com/mj1618/window-viewer/internal/platform"

// Snapshot is the state of one window at one instant. It is built once and
// never refreshed; build a new one to observe changes.
type Snapshot struct {
	Handle    platform.Handle
	ClassName string
	Title     string
	Rect      *platform.Rect // nil when the bounds could not be read
	Style     uint32
	ExStyle   uint32
	Visible   bool
	PID       uint32
}

// NewSnapshot queries q once per property of h. A zero handle returns the
// empty snapshot without touching q.
func NewSnapshot(q platform.WindowQuerier, h platform.Handle) Snapshot {
	if h == 0 {
		return Snapshot{}
	}
	s := Snapshot{
		Handle:    h,
		ClassName: q.ClassName(h),
		Title:     q.WindowText(h),
		Style:     q.Style(h),
		ExStyle:   q.ExStyle(h),
		Visible:   q.IsVisible(h),
		PID:       q.ProcessID(h),
	}
	if r, ok := q.WindowRect(h); ok {
		s.Rect = &r
	}
	return s
}

// IsNull reports whether the snapshot has no window behind it.
func (s Snapshot) IsNull() bool {
	return s.Handle == 0
}

// StyleNames decodes Style against StyleFlags.
func (s Snapshot) StyleNames() []string {
	return DecodeFlags(s.Style, StyleFlags)
}

// ExStyleNames decodes ExStyle against ExStyleFlags.
func (s Snapshot) ExStyleNames() []string {
	return DecodeFlags(s.ExStyle, ExStyleFlags)
}

func (s Snapshot) IsPopup() bool { return s.Style&WS_POPUP != 0 }
func (s Snapshot) IsChild() bool { return s.Style&WS_CHILD != 0 }
