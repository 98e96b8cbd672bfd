package model

import (
	"reflect"
	"testing"

	"github.com/mj1618/window-viewer/internal/platform"
	"github.com/mj1618/window-viewer/internal/platform/fake"
)

func TestNewSnapshot_NullHandle(t *testing.T) {
	q := fake.New()
	s := NewSnapshot(q, 0)

	if !reflect.DeepEqual(s, Snapshot{}) {
		t.Errorf("expected zero snapshot, got %+v", s)
	}
	if !s.IsNull() {
		t.Error("IsNull should be true for handle 0")
	}
	if len(q.Calls) != 0 {
		t.Errorf("adapter should not be called for a null handle, got %v", q.Calls)
	}
	if s.StyleNames() != nil || s.ExStyleNames() != nil {
		t.Error("null snapshot should decode to no flags")
	}
}

func TestNewSnapshot_CopiesAdapterData(t *testing.T) {
	rect := platform.Rect{Left: 10, Top: 10, Right: 110, Bottom: 40}
	q := fake.New().Add(0x100, fake.Window{
		ClassName: "Button",
		Title:     "OK",
		Rect:      &rect,
		Style:     WS_CHILD | WS_VISIBLE,
		ExStyle:   WS_EX_NOPARENTNOTIFY,
		Visible:   true,
		PID:       4242,
	})

	s := NewSnapshot(q, 0x100)
	if s.Handle != 0x100 || s.ClassName != "Button" || s.Title != "OK" {
		t.Errorf("unexpected identity fields: %+v", s)
	}
	if s.Rect == nil || *s.Rect != rect {
		t.Errorf("rect: got %v, want %v", s.Rect, rect)
	}
	if !s.Visible || s.PID != 4242 {
		t.Errorf("visible/pid: got %v/%d", s.Visible, s.PID)
	}
	if !s.IsChild() || s.IsPopup() {
		t.Errorf("IsChild/IsPopup: got %v/%v", s.IsChild(), s.IsPopup())
	}
	if got := s.ExStyleNames(); !reflect.DeepEqual(got, []string{"WS_EX_NOPARENTNOTIFY"}) {
		t.Errorf("ExStyleNames: got %v", got)
	}
}

func TestNewSnapshot_StaleHandle(t *testing.T) {
	// A handle the OS no longer knows returns zero data, not a failure.
	s := NewSnapshot(fake.New(), 0xBAD)
	if s.Handle != 0xBAD {
		t.Errorf("handle should be kept, got %v", s.Handle)
	}
	if s.ClassName != "" || s.Title != "" || s.Rect != nil || s.Visible || s.PID != 0 {
		t.Errorf("expected sentinel fields, got %+v", s)
	}
}

func TestNewSnapshot_EmptyTitleIsNotNull(t *testing.T) {
	q := fake.New().Add(0x5, fake.Window{ClassName: "Static", Title: ""})
	s := NewSnapshot(q, 0x5)
	if s.IsNull() {
		t.Error("window with empty title must not be null")
	}
}
