// Package demo describes the sample windows the demo command opens. The
// descriptions are platform-neutral; internal/platform/windows turns them into
// real windows.
package demo

import (
	"fmt"
	"time"

	"github.com/mj1618/window-viewer/internal/model"
)

// Kind identifies one sample window.
type Kind int

const (
	Popup Kind = iota
	Tooltip
	Layered
)

func (k Kind) String() string {
	switch k {
	case Popup:
		return "popup"
	case Tooltip:
		return "tooltip"
	case Layered:
		return "layered"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Window is everything needed to create one sample window.
type Window struct {
	Kind   Kind
	Button string // controller button label
	Title  string
	Lines  []string

	X, Y, Width, Height int32
	Style, ExStyle      uint32

	Background uint32 // COLORREF, 0x00BBGGRR
	Alpha      byte   // 255 is opaque; below 255 needs WS_EX_LAYERED

	Lifetime          time.Duration // 0 keeps the window until closed
	CloseOnDeactivate bool
	CloseButton       bool
}

// RGB packs a color the way Win32 COLORREF expects it.
func RGB(r, g, b byte) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16
}

// Controller window geometry and text.
const (
	ControllerTitle  = "Window Viewer Demo"
	ControllerWidth  = 400
	ControllerHeight = 300
)

// ControllerFooter is shown under the buttons.
var ControllerFooter = []string{
	"Run Window Viewer to inspect these windows",
	"without changing their focus!",
}

var samples = []Window{
	{
		Kind:   Popup,
		Button: "Create Focus-Sensitive Popup",
		Title:  "Focus-Sensitive Popup",
		Lines: []string{
			"This is a popup window",
			"It will disappear when it loses focus",
			"Use Window Viewer to inspect it!",
		},
		X: 500, Y: 300, Width: 300, Height: 200,
		Style:             model.WS_POPUP | model.WS_BORDER,
		ExStyle:           model.WS_EX_TOPMOST,
		Background:        RGB(0xAD, 0xD8, 0xE6), // lightblue
		Alpha:             255,
		CloseOnDeactivate: true,
		CloseButton:       true,
	},
	{
		Kind:   Tooltip,
		Button: "Create Tooltip Window",
		Title:  "Tooltip Window",
		Lines: []string{
			"Tooltip Window",
			"(WS_EX_TOOLWINDOW style)",
		},
		X: 600, Y: 400, Width: 220, Height: 40,
		Style:      model.WS_POPUP | model.WS_BORDER,
		ExStyle:    model.WS_EX_TOOLWINDOW | model.WS_EX_TOPMOST | model.WS_EX_NOACTIVATE,
		Background: RGB(0xFF, 0xFF, 0x00), // yellow
		Alpha:      255,
		Lifetime:   5 * time.Second,
	},
	{
		Kind:   Layered,
		Button: "Create Layered Window",
		Title:  "Layered Window",
		Lines: []string{
			"Semi-transparent",
			"Layered Window",
		},
		X: 700, Y: 300, Width: 250, Height: 150,
		Style:       model.WS_OVERLAPPEDWINDOW,
		ExStyle:     model.WS_EX_LAYERED | model.WS_EX_TOPMOST,
		Background:  RGB(0x90, 0xEE, 0x90), // lightgreen
		Alpha:       178,                    // 70% opaque
		CloseButton: true,
	},
}

// Windows returns the sample windows in controller button order.
func Windows() []Window {
	out := make([]Window, len(samples))
	copy(out, samples)
	return out
}

// Lookup returns the sample for k.
func Lookup(k Kind) (Window, bool) {
	for _, s := range samples {
		if s.Kind == k {
			return s, true
		}
	}
	return Window{}, false
}
