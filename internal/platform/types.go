package platform

import "fmt"

// Handle is an opaque native window identifier. Zero means "no window".
type Handle uintptr

// String formats the handle the way the viewer prints it.
func (h Handle) String() string {
	return fmt.Sprintf("0x%08X", uint64(h))
}

// Point is a screen coordinate.
type Point struct {
	X, Y int32
}

// Rect is a window's bounding rectangle in screen coordinates.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// Width returns Right - Left.
func (r Rect) Width() int32 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Target names one of the three windows the viewer samples.
type Target int

const (
	TargetMouse Target = iota
	TargetFocus
	TargetActive
	targetCount
)

// Targets lists every target in display order.
func Targets() []Target {
	out := make([]Target, 0, targetCount)
	for t := Target(0); t < targetCount; t++ {
		out = append(out, t)
	}
	return out
}

func (t Target) String() string {
	switch t {
	case TargetMouse:
		return "Window Under Mouse"
	case TargetFocus:
		return "Focused Window"
	case TargetActive:
		return "Active Window"
	default:
		return "?"
	}
}

// ParseTarget converts a --target flag value to a Target.
func ParseTarget(s string) (Target, error) {
	switch s {
	case "mouse":
		return TargetMouse, nil
	case "focus":
		return TargetFocus, nil
	case "active":
		return TargetActive, nil
	default:
		return TargetMouse, fmt.Errorf("unknown target: %q (expected mouse, focus, or active)", s)
	}
}
