package output

import (
	"fmt"
	"strings"

	"github.com/mj1618/window-viewer/internal/model"
)

// NoWindow is the whole rendering of a null snapshot.
const NoWindow = "No window"

// NoFocus replaces NoWindow in the focus pane.
const NoFocus = "No focused window detected"

// FormatSnapshot renders s as the fixed multi-line block shown in a viewer
// pane. The ancestor tree is appended only when ancestors is non-nil; pass
// nil to leave the section out entirely.
func FormatSnapshot(s model.Snapshot, ancestors []model.Snapshot) string {
	if s.IsNull() {
		return NoWindow
	}

	var lines []string
	add := func(format string, args ...interface{}) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	add("=== Window Information ===")
	add("Handle: %s", s.Handle)
	add("Class Name: %s", s.ClassName)
	add("Window Text: %s", s.Title)
	add("Process ID: %d", s.PID)
	add("Visible: %t", s.Visible)

	if s.Rect != nil {
		add("Position: (%d, %d)", s.Rect.Left, s.Rect.Top)
		add("Size: %d x %d", s.Rect.Width(), s.Rect.Height())
	}

	add("\nStyle: 0x%08X", s.Style)
	if names := s.StyleNames(); len(names) > 0 {
		add("  Flags: %s", strings.Join(names, ", "))
	}

	add("\nExtended Style: 0x%08X", s.ExStyle)
	if names := s.ExStyleNames(); len(names) > 0 {
		add("  Flags: %s", strings.Join(names, ", "))
	}

	if ancestors != nil {
		add("\n\n=== Ancestor Tree ===")
		lines = append(lines, formatAncestors(ancestors)...)
	}

	return strings.Join(lines, "\n")
}

func formatAncestors(chain []model.Snapshot) []string {
	var lines []string
	for i, a := range chain {
		indent := strings.Repeat("  ", i)
		lines = append(lines, fmt.Sprintf("%s[%d] %s - %s - \"%s\"", indent, i, a.Handle, a.ClassName, a.Title))
		if a.IsPopup() {
			lines = append(lines, indent+"    (POPUP)")
		}
		if a.IsChild() {
			lines = append(lines, indent+"    (CHILD)")
		}
	}
	return lines
}

// FormatTarget prefixes text with a section header naming the target, for
// printing several panes to one stream.
func FormatTarget(name, text string) string {
	return fmt.Sprintf("##### %s #####\n%s\n", name, text)
}
