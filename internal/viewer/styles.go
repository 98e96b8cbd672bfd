package viewer

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mj1618/window-viewer/internal/platform"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Background(lipgloss.Color("236")).
				Padding(0, 2)

	tabBarStyle = lipgloss.NewStyle().
			MarginBottom(1)

	tabGap = lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		SetString(" ")
)

// renderTabBar renders one tab per target with its number shortcut.
func renderTabBar(active platform.Target, width int) string {
	var tabs []string
	for _, t := range platform.Targets() {
		label := string(rune('1'+int(t))) + ":" + t.String()
		if t == active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, intersperse(tabs, tabGap.Render())...)
	return tabBarStyle.Width(width).Render(row)
}

// intersperse inserts sep between each element of items.
func intersperse(items []string, sep string) []string {
	if len(items) <= 1 {
		return items
	}
	result := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			result = append(result, sep)
		}
		result = append(result, item)
	}
	return result
}

// renderControls shows the live display settings.
func renderControls(intervalMs int, showAncestors bool, width int) string {
	ancestors := "off"
	if showAncestors {
		ancestors = "on"
	}
	parts := []string{
		"Update Interval (ms): " + lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(intervalMs)),
		"Show Ancestor Trees: " + lipgloss.NewStyle().Bold(true).Render(ancestors),
	}
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Render(strings.Join(parts, "    "))
}

// renderStatusBar renders the last-refresh line; errors are shown in red.
func renderStatusBar(status string, isErr bool, width int) string {
	color := lipgloss.Color("42")
	if isErr {
		color = lipgloss.Color("196")
	}
	dot := lipgloss.NewStyle().Foreground(color).Render("●")

	style := lipgloss.NewStyle().
		Width(width).
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("250")).
		Padding(0, 1)
	return style.Render(dot + " " + status)
}

func renderHelpBar(width int) string {
	help := "tab/1-3: switch pane  +/-: interval  a: ancestors  r: refresh  ↑/↓ pgup/pgdn: scroll  q: quit"
	style := lipgloss.NewStyle().
		Width(width).
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	return style.Render(help)
}
