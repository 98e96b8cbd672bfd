package viewer

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mj1618/window-viewer/internal/config"
	"github.com/mj1618/window-viewer/internal/logger"
	"github.com/mj1618/window-viewer/internal/platform"
	"github.com/mj1618/window-viewer/internal/poll"
)

// refreshMsg is posted by the poll goroutine; the refresh itself runs in
// Update, on the program's goroutine.
type refreshMsg struct{}

func requestRefresh() tea.Msg { return refreshMsg{} }

// appModel is the root bubbletea model for the viewer.
type appModel struct {
	refresher *Refresher
	cfg       *config.Display
	stop      func()

	active platform.Target
	texts  [3]string
	panes  [3]viewport.Model
	ready  bool

	status    string
	statusErr bool

	width  int
	height int
}

func newModel(r *Refresher, cfg *config.Display, stop func()) appModel {
	m := appModel{
		refresher: r,
		cfg:       cfg,
		stop:      stop,
		active:    platform.TargetMouse,
		status:    "Ready",
	}
	for i := range m.texts {
		m.texts[i] = "Waiting for first update..."
	}
	return m
}

// chromeHeight is the number of lines around the pane: tab bar (with
// margin), controls, status bar, help bar.
const chromeHeight = 5

func (m appModel) paneHeight() int {
	h := m.height - chromeHeight
	if h < 1 {
		h = 1
	}
	return h
}

// Init implements tea.Model.
func (m appModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		m.applyRefresh(m.refresher.Refresh())
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for i := range m.panes {
			if !m.ready {
				m.panes[i] = viewport.New(m.width, m.paneHeight())
				m.panes[i].SetContent(m.texts[i])
			} else {
				m.panes[i].Width = m.width
				m.panes[i].Height = m.paneHeight()
			}
		}
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.stop != nil {
				m.stop()
			}
			return m, tea.Quit
		case "tab":
			m.active = (m.active + 1) % platform.Target(len(m.panes))
			return m, nil
		case "shift+tab":
			n := platform.Target(len(m.panes))
			m.active = (m.active - 1 + n) % n
			return m, nil
		case "1", "2", "3":
			m.active = platform.Target(msg.String()[0] - '1')
			return m, nil
		case "+", "=":
			ms := m.cfg.AdjustIntervalMs(config.IntervalStepMs)
			logger.Debugf("interval set to %dms", ms)
			return m, nil
		case "-", "_":
			ms := m.cfg.AdjustIntervalMs(-config.IntervalStepMs)
			logger.Debugf("interval set to %dms", ms)
			return m, nil
		case "a":
			logger.Debugf("show ancestors: %t", m.cfg.ToggleAncestors())
			return m, nil
		case "r":
			return m, requestRefresh
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.panes[m.active], cmd = m.panes[m.active].Update(msg)
	return m, cmd
}

func (m *appModel) applyRefresh(res Result) {
	for i, ok := range res.Updated {
		if !ok || res.Texts[i] == m.texts[i] {
			continue
		}
		m.texts[i] = res.Texts[i]
		if m.ready {
			m.panes[i].SetContent(res.Texts[i])
		}
	}
	m.status = res.Status
	m.statusErr = res.Err != nil
}

// View implements tea.Model.
func (m appModel) View() string {
	if !m.ready || m.width == 0 || m.height == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		renderTabBar(m.active, m.width),
		renderControls(m.cfg.IntervalMs(), m.cfg.ShowAncestors(), m.width),
		m.panes[m.active].View(),
		renderStatusBar(m.status, m.statusErr, m.width),
		renderHelpBar(m.width),
	)
}

// Run shows the viewer until the operator quits or ctx is done. Refreshes
// are scheduled by a poll.Loop and executed on the program's goroutine.
func Run(ctx context.Context, q platform.WindowQuerier, cfg *config.Display) error {
	var p *tea.Program
	loop := poll.New(cfg.Interval, func() { p.Send(refreshMsg{}) })

	m := newModel(NewRefresher(q, cfg), cfg, loop.Stop)
	p = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	go func() {
		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("poll loop stopped", err)
		}
	}()

	_, err := p.Run()
	loop.Stop()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
