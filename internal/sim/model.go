package sim

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hmolin/clockos/internal/device"
)

const (
	// frameInterval is the panel refresh rate. The control loop blinks
	// at 500ms and animates at 10ms, so 30fps keeps sweeps visible
	// without redrawing faster than the terminal can show.
	frameInterval = 33 * time.Millisecond

	// DefaultKeyHold is how long a tapped key counts as a held button.
	// It has to outlive the control loop's two-sample debounce read.
	DefaultKeyHold = 250 * time.Millisecond
)

type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Model implements the Bubble Tea front panel.
type Model struct {
	panel  *Panel
	hold   time.Duration
	cancel context.CancelFunc

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel constructs the panel UI. hold is how long a tapped key
// counts as held; cancel stops the control loop goroutine when the
// user quits.
func NewModel(panel *Panel, hold time.Duration, cancel context.CancelFunc) *Model {
	if hold <= 0 {
		hold = DefaultKeyHold
	}
	return &Model{
		panel:  panel,
		hold:   hold,
		cancel: cancel,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return frameTick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case frameMsg:
		return m, frameTick()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancel()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Button1):
			m.panel.Press(device.Button1, m.hold)
			return m, nil
		case key.Matches(msg, m.keys.Button2):
			m.panel.Press(device.Button2, m.hold)
			return m, nil
		case key.Matches(msg, m.keys.Button3):
			m.panel.Press(device.Button3, m.hold)
			return m, nil
		case key.Matches(msg, m.keys.Latch1):
			m.panel.ToggleLatch(device.Button1)
			return m, nil
		case key.Matches(msg, m.keys.Latch2):
			m.panel.ToggleLatch(device.Button2)
			return m, nil
		case key.Matches(msg, m.keys.Latch3):
			m.panel.ToggleLatch(device.Button3)
			return m, nil
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	frame := m.panel.takeSnapshot()
	return renderPanel(frame, m.help.View(m.keys), m.width, m.height)
}
