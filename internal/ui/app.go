package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"fraglens/internal/pipeline"
	"fraglens/internal/prefs"
	"fraglens/internal/surface"
)

const frameInterval = 50 * time.Millisecond

// Options configures the UI.
type Options struct {
	Events    <-chan pipeline.Event
	Total     int
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea. Its Update loop is the
// single consumer of pipeline events, key presses, resizes, and the animation
// tick; nothing else touches the view or the terminal.
type Model struct {
	events    <-chan pipeline.Event
	view      *View
	theme     Theme
	keys      keyMap
	anim      *animator
	prefsPath string

	width  int
	height int
	ready  bool
	err    error
}

// New creates the root model.
func New(opts Options) Model {
	theme := GetTheme(opts.ThemeName)
	return Model{
		events:    opts.Events,
		view:      NewView(opts.Total),
		theme:     theme,
		keys:      DefaultKeyMap(),
		anim:      newAnimator(theme.Fx),
		prefsPath: opts.PrefsPath,
	}
}

// Err returns the fatal error that ended the run, if any.
func (m Model) Err() error {
	return m.err
}

// Messages

type eventMsg struct {
	evt pipeline.Event
}

type frameMsg time.Time

// Commands

// listen blocks on the event channel and delivers the next pipeline event as
// a message. It is re-armed after every receipt so the channel keeps its
// backpressure bound.
func (m Model) listen() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return func() tea.Msg {
		return eventMsg{evt: <-m.events}
	}
}

// frame schedules the next animation redraw. Ticks are re-armed on receipt,
// so a stalled loop coalesces missed frames instead of bursting.
func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.listen(), frame())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = m.width > 0 && m.height > 0
		m.view.SetChartCapacity(m.width - 2)
		return m, nil

	case eventMsg:
		if err := m.view.Apply(msg.evt); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, m.listen()

	case frameMsg:
		return m, frame()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.anim.enabled = m.theme.Fx
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.view.Navigate(navUp, m.pageSize())
	case key.Matches(msg, m.keys.Down):
		m.view.Navigate(navDown, m.pageSize())
	case key.Matches(msg, m.keys.PageUp):
		m.view.Navigate(navPageUp, m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.view.Navigate(navPageDown, m.pageSize())
	case key.Matches(msg, m.keys.Home):
		m.view.Navigate(navHome, m.pageSize())
	case key.Matches(msg, m.keys.End):
		m.view.Navigate(navEnd, m.pageSize())
	}
	return m, nil
}

func (m Model) pageSize() int {
	size := m.height - pageChrome
	if size < 1 {
		size = 1
	}
	return size
}

// View implements tea.Model. Each frame draws the phase into a fresh cell
// buffer, hands the frame's layout rectangles to the effect scheduler, and
// serializes the decorated buffer.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	buf := surface.NewBuffer(m.width, m.height, m.theme.Background)
	m.view.Render(buf, m.theme, m.anim.regions)
	m.anim.decorate(buf)
	return buf.String()
}
