package dashboard

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/roster/internal/application/roster"
	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

// Model is the main dashboard model
type Model struct {
	// Core data
	ctrl  Controller
	feed  *Feed
	ctx   context.Context
	state roster.State

	// UI state
	viewMode     ViewMode
	previousMode ViewMode
	cursor       int
	scrollOffset int

	// Component state
	spinner spinner.Model

	// Confirmation state
	confirmID      student.ID
	confirmMessage string

	// Dimensions
	width  int
	height int

	// Configuration
	confirmations bool
	useUnicode    bool
}

// Option customises a Model.
type Option func(*Model)

// WithContext sets the context passed to controller actions.
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// WithUnicode toggles emoji and box glyphs.
func WithUnicode(enabled bool) Option {
	return func(m *Model) { m.useUnicode = enabled }
}

// WithConfirmations toggles the delete confirmation dialog.
func WithConfirmations(enabled bool) Option {
	return func(m *Model) { m.confirmations = enabled }
}

// NewModel creates a new dashboard model
func NewModel(ctrl Controller, feed *Feed, opts ...Option) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{
		ctrl:          ctrl,
		feed:          feed,
		ctx:           context.Background(),
		state:         ctrl.Snapshot(),
		viewMode:      ViewList,
		spinner:       s,
		confirmations: true,
		useUnicode:    true,
		width:         80,
		height:        24,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and returns initial commands
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.feed != nil {
		cmds = append(cmds, m.feed.Next())
	}
	return tea.Batch(cmds...)
}

// State returns the last snapshot the model rendered.
func (m Model) State() roster.State {
	return m.state
}

// GetViewMode returns the current view mode
func (m Model) GetViewMode() ViewMode {
	return m.viewMode
}

// Cursor returns the highlighted row.
func (m Model) Cursor() int {
	return m.cursor
}

// GetSelectedStudent returns the highlighted student
func (m Model) GetSelectedStudent() (student.Student, bool) {
	if m.cursor < 0 || m.cursor >= len(m.state.Students) {
		return student.Student{}, false
	}
	return m.state.Students[m.cursor], true
}

// MoveCursorUp moves cursor up with wrapping
func (m *Model) MoveCursorUp() {
	if len(m.state.Students) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.state.Students) - 1
	}
	m.ensureVisible()
}

// MoveCursorDown moves cursor down with wrapping
func (m *Model) MoveCursorDown() {
	if len(m.state.Students) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.state.Students) {
		m.cursor = 0
	}
	m.ensureVisible()
}

// applyState adopts a snapshot unless a newer one was already rendered.
func (m *Model) applyState(s roster.State) {
	if s.Version < m.state.Version {
		return
	}
	m.state = s

	if m.cursor >= len(s.Students) {
		m.cursor = len(s.Students) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

func (m *Model) visibleRows() int {
	rows := m.height - 12
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (m *Model) ensureVisible() {
	rows := m.visibleRows()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+rows {
		m.scrollOffset = m.cursor - rows + 1
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}
