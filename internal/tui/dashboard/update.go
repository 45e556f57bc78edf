package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/roster/internal/application/roster"
	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		ApplyMaxWidth(m.width)
		m.ensureVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StateMsg:
		m.applyState(msg.State)
		if m.feed != nil {
			return m, m.feed.Next()
		}
		return m, nil

	case ActionDoneMsg:
		m.applyState(msg.State)
		if msg.Operation == roster.OpLoadOne && msg.State.Err != nil && m.viewMode == ViewDetail {
			m.viewMode = ViewList
		}
		return m, nil

	case ConfirmActionMsg:
		m.previousMode = m.viewMode
		m.viewMode = ViewConfirm
		m.confirmID = msg.StudentID
		m.confirmMessage = msg.Message
		return m, nil

	case ConfirmResponseMsg:
		m.viewMode = ViewList
		m.confirmID = 0
		m.confirmMessage = ""
		if !msg.Confirmed {
			return m, nil
		}
		if m.state.Selected != nil {
			m.state = m.ctrl.ClearSelected()
		}
		return m, deleteCmd(m.ctx, m.ctrl, msg.StudentID)

	case ToggleHelpMsg:
		if m.viewMode == ViewHelp {
			m.viewMode = m.previousMode
		} else {
			m.previousMode = m.viewMode
			m.viewMode = ViewHelp
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewHelp:
		switch key {
		case "?", "esc", "q":
			return m.Update(ToggleHelpMsg{})
		}
		return m, nil

	case ViewConfirm:
		switch key {
		case "y", "Y", "enter":
			return m.Update(ConfirmResponseMsg{StudentID: m.confirmID, Confirmed: true})
		case "n", "N", "esc":
			return m.Update(ConfirmResponseMsg{StudentID: m.confirmID, Confirmed: false})
		}
		return m, nil

	case ViewDetail:
		switch key {
		case "esc", "backspace", "left", "h":
			m.state = m.ctrl.ClearSelected()
			m.viewMode = ViewList
			return m, nil
		case "d":
			if m.state.Selected != nil {
				return m.requestDelete(*m.state.Selected)
			}
			return m, nil
		}
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "?":
		return m.Update(ToggleHelpMsg{})
	case "up", "k":
		m.MoveCursorUp()
		return m, nil
	case "down", "j":
		m.MoveCursorDown()
		return m, nil
	case "r":
		return m, loadAllCmd(m.ctx, m.ctrl)
	case "x":
		if m.state.Err != nil {
			m.state = m.ctrl.ClearError()
		} else if m.state.Succeeded {
			m.state = m.ctrl.ClearSucceeded()
		}
		return m, nil
	case "enter", "right", "l":
		selected, ok := m.GetSelectedStudent()
		if !ok {
			return m, nil
		}
		m.viewMode = ViewDetail
		return m, loadOneCmd(m.ctx, m.ctrl, selected.ID)
	case "d":
		selected, ok := m.GetSelectedStudent()
		if !ok {
			return m, nil
		}
		return m.requestDelete(selected)
	}

	return m, nil
}

func (m Model) requestDelete(s student.Student) (tea.Model, tea.Cmd) {
	if !m.confirmations {
		return m, deleteCmd(m.ctx, m.ctrl, s.ID)
	}
	return m.Update(ConfirmActionMsg{
		StudentID: s.ID,
		Message:   fmt.Sprintf("Delete student %d (%s)?", s.ID, s.Name),
	})
}
