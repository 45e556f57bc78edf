package dashboard

import (
	"github.com/alexisbeaulieu97/roster/internal/application/roster"
	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
	ViewHelp
	ViewConfirm
)

// StateMsg carries a snapshot published by the controller.
type StateMsg struct {
	State roster.State
}

// ActionDoneMsg carries the terminal snapshot of an action the dashboard
// started.
type ActionDoneMsg struct {
	Operation roster.Operation
	State     roster.State
}

// ConfirmActionMsg requests user confirmation
type ConfirmActionMsg struct {
	StudentID student.ID
	Message   string
}

// ConfirmResponseMsg contains user's confirmation response
type ConfirmResponseMsg struct {
	StudentID student.ID
	Confirmed bool
}

// ToggleHelpMsg requests help overlay toggle
type ToggleHelpMsg struct{}
