package dashboard

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/roster/internal/application/roster"
	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

// awaitCmd turns an action's reply channel into a message.
func awaitCmd(op roster.Operation, reply <-chan roster.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-reply
		if !ok {
			return nil
		}
		return ActionDoneMsg{Operation: op, State: s}
	}
}

// loadAllCmd refreshes the collection
func loadAllCmd(ctx context.Context, ctrl Controller) tea.Cmd {
	return awaitCmd(roster.OpLoadAll, ctrl.LoadAll(ctx))
}

// loadOneCmd fetches a student for the detail view
func loadOneCmd(ctx context.Context, ctrl Controller, id student.ID) tea.Cmd {
	return awaitCmd(roster.OpLoadOne, ctrl.LoadOne(ctx, id))
}

// deleteCmd removes a student; the controller reloads the list afterwards
func deleteCmd(ctx context.Context, ctrl Controller, id student.ID) tea.Cmd {
	return awaitCmd(roster.OpDelete, ctrl.Delete(ctx, id))
}
