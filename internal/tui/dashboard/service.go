package dashboard

import (
	"context"

	"github.com/alexisbeaulieu97/roster/internal/application/roster"
	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

// Controller exposes the roster operations the dashboard drives.
type Controller interface {
	Snapshot() roster.State
	LoadAll(ctx context.Context) <-chan roster.State
	LoadOne(ctx context.Context, id student.ID) <-chan roster.State
	Delete(ctx context.Context, id student.ID) <-chan roster.State
	ClearError() roster.State
	ClearSucceeded() roster.State
	ClearSelected() roster.State
}

var _ Controller = (*roster.Controller)(nil)
