package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/roster/internal/application/roster"
	"github.com/alexisbeaulieu97/roster/internal/ports"
)

// session is one controller plus the context of the command driving it.
type session struct {
	app    *AppContext
	ctx    context.Context
	logger ports.Logger
	ctrl   *roster.Controller
}

func openSession(cmd *cobra.Command, app *AppContext, component string) (*session, error) {
	ctx, logger := app.CommandContext(cmd, component)
	ctrl, err := app.NewController(false)
	if err != nil {
		return nil, newCommandError("connect", "building the student service client", err,
			"Check api.base_url and api.resource_path in your configuration.")
	}
	return &session{app: app, ctx: ctx, logger: logger, ctrl: ctrl}, nil
}

func (s *session) Close() {
	s.ctrl.Close()
}

// await blocks until the action settles or the command is cancelled.
func (s *session) await(reply <-chan roster.State) (roster.State, error) {
	select {
	case state := <-reply:
		return state, nil
	case <-s.ctx.Done():
		return roster.State{}, fmt.Errorf("interrupted: %w", s.ctx.Err())
	}
}

// run executes one action and converts a failed terminal snapshot into a
// commandError.
func (s *session) run(operation, detail string, reply <-chan roster.State) (roster.State, error) {
	state, err := s.await(reply)
	if err != nil {
		return state, newCommandError(operation, detail, err, "Run the command again.")
	}
	if state.Err != nil {
		s.logger.Error(s.ctx, "command failed", "operation", operation, "error_code", string(state.Err.Code), "error", state.ErrorMessage())
		return state, actionError(operation, detail, s.app.Config.API.BaseURL, state.Err)
	}
	return state, nil
}

// mutate runs a create, update or delete. A mutation that the service
// accepted is always followed by a reload, so a failed snapshot produced by
// that reload means the change is stored and only the refresh failed. That
// case is returned with refreshErr set instead of as a command error.
func (s *session) mutate(operation, detail string, reply <-chan roster.State) (state roster.State, refreshErr error, err error) {
	state, err = s.await(reply)
	if err != nil {
		return state, nil, newCommandError(operation, detail, err, "Run the command again.")
	}
	if state.Err == nil {
		return state, nil, nil
	}
	if state.Operation != roster.OpLoadAll {
		s.logger.Error(s.ctx, "command failed", "operation", operation, "error_code", string(state.Err.Code), "error", state.ErrorMessage())
		return state, nil, actionError(operation, detail, s.app.Config.API.BaseURL, state.Err)
	}
	s.logger.Warn(s.ctx, "refresh after change failed", "operation", operation, "error_code", string(state.Err.Code), "error", state.ErrorMessage())
	return state, fmt.Errorf("%s", state.ErrorMessage()), nil
}

// warnRefresh tells the user the change went through but the list could not
// be reloaded.
func warnRefresh(w io.Writer, refreshErr error) {
	if refreshErr == nil {
		return
	}
	fmt.Fprintf(w, "Warning: the change was saved, but refreshing the student list failed: %v\n", refreshErr)
}
