package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/roster/internal/infrastructure/events"
	logginginfra "github.com/alexisbeaulieu97/roster/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/roster/internal/tui/dashboard"
)

type dashboardOptions struct {
	noConfirm bool
}

func newDashboardCmd(app *AppContext) *cobra.Command {
	opts := &dashboardOptions{}

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Launch the interactive dashboard",
		Long:    `Launch the interactive TUI dashboard to browse, inspect and delete students.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, logger := app.CommandContext(cmd, "command.dashboard")
			logger.Info(ctx, "launching dashboard")
			err := runDashboard(ctx, app, opts)
			if err != nil {
				logger.Error(ctx, "dashboard command failed", "error", err)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.noConfirm, "no-confirm", false, "Delete without asking for confirmation")

	return cmd
}

func runDashboard(ctx context.Context, app *AppContext, opts *dashboardOptions) error {
	// Log lines written to the terminal would tear the alternate screen, so
	// they are held until the program exits.
	restore := holdLogs(app)
	defer restore()

	ctrl, err := app.NewController(app.Config.Controller.InitialLoadEnabled())
	if err != nil {
		return newCommandError("launch dashboard", "building the student service client", err,
			"Check api.base_url and api.resource_path in your configuration.")
	}
	defer ctrl.Close()

	feed := dashboard.NewFeed(0)
	defer feed.Close()

	sub, err := ctrl.Subscribe(feed.Push)
	if err != nil {
		return fmt.Errorf("subscribe to controller: %w", err)
	}
	defer sub.Unsubscribe()

	m := dashboard.NewModel(ctrl, feed,
		dashboard.WithContext(ctx),
		dashboard.WithUnicode(isTerminal(os.Stdout)),
		dashboard.WithConfirmations(!opts.noConfirm),
	)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

// holdLogs swaps the logger and publisher for buffered ones when logs go to
// a terminal and returns a function that flushes and restores them.
func holdLogs(app *AppContext) func() {
	if app.LogWriter != nil || !isTerminal(os.Stderr) {
		return func() {}
	}

	previousLogger, previousEvents := app.Logger, app.Events
	buffer := logginginfra.NewEventBuffer(bootstrapBufferSize)
	held := logginginfra.NewBufferedLogger(buffer)

	app.Logger = held
	app.Events = events.NewLoggingPublisher(held.With("component", "events"))

	return func() {
		app.Logger, app.Events = previousLogger, previousEvents
		buffer.Flush(previousLogger)
	}
}
