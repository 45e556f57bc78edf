package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/roster/internal/infrastructure/stubserver"
	"github.com/alexisbeaulieu97/roster/internal/ports"
)

// healthPath answers liveness checks without touching the store.
const healthPath = "/healthz"

type serveOptions struct {
	addr string
	seed bool
}

func newServeCmd(app *AppContext) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an in-memory student service for development",
		Long: `Run a development student service that keeps students in memory.
Ids are assigned sequentially and never reused. Data is lost on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (default server.addr, 127.0.0.1:8080)")
	cmd.Flags().BoolVar(&opts.seed, "seed", false, "Start with sample students")

	return cmd
}

func runServe(cmd *cobra.Command, app *AppContext, opts *serveOptions) error {
	ctx, logger := app.CommandContext(cmd, "stub_server")

	addr := app.Config.Server.Addr
	if opts.addr != "" {
		addr = opts.addr
	}

	var store *stubserver.Store
	if opts.seed || app.Config.Server.Seed {
		store = stubserver.NewStore(stubserver.SampleStudents()...)
	} else {
		store = stubserver.NewStore()
	}

	handler := newServeHandler(app, store, logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving %d students at http://%s%s (Ctrl+C to stop)\n",
		len(store.List()), addr, app.Config.API.ResourcePath)

	if err := stubserver.ListenAndServe(ctx, addr, handler, logger); err != nil {
		return newCommandError("serve", fmt.Sprintf("listening on %s", addr), err,
			"Pick a free address with --addr.")
	}
	return nil
}

func newServeHandler(app *AppContext, store *stubserver.Store, logger ports.Logger) http.Handler {
	return stubserver.NewServer(store,
		stubserver.WithResourcePath(app.Config.API.ResourcePath),
		stubserver.WithLogger(logger),
		stubserver.WithMiddlewares(middleware.Heartbeat(healthPath)),
	)
}
