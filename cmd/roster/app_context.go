package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/roster/internal/application/roster"
	"github.com/alexisbeaulieu97/roster/internal/config"
	configinfra "github.com/alexisbeaulieu97/roster/internal/infrastructure/config"
	"github.com/alexisbeaulieu97/roster/internal/infrastructure/events"
	logginginfra "github.com/alexisbeaulieu97/roster/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/roster/internal/infrastructure/transport/httpapi"
	"github.com/alexisbeaulieu97/roster/internal/logger"
	"github.com/alexisbeaulieu97/roster/internal/ports"
)

const bootstrapBufferSize = 256

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config *config.Config
	Logger ports.Logger
	Events ports.EventPublisher
	Loader ports.ConfigLoader
	// Transport replaces the HTTP client when set.
	Transport ports.StudentTransport
	// LogWriter receives log output; defaults to the command's stderr.
	LogWriter io.Writer

	bootBuffer *logginginfra.EventBuffer
}

func newAppContext() *AppContext {
	buffer := logginginfra.NewEventBuffer(bootstrapBufferSize)
	boot := logginginfra.NewBufferedLogger(buffer)
	return &AppContext{
		Logger:     boot,
		Loader:     configinfra.NewYAMLLoader(boot.With("component", "config_loader")),
		bootBuffer: buffer,
	}
}

// Bootstrap loads configuration, applies flag overrides and replaces the
// bootstrap logger with the configured one.
func (a *AppContext) Bootstrap(cmd *cobra.Command, flags *rootFlags) error {
	ctx := a.ensureCorrelation(cmd)

	if a.Config == nil {
		cfg, err := a.Loader.Load(ctx, flags.configPath)
		if err != nil {
			return newCommandError("load configuration", displayConfigPath(flags.configPath), err,
				"Check the file exists and is valid YAML, or omit --config to use defaults.")
		}
		a.Config = cfg
	}

	if flags.baseURL != "" {
		a.Config.API.BaseURL = flags.baseURL
		if err := config.ValidateConfig(a.Config); err != nil {
			return newCommandError("apply flags", "validating --base-url", err,
				"Pass an absolute http(s) URL such as http://127.0.0.1:8080.")
		}
	}
	if flags.verbose {
		a.Config.Logging.Level = "debug"
	}

	writer := a.LogWriter
	if writer == nil {
		writer = cmd.ErrOrStderr()
	}
	log, err := buildLogger(a.Config.Logging, writer)
	if err != nil {
		return newCommandError("configure logging", "building logger", err,
			"Set logging.level to debug, info, warn or error.")
	}

	if a.bootBuffer != nil {
		a.bootBuffer.Flush(log)
	}
	a.Logger = log
	if a.Events == nil {
		a.Events = events.NewLoggingPublisher(log.With("component", "events"))
	}
	return nil
}

// CommandContext returns the command context and a logger scoped to
// component.
func (a *AppContext) CommandContext(cmd *cobra.Command, component string) (context.Context, ports.Logger) {
	ctx := a.ensureCorrelation(cmd)
	log := a.Logger
	if log == nil {
		log = logginginfra.NewNoOpLogger()
	}
	return ctx, log.With("component", component)
}

// NewController wires transport, repository and controller from the loaded
// configuration. Callers own the controller and must Close it.
func (a *AppContext) NewController(initialLoad bool) (*roster.Controller, error) {
	if a.Config == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}

	transport := a.Transport
	if transport == nil {
		client, err := httpapi.New(httpapi.Options{
			BaseURL:      a.Config.API.BaseURL,
			ResourcePath: a.Config.API.ResourcePath,
			Timeout:      a.Config.API.Timeout,
			UserAgent:    userAgent(a.Config.API.UserAgent),
			Logger:       a.Logger,
		})
		if err != nil {
			return nil, err
		}
		transport = client
	}

	policy, err := roster.ParseReloadPolicy(a.Config.Controller.ReloadPolicy)
	if err != nil {
		return nil, err
	}

	repo := roster.NewRepository(transport, a.Logger)
	return roster.NewController(repo, roster.Options{
		Logger:       a.Logger,
		Events:       a.Events,
		ReloadPolicy: policy,
		InitialLoad:  initialLoad,
		QueueSize:    a.Config.Controller.QueueSize,
	}), nil
}

func (a *AppContext) ensureCorrelation(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if ports.GetCorrelationID(ctx) == "" {
		ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())
		cmd.SetContext(ctx)
	}
	return ctx
}

// buildLogger selects zerolog for JSON output and charmbracelet/log for text;
// text falls back to logfmt when the writer is not a terminal.
func buildLogger(cfg config.LoggingConfig, writer io.Writer) (ports.Logger, error) {
	if cfg.Format == "json" {
		return logger.New(logger.Options{
			Level:     cfg.Level,
			Writer:    writer,
			Layer:     "presentation",
			Component: "cli",
		})
	}

	format := "logfmt"
	if isTerminal(writer) {
		format = "text"
	}
	return logginginfra.New(logginginfra.Options{
		Writer:    writer,
		Level:     cfg.Level,
		Format:    format,
		Layer:     "presentation",
		Component: "cli",
	})
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func userAgent(configured string) string {
	if configured != "" {
		return configured
	}
	return "roster/" + version
}

func displayConfigPath(path string) string {
	if path != "" {
		return path
	}
	if def, err := config.DefaultPath(); err == nil {
		return def
	}
	return "default configuration"
}
