package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
	"github.com/alexisbeaulieu97/roster/internal/infrastructure/stubserver"
)

type commandResult struct {
	stdout string
	logs   string
	err    error
}

func startStub(t *testing.T, seed ...student.Student) (*httptest.Server, *stubserver.Store) {
	t.Helper()
	store := stubserver.NewStore(seed...)
	srv := httptest.NewUnstartedServer(stubserver.NewServer(store))
	srv.Config.SetKeepAlivesEnabled(false)
	srv.Start()
	t.Cleanup(srv.Close)
	return srv, store
}

func executeCommand(t *testing.T, args ...string) commandResult {
	t.Helper()
	return executeCommandContext(t, context.Background(), args...)
}

func executeCommandContext(t *testing.T, ctx context.Context, args ...string) commandResult {
	t.Helper()
	return executeWithApp(t, ctx, newAppContext(), args...)
}

// executeWithApp runs the root command against a caller-prepared AppContext,
// for tests that inject a transport.
func executeWithApp(t *testing.T, ctx context.Context, app *AppContext, args ...string) commandResult {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	logs := &bytes.Buffer{}
	app.LogWriter = logs

	root := newRootCmd(app)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	return commandResult{stdout: out.String(), logs: logs.String(), err: err}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
