package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/roster/internal/ports"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "controller"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"operation": "create", "student_id": 7})
	log.Info(context.Background(), "action finished")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "action finished", entry["message"])
	require.Equal(t, "create", entry["operation"])
	require.EqualValues(t, 7, entry["student_id"])
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "infrastructure", entry["layer"])
	require.Equal(t, "controller", entry["component"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug(context.Background(), "this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf, Layer: "application"})
	require.NoError(t, err)

	ctx := ports.WithCorrelationID(context.Background(), "corr-1")
	child := log.With("component", "repository", 42, "ignored")
	child.Error(ctx, "request failed", "error", errors.New("boom"), "error_code", "TRANSPORT_ERROR")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "request failed", entry["message"])
	require.Equal(t, "repository", entry["component"])
	require.Equal(t, "application", entry["layer"])
	require.Equal(t, "boom", entry["error"])
	require.Equal(t, "TRANSPORT_ERROR", entry["error_code"])
	require.Equal(t, "corr-1", entry["correlation_id"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestLoggerScopedComponentReplacesBase(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "cli"})
	require.NoError(t, err)

	log.With("component", "repository").Info(context.Background(), "call failed", "component", "repository")

	line := strings.TrimSpace(buf.String())
	require.Equal(t, 1, strings.Count(line, `"component"`), line)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	require.Equal(t, "repository", entry["component"])
}
