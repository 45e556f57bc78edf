package logging

import (
	"context"

	"github.com/alexisbeaulieu97/roster/internal/ports"
)

// NoOpLogger discards everything. It stands in when no logger was wired.
type NoOpLogger struct{}

func (NoOpLogger) Debug(context.Context, string, ...interface{}) {}
func (NoOpLogger) Info(context.Context, string, ...interface{})  {}
func (NoOpLogger) Warn(context.Context, string, ...interface{})  {}
func (NoOpLogger) Error(context.Context, string, ...interface{}) {}

func (n NoOpLogger) With(...interface{}) ports.Logger { return n }

// NewNoOpLogger returns a logger that discards all entries.
func NewNoOpLogger() ports.Logger {
	return NoOpLogger{}
}
