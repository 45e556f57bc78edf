// Package logging adapts charmbracelet/log to ports.Logger and provides the
// buffering loggers used during CLI bootstrap.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/roster/internal/ports"
)

// Options configures the charmbracelet/log adapter.
type Options struct {
	Writer io.Writer
	Level  string
	// Format selects the formatter when Formatter is unset: "text" (default),
	// "json" or "logfmt".
	Format       string
	TimeFormat   string
	ReportCaller bool
	Formatter    cblog.Formatter
	Layer        string
	Component    string
	Fields       map[string]interface{}
}

// Logger implements ports.Logger using charmbracelet/log. Later fields
// override earlier ones with the same key; layer and correlation_id are
// always written last.
type Logger struct {
	base   *cblog.Logger
	fields fieldSet
	layer  string
}

// New creates a Logger adapter with the supplied options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := cblog.InfoLevel
	if opts.Level != "" {
		parsed, err := cblog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	formatter, err := resolveFormatter(opts)
	if err != nil {
		return nil, err
	}

	base := cblog.NewWithOptions(writer, cblog.Options{
		Level:           level,
		TimeFormat:      opts.TimeFormat,
		ReportTimestamp: true,
		ReportCaller:    opts.ReportCaller,
		Formatter:       formatter,
	})

	var fields fieldSet
	fields.addMap(opts.Fields)
	if opts.Component != "" {
		fields.add("component", opts.Component)
	}

	layer := opts.Layer
	if layer == "" {
		layer = "infrastructure"
	}

	return &Logger{base: base, fields: fields, layer: layer}, nil
}

// Debug emits a debug log entry.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.DebugLevel, msg, fields)
}

// Info emits an info log entry.
func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.InfoLevel, msg, fields)
}

// Warn emits a warning log entry.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.WarnLevel, msg, fields)
}

// Error emits an error log entry.
func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, cblog.ErrorLevel, msg, fields)
}

// With derives a new logger with persistent fields.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return NoOpLogger{}
	}
	next := l.fields.clone()
	next.addPairs(fields)
	return &Logger{base: l.base, fields: next, layer: l.layer}
}

func (l *Logger) log(ctx context.Context, level cblog.Level, msg string, fields []interface{}) {
	if l == nil || l.base == nil {
		return
	}

	entry := l.fields.clone()
	entry.addPairs(fields)
	entry.add("layer", l.layer)
	if id := ports.GetCorrelationID(ctx); id != "" {
		entry.add("correlation_id", id)
	}

	l.base.Log(level, msg, entry.pairs()...)
}

func resolveFormatter(opts Options) (cblog.Formatter, error) {
	if opts.Formatter != cblog.TextFormatter {
		return opts.Formatter, nil
	}
	switch strings.ToLower(opts.Format) {
	case "", "text":
		return cblog.TextFormatter, nil
	case "json":
		return cblog.JSONFormatter, nil
	case "logfmt":
		return cblog.LogfmtFormatter, nil
	default:
		return cblog.TextFormatter, fmt.Errorf("unknown log format %q", opts.Format)
	}
}

// fieldSet is an insertion-ordered set of key/value pairs.
type fieldSet struct {
	keys   []string
	values map[string]interface{}
}

func (f *fieldSet) add(key string, value interface{}) {
	if key == "" {
		return
	}
	if f.values == nil {
		f.values = make(map[string]interface{})
	}
	if _, exists := f.values[key]; !exists {
		f.keys = append(f.keys, key)
	}
	f.values[key] = value
}

// addPairs ignores pairs whose key is not a string and a trailing odd value.
func (f *fieldSet) addPairs(pairs []interface{}) {
	for i := 0; i+1 < len(pairs); i += 2 {
		if key, ok := pairs[i].(string); ok {
			f.add(key, pairs[i+1])
		}
	}
}

func (f *fieldSet) addMap(m map[string]interface{}) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		f.add(k, m[k])
	}
}

func (f fieldSet) clone() fieldSet {
	out := fieldSet{keys: append([]string(nil), f.keys...)}
	if f.values != nil {
		out.values = make(map[string]interface{}, len(f.values))
		for k, v := range f.values {
			out.values[k] = v
		}
	}
	return out
}

func (f fieldSet) pairs() []interface{} {
	out := make([]interface{}, 0, len(f.keys)*2)
	for _, k := range f.keys {
		out = append(out, k, f.values[k])
	}
	return out
}

var _ ports.Logger = (*Logger)(nil)
