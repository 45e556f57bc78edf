package logging

import (
	"context"
	"sync"

	cblog "github.com/charmbracelet/log"

	"github.com/alexisbeaulieu97/roster/internal/ports"
)

const defaultBufferLimit = 1000

type heldEntry struct {
	ctx    context.Context
	level  cblog.Level
	msg    string
	fields []interface{}
}

// EventBuffer holds log entries written before the configured logger exists,
// such as those produced while loading the configuration, and while the
// dashboard owns the terminal. When full, the oldest entry is discarded.
type EventBuffer struct {
	mu      sync.Mutex
	limit   int
	entries []heldEntry
	dropped int
}

// NewEventBuffer creates a buffer holding at most limit entries (1000 when
// limit is not positive).
func NewEventBuffer(limit int) *EventBuffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &EventBuffer{limit: limit}
}

func (b *EventBuffer) hold(entry heldEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.entries) == b.limit {
		b.entries = b.entries[1:]
		b.dropped++
	}
	b.entries = append(b.entries, entry)
}

// Len reports the number of held entries.
func (b *EventBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Flush replays held entries into delegate in arrival order and empties the
// buffer. Discarded entries are reported with a single warning.
func (b *EventBuffer) Flush(delegate ports.Logger) int {
	if delegate == nil {
		return 0
	}

	b.mu.Lock()
	entries, dropped := b.entries, b.dropped
	b.entries, b.dropped = nil, 0
	b.mu.Unlock()

	if dropped > 0 {
		delegate.Warn(context.Background(), "log buffer overflowed", "dropped", dropped)
	}
	for _, e := range entries {
		switch e.level {
		case cblog.DebugLevel:
			delegate.Debug(e.ctx, e.msg, e.fields...)
		case cblog.WarnLevel:
			delegate.Warn(e.ctx, e.msg, e.fields...)
		case cblog.ErrorLevel:
			delegate.Error(e.ctx, e.msg, e.fields...)
		default:
			delegate.Info(e.ctx, e.msg, e.fields...)
		}
	}
	return len(entries)
}

// BufferedLogger is a ports.Logger that writes into an EventBuffer.
type BufferedLogger struct {
	buffer *EventBuffer
	fields []interface{}
}

// NewBufferedLogger returns a logger holding entries in buffer.
func NewBufferedLogger(buffer *EventBuffer) *BufferedLogger {
	return &BufferedLogger{buffer: buffer}
}

func (l *BufferedLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.hold(ctx, cblog.DebugLevel, msg, fields)
}

func (l *BufferedLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.hold(ctx, cblog.InfoLevel, msg, fields)
}

func (l *BufferedLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.hold(ctx, cblog.WarnLevel, msg, fields)
}

func (l *BufferedLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.hold(ctx, cblog.ErrorLevel, msg, fields)
}

// With returns a child sharing the same buffer.
func (l *BufferedLogger) With(fields ...interface{}) ports.Logger {
	return &BufferedLogger{buffer: l.buffer, fields: concatFields(l.fields, fields)}
}

func (l *BufferedLogger) hold(ctx context.Context, level cblog.Level, msg string, fields []interface{}) {
	if l == nil || l.buffer == nil {
		return
	}
	l.buffer.hold(heldEntry{ctx: ctx, level: level, msg: msg, fields: concatFields(l.fields, fields)})
}

func concatFields(base, more []interface{}) []interface{} {
	out := make([]interface{}, 0, len(base)+len(more))
	out = append(out, base...)
	return append(out, more...)
}

var _ ports.Logger = (*BufferedLogger)(nil)
