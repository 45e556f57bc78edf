package dashboard

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/roster/internal/application/roster"
)

const defaultFeedSize = 32

// Feed carries controller snapshots into the bubbletea event loop. Push
// never blocks: when the buffer is full the oldest snapshot is dropped,
// which is harmless because every snapshot is a complete state.
type Feed struct {
	mu     sync.Mutex
	ch     chan roster.State
	closed bool
}

// NewFeed creates a feed buffering up to size snapshots.
func NewFeed(size int) *Feed {
	if size <= 0 {
		size = defaultFeedSize
	}
	return &Feed{ch: make(chan roster.State, size)}
}

// Push enqueues a snapshot. It is meant to be passed to Controller.Subscribe.
func (f *Feed) Push(s roster.State) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	for {
		select {
		case f.ch <- s:
			return
		default:
			select {
			case <-f.ch:
			default:
			}
		}
	}
}

// Close ends the feed; pending Next commands return nil.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.closed {
		f.closed = true
		close(f.ch)
	}
}

// Next waits for the following snapshot.
func (f *Feed) Next() tea.Cmd {
	return func() tea.Msg {
		s, ok := <-f.ch
		if !ok {
			return nil
		}
		return StateMsg{State: s}
	}
}
