package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/roster/internal/application/roster"
)

func TestFeedDeliversInOrder(t *testing.T) {
	feed := NewFeed(4)
	feed.Push(roster.State{Version: 1})
	feed.Push(roster.State{Version: 2})

	first, ok := feed.Next()().(StateMsg)
	require.True(t, ok)
	second, ok := feed.Next()().(StateMsg)
	require.True(t, ok)

	assert.Equal(t, uint64(1), first.State.Version)
	assert.Equal(t, uint64(2), second.State.Version)
}

func TestFeedDropsOldestWhenFull(t *testing.T) {
	feed := NewFeed(2)
	for v := uint64(1); v <= 5; v++ {
		feed.Push(roster.State{Version: v})
	}

	first := feed.Next()().(StateMsg)
	second := feed.Next()().(StateMsg)
	assert.Equal(t, uint64(4), first.State.Version)
	assert.Equal(t, uint64(5), second.State.Version)
}

func TestFeedClose(t *testing.T) {
	feed := NewFeed(0)
	feed.Close()
	feed.Close()
	feed.Push(roster.State{Version: 1})

	assert.Nil(t, feed.Next()())
}
