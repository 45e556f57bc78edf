package stubserver

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/roster/internal/domain/student"
)

func TestStoreIDsContinueAfterSeed(t *testing.T) {
	t.Parallel()

	store := NewStore(student.Student{ID: 10, Name: "Seeded"})

	created := store.Create(student.Request{Name: "Ana", Age: 20, Program: "CS", Score: 9})

	assert.Equal(t, student.ID(11), created.ID)
}

func TestStoreIDsAreNeverReused(t *testing.T) {
	t.Parallel()

	store := NewStore()
	first := store.Create(student.Request{Name: "A"})
	require.True(t, store.Delete(first.ID))

	second := store.Create(student.Request{Name: "B"})

	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, store.Delete(first.ID))
}

func TestStoreConcurrentCreatesGetDistinctIDs(t *testing.T) {
	t.Parallel()

	store := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Create(student.Request{Name: "Concurrent"})
		}()
	}
	wg.Wait()

	students := store.List()
	require.Len(t, students, 50)
	for i, st := range students {
		assert.Equal(t, student.ID(i+1), st.ID)
	}
}

func TestStoreUpdateMissing(t *testing.T) {
	t.Parallel()

	_, ok := NewStore().Update(3, student.Request{Name: "Ghost"})

	assert.False(t, ok)
}
