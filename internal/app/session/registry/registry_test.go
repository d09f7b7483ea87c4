package registry

import (
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AddGetRemove(t *testing.T) {
	r := New[string](0)

	id := NewID()
	require.NoError(t, r.Add(id, "first"))

	v, err := r.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "first", v)
	assert.Equal(t, 1, r.Count())

	err = r.Add(id, "again")
	assert.True(t, errors.Is(err, ErrDuplicate))

	v, err = r.Remove(id)
	require.NoError(t, err)
	assert.Equal(t, "first", v)

	_, err = r.Get(id)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = r.Remove(id)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRegistry_Limit(t *testing.T) {
	r := New[int](2)
	require.NoError(t, r.Add(NewID(), 1))
	require.NoError(t, r.Add(NewID(), 2))

	err := r.Add(NewID(), 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFull))
	assert.Equal(t, 2, r.Limit())
}

func TestRegistry_RemoveAll(t *testing.T) {
	r := New[int](0)
	for i := 0; i < 5; i++ {
		require.NoError(t, r.Add(NewID(), i))
	}
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, r.All())
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, r.RemoveAll())
	assert.Equal(t, 0, r.Count())
}

func TestRegistry_Concurrent(t *testing.T) {
	r := New[int](0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := NewID()
			assert.NoError(t, r.Add(id, i))
			_, err := r.Get(id)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 50, r.Count())
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
