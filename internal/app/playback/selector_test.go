package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextIndex_Sequential(t *testing.T) {
	assert.Equal(t, 1, NextIndex(0, 6, false, nil))
	assert.Equal(t, 0, NextIndex(5, 6, false, nil))
	assert.Equal(t, 0, NextIndex(0, 1, false, nil))
}

func TestPreviousIndex_Sequential(t *testing.T) {
	assert.Equal(t, 5, PreviousIndex(0, 6, false, nil))
	assert.Equal(t, 2, PreviousIndex(3, 6, false, nil))
	assert.Equal(t, 0, PreviousIndex(0, 1, false, nil))
}

func TestNextIndex_ShuffleMapsAroundCurrent(t *testing.T) {
	// Every draw r in [0, length-1) maps to a distinct index != current.
	const length = 5
	for current := 0; current < length; current++ {
		seen := make(map[int]bool)
		for r := 0; r < length-1; r++ {
			draw := r
			got := NextIndex(current, length, true, func(n int) int {
				assert.Equal(t, length-1, n)
				return draw
			})
			assert.NotEqual(t, current, got)
			seen[got] = true
		}
		assert.Len(t, seen, length-1, "current=%d", current)
	}
}

func TestPreviousIndex_ShuffleUsesNextPolicy(t *testing.T) {
	fixed := func(int) int { return 2 }
	assert.Equal(t, NextIndex(1, 4, true, fixed), PreviousIndex(1, 4, true, fixed))
}

func TestNextIndex_ShuffleSingleTrackNeverDraws(t *testing.T) {
	got := NextIndex(0, 1, true, func(int) int {
		t.Fatal("intn must not be called for a single track")
		return 0
	})
	assert.Equal(t, 0, got)
}
