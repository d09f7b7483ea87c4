package playback

// IntN returns a uniformly random int in [0, n). n is always > 0.
type IntN func(n int) int

// NextIndex picks the track that follows current.
// With shuffle on, any track other than current is chosen uniformly;
// a single-track playlist always yields 0.
func NextIndex(current, length int, shuffle bool, intn IntN) int {
	if length <= 1 {
		return 0
	}
	if shuffle {
		return randomOther(current, length, intn)
	}
	return (current + 1) % length
}

// PreviousIndex picks the track that precedes current.
// Shuffle has no history, so it falls back to the NextIndex policy.
func PreviousIndex(current, length int, shuffle bool, intn IntN) int {
	if length <= 1 {
		return 0
	}
	if shuffle {
		return randomOther(current, length, intn)
	}
	return (current - 1 + length) % length
}

// randomOther draws from [0, length-1) and skips over current.
func randomOther(current, length int, intn IntN) int {
	r := intn(length - 1)
	if r >= current {
		r++
	}
	return r
}
