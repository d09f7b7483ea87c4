package playback

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopMode_Cycle(t *testing.T) {
	m := LoopOff
	var seen []LoopMode
	for i := 0; i < 3; i++ {
		m = m.Next()
		seen = append(seen, m)
	}
	assert.Equal(t, []LoopMode{LoopAll, LoopOne, LoopOff}, seen)
	assert.Equal(t, LoopOff, LoopMode(99).Next())
}

func TestParseLoopMode(t *testing.T) {
	tests := []struct {
		in      string
		want    LoopMode
		wantErr bool
	}{
		{in: "off", want: LoopOff},
		{in: "", want: LoopOff},
		{in: "ALL", want: LoopAll},
		{in: " one ", want: LoopOne},
		{in: "track", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLoopMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got.String(), tt.want.String())
		})
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 0, want: "0:00"},
		{in: -3, want: "0:00"},
		{in: math.NaN(), want: "0:00"},
		{in: math.Inf(1), want: "0:00"},
		{in: 5.9, want: "0:05"},
		{in: 65, want: "1:05"},
		{in: 600, want: "10:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime(tt.in), "in=%v", tt.in)
	}
}

func TestState_DurationAndProgress(t *testing.T) {
	s := DefaultState(0.5)
	s.DurationSeconds = 200 // stale value must be ignored while unknown
	s.PositionSeconds = 50
	assert.Zero(t, s.Duration())
	assert.Zero(t, s.ProgressPercent())

	s.DurationKnown = true
	assert.Equal(t, 200.0, s.Duration())
	assert.Equal(t, 25.0, s.ProgressPercent())

	s.PositionSeconds = 400
	assert.Equal(t, 100.0, s.ProgressPercent())
}

func TestDefaultState_ClampsVolume(t *testing.T) {
	assert.Equal(t, 1.0, DefaultState(3).Volume)
	assert.Equal(t, 0.0, DefaultState(-1).Volume)
}
