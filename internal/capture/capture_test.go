package capture

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vocapture/vocapture/internal/config"
	"go.uber.org/zap"
)

// fakeSource replays prepared blocks and then returns io.EOF.
type fakeSource struct {
	blocks [][]float32
	next   int
	err    error
}

func (s *fakeSource) ReadBlock() ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.next >= len(s.blocks) {
		return nil, io.EOF
	}
	b := s.blocks[s.next]
	s.next++
	return b, nil
}

func testAudioConfig() config.AudioConfig {
	return config.AudioConfig{
		SampleRate:         100,
		Channels:           1,
		BlockSize:          10,
		SilenceThresholdDB: -40,
		StartSilence:       500 * time.Millisecond,
		EndSilence:         300 * time.Millisecond,
		MaxDuration:        2 * time.Second,
		Padding:            100 * time.Millisecond,
	}
}

func block(level float32, n int) []float32 {
	b := make([]float32, n)
	for i := range b {
		b[i] = level
	}
	return b
}

func repeat(b []float32, n int) [][]float32 {
	out := make([][]float32, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func TestRecorder_Record(t *testing.T) {
	t.Parallel()

	cfg := testAudioConfig()
	signal := block(0.5, cfg.BlockSize)   // ~-6 dB
	silence := block(0.001, cfg.BlockSize) // ~-60 dB

	t.Run("silence gated capture", func(t *testing.T) {
		t.Parallel()

		var blocks [][]float32
		blocks = append(blocks, repeat(silence, 2)...) // waiting phase
		blocks = append(blocks, repeat(signal, 5)...)  // sound
		blocks = append(blocks, repeat(silence, 3)...) // end silence, 0.3s

		rec := NewRecorder(cfg, &fakeSource{blocks: blocks}, zap.NewNop())

		wf, err := rec.Record()
		require.NoError(t, err)

		// 5 signal blocks survive trimming, plus 0.1s padding each side.
		assert.Equal(t, 70, len(wf.Samples))
		assert.Equal(t, cfg.SampleRate, wf.SampleRate)
		assert.Equal(t, cfg.Channels, wf.Channels)

		// Padding is digital silence; the first real sample is normalized.
		assert.Zero(t, wf.Samples[0])
		assert.Zero(t, wf.Samples[9])
		assert.InDelta(t, 0.9, float64(wf.Samples[10]), 1e-6)
	})

	t.Run("no sound before timeout", func(t *testing.T) {
		t.Parallel()

		rec := NewRecorder(cfg, &fakeSource{blocks: repeat(silence, 10)}, zap.NewNop())

		_, err := rec.Record()
		require.ErrorIs(t, err, ErrNoSound)
	})

	t.Run("stop cancels immediately", func(t *testing.T) {
		t.Parallel()

		rec := NewRecorder(cfg, &fakeSource{blocks: repeat(signal, 10)}, zap.NewNop())
		rec.Stop()

		_, err := rec.Record()
		require.ErrorIs(t, err, ErrStopped)
	})

	t.Run("max duration cuts the take", func(t *testing.T) {
		t.Parallel()

		rec := NewRecorder(cfg, &fakeSource{blocks: repeat(signal, 40)}, zap.NewNop())

		wf, err := rec.Record()
		require.NoError(t, err)

		// 21 blocks recorded before the 2s cap, plus padding.
		assert.Equal(t, 21*cfg.BlockSize+20, len(wf.Samples))
	})

	t.Run("loud block resets the silence run", func(t *testing.T) {
		t.Parallel()

		var blocks [][]float32
		blocks = append(blocks, signal)
		blocks = append(blocks, repeat(silence, 2)...) // 0.2s, below end threshold
		blocks = append(blocks, signal)                // resets the run
		blocks = append(blocks, repeat(silence, 3)...) // 0.3s, ends the take

		rec := NewRecorder(cfg, &fakeSource{blocks: blocks}, zap.NewNop())

		wf, err := rec.Record()
		require.NoError(t, err)

		// Trimmed from first to last loud frame: signal,2 silence,signal.
		assert.Equal(t, 4*cfg.BlockSize+20, len(wf.Samples))
	})

	t.Run("device error is fatal to the attempt", func(t *testing.T) {
		t.Parallel()

		rec := NewRecorder(cfg, &fakeSource{err: errors.New("device unavailable")}, zap.NewNop())

		_, err := rec.Record()
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoSound)
		assert.NotErrorIs(t, err, ErrStopped)
	})
}

func TestTrim(t *testing.T) {
	t.Parallel()

	threshold := 0.01

	tests := []struct {
		name    string
		samples []float32
		want    []float32
	}{
		{
			name:    "silence signal silence",
			samples: []float32{0, 0, 0.5, 0.6, 0.5, 0, 0},
			want:    []float32{0.5, 0.6, 0.5},
		},
		{
			name:    "keeps interior silence",
			samples: []float32{0, 0.5, 0, 0, 0.5, 0},
			want:    []float32{0.5, 0, 0, 0.5},
		},
		{
			name:    "all silent",
			samples: []float32{0, 0.001, 0},
			want:    nil,
		},
		{
			name:    "no leading or trailing silence",
			samples: []float32{0.5, 0.5},
			want:    []float32{0.5, 0.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := trim(tt.samples, 1, threshold)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrim_Stereo(t *testing.T) {
	t.Parallel()

	// Frame mean must exceed the threshold: a single loud channel at 0.03
	// averages to 0.015 against a 0.01 threshold.
	samples := []float32{0, 0, 0.03, 0, 0, 0}
	got := trim(samples, 2, 0.01)
	assert.Equal(t, []float32{0.03, 0}, got)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("scales peak to target", func(t *testing.T) {
		t.Parallel()

		samples := []float32{0.1, -0.45, 0.3}
		gain := normalize(samples)
		assert.InDelta(t, 2.0, gain, 1e-9)
		assert.InDelta(t, 0.9, math32Abs(samples[1]), 1e-6)
	})

	t.Run("leaves near-silence untouched", func(t *testing.T) {
		t.Parallel()

		samples := []float32{0.001, -0.002}
		gain := normalize(samples)
		assert.Equal(t, 1.0, gain)
		assert.Equal(t, float32(0.001), samples[0])
	})
}

func math32Abs(v float32) float64 {
	if v < 0 {
		return float64(-v)
	}
	return float64(v)
}

func TestPad(t *testing.T) {
	t.Parallel()

	got := pad([]float32{0.5, 0.5}, 1, 3)
	require.Len(t, got, 8)
	assert.Equal(t, []float32{0, 0, 0, 0.5, 0.5, 0, 0, 0}, got)
}
