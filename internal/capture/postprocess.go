package capture

import (
	"math"

	"github.com/vocapture/vocapture/internal/models"
	"go.uber.org/zap"
)

const (
	// targetPeak is the post-normalization peak amplitude, roughly -1 dBFS.
	targetPeak = 0.9

	// minNormalizePeak guards against amplifying takes that are nothing
	// but low-level noise.
	minNormalizePeak = 0.01
)

// finalize concatenates the recorded blocks, trims leading and trailing
// silence, normalizes the peak, and pads both ends with digital silence.
func (r *Recorder) finalize(blocks [][]float32) (models.Waveform, error) {
	var total int
	for _, b := range blocks {
		total += len(b)
	}
	samples := make([]float32, 0, total)
	for _, b := range blocks {
		samples = append(samples, b...)
	}

	linear := math.Pow(10, r.cfg.SilenceThresholdDB/20)
	trimmed := trim(samples, r.cfg.Channels, linear)
	if trimmed == nil {
		r.log.Warn("audio seems silent after capture")
		return models.Waveform{}, ErrSilent
	}

	if gain := normalize(trimmed); gain != 1 {
		r.log.Debug("normalized audio", zap.Float64("gain", gain))
	}

	padFrames := int(r.cfg.Padding.Seconds() * float64(r.cfg.SampleRate))
	padded := pad(trimmed, r.cfg.Channels, padFrames)

	return models.Waveform{
		Samples:    padded,
		SampleRate: r.cfg.SampleRate,
		Channels:   r.cfg.Channels,
	}, nil
}

// trim cuts the buffer to the first and last frame whose mean absolute
// amplitude across channels exceeds the linear threshold. Returns nil when
// no frame does.
func trim(samples []float32, channels int, threshold float64) []float32 {
	frames := len(samples) / channels
	first, last := -1, -1

	for f := 0; f < frames; f++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += math.Abs(float64(samples[f*channels+c]))
		}
		if sum/float64(channels) > threshold {
			if first == -1 {
				first = f
			}
			last = f
		}
	}

	if first == -1 {
		return nil
	}
	return samples[first*channels : (last+1)*channels]
}

// normalize scales the buffer in place so its peak reaches targetPeak and
// returns the applied gain. Near-silent buffers are left untouched.
func normalize(samples []float32) float64 {
	var peak float64
	for _, s := range samples {
		if a := math.Abs(float64(s)); a > peak {
			peak = a
		}
	}
	if peak <= minNormalizePeak {
		return 1
	}

	gain := targetPeak / peak
	for i := range samples {
		samples[i] = float32(float64(samples[i]) * gain)
	}
	return gain
}

// pad surrounds the buffer with padFrames of silence on each side to avoid
// abrupt clicks on playback.
func pad(samples []float32, channels, padFrames int) []float32 {
	padSamples := padFrames * channels
	out := make([]float32, 0, len(samples)+2*padSamples)
	out = append(out, make([]float32, padSamples)...)
	out = append(out, samples...)
	out = append(out, make([]float32, padSamples)...)
	return out
}
