package models

// Waveform is a finished in-memory capture: interleaved float32 samples in
// [-1, 1] together with the stream parameters needed to encode it.
type Waveform struct {
	Samples    []float32
	SampleRate int
	Channels   int
}

// Frames returns the number of complete sample frames in the buffer.
func (w Waveform) Frames() int {
	if w.Channels == 0 {
		return 0
	}
	return len(w.Samples) / w.Channels
}

// Duration returns the playback length in seconds.
func (w Waveform) Duration() float64 {
	if w.SampleRate == 0 {
		return 0
	}
	return float64(w.Frames()) / float64(w.SampleRate)
}
