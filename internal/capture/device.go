package capture

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
	"github.com/vocapture/vocapture/internal/config"
)

// PortAudioSource reads interleaved float32 blocks from the default input
// device. On systems where the default input is a loopback/monitor device
// this captures whatever the TTS or dictionary tool plays back.
type PortAudioSource struct {
	stream *portaudio.Stream
	buf    []float32
}

func NewPortAudioSource(cfg config.AudioConfig) (*PortAudioSource, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	buf := make([]float32, cfg.BlockSize*cfg.Channels)
	stream, err := portaudio.OpenDefaultStream(cfg.Channels, 0, float64(cfg.SampleRate), cfg.BlockSize, buf)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to open audio stream: %w", err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("failed to start audio stream: %w", err)
	}

	return &PortAudioSource{stream: stream, buf: buf}, nil
}

func (s *PortAudioSource) ReadBlock() ([]float32, error) {
	if err := s.stream.Read(); err != nil {
		return nil, fmt.Errorf("failed to read from audio device: %w", err)
	}

	block := make([]float32, len(s.buf))
	copy(block, s.buf)
	return block, nil
}

func (s *PortAudioSource) Close() error {
	if s.stream != nil {
		_ = s.stream.Stop()
		if err := s.stream.Close(); err != nil {
			portaudio.Terminate()
			return fmt.Errorf("failed to close audio stream: %w", err)
		}
	}
	return portaudio.Terminate()
}
