package artifact

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/vocapture/vocapture/internal/config"
	"github.com/vocapture/vocapture/internal/models"
	"go.uber.org/zap"
)

const wavBitDepth = 16

// Store owns the on-disk audio files that back recordings. File names are
// derived from record numbers, so the store never needs its own index.
type Store struct {
	dir      string
	variants config.VariantsConfig
	log      *zap.Logger
}

func NewStore(paths config.PathsConfig, variants config.VariantsConfig, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(paths.SaveDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory: %w", err)
	}

	return &Store{
		dir:      paths.SaveDir,
		variants: variants,
		log:      log,
	}, nil
}

// WriteBase encodes the waveform as a 16-bit PCM WAV file and returns the
// path it was written to. A failed write leaves no partial file behind.
func (s *Store) WriteBase(number int64, wf models.Waveform) (string, error) {
	if wf.SampleRate <= 0 || wf.Channels <= 0 {
		return "", fmt.Errorf("invalid waveform format: %d Hz, %d channels", wf.SampleRate, wf.Channels)
	}

	path := s.BasePath(number)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create audio file: %w", err)
	}

	if err := encodeWAV(f, wf); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to encode audio: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close audio file: %w", err)
	}

	return path, nil
}

func encodeWAV(w io.WriteSeeker, wf models.Waveform) error {
	enc := wav.NewEncoder(w, wf.SampleRate, wavBitDepth, wf.Channels, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: wf.Channels,
			SampleRate:  wf.SampleRate,
		},
		Data:           quantize(wf.Samples),
		SourceBitDepth: wavBitDepth,
	}

	if err := enc.Write(buf); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Delete removes a recording's base file and every speed variant. Missing
// files are not an error.
func (s *Store) Delete(number int64) error {
	paths := []string{s.BasePath(number)}
	for _, speed := range s.variants.Speeds {
		paths = append(paths, s.VariantPath(number, speed))
	}

	var errs []error
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", path, err))
		}
	}

	return errors.Join(errs...)
}

// Numbers lists the record numbers that have a base audio file on disk.
// Variant files are ignored, as is anything that does not match the naming
// scheme.
func (s *Store) Numbers() ([]int64, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio directory: %w", err)
	}

	numbers := make([]int64, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		stem, ok := strings.CutSuffix(entry.Name(), ".wav")
		if !ok || strings.Contains(stem, "@") {
			continue
		}
		number, err := strconv.ParseInt(stem, 10, 64)
		if err != nil {
			continue
		}
		numbers = append(numbers, number)
	}
	return numbers, nil
}

// quantize converts float samples in [-1, 1] to 16-bit PCM values.
func quantize(samples []float32) []int {
	out := make([]int, len(samples))
	for i, v := range samples {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		out[i] = int(v * 32767)
	}
	return out
}
