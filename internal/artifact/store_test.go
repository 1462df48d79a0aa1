package artifact

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vocapture/vocapture/internal/config"
	"github.com/vocapture/vocapture/internal/models"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T, variants config.VariantsConfig) *Store {
	t.Helper()

	store, err := NewStore(config.PathsConfig{SaveDir: t.TempDir()}, variants, zap.NewNop())
	require.NoError(t, err)

	return store
}

func TestNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42.wav", BaseName(42))
	assert.Equal(t, "42@0.5.wav", VariantName(42, 0.5))
	assert.Equal(t, "42@0.75.wav", VariantName(42, 0.75))
}

func TestStore_WriteBase(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, config.VariantsConfig{})

	wf := models.Waveform{
		Samples:    []float32{0, 0.5, -0.5, 1, -1, 0.25},
		SampleRate: 48000,
		Channels:   2,
	}

	path, err := store.WriteBase(7, wf)
	require.NoError(t, err)
	assert.Equal(t, store.BasePath(7), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)

	require.Equal(t, 6, len(buf.Data))
	assert.Equal(t, 48000, buf.Format.SampleRate)
	assert.Equal(t, 2, buf.Format.NumChannels)
	assert.Equal(t, 0, buf.Data[0])
	assert.Equal(t, 16383, buf.Data[1])
	assert.Equal(t, -16383, buf.Data[2])
	assert.Equal(t, 32767, buf.Data[3])
	assert.Equal(t, -32767, buf.Data[4])
}

func TestStore_WriteBase_InvalidFormat(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, config.VariantsConfig{})

	tests := []struct {
		name string
		wf   models.Waveform
	}{
		{name: "zero sample rate", wf: models.Waveform{Samples: []float32{0.1}, Channels: 1}},
		{name: "zero channels", wf: models.Waveform{Samples: []float32{0.1}, SampleRate: 48000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.WriteBase(42, tt.wf)
			require.Error(t, err)
			assert.NoFileExists(t, store.BasePath(42))
		})
	}
}

func TestStore_WriteBase_NoPartialFileOnError(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, config.VariantsConfig{})

	// Writes to /dev/full fail with ENOSPC, simulating a full disk.
	base := store.BasePath(5)
	require.NoError(t, os.Symlink("/dev/full", base))

	wf := models.Waveform{
		Samples:    []float32{0, 0.5, -0.5},
		SampleRate: 48000,
		Channels:   1,
	}

	_, err := store.WriteBase(5, wf)
	require.Error(t, err)
	assert.NoFileExists(t, base)
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, config.VariantsConfig{
		Enabled: true,
		Speeds:  []float64{0.5, 0.75},
	})

	base := store.BasePath(3)
	variant := store.VariantPath(3, 0.5)
	require.NoError(t, os.WriteFile(base, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(variant, []byte("x"), 0o644))

	// The 0.75 variant was never rendered; deleting must not mind.
	require.NoError(t, store.Delete(3))

	assert.NoFileExists(t, base)
	assert.NoFileExists(t, variant)
}

func TestStore_Delete_Missing(t *testing.T) {
	t.Parallel()

	store := newTestStore(t, config.VariantsConfig{Speeds: []float64{0.5}})
	assert.NoError(t, store.Delete(99))
}

func TestQuantize_Clamps(t *testing.T) {
	t.Parallel()

	got := quantize([]float32{2, -2})
	assert.Equal(t, []int{32767, -32767}, got)
}

func TestNewStore_CreatesDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "audio")
	_, err := NewStore(config.PathsConfig{SaveDir: dir}, config.VariantsConfig{}, zap.NewNop())
	require.NoError(t, err)
	assert.DirExists(t, dir)
}
