// Package capture turns a live stream of audio blocks into one trimmed,
// normalized waveform using a two-phase silence gate: wait for the first
// block above the dB threshold, then record until a long enough run of
// sub-threshold blocks (or the max duration) ends the take.
package capture

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync/atomic"

	"github.com/vocapture/vocapture/internal/config"
	"github.com/vocapture/vocapture/internal/models"
	"go.uber.org/zap"
)

var (
	// ErrNoSound means nothing crossed the threshold before the start
	// timeout. Callers treat it as an aborted capture, not a failure.
	ErrNoSound = errors.New("no sound detected before timeout")

	// ErrStopped means the capture was cancelled from outside.
	ErrStopped = errors.New("capture stopped")

	// ErrSilent means blocks were recorded but nothing survived trimming.
	ErrSilent = errors.New("captured audio is silent")
)

// BlockSource yields fixed-size interleaved float32 blocks from an audio
// device. ReadBlock blocks until a full block is available.
type BlockSource interface {
	ReadBlock() ([]float32, error)
}

type Recorder struct {
	cfg     config.AudioConfig
	source  BlockSource
	log     *zap.Logger
	stopped atomic.Bool
}

func NewRecorder(cfg config.AudioConfig, source BlockSource, log *zap.Logger) *Recorder {
	return &Recorder{
		cfg:    cfg,
		source: source,
		log:    log,
	}
}

// Stop cancels an in-flight capture. It is safe to call from another
// goroutine and has no effect once Record has returned.
func (r *Recorder) Stop() {
	r.stopped.Store(true)
}

// Record runs the capture to completion and returns the post-processed
// waveform. Timing is derived from the block size, so each read advances
// the clock by blockDuration regardless of wall time.
func (r *Recorder) Record() (models.Waveform, error) {
	blockDur := float64(r.cfg.BlockSize) / float64(r.cfg.SampleRate)

	var (
		blocks     [][]float32
		elapsed    float64
		silenceRun float64
		inSilence  bool
		recording  bool
	)

	for {
		if r.stopped.Load() {
			r.log.Debug("capture cancelled")
			return models.Waveform{}, ErrStopped
		}

		block, err := r.source.ReadBlock()
		if err != nil {
			if errors.Is(err, io.EOF) && recording && len(blocks) > 0 {
				break
			}
			if errors.Is(err, io.EOF) {
				return models.Waveform{}, ErrNoSound
			}
			return models.Waveform{}, fmt.Errorf("failed to read audio block: %w", err)
		}

		db := blockDB(block)
		elapsed += blockDur

		if !recording {
			if db > r.cfg.SilenceThresholdDB {
				recording = true
				blocks = append(blocks, block)
				r.log.Debug("sound detected", zap.Float64("db", db))
				continue
			}
			if elapsed > r.cfg.StartSilence.Seconds() {
				r.log.Info("no sound detected before timeout")
				return models.Waveform{}, ErrNoSound
			}
			continue
		}

		blocks = append(blocks, block)

		recorded := float64(len(blocks)) * blockDur
		if recorded > r.cfg.MaxDuration.Seconds() {
			r.log.Info("max recording duration reached", zap.Float64("seconds", recorded))
			break
		}

		if db < r.cfg.SilenceThresholdDB {
			if !inSilence {
				inSilence = true
				silenceRun = 0
			}
			silenceRun += blockDur
			if silenceRun >= r.cfg.EndSilence.Seconds() {
				r.log.Debug("end silence detected")
				break
			}
		} else {
			inSilence = false
			silenceRun = 0
		}
	}

	return r.finalize(blocks)
}

// blockDB converts a block's RMS amplitude to decibels. The epsilon keeps
// log10 defined for all-zero blocks.
func blockDB(block []float32) float64 {
	if len(block) == 0 {
		return -math.MaxFloat64
	}
	var sum float64
	for _, s := range block {
		sum += float64(s) * float64(s)
	}
	rms := math.Sqrt(sum / float64(len(block)))
	return 20 * math.Log10(rms+1e-9)
}
