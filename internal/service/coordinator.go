package service

import (
	"context"
	"errors"
	"sync"

	"github.com/vocapture/vocapture/internal/capture"
	"github.com/vocapture/vocapture/internal/models"
	"github.com/vocapture/vocapture/internal/storage/cache"
	"go.uber.org/zap"
)

// RecorderI is one capture attempt. Stop may be called from another
// goroutine while Record blocks.
type RecorderI interface {
	Record() (models.Waveform, error)
	Stop()
}

// RecorderFactory opens the audio device for one take. The returned close
// function releases it.
type RecorderFactory func() (RecorderI, func(), error)

// CaptureCoordinator serializes capture requests: a new request stops
// whatever take is still in flight, so the latest text always wins.
type CaptureCoordinator struct {
	recording   *RecordingS
	notifier    NotifierI
	cache       *cache.Cache
	newRecorder RecorderFactory
	log         *zap.Logger

	mu      sync.Mutex
	current RecorderI
}

func NewCaptureCoordinator(recording *RecordingS, notifier NotifierI, c *cache.Cache, factory RecorderFactory, log *zap.Logger) *CaptureCoordinator {
	return &CaptureCoordinator{
		recording:   recording,
		notifier:    notifier,
		cache:       c,
		newRecorder: factory,
		log:         log,
	}
}

// Capture records one take for the given text and saves it. A silent or
// cancelled take is not an error; it just produces nothing.
func (c *CaptureCoordinator) Capture(ctx context.Context, text string) error {
	// Watchers tend to fire the same text several times in a row.
	if text == c.cache.LastContent() {
		c.log.Debug("skipping repeated trigger", zap.String("text", text))
		return nil
	}

	rec, closeDevice, err := c.begin()
	if err != nil {
		return err
	}
	defer closeDevice()
	defer c.finish(rec)

	c.notifier.SilentRecordStart()

	wf, err := rec.Record()
	if err != nil {
		switch {
		case errors.Is(err, capture.ErrStopped):
			c.log.Info("take superseded", zap.String("text", text))
			return nil
		case errors.Is(err, capture.ErrNoSound), errors.Is(err, capture.ErrSilent):
			c.log.Info("nothing captured", zap.String("text", text))
			return nil
		}
		return err
	}

	res, err := c.recording.SaveCapture(ctx, text, wf)
	if err != nil {
		return err
	}

	c.cache.SetLastContent(text)
	c.log.Debug("capture complete", zap.Int64("number", res.Number))

	return nil
}

// StopCurrent cancels the in-flight take, if any.
func (c *CaptureCoordinator) StopCurrent() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil {
		c.current.Stop()
	}
}

func (c *CaptureCoordinator) begin() (RecorderI, func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != nil {
		c.current.Stop()
	}

	rec, closeDevice, err := c.newRecorder()
	if err != nil {
		return nil, nil, err
	}
	c.current = rec
	return rec, closeDevice, nil
}

func (c *CaptureCoordinator) finish(rec RecorderI) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == rec {
		c.current = nil
	}
}
