package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vocapture/vocapture/internal/config"
	"github.com/vocapture/vocapture/internal/models"
	"github.com/vocapture/vocapture/internal/textproc"
	"go.uber.org/zap"
)

// SaveResult describes where a capture ended up.
type SaveResult struct {
	Number int64
	IsNew  bool
}

// RecordingS persists finished captures. Each save runs in one database
// transaction together with the audio file write, so a failure on either
// side leaves neither.
type RecordingS struct {
	store     CaptureStoreI
	artifacts ArtifactI
	notifier  NotifierI
	words     textproc.WordPredicate
	retry     config.DBConfig
	log       *zap.Logger
}

func NewRecordingService(store CaptureStoreI, artifacts ArtifactI, notifier NotifierI, words textproc.WordPredicate, retry config.DBConfig, log *zap.Logger) *RecordingS {
	return &RecordingS{
		store:     store,
		artifacts: artifacts,
		notifier:  notifier,
		words:     words,
		retry:     retry,
		log:       log,
	}
}

// SaveCapture stores a capture under its cleaned text. A text already in the
// store keeps its record and review schedule; only its capture date and audio
// move. The whole transaction is retried a bounded number of times when the
// database is briefly locked by another writer.
func (s *RecordingS) SaveCapture(ctx context.Context, text string, wf models.Waveform) (SaveResult, error) {
	content, err := textproc.Prepare(text)
	if err != nil {
		return SaveResult{}, fmt.Errorf("unusable capture text: %w", err)
	}

	today := time.Now().Format(models.DateLayout)

	var res SaveResult
	for attempt := 1; ; attempt++ {
		res, err = s.saveOnce(ctx, content, wf, today)
		if err == nil {
			break
		}
		if !retryable(err) || attempt >= s.retry.RetryCount {
			return SaveResult{}, err
		}

		s.log.Warn("database busy, retrying save",
			zap.Int("attempt", attempt),
			zap.Error(err))

		select {
		case <-time.After(s.retry.RetryBackoff):
		case <-ctx.Done():
			return SaveResult{}, ctx.Err()
		}
	}

	go s.artifacts.GenerateVariants(context.WithoutCancel(ctx), res.Number)
	s.notifier.RecordSaved(res.Number)

	s.log.Info("capture saved",
		zap.Int64("number", res.Number),
		zap.Bool("new", res.IsNew),
		zap.String("content", content))

	return res, nil
}

func (s *RecordingS) saveOnce(ctx context.Context, content string, wf models.Waveform, today string) (SaveResult, error) {
	tx, err := s.store.Begin(ctx)
	if err != nil {
		return SaveResult{}, err
	}

	res, wrote, err := s.saveInTx(ctx, tx, content, wf, today)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.Error("rollback failed", zap.Error(rbErr))
		}
		if wrote {
			s.discard(res.Number)
		}
		return SaveResult{}, err
	}

	if err := tx.Commit(); err != nil {
		s.discard(res.Number)
		return SaveResult{}, fmt.Errorf("failed to commit capture: %w", err)
	}
	return res, nil
}

// saveInTx runs the record write and the audio write. The bool reports
// whether audio files hit the disk and need cleanup if the caller rolls
// back.
func (s *RecordingS) saveInTx(ctx context.Context, tx TxI, content string, wf models.Waveform, today string) (SaveResult, bool, error) {
	existing, found, err := tx.RecordByContent(ctx, content)
	if err != nil {
		return SaveResult{}, false, err
	}

	var res SaveResult
	if found {
		res = SaveResult{Number: existing.Number}

		// The new take replaces the old audio entirely.
		if err := s.artifacts.Delete(existing.Number); err != nil {
			return res, false, fmt.Errorf("failed to drop old audio: %w", err)
		}
		if err := tx.TouchCaptureDate(ctx, existing.Number, today); err != nil {
			return res, true, err
		}
	} else {
		number, err := tx.InsertRecord(ctx, content, today)
		if err != nil {
			return SaveResult{}, false, err
		}
		res = SaveResult{Number: number, IsNew: true}

		if s.words.IsReviewable(content) {
			if err := tx.InitReviewFields(ctx, number, today); err != nil {
				return res, false, err
			}
		}
	}

	// From here the writer may have touched the disk, so a failure still
	// reports wrote=true and lets the caller sweep the number's files.
	if _, err := s.artifacts.WriteBase(res.Number, wf); err != nil {
		return res, true, fmt.Errorf("failed to write audio: %w", err)
	}

	return res, true, nil
}

func (s *RecordingS) discard(number int64) {
	if err := s.artifacts.Delete(number); err != nil {
		s.log.Error("failed to clean up audio after aborted save",
			zap.Int64("number", number),
			zap.Error(err))
	}
}

// retryable reports whether an error looks like transient SQLite contention.
// Anything else aborts the save immediately.
func retryable(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "locked") || strings.Contains(msg, "busy")
}
