package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vocapture/vocapture/internal/models"
	"github.com/vocapture/vocapture/internal/scheduler"
	"github.com/vocapture/vocapture/internal/textproc"
	"go.uber.org/zap"
)

// ReviewS serves the spaced-repetition loop: which words are due today and
// what happens to a word after an answer.
type ReviewS struct {
	store  ReviewStoreI
	params scheduler.Params
	words  textproc.WordPredicate
	log    *zap.Logger
}

func NewReviewService(store ReviewStoreI, params scheduler.Params, words textproc.WordPredicate, log *zap.Logger) *ReviewS {
	return &ReviewS{
		store:  store,
		params: params,
		words:  words,
		log:    log,
	}
}

// DueWords returns today's review queue, lowest boxes first. Stored
// sentences never appear in it.
func (r *ReviewS) DueWords(ctx context.Context) ([]models.Record, error) {
	today := time.Now()

	records, err := r.store.DueRecords(ctx, today.Format(models.DateLayout))
	if err != nil {
		return nil, err
	}

	return scheduler.Due(records, today, r.words.IsReviewable), nil
}

// Answer applies one review outcome to a record: the box moves, the next
// review date is recomputed and the outcome counter bumps. A failed write is
// retried once before the error surfaces.
func (r *ReviewS) Answer(ctx context.Context, rec models.Record, outcome scheduler.Outcome) error {
	today := time.Now()

	box, due := r.params.Advance(rec.Box(), outcome, today)

	upd := models.ReviewUpdate{
		Number:         rec.Number,
		BoxLevel:       box,
		NextReviewDate: due.Format(models.DateLayout),
		LastReviewDate: today.Format(models.DateLayout),
		Remember:       rec.Remember,
		Forget:         rec.Forget,
	}
	if outcome == scheduler.Remembered {
		upd.Remember++
	} else {
		upd.Forget++
	}

	err := r.store.UpdateReviewResult(ctx, upd)
	if err != nil {
		r.log.Warn("review update failed, retrying once",
			zap.Int64("number", rec.Number),
			zap.Error(err))
		err = r.store.UpdateReviewResult(ctx, upd)
	}
	if err != nil {
		return fmt.Errorf("failed to record answer for %d: %w", rec.Number, err)
	}

	r.log.Info("review answered",
		zap.Int64("number", rec.Number),
		zap.String("outcome", outcome.String()),
		zap.Int("box", box))

	return nil
}

// StartSession snapshots today's queue into a Session.
func (r *ReviewS) StartSession(ctx context.Context) (*Session, error) {
	due, err := r.DueWords(ctx)
	if err != nil {
		return nil, err
	}

	return &Session{svc: r, items: due}, nil
}

// Session walks a due queue one word at a time. The cursor only moves when
// an answer was persisted, so a failed write shows the same word again.
type Session struct {
	svc *ReviewS

	mu       sync.Mutex
	items    []models.Record
	cursor   int
	answered int
}

// Current returns the word under the cursor, or false when the session is
// complete.
func (s *Session) Current() (models.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor >= len(s.items) {
		return models.Record{}, false
	}
	return s.items[s.cursor], true
}

// Answer grades the current word and advances on success.
func (s *Session) Answer(ctx context.Context, outcome scheduler.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cursor >= len(s.items) {
		return fmt.Errorf("session already complete")
	}

	if err := s.svc.Answer(ctx, s.items[s.cursor], outcome); err != nil {
		return err
	}

	s.cursor++
	s.answered++
	return nil
}

// Refresh reloads the queue after outside changes. The word that was on
// screen stays on screen: the cursor follows its record into the new list,
// and only falls back to clamping when the record is gone.
func (s *Session) Refresh(ctx context.Context) error {
	due, err := s.svc.DueWords(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shown := int64(-1)
	if s.cursor < len(s.items) {
		shown = s.items[s.cursor].Number
	}

	s.items = due
	if shown >= 0 {
		for i, rec := range due {
			if rec.Number == shown {
				s.cursor = i
				return nil
			}
		}
	}
	if s.cursor >= len(s.items) {
		s.cursor = len(s.items) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	return nil
}

func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor >= len(s.items)
}

// Progress reports answered and total counts for the session.
func (s *Session) Progress() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answered, len(s.items)
}
