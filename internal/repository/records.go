package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vocapture/vocapture/internal/models"
)

type RecordsR struct {
	db QueryI
}

func NewRecordsRepository(db QueryI) *RecordsR {
	return &RecordsR{db: db}
}

// RecordByContent is the dedupe lookup: exact string match against the
// content column. The second return value reports whether a record exists.
func (r *RecordsR) RecordByContent(ctx context.Context, content string) (models.Record, bool, error) {
	query := `
		SELECT number, content, date, box_level, next_review_date, last_review_date, remember, forget
		FROM recordings
		WHERE content = ?
	`

	var rec models.Record
	err := r.db.GetContext(ctx, &rec, query, content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, false, nil
		}
		return models.Record{}, false, fmt.Errorf("failed to look up content: %w", err)
	}
	return rec, true, nil
}

func (r *RecordsR) RecordByNumber(ctx context.Context, number int64) (models.Record, bool, error) {
	query := `
		SELECT number, content, date, box_level, next_review_date, last_review_date, remember, forget
		FROM recordings
		WHERE number = ?
	`

	var rec models.Record
	err := r.db.GetContext(ctx, &rec, query, number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Record{}, false, nil
		}
		return models.Record{}, false, fmt.Errorf("failed to get record %d: %w", number, err)
	}
	return rec, true, nil
}

// InsertRecord creates a bare record without review fields and returns the
// generated number.
func (r *RecordsR) InsertRecord(ctx context.Context, content, date string) (int64, error) {
	query := `INSERT INTO recordings (content, date) VALUES (?, ?)`

	res, err := r.db.ExecContext(ctx, query, content, date)
	if err != nil {
		return 0, fmt.Errorf("failed to insert record: %w", err)
	}

	number, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get generated number: %w", err)
	}
	return number, nil
}

// TouchCaptureDate is the duplicate path: only the capture date moves, the
// review schedule stays untouched.
func (r *RecordsR) TouchCaptureDate(ctx context.Context, number int64, date string) error {
	query := `UPDATE recordings SET date = ? WHERE number = ?`

	_, err := r.db.ExecContext(ctx, query, date, number)
	if err != nil {
		return fmt.Errorf("failed to touch capture date for record %d: %w", number, err)
	}
	return nil
}

// InitReviewFields puts a freshly captured word into the first box, due
// today.
func (r *RecordsR) InitReviewFields(ctx context.Context, number int64, date string) error {
	query := `
		UPDATE recordings
		SET box_level = 1,
			next_review_date = ?,
			remember = 0,
			forget = 0,
			last_review_date = NULL
		WHERE number = ?
	`

	_, err := r.db.ExecContext(ctx, query, date, number)
	if err != nil {
		return fmt.Errorf("failed to init review fields for record %d: %w", number, err)
	}
	return nil
}

func (r *RecordsR) UpdateReviewResult(ctx context.Context, upd models.ReviewUpdate) error {
	query := `
		UPDATE recordings
		SET box_level = ?,
			next_review_date = ?,
			last_review_date = ?,
			remember = ?,
			forget = ?
		WHERE number = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		upd.BoxLevel, upd.NextReviewDate, upd.LastReviewDate, upd.Remember, upd.Forget, upd.Number)
	if err != nil {
		return fmt.Errorf("failed to update review result for record %d: %w", upd.Number, err)
	}
	return nil
}

func (r *RecordsR) DeleteRecord(ctx context.Context, number int64) error {
	query := `DELETE FROM recordings WHERE number = ?`

	_, err := r.db.ExecContext(ctx, query, number)
	if err != nil {
		return fmt.Errorf("failed to delete record %d: %w", number, err)
	}
	return nil
}

// DueRecords returns records scheduled on or before today, lowest boxes and
// oldest due dates first. The word-shape filter is applied by the caller.
func (r *RecordsR) DueRecords(ctx context.Context, today string) ([]models.Record, error) {
	query := `
		SELECT number, content, date, box_level, next_review_date, last_review_date, remember, forget
		FROM recordings
		WHERE next_review_date IS NOT NULL AND next_review_date <= ?
		ORDER BY box_level ASC, next_review_date ASC
	`

	records := make([]models.Record, 0)
	if err := r.db.SelectContext(ctx, &records, query, today); err != nil {
		return nil, fmt.Errorf("failed to get due records: %w", err)
	}
	return records, nil
}

func (r *RecordsR) RecordsByDate(ctx context.Context, date string) ([]models.Record, error) {
	query := `
		SELECT number, content, date, box_level, next_review_date, last_review_date, remember, forget
		FROM recordings
		WHERE date = ?
		ORDER BY number DESC
	`

	records := make([]models.Record, 0)
	if err := r.db.SelectContext(ctx, &records, query, date); err != nil {
		return nil, fmt.Errorf("failed to get records for date %s: %w", date, err)
	}
	return records, nil
}

func (r *RecordsR) Dates(ctx context.Context, limit int) ([]string, error) {
	query := `SELECT DISTINCT date FROM recordings ORDER BY date DESC LIMIT ?`

	dates := make([]string, 0, limit)
	if err := r.db.SelectContext(ctx, &dates, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get dates: %w", err)
	}
	return dates, nil
}

// DatesExceedingLimit returns the dates older than the newest limit dates,
// oldest first. These are the retention-cleanup candidates.
func (r *RecordsR) DatesExceedingLimit(ctx context.Context, limit int) ([]string, error) {
	query := `
		SELECT DISTINCT date FROM recordings
		WHERE date NOT IN (SELECT DISTINCT date FROM recordings ORDER BY date DESC LIMIT ?)
		ORDER BY date ASC
	`

	dates := make([]string, 0)
	if err := r.db.SelectContext(ctx, &dates, query, limit); err != nil {
		return nil, fmt.Errorf("failed to get dates exceeding limit: %w", err)
	}
	return dates, nil
}

func (r *RecordsR) RecordsByDates(ctx context.Context, dates []string) ([]models.Record, error) {
	if len(dates) == 0 {
		return []models.Record{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT number, content, date, box_level, next_review_date, last_review_date, remember, forget
		FROM recordings
		WHERE date IN (?)
	`, dates)
	if err != nil {
		return nil, fmt.Errorf("failed to build date list query: %w", err)
	}

	records := make([]models.Record, 0)
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get records for %d dates: %w", len(dates), err)
	}
	return records, nil
}

// AllRecords feeds the consistency check between the store and the audio
// directory.
func (r *RecordsR) AllRecords(ctx context.Context) ([]models.Record, error) {
	query := `
		SELECT number, content, date, box_level, next_review_date, last_review_date, remember, forget
		FROM recordings
	`

	records := make([]models.Record, 0)
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to get all records: %w", err)
	}
	return records, nil
}
