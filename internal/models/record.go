package models

import (
	"database/sql"
	"time"
)

// DateLayout is the calendar-date format used everywhere in the store.
const DateLayout = time.DateOnly

// Record is one captured piece of content together with its review state.
// Number doubles as the stem of the audio artifact filenames.
type Record struct {
	Number         int64          `db:"number"`
	Content        string         `db:"content"`
	Date           string         `db:"date"`
	BoxLevel       sql.NullInt64  `db:"box_level"`
	NextReviewDate sql.NullString `db:"next_review_date"`
	LastReviewDate sql.NullString `db:"last_review_date"`
	Remember       int            `db:"remember"`
	Forget         int            `db:"forget"`
}

// Box returns the record's box level, defaulting to the first box when the
// record was stored without review fields.
func (r Record) Box() int {
	if r.BoxLevel.Valid {
		return int(r.BoxLevel.Int64)
	}
	return 1
}

// Reviewable reports whether the record carries initialized schedule fields.
// Sentence-like captures are stored and playable but never scheduled.
func (r Record) Reviewable() bool {
	return r.BoxLevel.Valid && r.NextReviewDate.Valid
}

// ReviewUpdate carries the fields mutated by one review answer.
type ReviewUpdate struct {
	Number         int64
	BoxLevel       int
	NextReviewDate string
	LastReviewDate string
	Remember       int
	Forget         int
}
