// Package scheduler implements the Leitner spaced-repetition box system:
// a remembered item moves up one box, a forgotten item falls back to the
// first box, and each box maps to a growing review interval in days.
package scheduler

import (
	"sort"
	"time"

	"github.com/vocapture/vocapture/internal/models"
)

// Outcome is the user's answer to a single review.
type Outcome int

const (
	Remembered Outcome = iota
	Forgotten
)

func (o Outcome) String() string {
	if o == Remembered {
		return "remembered"
	}
	return "forgotten"
}

// Params holds the box interval table. Intervals[i] is the number of days
// until the next review for box i+1, so the default table
// [1, 2, 4, 7, 14] gives box 1 a one-day interval and box 5 two weeks.
type Params struct {
	Intervals []int
}

func DefaultParams() Params {
	return Params{Intervals: []int{1, 2, 4, 7, 14}}
}

// MaxBox is the highest box level an item can reach.
func (p Params) MaxBox() int {
	return len(p.Intervals)
}

// IntervalDays returns the review interval for a box level, clamping
// out-of-range levels into [1, MaxBox].
func (p Params) IntervalDays(box int) int {
	return p.Intervals[p.clamp(box)-1]
}

// Advance computes the next box level and next review date for one answer.
// It is a pure function: no store access, no clock access beyond today.
func (p Params) Advance(box int, outcome Outcome, today time.Time) (int, time.Time) {
	box = p.clamp(box)

	var next int
	if outcome == Remembered {
		next = box + 1
		if next > p.MaxBox() {
			next = p.MaxBox()
		}
	} else {
		next = 1
	}

	due := today.AddDate(0, 0, p.IntervalDays(next))
	return next, due
}

func (p Params) clamp(box int) int {
	if box < 1 {
		return 1
	}
	if box > p.MaxBox() {
		return p.MaxBox()
	}
	return box
}

// Due filters records down to the ones scheduled on or before today and
// orders them for review: lower boxes first, then older due dates. Records
// that fail the word predicate or carry no schedule are excluded.
func Due(records []models.Record, today time.Time, isWord func(string) bool) []models.Record {
	todayStr := today.Format(models.DateLayout)

	due := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if !rec.Reviewable() {
			continue
		}
		if rec.NextReviewDate.String > todayStr {
			continue
		}
		if isWord != nil && !isWord(rec.Content) {
			continue
		}
		due = append(due, rec)
	}

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].Box() != due[j].Box() {
			return due[i].Box() < due[j].Box()
		}
		return due[i].NextReviewDate.String < due[j].NextReviewDate.String
	})

	return due
}
