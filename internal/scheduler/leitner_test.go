package scheduler

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vocapture/vocapture/internal/models"
)

func TestParams_Advance(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		box      int
		outcome  Outcome
		wantBox  int
		wantDate time.Time
	}{
		{
			name:     "remembered promotes one box",
			box:      1,
			outcome:  Remembered,
			wantBox:  2,
			wantDate: today.AddDate(0, 0, 2),
		},
		{
			name:     "remembered at max box stays",
			box:      5,
			outcome:  Remembered,
			wantBox:  5,
			wantDate: today.AddDate(0, 0, 14),
		},
		{
			name:     "forgotten resets to box one",
			box:      4,
			outcome:  Forgotten,
			wantBox:  1,
			wantDate: today.AddDate(0, 0, 1),
		},
		{
			name:     "forgotten from box one stays",
			box:      1,
			outcome:  Forgotten,
			wantBox:  1,
			wantDate: today.AddDate(0, 0, 1),
		},
		{
			name:     "out of range box is clamped high",
			box:      11,
			outcome:  Remembered,
			wantBox:  5,
			wantDate: today.AddDate(0, 0, 14),
		},
		{
			name:     "out of range box is clamped low",
			box:      0,
			outcome:  Remembered,
			wantBox:  2,
			wantDate: today.AddDate(0, 0, 2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gotBox, gotDate := p.Advance(tt.box, tt.outcome, today)
			assert.Equal(t, tt.wantBox, gotBox)
			assert.Equal(t, tt.wantDate, gotDate)
		})
	}
}

func TestParams_Advance_BoxNeverExceedsMax(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	box := 1
	for i := 0; i < 10; i++ {
		box, _ = p.Advance(box, Remembered, today)
		require.LessOrEqual(t, box, p.MaxBox())
		require.GreaterOrEqual(t, box, 1)
	}
	assert.Equal(t, 5, box)
}

func TestParams_IntervalMonotonicity(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	for box := 2; box <= p.MaxBox(); box++ {
		assert.GreaterOrEqual(t, p.IntervalDays(box), p.IntervalDays(box-1),
			"interval for box %d must not be below box %d", box, box-1)
	}
}

func reviewable(number int64, content string, box int, next string) models.Record {
	return models.Record{
		Number:         number,
		Content:        content,
		BoxLevel:       sql.NullInt64{Int64: int64(box), Valid: true},
		NextReviewDate: sql.NullString{String: next, Valid: true},
	}
}

func TestDue(t *testing.T) {
	t.Parallel()

	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	isWord := func(s string) bool { return s != "the quick fox jumped" }

	tests := []struct {
		name        string
		records     []models.Record
		wantNumbers []int64
	}{
		{
			name: "orders by box level ascending",
			records: []models.Record{
				reviewable(1, "alpha", 3, "2026-09-01"),
				reviewable(2, "beta", 1, "2026-09-01"),
				reviewable(3, "gamma", 2, "2026-09-01"),
			},
			wantNumbers: []int64{2, 3, 1},
		},
		{
			name: "same box orders by due date ascending",
			records: []models.Record{
				reviewable(1, "alpha", 2, "2026-08-30"),
				reviewable(2, "beta", 2, "2026-08-25"),
			},
			wantNumbers: []int64{2, 1},
		},
		{
			name: "future items excluded",
			records: []models.Record{
				reviewable(1, "alpha", 1, "2026-09-02"),
				reviewable(2, "beta", 1, "2026-09-01"),
			},
			wantNumbers: []int64{2},
		},
		{
			name: "sentences excluded even when overdue",
			records: []models.Record{
				reviewable(1, "the quick fox jumped", 1, "2026-01-01"),
				reviewable(2, "beta", 1, "2026-09-01"),
			},
			wantNumbers: []int64{2},
		},
		{
			name: "records without schedule excluded",
			records: []models.Record{
				{Number: 1, Content: "alpha"},
				reviewable(2, "beta", 1, "2026-09-01"),
			},
			wantNumbers: []int64{2},
		},
		{
			name:        "empty input",
			records:     nil,
			wantNumbers: []int64{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Due(tt.records, today, isWord)
			numbers := make([]int64, 0, len(got))
			for _, rec := range got {
				numbers = append(numbers, rec.Number)
			}
			assert.Equal(t, tt.wantNumbers, numbers)
		})
	}
}
