package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vocapture/vocapture/internal/models"
	mock_repository "github.com/vocapture/vocapture/internal/repository/mock"
)

type execResult struct {
	lastID int64
}

func (r execResult) LastInsertId() (int64, error) { return r.lastID, nil }
func (r execResult) RowsAffected() (int64, error) { return 1, nil }

func newRecordsMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *RecordsR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &RecordsR{db: db}
}

func TestRecordsR_RecordByContent(t *testing.T) {
	t.Parallel()

	existing := models.Record{
		Number:  7,
		Content: "serendipity",
		Date:    "2026-09-01",
	}

	tests := []struct {
		name      string
		content   string
		f         func(*mock_repository.MockQueryI)
		want      models.Record
		wantFound bool
		wantErr   bool
	}{
		{
			name:    "found",
			content: "serendipity",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.AssignableToTypeOf(&existing), gomock.Any(), "serendipity").
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*models.Record) = existing
						return nil
					})
			},
			want:      existing,
			wantFound: true,
		},
		{
			name:    "not found",
			content: "xyz",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "xyz").Return(sql.ErrNoRows)
			},
			wantFound: false,
		},
		{
			name:    "query error",
			content: "xyz",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), "xyz").Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newRecordsMock(t, ctrl, tt.f)

			got, found, err := repo.RecordByContent(context.Background(), tt.content)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRecordsR_InsertRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    int64
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "hello", "2026-09-01").
					Return(execResult{lastID: 42}, nil)
			},
			want: 42,
		},
		{
			name: "error exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "hello", "2026-09-01").
					Return(nil, errors.New("error exec"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newRecordsMock(t, ctrl, tt.f)

			got, err := repo.InsertRecord(context.Background(), "hello", "2026-09-01")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordsR_InitReviewFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "2026-09-01", int64(7)).
					Return(execResult{}, nil)
			},
		},
		{
			name: "error exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "2026-09-01", int64(7)).
					Return(nil, errors.New("error exec"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newRecordsMock(t, ctrl, tt.f)

			err := repo.InitReviewFields(context.Background(), 7, "2026-09-01")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestRecordsR_UpdateReviewResult(t *testing.T) {
	t.Parallel()

	upd := models.ReviewUpdate{
		Number:         7,
		BoxLevel:       2,
		NextReviewDate: "2026-09-03",
		LastReviewDate: "2026-09-01",
		Remember:       1,
		Forget:         0,
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(),
					2, "2026-09-03", "2026-09-01", 1, 0, int64(7)).
					Return(execResult{}, nil)
			},
		},
		{
			name: "error exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(),
					2, "2026-09-03", "2026-09-01", 1, 0, int64(7)).
					Return(nil, errors.New("error exec"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newRecordsMock(t, ctrl, tt.f)

			err := repo.UpdateReviewResult(context.Background(), upd)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestRecordsR_DueRecords(t *testing.T) {
	t.Parallel()

	due := []models.Record{
		{Number: 2, Content: "beta", BoxLevel: sql.NullInt64{Int64: 1, Valid: true}},
		{Number: 1, Content: "alpha", BoxLevel: sql.NullInt64{Int64: 3, Valid: true}},
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    []models.Record
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), "2026-09-01").
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						*dest.(*[]models.Record) = due
						return nil
					})
			},
			want: due,
		},
		{
			name: "error select",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), "2026-09-01").
					Return(errors.New("error select"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newRecordsMock(t, ctrl, tt.f)

			got, err := repo.DueRecords(context.Background(), "2026-09-01")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordsR_RecordsByDates(t *testing.T) {
	t.Parallel()

	t.Run("empty date list short-circuits", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := newRecordsMock(t, ctrl, nil)

		got, err := repo.RecordsByDates(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("expands the IN clause", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := newRecordsMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
			mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), "2026-08-01", "2026-08-02").
				DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
					*dest.(*[]models.Record) = []models.Record{{Number: 1, Date: "2026-08-01"}}
					return nil
				})
		})

		got, err := repo.RecordsByDates(context.Background(), []string{"2026-08-01", "2026-08-02"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].Number)
	})
}
