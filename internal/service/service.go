package service

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/vocapture/vocapture/internal/config"
	"github.com/vocapture/vocapture/internal/models"
	"github.com/vocapture/vocapture/internal/repository"
	"github.com/vocapture/vocapture/internal/scheduler"
	"github.com/vocapture/vocapture/internal/textproc"
	"go.uber.org/zap"
)

// TxI is the slice of record operations available inside one capture
// transaction, plus its lifecycle.
type TxI interface {
	RecordByContent(ctx context.Context, content string) (models.Record, bool, error)
	InsertRecord(ctx context.Context, content, date string) (int64, error)
	TouchCaptureDate(ctx context.Context, number int64, date string) error
	InitReviewFields(ctx context.Context, number int64, date string) error
	Commit() error
	Rollback() error
}

type CaptureStoreI interface {
	Begin(ctx context.Context) (TxI, error)
}

type ReviewStoreI interface {
	DueRecords(ctx context.Context, today string) ([]models.Record, error)
	RecordByNumber(ctx context.Context, number int64) (models.Record, bool, error)
	UpdateReviewResult(ctx context.Context, upd models.ReviewUpdate) error
}

type MaintenanceStoreI interface {
	AllRecords(ctx context.Context) ([]models.Record, error)
	DatesExceedingLimit(ctx context.Context, limit int) ([]string, error)
	RecordsByDates(ctx context.Context, dates []string) ([]models.Record, error)
	DeleteRecord(ctx context.Context, number int64) error
}

type StoreI interface {
	CaptureStoreI
	ReviewStoreI
	MaintenanceStoreI
}

// ArtifactI is the audio file store as the services see it.
type ArtifactI interface {
	WriteBase(number int64, wf models.Waveform) (string, error)
	Delete(number int64) error
	GenerateVariants(ctx context.Context, number int64)
	Numbers() ([]int64, error)
}

// NotifierI announces saved records and state changes to the UI.
type NotifierI interface {
	RecordSaved(number int64)
	Refresh()
	SilentRecordStart()
}

type Service struct {
	*RecordingS
	*ReviewS
	*MaintenanceS
}

func InitServices(store StoreI, artifacts ArtifactI, notifier NotifierI, cfg *config.Config, log *zap.Logger) *Service {
	words := textproc.NewWordPredicate(cfg.Review.MaxWordLength)
	params := scheduler.Params{Intervals: cfg.Review.BoxIntervals}

	return &Service{
		RecordingS:   NewRecordingService(store, artifacts, notifier, words, cfg.DB, log),
		ReviewS:      NewReviewService(store, params, words, log),
		MaintenanceS: NewMaintenanceService(store, artifacts, cfg.Retention, log),
	}
}

// Store adapts the repository to StoreI. The indirection exists because
// Begin returns a concrete transaction type.
type Store struct {
	repository.Repository
}

func NewStore(db *sqlx.DB) Store {
	return Store{Repository: repository.NewRepository(db)}
}

func (s Store) Begin(ctx context.Context) (TxI, error) {
	return s.Repository.Begin(ctx)
}
