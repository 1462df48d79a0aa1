package service

import (
	"context"
	"time"

	"github.com/vocapture/vocapture/internal/config"
	"go.uber.org/zap"
)

// ConsistencyReport lists what EnsureConsistency removed: records without a
// base audio file and base audio files without a record.
type ConsistencyReport struct {
	MissingAudio []int64
	OrphanAudio  []int64
}

func (r ConsistencyReport) Clean() bool {
	return len(r.MissingAudio) == 0 && len(r.OrphanAudio) == 0
}

// MaintenanceS runs the startup housekeeping: the store/disk consistency
// check and retention cleanup of the oldest capture dates.
type MaintenanceS struct {
	store     MaintenanceStoreI
	artifacts ArtifactI
	retention config.RetentionConfig
	log       *zap.Logger
}

func NewMaintenanceService(store MaintenanceStoreI, artifacts ArtifactI, retention config.RetentionConfig, log *zap.Logger) *MaintenanceS {
	return &MaintenanceS{
		store:     store,
		artifacts: artifacts,
		retention: retention,
		log:       log,
	}
}

// EnsureConsistency cross-references records against base audio files in
// both directions and removes the half that lost its partner: a record whose
// audio is gone is deleted, an audio file without a record is removed.
func (m *MaintenanceS) EnsureConsistency(ctx context.Context) (ConsistencyReport, error) {
	records, err := m.store.AllRecords(ctx)
	if err != nil {
		return ConsistencyReport{}, err
	}

	numbers, err := m.artifacts.Numbers()
	if err != nil {
		return ConsistencyReport{}, err
	}

	onDisk := make(map[int64]bool, len(numbers))
	for _, n := range numbers {
		onDisk[n] = true
	}

	var report ConsistencyReport
	inStore := make(map[int64]bool, len(records))
	for _, rec := range records {
		inStore[rec.Number] = true
		if onDisk[rec.Number] {
			continue
		}
		if err := m.store.DeleteRecord(ctx, rec.Number); err != nil {
			m.log.Error("failed to drop record without audio",
				zap.Int64("number", rec.Number),
				zap.Error(err))
			continue
		}
		report.MissingAudio = append(report.MissingAudio, rec.Number)
	}
	for _, n := range numbers {
		if inStore[n] {
			continue
		}
		if err := m.artifacts.Delete(n); err != nil {
			m.log.Error("failed to drop audio without record",
				zap.Int64("number", n),
				zap.Error(err))
			continue
		}
		report.OrphanAudio = append(report.OrphanAudio, n)
	}

	if !report.Clean() {
		m.log.Warn("store and audio directory disagreed",
			zap.Int64s("missing_audio", report.MissingAudio),
			zap.Int64s("orphan_audio", report.OrphanAudio))
	}

	return report, nil
}

// CleanupRetention drops records older than the newest MaxDates capture
// dates, together with their audio files. Returns how many records went.
func (m *MaintenanceS) CleanupRetention(ctx context.Context) (int, error) {
	dates, err := m.store.DatesExceedingLimit(ctx, m.retention.MaxDates)
	if err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, nil
	}

	records, err := m.store.RecordsByDates(ctx, dates)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		if err := m.artifacts.Delete(rec.Number); err != nil {
			m.log.Error("failed to delete audio during cleanup",
				zap.Int64("number", rec.Number),
				zap.Error(err))
			continue
		}
		if err := m.store.DeleteRecord(ctx, rec.Number); err != nil {
			m.log.Error("failed to delete record during cleanup",
				zap.Int64("number", rec.Number),
				zap.Error(err))
			continue
		}
		removed++
	}

	m.log.Info("retention cleanup finished",
		zap.Int("dates", len(dates)),
		zap.Int("removed", removed))

	return removed, nil
}

// RunStartupTasks performs the consistency check immediately and the
// retention cleanup after the configured delay, so the capture path is
// responsive right away.
func (m *MaintenanceS) RunStartupTasks(ctx context.Context) {
	if _, err := m.EnsureConsistency(ctx); err != nil {
		m.log.Error("consistency check failed", zap.Error(err))
	}

	select {
	case <-time.After(m.retention.CleanupDelay):
	case <-ctx.Done():
		return
	}

	if _, err := m.CleanupRetention(ctx); err != nil {
		m.log.Error("retention cleanup failed", zap.Error(err))
	}
}
