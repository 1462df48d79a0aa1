package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vocapture/vocapture/internal/config"
	_ "modernc.org/sqlite"
)

// InitDB opens the local SQLite store, applies the busy-timeout and journal
// pragmas, and bootstraps the schema. The capture and UI processes both open
// their own connection to the same file; the busy timeout is what keeps them
// from failing immediately on a concurrent writer.
func InitDB(paths config.PathsConfig, cfg config.DBConfig) (*sqlx.DB, error) {
	store, err := sqlx.Open("sqlite", paths.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := store.PingContext(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if _, err := store.ExecContext(ctx,
		fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.BusyTimeout.Milliseconds())); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}

	if cfg.WALMode {
		if _, err := store.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
			store.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if _, err := store.ExecContext(ctx, schema); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return store, nil
}
