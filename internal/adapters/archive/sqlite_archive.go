// Package archive persists processing results beyond the run's JSON dump.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/mikey/ops-inbox-processor/internal/core"
)

// SQLiteArchive is a SQLite implementation of the ResultArchive interface
type SQLiteArchive struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteArchive creates a new SQLite-backed result archive
func NewSQLiteArchive(dbPath string, logger *zap.Logger) (*SQLiteArchive, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS processing_results (
			run_id TEXT NOT NULL,
			email_id TEXT NOT NULL,
			category TEXT NOT NULL,
			routing_queue TEXT NOT NULL,
			urgency_score INTEGER NOT NULL,
			processed_at TIMESTAMP NOT NULL,
			result TEXT NOT NULL,
			PRIMARY KEY (run_id, email_id)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_results_run ON processing_results(run_id)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return &SQLiteArchive{
		db:     db,
		logger: logger,
	}, nil
}

// Store persists all results of one run in a single transaction
func (a *SQLiteArchive) Store(ctx context.Context, runID string, results []core.ProcessingResult) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO processing_results
			(run_id, email_id, category, routing_queue, urgency_score, processed_at, result)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	processedAt := time.Now().UTC().Format(time.RFC3339)
	for _, result := range results {
		raw, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode result %s: %w", result.EmailID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			runID,
			result.EmailID,
			string(result.Classification.Category),
			string(result.RoutingQueue),
			result.UrgencyScore,
			processedAt,
			string(raw),
		); err != nil {
			return fmt.Errorf("failed to insert result %s: %w", result.EmailID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit archive transaction: %w", err)
	}

	a.logger.Debug("Archived processing results",
		zap.String("run_id", runID),
		zap.Int("results", len(results)))

	return nil
}

// Close closes the database connection
func (a *SQLiteArchive) Close() error {
	return a.db.Close()
}
