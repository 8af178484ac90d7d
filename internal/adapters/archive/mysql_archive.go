package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/mikey/ops-inbox-processor/internal/core"
)

// MySQLArchive is a MySQL implementation of the ResultArchive interface
type MySQLArchive struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLArchive creates a new MySQL-backed result archive
func NewMySQLArchive(dsn string, logger *zap.Logger) (*MySQLArchive, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS processing_results (
			run_id VARCHAR(64) NOT NULL,
			email_id VARCHAR(255) NOT NULL,
			category VARCHAR(64) NOT NULL,
			routing_queue VARCHAR(64) NOT NULL,
			urgency_score INT NOT NULL,
			processed_at TIMESTAMP NOT NULL,
			result JSON NOT NULL,
			PRIMARY KEY (run_id, email_id),
			INDEX idx_results_run (run_id)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &MySQLArchive{
		db:     db,
		logger: logger,
	}, nil
}

// Store persists all results of one run in a single transaction
func (a *MySQLArchive) Store(ctx context.Context, runID string, results []core.ProcessingResult) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		REPLACE INTO processing_results
			(run_id, email_id, category, routing_queue, urgency_score, processed_at, result)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	processedAt := time.Now().UTC().Format("2006-01-02 15:04:05")
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
func (a *MySQLArchive) Close() error {
	return a.db.Close()
}
