package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mikey/ops-inbox-processor/internal/adapters/archive"
	"github.com/mikey/ops-inbox-processor/internal/config"
	"github.com/mikey/ops-inbox-processor/internal/core"
	"go.uber.org/zap"
)

// ArchiveFactory creates result archives based on configuration
type ArchiveFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewArchiveFactory creates a new archive factory
func NewArchiveFactory(cfg *config.Config, logger *zap.Logger) *ArchiveFactory {
	return &ArchiveFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateResultArchive creates a result archive based on the configuration
func (f *ArchiveFactory) CreateResultArchive() (core.ResultArchive, error) {
	cfg := f.cfg.GetArchive()

	switch cfg.Type {
	case "memory":
		return archive.NewMemoryArchive(f.logger), nil
	case "sqlite":
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		return archive.NewSQLiteArchive(cfg.SQLitePath, f.logger)
	case "mysql":
		return archive.NewMySQLArchive(cfg.MySQLDSN, f.logger)
	default:
		return nil, fmt.Errorf("unsupported archive type: %s", cfg.Type)
	}
}

// IsArchiveEnabled returns whether result archiving is enabled
func (f *ArchiveFactory) IsArchiveEnabled() bool {
	return f.cfg.GetArchive().Enabled
}
