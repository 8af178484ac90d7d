package factory

import (
	"github.com/mikey/ops-inbox-processor/internal/adapters/source"
	"github.com/mikey/ops-inbox-processor/internal/config"
	"go.uber.org/zap"
)

// SourceFactory creates data sources based on configuration
type SourceFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewSourceFactory creates a new source factory
func NewSourceFactory(cfg *config.Config, logger *zap.Logger) *SourceFactory {
	return &SourceFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateFileSource creates the JSON file data source from the configured
// input paths
func (f *SourceFactory) CreateFileSource() *source.FileSource {
	input := f.cfg.GetInput()
	return source.NewFileSource(
		input.InboxPath,
		input.OrdersPath,
		input.ShipmentsPath,
		input.InvoicesPath,
		input.CompliancePath,
		f.logger,
	)
}
