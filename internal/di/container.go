package di

import (
	"os"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/ops-inbox-processor/internal/adapters/report"
	"github.com/mikey/ops-inbox-processor/internal/adapters/source"
	"github.com/mikey/ops-inbox-processor/internal/config"
	"github.com/mikey/ops-inbox-processor/internal/core"
	"github.com/mikey/ops-inbox-processor/internal/factory"
	"github.com/mikey/ops-inbox-processor/internal/logging"
	"github.com/mikey/ops-inbox-processor/internal/pipeline"
	"github.com/mikey/ops-inbox-processor/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewSourceFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewArchiveFactory); err != nil {
		return nil, err
	}

	// Register the file data source and its port views
	if err := container.Provide(func(f *factory.SourceFactory) *source.FileSource {
		return f.CreateFileSource()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(fs *source.FileSource) core.InboxSource {
		return fs
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(fs *source.FileSource) core.ReferenceSource {
		return fs
	}); err != nil {
		return nil, err
	}

	// Register result archive and enabled flag
	if err := container.Provide(func(f *factory.ArchiveFactory) (core.ResultArchive, error) {
		return f.CreateResultArchive()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.ArchiveFactory) bool {
		return f.IsArchiveEnabled()
	}); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}

	// Register pipeline service
	if err := container.Provide(pipeline.NewService); err != nil {
		return nil, err
	}

	// Register console renderer and results writer
	if err := container.Provide(func(cfg *config.Config, tp *utils.TextProcessor) *report.ConsoleRenderer {
		return report.NewConsoleRenderer(os.Stdout, tp, cfg.GetOutput().MaxPreviewBytes)
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) *report.JSONWriter {
		return report.NewJSONWriter(cfg.GetOutput().Path, logger)
	}); err != nil {
		return nil, err
	}

	return container, nil
}
