package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mikey/ops-inbox-processor/internal/adapters/report"
	"github.com/mikey/ops-inbox-processor/internal/config"
	"github.com/mikey/ops-inbox-processor/internal/core"
	"github.com/mikey/ops-inbox-processor/internal/di"
	"github.com/mikey/ops-inbox-processor/internal/pipeline"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	cfg *config.Config,
	logger *zap.Logger,
	service *pipeline.Service,
	renderer *report.ConsoleRenderer,
	writer *report.JSONWriter,
	archive core.ResultArchive,
) error {
	defer logger.Sync()
	defer func() {
		if err := archive.Close(); err != nil {
			logger.Error("Failed to close archive", zap.Error(err))
		}
	}()

	results, summary, err := service.Run(context.Background())
	if err != nil {
		// Any load failure aborts before processing; nothing is written
		logger.Error("Processing aborted", zap.Error(err))
		return err
	}

	if cfg.GetOutput().Console {
		renderer.Render(results, summary)
	}

	if err := writer.Write(results); err != nil {
		logger.Error("Failed to write results", zap.Error(err))
		return err
	}

	fmt.Printf("Results saved to %s\n", writer.Path())
	return nil
}
