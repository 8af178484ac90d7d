package report

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mikey/ops-inbox-processor/internal/core"
)

// JSONWriter persists a run's results as a single JSON array
type JSONWriter struct {
	path   string
	logger *zap.Logger
}

// NewJSONWriter creates a writer targeting the given output path
func NewJSONWriter(path string, logger *zap.Logger) *JSONWriter {
	return &JSONWriter{
		path:   path,
		logger: logger,
	}
}

// Write serializes the results and writes them to the output path
func (w *JSONWriter) Write(results []core.ProcessingResult) error {
	raw, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	if err := os.WriteFile(w.path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}

	w.logger.Info("Results saved",
		zap.String("path", w.path),
		zap.Int("results", len(results)))

	return nil
}

// Path returns the configured output path
func (w *JSONWriter) Path() string {
	return w.path
}
