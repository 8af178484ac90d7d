package archive

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/mikey/ops-inbox-processor/internal/core"
)

// MemoryArchive is an in-memory implementation of the ResultArchive
// interface, useful for tests and runs where persistence is not wanted
type MemoryArchive struct {
	runs   map[string][]core.ProcessingResult
	mu     sync.RWMutex
	logger *zap.Logger
}

// NewMemoryArchive creates a new in-memory result archive
func NewMemoryArchive(logger *zap.Logger) *MemoryArchive {
	return &MemoryArchive{
		runs:   make(map[string][]core.ProcessingResult),
		logger: logger,
	}
}

// Store keeps the results of one run in memory
func (a *MemoryArchive) Store(_ context.Context, runID string, results []core.ProcessingResult) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	stored := make([]core.ProcessingResult, len(results))
	copy(stored, results)
	a.runs[runID] = stored

	if a.logger != nil {
		a.logger.Debug("Archived processing results",
			zap.String("run_id", runID),
			zap.Int("results", len(results)))
	}
	return nil
}

// Run returns the stored results for a run id
func (a *MemoryArchive) Run(runID string) ([]core.ProcessingResult, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	results, ok := a.runs[runID]
	return results, ok
}

// Close is a no-op for the in-memory archive
func (a *MemoryArchive) Close() error {
	return nil
}
