// Package source loads the inbox and reference datasets from JSON files.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mikey/ops-inbox-processor/internal/core"
)

var (
	// ErrNotFound is returned when an input file does not exist
	ErrNotFound = errors.New("input file not found")
	// ErrInvalidFormat is returned when an input file is not valid JSON
	ErrInvalidFormat = errors.New("input file is not valid JSON")
)

// FileSource reads the inbox and reference datasets from local JSON files.
// It implements core.InboxSource and core.ReferenceSource.
type FileSource struct {
	inboxPath      string
	ordersPath     string
	shipmentsPath  string
	invoicesPath   string
	compliancePath string
	logger         *zap.Logger
}

// NewFileSource creates a file-backed data source for the given paths
func NewFileSource(inboxPath, ordersPath, shipmentsPath, invoicesPath, compliancePath string, logger *zap.Logger) *FileSource {
	return &FileSource{
		inboxPath:      inboxPath,
		ordersPath:     ordersPath,
		shipmentsPath:  shipmentsPath,
		invoicesPath:   invoicesPath,
		compliancePath: compliancePath,
		logger:         logger,
	}
}

// LoadInbox loads the inbox file, preserving stored order
func (s *FileSource) LoadInbox(_ context.Context) ([]core.Email, error) {
	var inbox []core.Email
	if err := s.loadJSON(s.inboxPath, &inbox); err != nil {
		return nil, err
	}
	s.logger.Info("Loaded inbox", zap.String("path", s.inboxPath), zap.Int("emails", len(inbox)))
	return inbox, nil
}

// LoadReferenceData loads every reference dataset. Any missing or malformed
// file fails the whole load; the compliance dataset is parsed to validate its
// presence and format but its content is not consumed.
func (s *FileSource) LoadReferenceData(_ context.Context) (*core.ReferenceData, error) {
	data := &core.ReferenceData{}

	if err := s.loadJSON(s.ordersPath, &data.Orders); err != nil {
		return nil, err
	}
	if err := s.loadJSON(s.shipmentsPath, &data.Shipments); err != nil {
		return nil, err
	}
	if err := s.loadJSON(s.invoicesPath, &data.Invoices); err != nil {
		return nil, err
	}

	var compliance []json.RawMessage
	if err := s.loadJSON(s.compliancePath, &compliance); err != nil {
		return nil, err
	}
	data.ComplianceRecords = len(compliance)

	s.logger.Info("Loaded reference data",
		zap.Int("orders", len(data.Orders)),
		zap.Int("shipments", len(data.Shipments)),
		zap.Int("invoices", len(data.Invoices)),
		zap.Int("compliance_records", data.ComplianceRecords))

	return data, nil
}

func (s *FileSource) loadJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}

	return nil
}
