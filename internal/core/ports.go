package core

import (
	"context"
)

// ReferenceData is the full set of reference records loaded before a run
type ReferenceData struct {
	Orders    []Order
	Shipments []Shipment
	Invoices  []Invoice

	// ComplianceRecords is the size of the compliance dataset. The dataset is
	// loaded and validated but its content is not consumed by the pipeline.
	ComplianceRecords int
}

// InboxSource defines the interface for loading the inbox batch
type InboxSource interface {
	// LoadInbox returns the full inbox in stored order
	LoadInbox(ctx context.Context) ([]Email, error)
}

// ReferenceSource defines the interface for loading reference datasets
type ReferenceSource interface {
	// LoadReferenceData loads every reference dataset, failing if any one of
	// them is missing or malformed
	LoadReferenceData(ctx context.Context) (*ReferenceData, error)
}

// ResultArchive defines the interface for persisting processing results
// beyond the run's JSON dump
type ResultArchive interface {
	// Store persists all results of one run under the given run id
	Store(ctx context.Context, runID string, results []ProcessingResult) error

	// Close releases any underlying resources
	Close() error
}
