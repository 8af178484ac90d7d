// Package refdata provides lookup over the externally supplied reference
// datasets. Lookups are exact-id linear scans; a miss is not an error.
package refdata

import (
	"go.uber.org/zap"

	"github.com/mikey/ops-inbox-processor/internal/core"
)

// Index wraps the loaded reference datasets for per-email lookups
type Index struct {
	orders    []core.Order
	shipments []core.Shipment
	invoices  []core.Invoice
	logger    *zap.Logger
}

// NewIndex creates an index over the loaded reference data
func NewIndex(data *core.ReferenceData, logger *zap.Logger) *Index {
	if logger != nil {
		logger.Debug("Indexed reference data",
			zap.Int("orders", len(data.Orders)),
			zap.Int("shipments", len(data.Shipments)),
			zap.Int("invoices", len(data.Invoices)),
			zap.Int("compliance_records", data.ComplianceRecords))
	}
	return &Index{
		orders:    data.Orders,
		shipments: data.Shipments,
		invoices:  data.Invoices,
		logger:    logger,
	}
}

// Order returns the order with the given id, or nil when absent
func (i *Index) Order(id string) *core.Order {
	for idx := range i.orders {
		if i.orders[idx].ID == id {
			return &i.orders[idx]
		}
	}
	return nil
}

// Shipment returns the shipment with the given id, or nil when absent
func (i *Index) Shipment(id string) *core.Shipment {
	for idx := range i.shipments {
		if i.shipments[idx].ID == id {
			return &i.shipments[idx]
		}
	}
	return nil
}

// Invoice returns the invoice with the given id, or nil when absent
func (i *Index) Invoice(id string) *core.Invoice {
	for idx := range i.invoices {
		if i.invoices[idx].ID == id {
			return &i.invoices[idx]
		}
	}
	return nil
}
