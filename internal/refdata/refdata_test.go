package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/ops-inbox-processor/internal/core"
)

func testIndex() *Index {
	return NewIndex(&core.ReferenceData{
		Orders: []core.Order{
			{ID: "ORD-123", Customer: "Retailer A"},
			{ID: "ORD-456", Customer: "Retailer B"},
		},
		Shipments: []core.Shipment{
			{ID: "SHP-2024-001", ExpectedArrival: "2026-02-10"},
		},
		Invoices: []core.Invoice{
			{ID: "INV-2024-001", Amount: 1300},
		},
	}, zap.NewNop())
}

func TestIndexLookupHit(t *testing.T) {
	index := testIndex()

	order := index.Order("ORD-456")
	require.NotNil(t, order)
	assert.Equal(t, "Retailer B", order.Customer)

	shipment := index.Shipment("SHP-2024-001")
	require.NotNil(t, shipment)
	assert.Equal(t, "2026-02-10", shipment.ExpectedArrival)

	invoice := index.Invoice("INV-2024-001")
	require.NotNil(t, invoice)
	assert.InEpsilon(t, 1300.0, invoice.Amount, 1e-9)
}

func TestIndexLookupMissReturnsNil(t *testing.T) {
	index := testIndex()
	assert.Nil(t, index.Order("ORD-999"))
	assert.Nil(t, index.Shipment("SHP-0000-000"))
	assert.Nil(t, index.Invoice("INV-0000-000"))
}

func TestIndexLookupIsExact(t *testing.T) {
	index := testIndex()
	// A leading '#' kept from extraction does not match the bare id
	assert.Nil(t, index.Order("#ORD-123"))
}
