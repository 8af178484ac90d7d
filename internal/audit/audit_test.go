package audit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikey/ops-inbox-processor/internal/core"
)

func TestNewRecordDerivesAuditID(t *testing.T) {
	tests := []struct {
		emailID string
		auditID string
	}{
		{"email_001", "AUD-001"},
		{"email_42", "AUD-42"},
		{"e7", "AUD-e7"}, // no prefix to strip
	}
	for _, tt := range tests {
		t.Run(tt.emailID, func(t *testing.T) {
			record := NewRecord(tt.emailID, "a@b.com", "subject",
				core.CategoryGeneral, core.RoutingGeneralQueue, 3, core.NewEntitySet())
			assert.Equal(t, tt.auditID, record.AuditID)
			assert.Equal(t, tt.emailID, record.EmailID)
		})
	}
}

func TestNewRecordProcessingBlock(t *testing.T) {
	record := NewRecord("email_001", "ops@carrier.com", "Customs hold",
		core.CategoryCompliance, core.RoutingComplianceTeam, 9, core.NewEntitySet())

	assert.Equal(t, core.CategoryCompliance, record.Processing.Category)
	assert.Equal(t, core.RoutingComplianceTeam, record.Processing.RoutingQueue)
	assert.Equal(t, 9, record.Processing.UrgencyScore)
	assert.Equal(t, "completed", record.Processing.ProcessingStatus)
	assert.NotEmpty(t, record.Timestamp)
	assert.Empty(t, record.Actions)
	require.NotNil(t, record.Actions)
}

func TestNewRecordSnapshotsEntities(t *testing.T) {
	entities := core.NewEntitySet()
	entities.Shipments = []string{"SHP-2024-001"}
	entities.Customers = []string{"jane@example.com"}

	record := NewRecord("email_001", "a@b.com", "s",
		core.CategoryGeneral, core.RoutingGeneralQueue, 1, entities)

	assert.Equal(t, []string{"SHP-2024-001"}, record.ExtractedEntities.Shipments)
	assert.Equal(t, []string{"jane@example.com"}, record.ExtractedEntities.CustomerEmails)
}

func TestAppendActionIDsAreContiguous(t *testing.T) {
	record := NewRecord("email_001", "a@b.com", "s",
		core.CategoryGeneral, core.RoutingGeneralQueue, 1, core.NewEntitySet())

	for i := 0; i < 4; i++ {
		AppendAction(record, "manual_review", "check", StatusPending)
	}

	require.Len(t, record.Actions, 4)
	for i, action := range record.Actions {
		assert.Equal(t, fmt.Sprintf("ACT-%d", i+1), action.ActionID)
		assert.Equal(t, StatusPending, action.Status)
		assert.NotEmpty(t, action.Timestamp)
	}
}

func TestBuildTrailCategoryScripts(t *testing.T) {
	tests := []struct {
		category core.Category
		types    []string
	}{
		{core.CategoryCompliance, []string{"escalation", "notification"}},
		{core.CategoryShipmentUrgent, []string{"investigation", "supplier_contact", "customer_response"}},
		{core.CategoryDeliveryConfirmation, []string{"order_update", "accounting_notification"}},
		{core.CategoryPayment, []string{"payment_processing", "accounting_update"}},
		{core.CategoryInquiry, []string{"customer_response"}},
		{core.CategoryGeneral, []string{"manual_review"}},
		{core.Category("unmapped"), []string{"manual_review"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			trail := BuildTrail("email_001", "a@b.com", "s",
				tt.category, core.RoutingGeneralQueue, 5, core.NewEntitySet())

			require.Len(t, trail, 1)
			record := trail[0]
			require.Len(t, record.Actions, len(tt.types))
			for i, action := range record.Actions {
				assert.Equal(t, tt.types[i], action.Type)
				assert.Equal(t, fmt.Sprintf("ACT-%d", i+1), action.ActionID)
				assert.Equal(t, StatusPending, action.Status)
				assert.NotEmpty(t, action.Description)
			}
		})
	}
}
