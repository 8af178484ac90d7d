// Package audit builds the append-only audit trail recording each email's
// processing decision and the follow-up actions it triggers.
package audit

import (
	"fmt"
	"strings"
	"time"

	"github.com/mikey/ops-inbox-processor/internal/core"
)

// StatusPending is the initial status of every appended action
const StatusPending = "pending"

// statusCompleted marks the processing block of a finished record
const statusCompleted = "completed"

// categoryActions is the fixed follow-up script per category; unlisted
// categories fall back to a single manual review action
var categoryActions = map[core.Category][]actionSpec{
	core.CategoryCompliance: {
		{"escalation", "Escalate to compliance team immediately"},
		{"notification", "Notify customer of compliance review"},
	},
	core.CategoryShipmentUrgent: {
		{"investigation", "Investigate missing shipment status"},
		{"supplier_contact", "Contact supplier for shipment location"},
		{"customer_response", "Send urgent response to customer"},
	},
	core.CategoryDeliveryConfirmation: {
		{"order_update", "Update order status to delivered"},
		{"accounting_notification", "Notify accounting team"},
	},
	core.CategoryPayment: {
		{"payment_processing", "Process payment and generate receipt"},
		{"accounting_update", "Update accounting records"},
	},
	core.CategoryInquiry: {
		{"customer_response", "Send shipment status to customer"},
	},
}

var defaultActions = []actionSpec{
	{"manual_review", "Email requires manual review and routing"},
}

type actionSpec struct {
	actionType  string
	description string
}

// NewRecord creates an audit record for a processed email. The audit id is
// derived from the email id with its "email_" prefix stripped.
func NewRecord(emailID, from, subject string, category core.Category, routing core.Routing, urgencyScore int, entities core.EntitySet) *core.AuditRecord {
	return &core.AuditRecord{
		AuditID:      "AUD-" + strings.TrimPrefix(emailID, "email_"),
		Timestamp:    timestamp(),
		EmailID:      emailID,
		EmailFrom:    from,
		EmailSubject: subject,
		Processing: core.ProcessingInfo{
			Category:         category,
			RoutingQueue:     routing,
			UrgencyScore:     urgencyScore,
			ProcessingStatus: statusCompleted,
		},
		ExtractedEntities: core.AuditEntities{
			Shipments:      entities.Shipments,
			Orders:         entities.Orders,
			Invoices:       entities.Invoices,
			HSCodes:        entities.HSCodes,
			TrackingRefs:   entities.TrackingRefs,
			CustomerEmails: entities.Customers,
		},
		Actions: []core.Action{},
	}
}

// AppendAction adds an action item to the record. Action ids are 1-based and
// contiguous within the record ("ACT-1", "ACT-2", ...).
func AppendAction(record *core.AuditRecord, actionType, description, status string) *core.AuditRecord {
	record.Actions = append(record.Actions, core.Action{
		ActionID:    fmt.Sprintf("ACT-%d", len(record.Actions)+1),
		Type:        actionType,
		Description: description,
		Status:      status,
		Timestamp:   timestamp(),
	})
	return record
}

// BuildTrail produces the full audit trail for an email: one record carrying
// the category's fixed action script. The slice return is the seam for future
// multi-step audits.
func BuildTrail(emailID, from, subject string, category core.Category, routing core.Routing, urgencyScore int, entities core.EntitySet) []core.AuditRecord {
	record := NewRecord(emailID, from, subject, category, routing, urgencyScore, entities)

	specs, ok := categoryActions[category]
	if !ok {
		specs = defaultActions
	}
	for _, spec := range specs {
		AppendAction(record, spec.actionType, spec.description, StatusPending)
	}

	return []core.AuditRecord{*record}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
