// Package classify assigns each email a category, a routing queue, and an
// urgency score using fixed keyword rules evaluated in priority order.
package classify

import (
	"strings"

	"github.com/mikey/ops-inbox-processor/internal/core"
)

// rule is one classification branch; the first rule whose keywords hit (and
// whose entity requirement holds) wins.
type rule struct {
	category      core.Category
	routing       core.Routing
	reason        string
	keywords      []string
	needsEntities func(core.EntitySet) bool
}

// rules are evaluated top to bottom; compliance outranks everything
var rules = []rule{
	{
		category: core.CategoryCompliance,
		routing:  core.RoutingComplianceTeam,
		reason:   "Compliance or customs-related issue detected",
		keywords: []string{"compliance", "violation", "customs", "hs code", "hold"},
	},
	{
		category:      core.CategoryShipmentUrgent,
		routing:       core.RoutingOperationsUrgent,
		reason:        "Urgent shipment issue requiring immediate action",
		keywords:      []string{"missing", "lost", "urgent", "asap"},
		needsEntities: func(e core.EntitySet) bool { return len(e.Shipments) > 0 },
	},
	{
		category: core.CategoryDeliveryConfirmation,
		routing:  core.RoutingGeneralQueue,
		reason:   "Shipment delivery confirmation",
		keywords: []string{"delivered", "confirmation", "successful", "completed"},
	},
	{
		category:      core.CategoryPayment,
		routing:       core.RoutingAccountingTeam,
		reason:        "Payment or invoice-related",
		keywords:      []string{"payment", "invoice", "paid", "received"},
		needsEntities: func(e core.EntitySet) bool { return len(e.Invoices) > 0 },
	},
	{
		category: core.CategoryInquiry,
		routing:  core.RoutingCustomerSupport,
		reason:   "Customer inquiry requiring response",
		keywords: []string{"status", "when", "tracking", "arrive", "question"},
	},
}

// Classify maps an email to exactly one category. Unmatched emails fall
// through to general/general_queue with an empty reason.
func Classify(entities core.EntitySet, body, subject string) core.Classification {
	lowered := strings.ToLower(body + " " + subject)

	for _, r := range rules {
		if r.needsEntities != nil && !r.needsEntities(entities) {
			continue
		}
		if containsAny(lowered, r.keywords) {
			return core.Classification{
				Category: r.category,
				Routing:  r.routing,
				Reason:   r.reason,
			}
		}
	}

	return core.Classification{
		Category: core.CategoryGeneral,
		Routing:  core.RoutingGeneralQueue,
	}
}

// ScoreUrgency derives an urgency score in [1,10] from the extracted signals,
// the extracted entity volume, and subject-line escalation keywords.
func ScoreUrgency(entities core.EntitySet, signals core.UrgencySignals, subject string) int {
	score := 0

	score += minInt(signals.UrgentKeywords*2, 4)
	score += minInt(signals.AllCapsWords, 3)
	score += minInt(signals.ExclamationMarks, 2)

	// Boost when multiple high-value entities are referenced
	entityCount := len(entities.Shipments) + len(entities.Orders) + len(entities.Invoices)
	if entityCount > 2 {
		score += 2
	}

	subjectLower := strings.ToLower(subject)

	// Compliance issues are always high priority
	if strings.Contains(subjectLower, "compliance") || strings.Contains(subjectLower, "violation") {
		score = maxInt(score, 9)
	}

	// Missing/lost shipments are high priority
	if strings.Contains(subjectLower, "missing") || strings.Contains(subjectLower, "lost") {
		score = maxInt(score, 8)
	}

	return minInt(maxInt(score, 1), 10)
}

// DetermineRouting returns the queue for a classification, defaulting to the
// general queue when unset
func DetermineRouting(c core.Classification) core.Routing {
	if c.Routing == "" {
		return core.RoutingGeneralQueue
	}
	return c.Routing
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
