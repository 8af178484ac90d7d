// Package extract pulls domain identifiers and urgency signals out of raw
// email text using fixed regular expression patterns.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mikey/ops-inbox-processor/internal/core"
)

var (
	// Shipment IDs: SHP-YYYY-NNN
	shipmentPattern = regexp.MustCompile(`SHP-\d{4}-\d{3,}`)

	// Order IDs: ORD-NNN or #ORD-NNN (a matched '#' stays in the token)
	orderPattern = regexp.MustCompile(`#?ORD-\d{3,}`)

	// Invoice IDs: INV-YYYY-NNN
	invoicePattern = regexp.MustCompile(`INV-\d{4}-\d{3,}`)

	// Tracking references: TRACK-YYYY-NNN
	trackingPattern = regexp.MustCompile(`TRACK-\d{4}-\d{3,}`)

	// HS codes: standalone 4 digits, optional .NN suffix
	hsPattern = regexp.MustCompile(`\b\d{4}(\.\d{2})?\b`)

	// Customer email addresses
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	capsPattern = regexp.MustCompile(`\b[A-Z]{4,}\b`)
)

// urgentWords contribute one point each when present anywhere in the text,
// regardless of how often they repeat
var urgentWords = []string{
	"urgent", "asap", "immediately", "critical",
	"emergency", "on hold", "flagged", "violation",
}

// Entities extracts all recognized identifiers from an email. Identifier
// patterns are matched against body and subject combined; HS codes and
// customer addresses are matched against the body only. Results are
// deduplicated: HS codes sorted, everything else in first-seen order.
func Entities(body, subject string) core.EntitySet {
	combined := body + " " + subject

	entities := core.NewEntitySet()
	entities.Shipments = dedupeOrdered(shipmentPattern.FindAllString(combined, -1))
	entities.Orders = dedupeOrdered(orderPattern.FindAllString(combined, -1))
	entities.Invoices = dedupeOrdered(invoicePattern.FindAllString(combined, -1))
	entities.TrackingRefs = dedupeOrdered(trackingPattern.FindAllString(combined, -1))
	entities.HSCodes = dedupeSorted(hsPattern.FindAllString(body, -1))
	entities.Customers = dedupeOrdered(emailPattern.FindAllString(body, -1))

	return entities
}

// Signals counts the urgency indicators present in an email
func Signals(body, subject string) core.UrgencySignals {
	combined := body + " " + subject
	lowered := strings.ToLower(combined)

	var signals core.UrgencySignals
	for _, word := range urgentWords {
		if strings.Contains(lowered, word) {
			signals.UrgentKeywords++
		}
	}
	signals.AllCapsWords = len(capsPattern.FindAllString(combined, -1))
	signals.ExclamationMarks = strings.Count(combined, "!")

	return signals
}

// dedupeOrdered removes duplicates preserving first-occurrence order
func dedupeOrdered(matches []string) []string {
	out := []string{}
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// dedupeSorted removes duplicates and sorts; match order carries no meaning
// for HS codes
func dedupeSorted(matches []string) []string {
	out := dedupeOrdered(matches)
	sort.Strings(out)
	return out
}
