// Package report renders processing results for humans and persists them as
// the run's JSON output.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mikey/ops-inbox-processor/internal/core"
	"github.com/mikey/ops-inbox-processor/internal/utils"
)

// ConsoleRenderer writes a human-readable processing report
type ConsoleRenderer struct {
	out        io.Writer
	text       *utils.TextProcessor
	maxPreview int
}

// NewConsoleRenderer creates a console renderer. maxPreview > 0 truncates
// rendered responses to that many bytes; 0 prints them in full.
func NewConsoleRenderer(out io.Writer, text *utils.TextProcessor, maxPreview int) *ConsoleRenderer {
	return &ConsoleRenderer{
		out:        out,
		text:       text,
		maxPreview: maxPreview,
	}
}

// Render prints every result followed by the aggregate summary
func (r *ConsoleRenderer) Render(results []core.ProcessingResult, summary *core.Summary) {
	fmt.Fprintf(r.out, "\n%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(r.out, "OPS INBOX PROCESSOR - PROCESSING RESULTS")
	fmt.Fprintf(r.out, "%s\n\n", strings.Repeat("=", 80))

	for i, result := range results {
		r.renderResult(i+1, result)
	}

	r.renderSummary(summary)
}

func (r *ConsoleRenderer) renderResult(position int, result core.ProcessingResult) {
	fmt.Fprintf(r.out, "EMAIL %d: %s\n", position, result.EmailSubject)
	fmt.Fprintf(r.out, "From: %s\n", result.EmailFrom)
	fmt.Fprintf(r.out, "Timestamp: %s\n", result.EmailTimestamp)
	fmt.Fprintln(r.out, strings.Repeat("-", 80))

	fmt.Fprintln(r.out, "Extracted Entities:")
	for _, group := range []struct {
		name   string
		values []string
	}{
		{"shipments", result.ExtractedEntities.Shipments},
		{"orders", result.ExtractedEntities.Orders},
		{"invoices", result.ExtractedEntities.Invoices},
		{"hs_codes", result.ExtractedEntities.HSCodes},
		{"customers", result.ExtractedEntities.Customers},
		{"tracking_refs", result.ExtractedEntities.TrackingRefs},
	} {
		if len(group.values) > 0 {
			fmt.Fprintf(r.out, "  %s: %s\n", group.name, strings.Join(group.values, ", "))
		}
	}

	fmt.Fprintln(r.out, "\nClassification:")
	fmt.Fprintf(r.out, "  Category: %s\n", result.Classification.Category)
	fmt.Fprintf(r.out, "  Routing: %s\n", result.RoutingQueue)
	fmt.Fprintf(r.out, "  Reason: %s\n", result.Classification.Reason)

	fmt.Fprintln(r.out, "\nUrgency Assessment:")
	fmt.Fprintf(r.out, "  Score: %d/10\n", result.UrgencyScore)
	fmt.Fprintf(r.out, "  Signals: urgent_keywords=%d all_caps_words=%d exclamation_marks=%d\n",
		result.UrgencySignals.UrgentKeywords,
		result.UrgencySignals.AllCapsWords,
		result.UrgencySignals.ExclamationMarks)

	fmt.Fprintln(r.out, "\nRelated Data:")
	for _, ref := range []struct {
		name  string
		value *string
	}{
		{"order_id", result.RelatedData.OrderID},
		{"shipment_id", result.RelatedData.ShipmentID},
		{"invoice_id", result.RelatedData.InvoiceID},
	} {
		if ref.value != nil {
			fmt.Fprintf(r.out, "  %s: %s\n", ref.name, *ref.value)
		}
	}

	fmt.Fprintln(r.out, "\nCUSTOMER RESPONSE:")
	fmt.Fprintln(r.out, strings.Repeat("-", 40))
	fmt.Fprintln(r.out, r.preview(result.CustomerResponse))
	fmt.Fprintln(r.out, strings.Repeat("-", 40))

	fmt.Fprintln(r.out, "\nINTERNAL OPERATIONS SUMMARY:")
	fmt.Fprintln(r.out, strings.Repeat("-", 40))
	fmt.Fprintln(r.out, r.preview(result.InternalSummary))
	fmt.Fprintln(r.out, strings.Repeat("-", 40))

	if len(result.AuditTrail) > 0 {
		record := result.AuditTrail[0]
		fmt.Fprintf(r.out, "\nAUDIT TRAIL: %s\n", record.AuditID)
		fmt.Fprintf(r.out, "  Status: %s\n", record.Processing.ProcessingStatus)
		fmt.Fprintln(r.out, "  Actions:")
		for _, action := range record.Actions {
			fmt.Fprintf(r.out, "    - %s: %s - %s\n", action.ActionID, action.Type, action.Description)
		}
	}

	fmt.Fprintf(r.out, "\n%s\n\n", strings.Repeat("=", 80))
}

func (r *ConsoleRenderer) renderSummary(summary *core.Summary) {
	fmt.Fprintf(r.out, "\n%s\n", strings.Repeat("=", 80))
	fmt.Fprintln(r.out, "PROCESSING SUMMARY")
	fmt.Fprintln(r.out, strings.Repeat("=", 80))
	fmt.Fprintf(r.out, "Total emails processed: %d\n", summary.TotalEmails)

	fmt.Fprintln(r.out, "\nEmails by Category:")
	categories := make([]string, 0, len(summary.ByCategory))
	for category := range summary.ByCategory {
		categories = append(categories, string(category))
	}
	sort.Strings(categories)
	for _, category := range categories {
		fmt.Fprintf(r.out, "  %s: %d\n", category, summary.ByCategory[core.Category(category)])
	}

	fmt.Fprintln(r.out, "\nEmails by Routing Queue:")
	queues := make([]string, 0, len(summary.ByRouting))
	for queue := range summary.ByRouting {
		queues = append(queues, string(queue))
	}
	sort.Strings(queues)
	for _, queue := range queues {
		fmt.Fprintf(r.out, "  %s: %d\n", queue, summary.ByRouting[core.Routing(queue)])
	}

	fmt.Fprintln(r.out, "\nUrgency Distribution:")
	fmt.Fprintf(r.out, "  High (7-10): %d\n", summary.Urgency.High)
	fmt.Fprintf(r.out, "  Medium (4-6): %d\n", summary.Urgency.Medium)
	fmt.Fprintf(r.out, "  Low (1-3): %d\n", summary.Urgency.Low)

	fmt.Fprintln(r.out, "\n"+strings.Repeat("=", 80))
}

func (r *ConsoleRenderer) preview(text string) string {
	if r.maxPreview <= 0 || r.text == nil {
		return text
	}
	return r.text.ProcessText(text, r.maxPreview)
}
