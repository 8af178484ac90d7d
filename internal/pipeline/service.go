// Package pipeline runs every inbox email through extraction, classification,
// response generation, and audit in sequence, then aggregates run statistics.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mikey/ops-inbox-processor/internal/audit"
	"github.com/mikey/ops-inbox-processor/internal/classify"
	"github.com/mikey/ops-inbox-processor/internal/core"
	"github.com/mikey/ops-inbox-processor/internal/extract"
	"github.com/mikey/ops-inbox-processor/internal/refdata"
	"github.com/mikey/ops-inbox-processor/internal/templates"
)

// Service is the inbox processing orchestrator
type Service struct {
	inbox          core.InboxSource
	refs           core.ReferenceSource
	archive        core.ResultArchive
	logger         *zap.Logger
	archiveEnabled bool
}

// NewService creates a new inbox processing service
func NewService(
	inbox core.InboxSource,
	refs core.ReferenceSource,
	archive core.ResultArchive,
	logger *zap.Logger,
	archiveEnabled bool,
) *Service {
	return &Service{
		inbox:          inbox,
		refs:           refs,
		archive:        archive,
		logger:         logger,
		archiveEnabled: archiveEnabled,
	}
}

// Run loads the reference datasets and the inbox, processes every email in
// stored order, and returns the per-email results plus the run summary.
// Any load failure aborts before the first email is processed.
func (s *Service) Run(ctx context.Context) ([]core.ProcessingResult, *core.Summary, error) {
	data, err := s.refs.LoadReferenceData(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load reference data: %w", err)
	}

	emails, err := s.inbox.LoadInbox(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load inbox: %w", err)
	}

	runID := uuid.NewString()
	s.logger.Info("Processing inbox",
		zap.String("run_id", runID),
		zap.Int("emails", len(emails)))

	index := refdata.NewIndex(data, s.logger)

	results := make([]core.ProcessingResult, 0, len(emails))
	for _, email := range emails {
		result := s.ProcessEmail(email, index)
		s.logger.Debug("Processed email",
			zap.String("email_id", result.EmailID),
			zap.String("category", string(result.Classification.Category)),
			zap.String("routing", string(result.RoutingQueue)),
			zap.Int("urgency_score", result.UrgencyScore))
		results = append(results, result)
	}

	if s.archiveEnabled && s.archive != nil {
		if err := s.archive.Store(ctx, runID, results); err != nil {
			s.logger.Error("Failed to archive results", zap.Error(err))
		}
	}

	return results, Summarize(results), nil
}

// ProcessEmail runs a single email through the full pipeline. It is total:
// missing entities and unmatched reference records degrade to sentinels.
func (s *Service) ProcessEmail(email core.Email, index *refdata.Index) core.ProcessingResult {
	entities := extract.Entities(email.Body, email.Subject)
	signals := extract.Signals(email.Body, email.Subject)

	classification := classify.Classify(entities, email.Body, email.Subject)
	urgencyScore := classify.ScoreUrgency(entities, signals, email.Subject)
	routing := classify.DetermineRouting(classification)

	// At most one lookup per entity kind, keyed by the first extracted id
	var order *core.Order
	var shipment *core.Shipment
	var invoice *core.Invoice
	if len(entities.Orders) > 0 {
		order = index.Order(entities.Orders[0])
	}
	if len(entities.Shipments) > 0 {
		shipment = index.Shipment(entities.Shipments[0])
	}
	if len(entities.Invoices) > 0 {
		invoice = index.Invoice(entities.Invoices[0])
	}

	customerResponse := templates.RenderCustomer(classification.Category, entities, shipment, order, invoice)
	internalSummary := templates.RenderInternal(classification.Category, entities, urgencyScore, shipment, order)

	trail := audit.BuildTrail(email.ID, email.From, email.Subject,
		classification.Category, routing, urgencyScore, entities)

	related := core.RelatedData{}
	if order != nil {
		related.OrderID = &order.ID
	}
	if shipment != nil {
		related.ShipmentID = &shipment.ID
	}
	if invoice != nil {
		related.InvoiceID = &invoice.ID
	}

	return core.ProcessingResult{
		EmailID:           email.ID,
		EmailFrom:         email.From,
		EmailSubject:      email.Subject,
		EmailTimestamp:    email.Timestamp,
		ExtractedEntities: entities,
		UrgencySignals:    signals,
		Classification:    classification,
		UrgencyScore:      urgencyScore,
		RoutingQueue:      routing,
		RelatedData:       related,
		CustomerResponse:  customerResponse,
		InternalSummary:   internalSummary,
		AuditTrail:        trail,
	}
}

// Summarize computes per-category and per-queue counts and the three-bucket
// urgency distribution for a finished run
func Summarize(results []core.ProcessingResult) *core.Summary {
	summary := &core.Summary{
		TotalEmails: len(results),
		ByCategory:  make(map[core.Category]int),
		ByRouting:   make(map[core.Routing]int),
	}

	for _, result := range results {
		summary.ByCategory[result.Classification.Category]++
		summary.ByRouting[result.RoutingQueue]++

		switch {
		case result.UrgencyScore >= 7:
			summary.Urgency.High++
		case result.UrgencyScore >= 4:
			summary.Urgency.Medium++
		default:
			summary.Urgency.Low++
		}
	}

	return summary
}
