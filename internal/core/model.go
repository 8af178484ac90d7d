package core

// Email represents one inbox message as supplied by the data source
type Email struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
}

// EntitySet holds the identifiers extracted from a single email. The set of
// kinds is closed; a kind with no matches is an empty (never nil) slice so
// every key survives serialization.
type EntitySet struct {
	Shipments    []string `json:"shipments"`
	Orders       []string `json:"orders"`
	Invoices     []string `json:"invoices"`
	HSCodes      []string `json:"hs_codes"`
	Customers    []string `json:"customers"`
	TrackingRefs []string `json:"tracking_refs"`
}

// NewEntitySet returns an EntitySet with every kind initialized empty
func NewEntitySet() EntitySet {
	return EntitySet{
		Shipments:    []string{},
		Orders:       []string{},
		Invoices:     []string{},
		HSCodes:      []string{},
		Customers:    []string{},
		TrackingRefs: []string{},
	}
}

// UrgencySignals are the raw urgency counters detected in an email
type UrgencySignals struct {
	UrgentKeywords   int `json:"urgent_keywords"`
	AllCapsWords     int `json:"all_caps_words"`
	ExclamationMarks int `json:"exclamation_marks"`
}

// Category is the closed set of email categories
type Category string

const (
	CategoryCompliance           Category = "compliance"
	CategoryShipmentUrgent       Category = "shipment_urgent"
	CategoryDeliveryConfirmation Category = "delivery_confirmation"
	CategoryPayment              Category = "payment"
	CategoryInquiry              Category = "inquiry"
	CategoryGeneral              Category = "general"
)

// Routing identifies the queue or team an email is routed to
type Routing string

const (
	RoutingComplianceTeam   Routing = "compliance_team"
	RoutingOperationsUrgent Routing = "operations_urgent"
	RoutingAccountingTeam   Routing = "accounting_team"
	RoutingCustomerSupport  Routing = "customer_support"
	RoutingGeneralQueue     Routing = "general_queue"
)

// Classification is the category/routing decision for one email
type Classification struct {
	Category Category `json:"category"`
	Routing  Routing  `json:"routing"`
	Reason   string   `json:"reason"`
}

// OrderItem is one line item on a reference order
type OrderItem struct {
	Qty  int    `json:"qty"`
	SKU  string `json:"sku,omitempty"`
	Name string `json:"name,omitempty"`
}

// Order is an externally supplied reference record
type Order struct {
	ID       string      `json:"id"`
	Customer string      `json:"customer"`
	Items    []OrderItem `json:"items"`
}

// Shipment is an externally supplied reference record
type Shipment struct {
	ID              string `json:"id"`
	ExpectedArrival string `json:"expected_arrival"`
	HoldReason      string `json:"hold_reason"`
	Status          string `json:"status,omitempty"`
}

// Invoice is an externally supplied reference record
type Invoice struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
}

// RelatedData records which reference records matched an email's first
// extracted id of each kind. A nil field means no record matched.
type RelatedData struct {
	OrderID    *string `json:"order_id"`
	ShipmentID *string `json:"shipment_id"`
	InvoiceID  *string `json:"invoice_id"`
}

// Action is a single follow-up item on an audit record
type Action struct {
	ActionID    string `json:"action_id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
}

// ProcessingInfo is the decision block embedded in an audit record
type ProcessingInfo struct {
	Category         Category `json:"category"`
	RoutingQueue     Routing  `json:"routing_queue"`
	UrgencyScore     int      `json:"urgency_score"`
	ProcessingStatus string   `json:"processing_status"`
}

// AuditEntities is the entity snapshot stored on an audit record. It mirrors
// EntitySet but keeps the audit trail's own field name for customer emails.
type AuditEntities struct {
	Shipments      []string `json:"shipments"`
	Orders         []string `json:"orders"`
	Invoices       []string `json:"invoices"`
	HSCodes        []string `json:"hs_codes"`
	TrackingRefs   []string `json:"tracking_refs"`
	CustomerEmails []string `json:"customer_emails"`
}

// AuditRecord is the structured account of one email's processing decision
type AuditRecord struct {
	AuditID           string         `json:"audit_id"`
	Timestamp         string         `json:"timestamp"`
	EmailID           string         `json:"email_id"`
	EmailFrom         string         `json:"email_from"`
	EmailSubject      string         `json:"email_subject"`
	Processing        ProcessingInfo `json:"processing"`
	ExtractedEntities AuditEntities  `json:"extracted_entities"`
	Actions           []Action       `json:"actions"`
}

// ProcessingResult aggregates everything produced for one email
type ProcessingResult struct {
	EmailID           string         `json:"email_id"`
	EmailFrom         string         `json:"email_from"`
	EmailSubject      string         `json:"email_subject"`
	EmailTimestamp    string         `json:"email_timestamp"`
	ExtractedEntities EntitySet      `json:"extracted_entities"`
	UrgencySignals    UrgencySignals `json:"urgency_signals"`
	Classification    Classification `json:"classification"`
	UrgencyScore      int            `json:"urgency_score"`
	RoutingQueue      Routing        `json:"routing_queue"`
	RelatedData       RelatedData    `json:"related_data"`
	CustomerResponse  string         `json:"customer_response"`
	InternalSummary   string         `json:"internal_summary"`
	AuditTrail        []AuditRecord  `json:"audit_trail"`
}

// UrgencyDistribution buckets urgency scores: high >= 7, medium 4-6, low <= 3
type UrgencyDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Summary holds the aggregate statistics for one processing run
type Summary struct {
	TotalEmails int                 `json:"total_emails"`
	ByCategory  map[Category]int    `json:"by_category"`
	ByRouting   map[Routing]int     `json:"by_routing"`
	Urgency     UrgencyDistribution `json:"urgency_distribution"`
}
