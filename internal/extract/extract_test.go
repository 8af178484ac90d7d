package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitiesPatterns(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		subject  string
		expected func(t *testing.T, shipments, orders, invoices, tracking []string)
	}{
		{
			name:    "shipment id in body",
			body:    "Shipment SHP-2024-001 is delayed",
			subject: "",
			expected: func(t *testing.T, shipments, orders, invoices, tracking []string) {
				assert.Equal(t, []string{"SHP-2024-001"}, shipments)
			},
		},
		{
			name:    "shipment id in subject only",
			body:    "see subject",
			subject: "Update on SHP-2024-117",
			expected: func(t *testing.T, shipments, orders, invoices, tracking []string) {
				assert.Equal(t, []string{"SHP-2024-117"}, shipments)
			},
		},
		{
			name:    "order id keeps leading hash",
			body:    "Please check #ORD-789 and ORD-123",
			subject: "",
			expected: func(t *testing.T, shipments, orders, invoices, tracking []string) {
				assert.Equal(t, []string{"#ORD-789", "ORD-123"}, orders)
			},
		},
		{
			name:    "invoice and tracking ids",
			body:    "Invoice INV-2024-042 shipped under TRACK-2024-555",
			subject: "",
			expected: func(t *testing.T, shipments, orders, invoices, tracking []string) {
				assert.Equal(t, []string{"INV-2024-042"}, invoices)
				assert.Equal(t, []string{"TRACK-2024-555"}, tracking)
			},
		},
		{
			name:    "short digit runs are not ids",
			body:    "Order ORD-12 and shipment SHP-202-001",
			subject: "",
			expected: func(t *testing.T, shipments, orders, invoices, tracking []string) {
				assert.Empty(t, shipments)
				assert.Empty(t, orders)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := Entities(tt.body, tt.subject)
			tt.expected(t, entities.Shipments, entities.Orders, entities.Invoices, entities.TrackingRefs)
		})
	}
}

func TestEntitiesDedupePreservesFirstSeenOrder(t *testing.T) {
	body := "ORD-222 then ORD-111 then ORD-222 again and ORD-111"
	entities := Entities(body, "")
	assert.Equal(t, []string{"ORD-222", "ORD-111"}, entities.Orders)
}

func TestEntitiesHSCodesBodyOnlySorted(t *testing.T) {
	body := "Codes 9403.60 and 8471 and 9403.60 apply"
	subject := "Code 1234 mentioned in subject"
	entities := Entities(body, subject)
	assert.Equal(t, []string{"8471", "9403.60"}, entities.HSCodes)
}

func TestEntitiesHSCodeDoesNotMatchLongerRuns(t *testing.T) {
	entities := Entities("shipment 55321 is held", "")
	assert.Empty(t, entities.HSCodes)
}

func TestEntitiesCustomerEmailsFromBodyOnly(t *testing.T) {
	body := "Contact jane.doe@example.com about this"
	subject := "From ops@carrier.com"
	entities := Entities(body, subject)
	assert.Equal(t, []string{"jane.doe@example.com"}, entities.Customers)
}

func TestEntitiesEmptyInputYieldsEmptyNonNilSets(t *testing.T) {
	entities := Entities("", "")
	require.NotNil(t, entities.Shipments)
	require.NotNil(t, entities.Orders)
	require.NotNil(t, entities.Invoices)
	require.NotNil(t, entities.HSCodes)
	require.NotNil(t, entities.Customers)
	require.NotNil(t, entities.TrackingRefs)
	assert.Empty(t, entities.Shipments)
}

func TestEntitiesIdempotent(t *testing.T) {
	body := "SHP-2024-001 #ORD-123 INV-2024-001 TRACK-2024-002 code 9403.60 via a@b.com"
	first := Entities(body, "subject SHP-2024-001")
	second := Entities(body, "subject SHP-2024-001")
	assert.Equal(t, first, second)
}

func TestSignals(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		subject      string
		keywords     int
		caps         int
		exclamations int
	}{
		{
			name:         "keyword counted once regardless of repetition",
			body:         "urgent urgent URGENT",
			subject:      "",
			keywords:     1,
			caps:         1,
			exclamations: 0,
		},
		{
			name:         "distinct keywords each count",
			body:         "This is urgent, respond asap, critical issue",
			subject:      "",
			keywords:     3,
			caps:         0,
			exclamations: 0,
		},
		{
			name:         "multi word keyword",
			body:         "shipment is on hold at customs",
			subject:      "",
			keywords:     1,
			caps:         0,
			exclamations: 0,
		},
		{
			name:         "caps words need four letters",
			body:         "The ETA for ASAP DELIVERY is now",
			subject:      "",
			keywords:     1, // asap
			caps:         2, // ASAP, DELIVERY
			exclamations: 0,
		},
		{
			name:         "exclamations counted individually",
			body:         "Help!!! Now!",
			subject:      "Really!",
			keywords:     0,
			caps:         0,
			exclamations: 5,
		},
		{
			name:         "empty text",
			body:         "",
			subject:      "",
			keywords:     0,
			caps:         0,
			exclamations: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := Signals(tt.body, tt.subject)
			assert.Equal(t, tt.keywords, signals.UrgentKeywords, "urgent keywords")
			assert.Equal(t, tt.caps, signals.AllCapsWords, "all caps words")
			assert.Equal(t, tt.exclamations, signals.ExclamationMarks, "exclamation marks")
		})
	}
}

func TestMissingShipmentScenario(t *testing.T) {
	body := "Shipment SHP-2024-001 is missing, please help URGENT!!!"
	entities := Entities(body, "")
	signals := Signals(body, "")

	assert.Equal(t, []string{"SHP-2024-001"}, entities.Shipments)
	assert.Equal(t, 1, signals.UrgentKeywords)
	assert.Equal(t, 1, signals.AllCapsWords)
	assert.Equal(t, 3, signals.ExclamationMarks)
}
