package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func validSource(t *testing.T) *FileSource {
	t.Helper()
	dir := t.TempDir()
	inbox := writeFile(t, dir, "inbox.json", `[
		{"id": "email_001", "from": "a@b.com", "subject": "s", "body": "b", "timestamp": "2026-01-30T09:12:00Z"}
	]`)
	orders := writeFile(t, dir, "orders.json", `[{"id": "ORD-123", "customer": "Retailer A", "items": [{"qty": 4}]}]`)
	shipments := writeFile(t, dir, "shipments.json", `[{"id": "SHP-2024-001", "expected_arrival": "2026-02-10", "hold_reason": ""}]`)
	invoices := writeFile(t, dir, "invoices.json", `[{"id": "INV-2024-001", "amount": 1300}]`)
	compliance := writeFile(t, dir, "compliance.json", `[{"rule": "HS-CODES"}, {"rule": "SANCTIONS"}]`)

	return NewFileSource(inbox, orders, shipments, invoices, compliance, zap.NewNop())
}

func TestLoadInbox(t *testing.T) {
	src := validSource(t)
	emails, err := src.LoadInbox(context.Background())
	require.NoError(t, err)
	require.Len(t, emails, 1)
	assert.Equal(t, "email_001", emails[0].ID)
	assert.Equal(t, "a@b.com", emails[0].From)
}

func TestLoadInboxMissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "absent.json"), "", "", "", "", zap.NewNop())
	_, err := src.LoadInbox(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadInboxInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	inbox := writeFile(t, dir, "inbox.json", `{not json`)
	src := NewFileSource(inbox, "", "", "", "", zap.NewNop())
	_, err := src.LoadInbox(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestLoadReferenceData(t *testing.T) {
	src := validSource(t)
	data, err := src.LoadReferenceData(context.Background())
	require.NoError(t, err)

	require.Len(t, data.Orders, 1)
	assert.Equal(t, "ORD-123", data.Orders[0].ID)
	assert.Equal(t, "Retailer A", data.Orders[0].Customer)
	require.Len(t, data.Orders[0].Items, 1)
	assert.Equal(t, 4, data.Orders[0].Items[0].Qty)

	require.Len(t, data.Shipments, 1)
	assert.Equal(t, "2026-02-10", data.Shipments[0].ExpectedArrival)

	require.Len(t, data.Invoices, 1)
	assert.InEpsilon(t, 1300.0, data.Invoices[0].Amount, 1e-9)

	// Compliance is validated and counted but its content is never consumed
	assert.Equal(t, 2, data.ComplianceRecords)
}

func TestLoadReferenceDataFailsOnAnyMissingFile(t *testing.T) {
	dir := t.TempDir()
	orders := writeFile(t, dir, "orders.json", `[]`)
	shipments := writeFile(t, dir, "shipments.json", `[]`)
	invoices := writeFile(t, dir, "invoices.json", `[]`)
	missingCompliance := filepath.Join(dir, "compliance.json")

	src := NewFileSource("", orders, shipments, invoices, missingCompliance, zap.NewNop())
	_, err := src.LoadReferenceData(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadReferenceDataFailsOnMalformedDataset(t *testing.T) {
	dir := t.TempDir()
	orders := writeFile(t, dir, "orders.json", `[]`)
	shipments := writeFile(t, dir, "shipments.json", `not json at all`)
	invoices := writeFile(t, dir, "invoices.json", `[]`)
	compliance := writeFile(t, dir, "compliance.json", `[]`)

	src := NewFileSource("", orders, shipments, invoices, compliance, zap.NewNop())
	_, err := src.LoadReferenceData(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
