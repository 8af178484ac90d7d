package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/mikey/ops-inbox-processor/internal/classify"
	"github.com/mikey/ops-inbox-processor/internal/core"
	"github.com/mikey/ops-inbox-processor/internal/extract"
	"github.com/mikey/ops-inbox-processor/internal/logging"
	"github.com/mikey/ops-inbox-processor/internal/utils"
)

var (
	// Input flags
	inputFile = flag.String("file", "", "Input email JSON file (use stdin if not specified)")
	subject   = flag.String("subject", "", "Email subject (used with -body instead of a JSON file)")
	body      = flag.String("body", "", "Email body (used with -subject instead of a JSON file)")

	verbose = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog = flag.Bool("json-log", false, "Output logs in JSON format")
)

func main() {
	flag.Parse()

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	email, err := readEmail(logger)
	if err != nil {
		logger.Fatal("Failed to read email", zap.Error(err))
	}

	text := utils.NewTextProcessor(logger)
	email.Body = text.SanitizeUTF8(email.Body)
	email.Subject = text.SanitizeUTF8(email.Subject)

	// Print email summary
	fmt.Printf("\n=== Email Summary ===\n")
	fmt.Printf("From: %s\n", email.From)
	fmt.Printf("Subject: %s\n", email.Subject)
	fmt.Printf("Body length: %d bytes\n", len(email.Body))
	fmt.Printf("\n")

	entities := extract.Entities(email.Body, email.Subject)
	signals := extract.Signals(email.Body, email.Subject)
	classification := classify.Classify(entities, email.Body, email.Subject)
	score := classify.ScoreUrgency(entities, signals, email.Subject)
	routing := classify.DetermineRouting(classification)

	fmt.Printf("=== Analysis ===\n")
	printEntities(entities)
	fmt.Printf("Urgent keywords: %d\n", signals.UrgentKeywords)
	fmt.Printf("All-caps words: %d\n", signals.AllCapsWords)
	fmt.Printf("Exclamation marks: %d\n", signals.ExclamationMarks)

	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Category: %s\n", classification.Category)
	fmt.Printf("Routing: %s\n", routing)
	if classification.Reason != "" {
		fmt.Printf("Reason: %s\n", classification.Reason)
	}
	fmt.Printf("Urgency score: %d/10\n", score)
}

// readEmail loads the email either from flags, a JSON file, or stdin
func readEmail(logger *zap.Logger) (*core.Email, error) {
	if *body != "" || *subject != "" {
		return &core.Email{Subject: *subject, Body: *body}, nil
	}

	var reader io.Reader
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file %s: %w", *inputFile, err)
		}
		defer file.Close()
		reader = file
		logger.Info("Reading email from file", zap.String("file", *inputFile))
	} else {
		reader = os.Stdin
		logger.Info("Reading email from stdin")
	}

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read email: %w", err)
	}

	var email core.Email
	if err := json.Unmarshal(raw, &email); err != nil {
		return nil, fmt.Errorf("failed to parse email JSON: %w", err)
	}
	return &email, nil
}

func printEntities(entities core.EntitySet) {
	for _, group := range []struct {
		name   string
		values []string
	}{
		{"Shipments", entities.Shipments},
		{"Orders", entities.Orders},
		{"Invoices", entities.Invoices},
		{"HS codes", entities.HSCodes},
		{"Customers", entities.Customers},
		{"Tracking refs", entities.TrackingRefs},
	} {
		if len(group.values) > 0 {
			fmt.Printf("%s: %s\n", group.name, strings.Join(group.values, ", "))
		}
	}
}
