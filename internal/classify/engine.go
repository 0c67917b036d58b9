// Package classify assigns an expense category to extracted invoice data
// using a chat completion model. Classification is best-effort: any model,
// transport, or parse failure degrades to a default category instead of
// surfacing an error to the caller.
package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/invoiceworks/invoice-pipeline/constants"
	"github.com/invoiceworks/invoice-pipeline/internal/entity"
	"github.com/invoiceworks/invoice-pipeline/internal/llm"
)

const systemPrompt = "You are an expert accountant that categorizes business invoices into expense categories. Respond only with valid JSON."

const (
	defaultConfidence = 0.5
)

type Engine struct {
	completer llm.Completer
	sampling  llm.SamplingConfig
	log       *slog.Logger
}

func NewEngine(completer llm.Completer, sampling llm.SamplingConfig, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{completer: completer, sampling: sampling, log: logger}
}

// Classify categorizes the extracted data. It never returns an error: when
// the model cannot be reached or its output cannot be parsed, the result is
// the Other category at default confidence with a diagnostic reasoning.
func (e *Engine) Classify(ctx context.Context, data entity.ExtractedData) entity.Classification {
	rid := uuid.New().String()
	start := time.Now()

	e.log.Info("classify.start", "req_id", rid, "vendor", data.Vendor)

	raw, err := e.completer.Complete(ctx, systemPrompt, buildPrompt(data), e.sampling)
	if err != nil {
		e.log.Warn("classify.complete_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return defaultClassification("classification request failed: " + err.Error())
	}

	result, err := parseClassification(raw)
	if err != nil {
		e.log.Warn("classify.parse_error",
			"req_id", rid, "error", err, "raw_len", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return defaultClassification("could not parse model response: " + err.Error())
	}

	e.log.Info("classify.ok",
		"req_id", rid,
		"category", result.Category,
		"confidence", result.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result
}

func parseClassification(raw string) (entity.Classification, error) {
	cleaned := RepairJSON(raw)
	if cleaned == "" {
		return entity.Classification{}, fmt.Errorf("empty response")
	}
	// json.Unmarshal matches field names case-insensitively, so
	// {"Category": ...} decodes the same as {"category": ...}.
	var out struct {
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
		Reasoning  string  `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return entity.Classification{}, fmt.Errorf("decode classification: %w", err)
	}
	cat, _ := constants.Canonicalize(out.Category)

	// enum and range checks run on the canonicalized object
	normalized, err := json.Marshal(map[string]any{
		"category":   string(cat),
		"confidence": out.Confidence,
	})
	if err != nil {
		return entity.Classification{}, err
	}
	if err := validateAgainstSchema(classificationSchema(), normalized); err != nil {
		return entity.Classification{}, err
	}

	reasoning := out.Reasoning
	if reasoning == "" {
		reasoning = "no reasoning provided"
	}
	return entity.Classification{
		Category:   string(cat),
		Confidence: out.Confidence,
		Reasoning:  reasoning,
	}, nil
}

func defaultClassification(reasoning string) entity.Classification {
	return entity.Classification{
		Category:   string(constants.Other),
		Confidence: defaultConfidence,
		Reasoning:  reasoning,
	}
}

func buildPrompt(data entity.ExtractedData) string {
	var b strings.Builder
	b.WriteString("Categorize this invoice into exactly one of the following categories:\n")
	for _, c := range constants.AsStringSlice() {
		b.WriteString("- ")
		b.WriteString(c)
		b.WriteString("\n")
	}
	b.WriteString("\nInvoice details:\n")
	fmt.Fprintf(&b, "Vendor: %s\n", data.Vendor)
	fmt.Fprintf(&b, "Total: %.2f %s\n", data.TotalAmount, data.Currency)
	if data.InvoiceNumber != "" {
		fmt.Fprintf(&b, "Invoice number: %s\n", data.InvoiceNumber)
	}
	if data.InvoiceDate != "" {
		fmt.Fprintf(&b, "Invoice date: %s\n", data.InvoiceDate)
	}
	if len(data.LineItems) > 0 {
		b.WriteString("Line items:\n")
		for _, li := range data.LineItems {
			b.WriteString("- ")
			b.WriteString(li.Description)
			if li.Quantity != nil {
				fmt.Fprintf(&b, " (Qty: %v)", *li.Quantity)
			}
			fmt.Fprintf(&b, " - %.2f\n", li.Amount)
		}
	}
	b.WriteString("\nRespond with a JSON object: {\"category\": \"...\", \"confidence\": 0.0-1.0, \"reasoning\": \"...\"}")
	return b.String()
}
