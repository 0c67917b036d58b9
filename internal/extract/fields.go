// Package extract turns the document model's loosely-typed field bag,
// page layout, and table geometry into canonical invoice data. Every
// mapping degrades to a type-appropriate default; nothing in here
// returns an error.
package extract

import (
	"strconv"
	"strings"

	"github.com/invoiceworks/invoice-pipeline/internal/docintel"
	"github.com/invoiceworks/invoice-pipeline/internal/entity"
)

// Canonical field names produced by the prebuilt invoice model.
const (
	fieldVendorName   = "VendorName"
	fieldInvoiceID    = "InvoiceId"
	fieldInvoiceDate  = "InvoiceDate"
	fieldInvoiceTotal = "InvoiceTotal"
	fieldCurrencyCode = "CurrencyCode"
)

// MapFields maps an analysis result to ExtractedData, applying the
// ordered fallback heuristics for vendor and currency and resolving
// line items. Unmapped fields yield empty strings or zeros.
func MapFields(res *docintel.AnalysisResult) entity.ExtractedData {
	data := entity.ExtractedData{
		Vendor:        resolveVendor(res),
		InvoiceNumber: fieldContent(res.Fields, fieldInvoiceID),
		InvoiceDate:   fieldContent(res.Fields, fieldInvoiceDate),
		TotalAmount:   parseAmount(fieldContent(res.Fields, fieldInvoiceTotal)),
		Currency:      resolveCurrency(res),
		LineItems:     ResolveLineItems(res),
	}
	return data
}

func fieldContent(bag docintel.FieldBag, name string) string {
	f, ok := bag.Get(name)
	if !ok {
		return ""
	}
	return strings.TrimSpace(f.Content())
}

// amountClean strips currency symbols and thousands separators before
// decimal parsing.
var amountClean = strings.NewReplacer("$", "", "€", "", "£", "", ",", "")

// parseAmount parses a monetary string into a non-negative decimal.
// Unparsable or negative input degrades to 0.
func parseAmount(s string) float64 {
	v, ok := parseDecimal(s)
	if !ok || v < 0 {
		return 0
	}
	return v
}

// parseLineAmount parses a signed line amount. Discount rows carry
// negative values, so only unparsable input degrades to 0.
func parseLineAmount(s string) float64 {
	v, ok := parseDecimal(s)
	if !ok {
		return 0
	}
	return v
}

// parseOptionalAmount is parseAmount for optional fields: nil instead
// of 0 when the value is absent or unparsable.
func parseOptionalAmount(s string) *float64 {
	v, ok := parseDecimal(s)
	if !ok {
		return nil
	}
	return &v
}

func parseDecimal(s string) (float64, bool) {
	cleaned := strings.TrimSpace(amountClean.Replace(s))
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
