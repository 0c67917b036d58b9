package extract

import (
	"regexp"
	"strings"

	"github.com/invoiceworks/invoice-pipeline/internal/docintel"
)

// vendorStrategy is one pure vendor-inference heuristic; the first
// non-empty result wins.
type vendorStrategy func(*docintel.AnalysisResult) string

var vendorStrategies = []vendorStrategy{
	vendorFromField,
	vendorFromLayout,
}

func resolveVendor(res *docintel.AnalysisResult) string {
	for _, strategy := range vendorStrategies {
		if v := strategy(res); v != "" {
			return v
		}
	}
	return ""
}

func vendorFromField(res *docintel.AnalysisResult) string {
	return fieldContent(res.Fields, fieldVendorName)
}

// Lines carrying any of these tokens are boilerplate, not a vendor name.
var vendorSkipTokens = []string{
	"INVOICE", "BILL TO", "SHIP TO", "DATE", "BALANCE DUE",
	"SUBTOTAL", "TOTAL", "DISCOUNT", "SHIPPING",
}

var (
	reLeadingDigitRun = regexp.MustCompile(`^#?\d{3,}`)
	reCurrencyAmount  = regexp.MustCompile(`[$€£¥]\s?\d`)
)

// vendorFromLayout scans the first page's lines in order and returns
// the first one that looks like a company name: not boilerplate, not an
// invoice number, not an amount, and one to three words long.
func vendorFromLayout(res *docintel.AnalysisResult) string {
	for _, line := range res.FirstPageLines() {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if containsAnyToken(strings.ToUpper(trimmed), vendorSkipTokens) {
			continue
		}
		if reLeadingDigitRun.MatchString(trimmed) {
			continue
		}
		if reCurrencyAmount.MatchString(trimmed) {
			continue
		}
		if n := len(strings.Fields(trimmed)); n >= 1 && n <= 3 {
			return trimmed
		}
	}
	return ""
}

func containsAnyToken(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}
