package extract

import (
	"regexp"
	"strings"

	"github.com/invoiceworks/invoice-pipeline/internal/docintel"
)

const defaultCurrency = "USD"

// resolveCurrency returns a 3-letter currency code, never empty. The
// explicit CurrencyCode field wins; otherwise the total-amount field's
// raw content and then the whole document text are inspected in order.
func resolveCurrency(res *docintel.AnalysisResult) string {
	if code := fieldContent(res.Fields, fieldCurrencyCode); code != "" {
		return strings.ToUpper(code)
	}
	sources := []string{
		fieldContent(res.Fields, fieldInvoiceTotal),
		res.Content,
	}
	for _, src := range sources {
		if src == "" {
			continue
		}
		// Explicit ISO codes win outright over symbol heuristics.
		if c := currencyFromISO(src); c != "" {
			return c
		}
		if c := currencyFromSymbol(src); c != "" {
			return c
		}
	}
	return defaultCurrency
}

var isoCodes = []string{"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "NZD"}

// "RS" only counts as a rupee marker when it stands alone as a token.
var reRupee = regexp.MustCompile(`\b(INR|RS)\b`)

func currencyFromISO(src string) string {
	upper := strings.ToUpper(src)
	for _, code := range isoCodes {
		if strings.Contains(upper, code) {
			return code
		}
	}
	if reRupee.MatchString(upper) {
		return "INR"
	}
	return ""
}

// currencyFromSymbol interprets currency symbols, disambiguating the
// localized dollar prefixes before treating a bare "$" as USD.
func currencyFromSymbol(src string) string {
	upper := strings.ToUpper(src)
	switch {
	case strings.Contains(upper, "CA$") || strings.Contains(upper, "C$"):
		return "CAD"
	case strings.Contains(upper, "AU$") || strings.Contains(upper, "A$"):
		return "AUD"
	case strings.Contains(upper, "NZ$"):
		return "NZD"
	case strings.Contains(src, "$"):
		return "USD"
	case strings.Contains(src, "€"):
		return "EUR"
	case strings.Contains(src, "£"):
		return "GBP"
	case strings.Contains(src, "¥"):
		return "JPY"
	}
	return ""
}
