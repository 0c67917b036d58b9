package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invoiceworks/invoice-pipeline/internal/docintel"
)

func analysisWithTotal(totalContent, fullText string) *docintel.AnalysisResult {
	bag := docintel.FieldBag{}
	if totalContent != "" {
		bag["InvoiceTotal"] = docintel.NewTextField(totalContent)
	}
	return &docintel.AnalysisResult{Fields: bag, Content: fullText}
}

func TestResolveCurrencyExplicitField(t *testing.T) {
	res := analysisWithTotal("$100", "")
	res.Fields["CurrencyCode"] = docintel.NewTextField("eur")
	assert.Equal(t, "EUR", resolveCurrency(res))
}

func TestResolveCurrencyInference(t *testing.T) {
	cases := []struct {
		name     string
		total    string
		fullText string
		want     string
	}{
		{"localized canadian dollar", "Total: CA$ 120.00", "", "CAD"},
		{"short canadian prefix", "C$99.00", "", "CAD"},
		{"australian dollar", "AU$ 45.00", "", "AUD"},
		{"new zealand dollar", "NZ$12", "", "NZD"},
		{"euro symbol", "€50", "", "EUR"},
		{"pound symbol", "£75.00", "", "GBP"},
		{"yen symbol", "¥1000", "", "JPY"},
		{"bare dollar", "$19.95", "", "USD"},
		{"iso code beats symbol", "GBP 40.00", "", "GBP"},
		{"iso code in document text", "", "Amount due: 300 EUR by Friday", "EUR"},
		{"rupee token", "Rs 250", "", "INR"},
		{"rs inside word ignored", "", "HOURS: 3, charge $30", "USD"},
		{"total field wins over document text", "€50", "something USD something", "EUR"},
		{"no signal anywhere", "", "plain invoice text", "USD"},
		{"nothing at all", "", "", "USD"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, resolveCurrency(analysisWithTotal(tc.total, tc.fullText)))
		})
	}
}
