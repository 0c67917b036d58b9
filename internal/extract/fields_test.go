package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoiceworks/invoice-pipeline/internal/docintel"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"$500.00", 500},
		{"1,234.56", 1234.56},
		{"€50", 50},
		{"£ 19.99", 19.99},
		{"  42  ", 42},
		{"", 0},
		{"n/a", 0},
		{"-12.50", 0}, // totals are non-negative
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseAmount(tc.in), "input %q", tc.in)
	}
}

func TestParseLineAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"20.00", 20},
		{"-5.00", -5}, // discount rows keep their sign
		{"$-12.50", -12.5},
		{"", 0},
		{"n/a", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseLineAmount(tc.in), "input %q", tc.in)
	}
}

func TestParseOptionalAmount(t *testing.T) {
	if got := parseOptionalAmount("2"); assert.NotNil(t, got) {
		assert.Equal(t, 2.0, *got)
	}
	assert.Nil(t, parseOptionalAmount(""))
	assert.Nil(t, parseOptionalAmount("two"))
}

func TestMapFieldsDirect(t *testing.T) {
	res := &docintel.AnalysisResult{
		Fields: docintel.FieldBag{
			"VendorName":   docintel.NewTextField("Acme Corp"),
			"InvoiceId":    docintel.NewTextField("INV-001"),
			"InvoiceDate":  docintel.NewTextField("2026-08-01"),
			"InvoiceTotal": docintel.NewNumberField(500, "$500.00"),
		},
	}

	data := MapFields(res)
	assert.Equal(t, "Acme Corp", data.Vendor)
	assert.Equal(t, "INV-001", data.InvoiceNumber)
	assert.Equal(t, "2026-08-01", data.InvoiceDate)
	assert.Equal(t, 500.0, data.TotalAmount)
	// No CurrencyCode field and a bare "$" in the total content.
	assert.Equal(t, "USD", data.Currency)
	assert.Nil(t, data.LineItems)
}

func TestMapFieldsMissingEverything(t *testing.T) {
	data := MapFields(&docintel.AnalysisResult{Fields: docintel.FieldBag{}})
	assert.Equal(t, "", data.Vendor)
	assert.Equal(t, 0.0, data.TotalAmount)
	assert.Equal(t, "USD", data.Currency)
	assert.Nil(t, data.LineItems)
}

func TestVendorFromLayout(t *testing.T) {
	res := &docintel.AnalysisResult{
		Fields: docintel.FieldBag{},
		Pages: []docintel.Page{{Lines: []string{
			"INVOICE",
			"#1234",
			"Acme Corp",
			"Bill To: Somebody Else",
		}}},
	}
	data := MapFields(res)
	assert.Equal(t, "Acme Corp", data.Vendor)
}

func TestVendorFromLayoutSkipRules(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			"skips amounts and long lines",
			[]string{"$ 120.00", "A Very Long Company Name Indeed", "Contoso Ltd"},
			"Contoso Ltd",
		},
		{
			"skips leading digit runs with hash",
			[]string{"#991", "12345", "Fabrikam"},
			"Fabrikam",
		},
		{
			"no qualifying line",
			[]string{"INVOICE", "TOTAL DUE", "#1000"},
			"",
		},
		{
			"empty page",
			nil,
			"",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := &docintel.AnalysisResult{
				Fields: docintel.FieldBag{},
				Pages:  []docintel.Page{{Lines: tc.lines}},
			}
			assert.Equal(t, tc.want, MapFields(res).Vendor)
		})
	}
}

func TestVendorFieldBeatsLayout(t *testing.T) {
	res := &docintel.AnalysisResult{
		Fields: docintel.FieldBag{
			"VendorName": docintel.NewTextField("Northwind"),
		},
		Pages: []docintel.Page{{Lines: []string{"Somebody Else"}}},
	}
	assert.Equal(t, "Northwind", MapFields(res).Vendor)
}

func TestEndToEndMapping(t *testing.T) {
	res := &docintel.AnalysisResult{
		Fields: docintel.FieldBag{
			"VendorName":   docintel.NewTextField("Acme Corp"),
			"InvoiceTotal": docintel.NewTextField("$500.00"),
		},
	}
	data := MapFields(res)
	require.Equal(t, "Acme Corp", data.Vendor)
	require.Equal(t, 500.0, data.TotalAmount)
	require.Equal(t, "USD", data.Currency)
}
