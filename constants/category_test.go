package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  Category
		known bool
	}{
		{"exact", "IT Services & Software", ITServicesSoftware, true},
		{"case insensitive", "utilities", Utilities, true},
		{"synonym", "saas", ITServicesSoftware, true},
		{"synonym advertising", "advertising", MarketingAdvertising, true},
		{"whitespace", "  Office Supplies  ", OfficeSupplies, true},
		{"unknown", "Groceries", Other, false},
		{"empty", "", Other, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Canonicalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, ok)
		})
	}
}

func TestAsStringSliceCoversTaxonomy(t *testing.T) {
	got := AsStringSlice()
	assert.Len(t, got, 9)
	assert.Contains(t, got, "Other")
	assert.Contains(t, got, "Travel & Entertainment")
}

func TestAllowedFileName(t *testing.T) {
	assert.True(t, AllowedFileName("invoice.pdf"))
	assert.True(t, AllowedFileName("scan.JPEG"))
	assert.False(t, AllowedFileName("notes.txt"))
	assert.False(t, AllowedFileName("noext"))
}

func TestContentTypeForFileName(t *testing.T) {
	assert.Equal(t, "application/pdf", ContentTypeForFileName("a.pdf"))
	assert.Equal(t, "image/jpeg", ContentTypeForFileName("a.JPG"))
	assert.Equal(t, "application/octet-stream", ContentTypeForFileName("a.xyz"))
}
