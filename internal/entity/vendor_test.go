package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVendorID(t *testing.T) {
	cases := []struct {
		name   string
		vendor string
		want   string
	}{
		{"punctuation stripped", "Joe's Plumbing, Inc.", "joes-plumbing-inc"},
		{"simple", "Acme Corp", "acme-corp"},
		{"internal whitespace collapsed", "Acme    Corp  Ltd", "acme-corp-ltd"},
		{"surrounding whitespace", "  Contoso  ", "contoso"},
		{"quotes removed", `"Fabrikam" Media`, "fabrikam-media"},
		{"empty", "", "unknown"},
		{"whitespace only", "   \t ", "unknown"},
		{"punctuation only", `.,"'`, "unknown"},
		{"already normalized", "acme-corp", "acme-corp"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeVendorID(tc.vendor))
		})
	}
}

func TestNormalizeVendorIDIdempotent(t *testing.T) {
	inputs := []string{
		"Joe's Plumbing, Inc.",
		"Acme Corp",
		"",
		"  Mixed   CASE  Vendor  ",
		"already-hyphenated-name",
	}
	for _, v := range inputs {
		once := NormalizeVendorID(v)
		assert.Equal(t, once, NormalizeVendorID(once), "input %q", v)
	}
}
