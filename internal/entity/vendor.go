package entity

import (
	"regexp"
	"strings"
)

var reSpaces = regexp.MustCompile(`\s+`)

var vendorStrip = strings.NewReplacer("'", "", `"`, "", ".", "", ",", "")

// NormalizeVendorID derives the storage partition key from a vendor name:
// lowercase, strip apostrophes/quotes/periods/commas, collapse whitespace,
// hyphenate. Pure and idempotent; empty or whitespace-only input maps to
// "unknown".
func NormalizeVendorID(vendorName string) string {
	if strings.TrimSpace(vendorName) == "" {
		return "unknown"
	}

	normalized := vendorStrip.Replace(strings.ToLower(vendorName))
	normalized = strings.TrimSpace(reSpaces.ReplaceAllString(normalized, " "))
	if normalized == "" {
		return "unknown"
	}
	return strings.ReplaceAll(normalized, " ", "-")
}
