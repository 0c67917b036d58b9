package constants

import (
	"strings"
)

type Category string

const (
	MarketingAdvertising Category = "Marketing & Advertising"
	ITServicesSoftware   Category = "IT Services & Software"
	OfficeSupplies       Category = "Office Supplies"
	Utilities            Category = "Utilities"
	ProfessionalServices Category = "Professional Services"
	TravelEntertainment  Category = "Travel & Entertainment"
	EquipmentHardware    Category = "Equipment & Hardware"
	MaintenanceRepairs   Category = "Maintenance & Repairs"
	Other                Category = "Other"
)

var allCategories = []Category{
	MarketingAdvertising,
	ITServicesSoftware,
	OfficeSupplies,
	Utilities,
	ProfessionalServices,
	TravelEntertainment,
	EquipmentHardware,
	MaintenanceRepairs,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps a model-produced label onto the closed taxonomy.
// The second return is false when the label did not match and the caller
// got the "Other" default.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"advertising":    MarketingAdvertising,
		"marketing":      MarketingAdvertising,
		"software":       ITServicesSoftware,
		"saas":           ITServicesSoftware,
		"it services":    ITServicesSoftware,
		"cloud services": ITServicesSoftware,
		"supplies":       OfficeSupplies,
		"electricity":    Utilities,
		"water":          Utilities,
		"internet":       Utilities,
		"legal":          ProfessionalServices,
		"accounting":     ProfessionalServices,
		"consulting":     ProfessionalServices,
		"travel":         TravelEntertainment,
		"entertainment":  TravelEntertainment,
		"hardware":       EquipmentHardware,
		"equipment":      EquipmentHardware,
		"repairs":        MaintenanceRepairs,
		"maintenance":    MaintenanceRepairs,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
