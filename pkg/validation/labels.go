package validation

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Club fields
	"Name":     "Club name",
	"Email":    "Email",
	"Country":  "Country",
	"League":   "League",
	"ClubSize": "Club size",

	// Job fields
	"Status":           "Status",
	"ClubLevel":        "Club level",
	"Position":         "Position",
	"Level":            "Experience level",
	"CompetitionLevel": "Competition level",
	"AgeRange":         "Age range",
	"Height":           "Height range",
	"PreferredFoot":    "Preferred foot",
	"Continents":       "Origin continents",
	"Range":            "Salary range",
	"ContractDuration": "Contract duration",
	"Benefits":         "Benefits",

	// Contact fields
	"Role":             "Contact role",
	"Phone":            "Phone number",
	"PreferredContact": "Preferred contact channel",
}

// ValidationRules contains bounds used when rendering range messages
var ValidationRules = map[string]map[string]interface{}{
	"AgeRange": {"min": 15, "max": 45, "unit": "years"},
	"Height":   {"min": 150, "max": 210, "unit": "cm"},
}
