package cart

import "math"

// GapOption is one of the two pre-set remediation choices offered when a
// plan falls short of the protein target.
type GapOption struct {
	Label            string  `json:"label"`
	DeltaMonthlyCost float64 `json:"delta_monthly_cost"`
}

type GapSuggestion struct {
	GapGrams float64     `json:"gap_grams"`
	Options  []GapOption `json:"options"`
}

// SuggestGap compares achieved daily protein against the patient target
// and presents the fixed filler pair: whole food first, supplement
// second. This is gap arithmetic over pre-set choices, not a search over
// the catalog.
func SuggestGap(dailyProtein, targetProtein float64) GapSuggestion {
	gap := math.Max(0, targetProtein-dailyProtein)

	return GapSuggestion{
		GapGrams: gap,
		Options: []GapOption{
			{Label: "+500g Pollo / semana", DeltaMonthlyCost: 4500},
			{Label: "+1 Scoop Whey / día", DeltaMonthlyCost: 2800},
		},
	}
}
