package catalog

// FoodItem is a catalog entry or a manually-added food.
// Name is the identity key within a plan; duplicates across the
// catalog and manual pools are not allowed.
type FoodItem struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Unit            string   `json:"unit"`
	UnitPrice       float64  `json:"unit_price"`
	CaloriesPer100g float64  `json:"calories_per_100g"`
	ProteinPer100g  float64  `json:"protein_per_100g"`
	CarbsPer100g    float64  `json:"carbs_per_100g"`
	LipidsPer100g   float64  `json:"lipids_per_100g"`
	SugarsPer100g   *float64 `json:"sugars_per_100g,omitempty"`

	// Quantity model for the quantifier stage
	PortionGrams    float64 `json:"portion_grams"`
	WeeklyFrequency float64 `json:"weekly_frequency"`
	MonthlyQuantity float64 `json:"monthly_quantity"`
}
