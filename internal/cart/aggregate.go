package cart

import (
	"math"

	"nutriplan/internal/catalog"
	"nutriplan/internal/diet"
)

// Totals is the time-scaled nutrition and cost summary of a plan.
// Display fields are rounded; the daily figures stay unrounded because
// the optimizer compares them against intake targets.
type Totals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Lipids   int `json:"lipids"`
	Cost     int `json:"cost"`

	DailyProtein  float64 `json:"daily_protein"`
	DailyCalories float64 `json:"daily_calories"`
}

// Aggregate converts the quantity model of every included item into
// calories, protein, carbs, lipids and cost for the selected view.
//
// Nutrients are anchored to consumption: average daily grams are
// (portion × weekly frequency) / 7, and the daily sums scale by 1/7/30.
// Cost is anchored to the monthly purchase quantity instead: at month
// view it is exactly Σ monthlyQuantity × unitPrice, otherwise the
// monthly figure is brought down to a daily rate and scaled back up.
// Purchases are bought in bulk while consumption is tracked per serving,
// so the two anchors are not required to reconcile.
func Aggregate(items []catalog.FoodItem, view diet.TimeView) Totals {
	var calories, protein, carbs, lipids float64
	var monthlyCost float64

	for _, item := range items {
		dailyGrams := (item.PortionGrams * item.WeeklyFrequency) / 7

		calories += (dailyGrams * item.CaloriesPer100g) / 100
		protein += (dailyGrams * item.ProteinPer100g) / 100
		carbs += (dailyGrams * item.CarbsPer100g) / 100
		lipids += (dailyGrams * item.LipidsPer100g) / 100

		monthlyCost += item.MonthlyQuantity * item.UnitPrice
	}

	scale := view.Scale()

	cost := monthlyCost
	if view != diet.ViewMonth {
		cost = (monthlyCost / 30) * scale
	}

	return Totals{
		Calories: round(calories * scale),
		Protein:  round(protein * scale),
		Carbs:    round(carbs * scale),
		Lipids:   round(lipids * scale),
		Cost:     round(cost),

		DailyProtein:  protein,
		DailyCalories: calories,
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
