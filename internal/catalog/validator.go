package catalog

import "errors"

// ValidateItem checks a food item before it enters the catalog or a plan.
func ValidateItem(item FoodItem) error {
	if item.Name == "" {
		return errors.New("food name is required")
	}

	if item.Group == "" {
		return errors.New("food group is required")
	}

	if item.UnitPrice < 0 {
		return errors.New("unit price cannot be negative")
	}

	if item.CaloriesPer100g < 0 || item.ProteinPer100g < 0 ||
		item.CarbsPer100g < 0 || item.LipidsPer100g < 0 {
		return errors.New("nutrient values cannot be negative")
	}

	if item.PortionGrams < 0 || item.WeeklyFrequency < 0 || item.MonthlyQuantity < 0 {
		return errors.New("quantity values cannot be negative")
	}

	return nil
}
