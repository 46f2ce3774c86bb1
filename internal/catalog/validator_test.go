package catalog

import "testing"

func TestValidateItem(t *testing.T) {
	valid := FoodItem{
		Name:            "Pollo",
		Group:           "Carnes y Vísceras",
		UnitPrice:       3500,
		CaloriesPer100g: 165,
		ProteinPer100g:  31,
		PortionGrams:    150,
		WeeklyFrequency: 4,
		MonthlyQuantity: 2,
	}

	if err := ValidateItem(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*FoodItem)
	}{
		{"missing name", func(i *FoodItem) { i.Name = "" }},
		{"missing group", func(i *FoodItem) { i.Group = "" }},
		{"negative price", func(i *FoodItem) { i.UnitPrice = -1 }},
		{"negative nutrient", func(i *FoodItem) { i.ProteinPer100g = -1 }},
		{"negative portion", func(i *FoodItem) { i.PortionGrams = -1 }},
		{"negative frequency", func(i *FoodItem) { i.WeeklyFrequency = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := valid
			tc.mutate(&item)
			if err := ValidateItem(item); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}
