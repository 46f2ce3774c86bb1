package diet

import (
	"strings"

	"nutriplan/internal/catalog"
)

// Constraint is a named dietary restriction. Built-in constraints carry
// an exclusion rule; custom ones are toggle-able labels with no rule.
type Constraint struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DefaultConstraints ships with every plan.
func DefaultConstraints() []Constraint {
	return []Constraint{
		{ID: "Diabético", Label: "Diabético"},
		{ID: "Hipertensión", Label: "Hipertensión"},
		{ID: "Vegetariano", Label: "Vegetariano"},
		{ID: "Celiaco", Label: "Celiaco"},
		{ID: "Sin Gluten", Label: "Sin Gluten"},
	}
}

var meatGroups = map[string]bool{
	"Carnes y Vísceras":   true,
	"Pescados y Mariscos": true,
	"Huevos":              true,
}

var sugarKeywords = []string{
	"azucar",
	"dulce",
	"chocolate",
	"galleta",
	"bebida",
	"nectar",
	"mermelada",
	"miel",
}

var glutenGroups = map[string]bool{
	"Cereales y Derivados": true,
}

var glutenKeywords = []string{
	"trigo",
	"cebada",
	"centeno",
	"pan",
	"fideos",
	"galleta",
}

// ExclusionFor reports whether the constraint excludes the item.
// Total function: unknown and custom constraint ids never exclude.
// Only Base-tagged items are ever tested against these rules; favorites
// and manual additions are user intent and stay in the plan regardless.
func ExclusionFor(constraintID string, item catalog.FoodItem) bool {
	switch normalizeConstraint(constraintID) {
	case "vegetariano", "vegano", "vegan":
		return meatGroups[item.Group]

	case "diabético", "diabetico":
		if item.SugarsPer100g != nil && *item.SugarsPer100g > 10 {
			return true
		}
		return matchesAny(item.Name, sugarKeywords)

	case "celiaco", "celíaco", "gluten", "sin gluten":
		return glutenGroups[item.Group] && matchesAny(item.Name, glutenKeywords)
	}

	return false
}

func normalizeConstraint(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

func matchesAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
