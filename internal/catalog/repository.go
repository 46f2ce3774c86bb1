package catalog

import "context"

// Repository defines all database operations for the food catalog
type Repository interface {

	// Full ordered catalog (plan seeding)
	List(ctx context.Context) ([]FoodItem, error)

	// Case-insensitive name search (add-food modal)
	Search(ctx context.Context, query string, limit int) ([]FoodItem, error)

	// Insert a nutritionist-defined food
	Insert(ctx context.Context, item FoodItem) (string, error)

	// Load the built-in catalog if the table is empty
	SeedDefaults(ctx context.Context, items []FoodItem) error
}
