package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const foodColumns = `
	id, name, food_group, unit, unit_price,
	calories_per_100g, protein_per_100g, carbs_per_100g, lipids_per_100g,
	sugars_per_100g, portion_grams, weekly_frequency, monthly_quantity
`

// --------------------------------------------------
// LIST (ordered, plan seeding)
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]FoodItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+foodColumns+`
		FROM foods
		ORDER BY food_group, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

// --------------------------------------------------
// SEARCH (add-food modal)
// --------------------------------------------------
func (r *PostgresRepository) Search(
	ctx context.Context,
	query string,
	limit int,
) ([]FoodItem, error) {

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+foodColumns+`
		FROM foods
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
		LIMIT $2
	`, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

// --------------------------------------------------
// INSERT
// --------------------------------------------------
func (r *PostgresRepository) Insert(ctx context.Context, item FoodItem) (string, error) {
	id := uuid.New().String()

	_, err := r.db.Exec(ctx, `
		INSERT INTO foods (
			id, name, food_group, unit, unit_price,
			calories_per_100g, protein_per_100g, carbs_per_100g, lipids_per_100g,
			sugars_per_100g, portion_grams, weekly_frequency, monthly_quantity
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		id, item.Name, item.Group, item.Unit, item.UnitPrice,
		item.CaloriesPer100g, item.ProteinPer100g, item.CarbsPer100g, item.LipidsPer100g,
		item.SugarsPer100g, item.PortionGrams, item.WeeklyFrequency, item.MonthlyQuantity,
	)
	if err != nil {
		return "", err
	}

	return id, nil
}

// --------------------------------------------------
// SEED DEFAULTS (idempotent)
// --------------------------------------------------
func (r *PostgresRepository) SeedDefaults(ctx context.Context, items []FoodItem) error {
	for _, item := range items {
		_, err := r.db.Exec(ctx, `
			INSERT INTO foods (
				id, name, food_group, unit, unit_price,
				calories_per_100g, protein_per_100g, carbs_per_100g, lipids_per_100g,
				sugars_per_100g, portion_grams, weekly_frequency, monthly_quantity
			)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
			ON CONFLICT (name) DO NOTHING
		`,
			item.ID, item.Name, item.Group, item.Unit, item.UnitPrice,
			item.CaloriesPer100g, item.ProteinPer100g, item.CarbsPer100g, item.LipidsPer100g,
			item.SugarsPer100g, item.PortionGrams, item.WeeklyFrequency, item.MonthlyQuantity,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func scanItems(rows pgx.Rows) ([]FoodItem, error) {
	var items []FoodItem

	for rows.Next() {
		var item FoodItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Group, &item.Unit, &item.UnitPrice,
			&item.CaloriesPer100g, &item.ProteinPer100g, &item.CarbsPer100g, &item.LipidsPer100g,
			&item.SugarsPer100g, &item.PortionGrams, &item.WeeklyFrequency, &item.MonthlyQuantity,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
