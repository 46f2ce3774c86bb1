package admin

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"nutriplan/internal/logger"
)

// Overview is the aggregated usage snapshot shown on the admin panel.
type Overview struct {
	Nutritionists int `json:"nutritionists"`
	Patients      int `json:"patients"`
	SavedDiets    int `json:"saved_diets"`
	SavedCarts    int `json:"saved_carts"`
	CatalogFoods  int `json:"catalog_foods"`
}

type Service struct {
	db  *pgxpool.Pool
	log *logger.Logger
}

func NewService(db *pgxpool.Pool, log *logger.Logger) *Service {
	return &Service{db: db, log: log}
}

// ComputeOverview recomputes the snapshot straight from the tables.
func (s *Service) ComputeOverview(ctx context.Context) (*Overview, error) {
	var o Overview

	err := s.db.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM users WHERE role = 'NUTRITIONIST'),
			(SELECT count(*) FROM patients),
			(SELECT count(*) FROM creations WHERE creation_type = 'DIET'),
			(SELECT count(*) FROM creations WHERE creation_type = 'CART'),
			(SELECT count(*) FROM foods)
	`).Scan(
		&o.Nutritionists,
		&o.Patients,
		&o.SavedDiets,
		&o.SavedCarts,
		&o.CatalogFoods,
	)
	if err != nil {
		return nil, err
	}

	s.log.Info("admin overview computed",
		"nutritionists", o.Nutritionists,
		"patients", o.Patients,
		"diets", o.SavedDiets,
		"carts", o.SavedCarts,
	)

	return &o, nil
}
