package patients

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrPatientNotFound = errors.New("patient not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, patient *Patient) error {
	if patient.ID == "" {
		patient.ID = uuid.New().String()
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO patients (
			id, owner_id, full_name, email, weight, height,
			target_protein, target_calories, diet_restrictions
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING created_at
	`,
		patient.ID, patient.OwnerID, patient.FullName, patient.Email,
		patient.Weight, patient.Height,
		patient.TargetProtein, patient.TargetCalories, patient.DietRestrictions,
	).Scan(&patient.CreatedAt)
}

func (r *PostgresRepository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]*Patient, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, full_name, email, weight, height,
		       target_protein, target_calories, diet_restrictions, created_at
		FROM patients
		WHERE owner_id = $1
		ORDER BY full_name
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*Patient
	for rows.Next() {
		var p Patient
		if err := rows.Scan(
			&p.ID, &p.OwnerID, &p.FullName, &p.Email, &p.Weight, &p.Height,
			&p.TargetProtein, &p.TargetCalories, &p.DietRestrictions, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, &p)
	}

	return list, rows.Err()
}

func (r *PostgresRepository) GetByID(
	ctx context.Context,
	ownerID string,
	patientID string,
) (*Patient, error) {

	var p Patient
	err := r.db.QueryRow(ctx, `
		SELECT id, owner_id, full_name, email, weight, height,
		       target_protein, target_calories, diet_restrictions, created_at
		FROM patients
		WHERE id = $1 AND owner_id = $2
	`, patientID, ownerID).Scan(
		&p.ID, &p.OwnerID, &p.FullName, &p.Email, &p.Weight, &p.Height,
		&p.TargetProtein, &p.TargetCalories, &p.DietRestrictions, &p.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPatientNotFound
		}
		return nil, err
	}

	return &p, nil
}
