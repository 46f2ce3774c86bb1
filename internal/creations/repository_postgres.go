package creations

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrCreationNotFound = errors.New("creation not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, creation *Creation) error {
	if creation.ID == "" {
		creation.ID = uuid.New().String()
	}

	doc, err := json.Marshal(creation.Content)
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO creations (id, owner_id, name, creation_type, content, tags)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    content = EXCLUDED.content,
		    tags = EXCLUDED.tags,
		    updated_at = now()
		RETURNING created_at, updated_at
	`,
		creation.ID, creation.OwnerID, creation.Name,
		creation.Type, doc, creation.Tags,
	).Scan(&creation.CreatedAt, &creation.UpdatedAt)
}

func (r *PostgresRepository) ListByOwner(
	ctx context.Context,
	ownerID string,
	creationType string,
) ([]*Creation, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, owner_id, name, creation_type, content, tags, created_at, updated_at
		FROM creations
		WHERE owner_id = $1
		  AND ($2 = '' OR creation_type = $2)
		ORDER BY updated_at DESC
	`, ownerID, creationType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*Creation
	for rows.Next() {
		creation, err := scanCreation(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, creation)
	}

	return list, rows.Err()
}

func (r *PostgresRepository) GetByID(
	ctx context.Context,
	ownerID string,
	id string,
) (*Creation, error) {

	row := r.db.QueryRow(ctx, `
		SELECT id, owner_id, name, creation_type, content, tags, created_at, updated_at
		FROM creations
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID)

	creation, err := scanCreation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCreationNotFound
		}
		return nil, err
	}

	return creation, nil
}

func scanCreation(row pgx.Row) (*Creation, error) {
	var c Creation
	var doc []byte

	if err := row.Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Type,
		&doc, &c.Tags, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(doc) > 0 {
		if err := json.Unmarshal(doc, &c.Content); err != nil {
			return nil, err
		}
	}

	return &c, nil
}
