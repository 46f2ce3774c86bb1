package creations

import "context"

// Repository defines all database operations for saved creations
type Repository interface {
	Save(ctx context.Context, creation *Creation) error
	ListByOwner(ctx context.Context, ownerID, creationType string) ([]*Creation, error)
	GetByID(ctx context.Context, ownerID, id string) (*Creation, error)
}
