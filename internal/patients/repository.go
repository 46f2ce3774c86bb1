package patients

import "context"

// Repository defines all database operations for patient records
type Repository interface {
	Create(ctx context.Context, patient *Patient) error
	ListByOwner(ctx context.Context, ownerID string) ([]*Patient, error)
	GetByID(ctx context.Context, ownerID, patientID string) (*Patient, error)
}
