package patients

import (
	"context"
	"errors"

	"nutriplan/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, patient *Patient) error {
	if patient.FullName == "" {
		return errors.New("full name is required")
	}
	if patient.OwnerID == "" {
		return errors.New("owner is required")
	}
	if patient.TargetProtein < 0 || patient.TargetCalories < 0 {
		return errors.New("intake targets cannot be negative")
	}
	if patient.Weight < 0 || patient.Height < 0 {
		return errors.New("measurements cannot be negative")
	}

	// Blank flags would activate nothing but still clutter the plan UI
	cleaned := make([]string, 0, len(patient.DietRestrictions))
	for _, r := range patient.DietRestrictions {
		if r != "" {
			cleaned = append(cleaned, r)
		}
	}
	patient.DietRestrictions = cleaned

	return s.repo.Create(ctx, patient)
}

func (s *Service) List(ctx context.Context, ownerID string) ([]*Patient, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) Get(ctx context.Context, ownerID, patientID string) (*Patient, error) {
	return s.repo.GetByID(ctx, ownerID, patientID)
}

// GetProfile implements core.PatientReader for the diet and cart stages.
func (s *Service) GetProfile(
	ctx context.Context,
	ownerID string,
	patientID string,
) (*core.PatientProfile, error) {

	patient, err := s.repo.GetByID(ctx, ownerID, patientID)
	if err != nil {
		return nil, err
	}

	return &core.PatientProfile{
		ID:               patient.ID,
		FullName:         patient.FullName,
		TargetProtein:    patient.TargetProtein,
		TargetCalories:   patient.TargetCalories,
		DietRestrictions: patient.DietRestrictions,
	}, nil
}
