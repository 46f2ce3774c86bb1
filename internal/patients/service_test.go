package patients

import (
	"context"
	"testing"
)

type mockRepository struct {
	patients map[string]*Patient
}

func newMockRepository() *mockRepository {
	return &mockRepository{patients: make(map[string]*Patient)}
}

func (m *mockRepository) Create(ctx context.Context, patient *Patient) error {
	if patient.ID == "" {
		patient.ID = "patient-1"
	}
	m.patients[patient.ID] = patient
	return nil
}

func (m *mockRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Patient, error) {
	var list []*Patient
	for _, p := range m.patients {
		if p.OwnerID == ownerID {
			list = append(list, p)
		}
	}
	return list, nil
}

func (m *mockRepository) GetByID(ctx context.Context, ownerID, patientID string) (*Patient, error) {
	p, ok := m.patients[patientID]
	if !ok || p.OwnerID != ownerID {
		return nil, ErrPatientNotFound
	}
	return p, nil
}

func TestCreatePatientValidation(t *testing.T) {
	service := NewService(newMockRepository())
	ctx := context.Background()

	if err := service.Create(ctx, &Patient{OwnerID: "owner-1"}); err == nil {
		t.Fatalf("expected error for missing name")
	}

	if err := service.Create(ctx, &Patient{FullName: "Ana"}); err == nil {
		t.Fatalf("expected error for missing owner")
	}

	invalid := &Patient{OwnerID: "owner-1", FullName: "Ana", TargetProtein: -10}
	if err := service.Create(ctx, invalid); err == nil {
		t.Fatalf("expected error for negative target")
	}
}

func TestCreatePatientCleansBlankRestrictions(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)

	patient := &Patient{
		OwnerID:          "owner-1",
		FullName:         "Ana",
		DietRestrictions: []string{"Vegetariano", "", "Celiaco", ""},
	}

	if err := service.Create(context.Background(), patient); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saved := repo.patients[patient.ID]
	if len(saved.DietRestrictions) != 2 {
		t.Fatalf("blank restrictions should be dropped, got %v", saved.DietRestrictions)
	}
}

func TestGetProfileMapsPatient(t *testing.T) {
	repo := newMockRepository()
	service := NewService(repo)
	ctx := context.Background()

	patient := &Patient{
		OwnerID:          "owner-1",
		FullName:         "Ana",
		TargetProtein:    140,
		TargetCalories:   2100,
		DietRestrictions: []string{"Vegetariano"},
	}
	if err := service.Create(ctx, patient); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profile, err := service.GetProfile(ctx, "owner-1", patient.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.FullName != "Ana" || profile.TargetProtein != 140 {
		t.Fatalf("profile fields not mapped: %+v", profile)
	}
	if len(profile.DietRestrictions) != 1 {
		t.Fatalf("restrictions not mapped: %v", profile.DietRestrictions)
	}

	// Another owner cannot read the record
	if _, err := service.GetProfile(ctx, "owner-2", patient.ID); err == nil {
		t.Fatalf("expected error for foreign owner")
	}
}
