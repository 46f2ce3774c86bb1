package core

import "context"

// PatientProfile is the slice of a patient record the diet engine needs:
// intake targets plus the dietary flags that pre-seed constraint
// activation.
type PatientProfile struct {
	ID               string
	FullName         string
	TargetProtein    float64
	TargetCalories   float64
	DietRestrictions []string
}

type PatientReader interface {
	GetProfile(ctx context.Context, ownerID, patientID string) (*PatientProfile, error)
}
