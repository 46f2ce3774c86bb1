package patients

import "time"

// Patient is a record owned by one nutritionist.
type Patient struct {
	ID               string    `json:"id"`
	OwnerID          string    `json:"-"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email,omitempty"`
	Weight           float64   `json:"weight,omitempty"`
	Height           float64   `json:"height,omitempty"`
	TargetProtein    float64   `json:"target_protein"`
	TargetCalories   float64   `json:"target_calories"`
	DietRestrictions []string  `json:"diet_restrictions"`
	CreatedAt        time.Time `json:"created_at"`
}
