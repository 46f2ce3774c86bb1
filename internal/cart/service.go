package cart

import (
	"context"

	"nutriplan/internal/core"
	"nutriplan/internal/diet"
)

// Fallback when no patient is linked to the session.
const defaultTargetProtein = 160

type Service struct {
	registry *diet.Registry
	patients core.PatientReader
}

func NewService(registry *diet.Registry, patients core.PatientReader) *Service {
	return &Service{
		registry: registry,
		patients: patients,
	}
}

// Totals recomputes the summary from the session's latest state. An
// empty view falls back to the view stored on the session.
func (s *Service) Totals(session *diet.Session, view diet.TimeView) Totals {
	if view == "" {
		view = session.View()
	}
	return Aggregate(session.CartItems(), view)
}

// UpdateQuantity overrides the monthly purchase quantity of one item.
func (s *Service) UpdateQuantity(session *diet.Session, product string, qty float64) error {
	return session.SetMonthlyQuantity(product, qty)
}

// Suggestion builds the gap-filling proposal against the linked
// patient's protein target, or the default when none is linked.
func (s *Service) Suggestion(
	ctx context.Context,
	ownerID string,
	session *diet.Session,
) GapSuggestion {

	target := float64(defaultTargetProtein)

	if patientID := session.PatientID(); patientID != "" {
		profile, err := s.patients.GetProfile(ctx, ownerID, patientID)
		if err == nil && profile.TargetProtein > 0 {
			target = profile.TargetProtein
		}
	}

	totals := Aggregate(session.CartItems(), diet.ViewDay)
	return SuggestGap(totals.DailyProtein, target)
}
