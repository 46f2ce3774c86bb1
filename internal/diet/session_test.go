package diet

import (
	"errors"
	"testing"

	"nutriplan/internal/catalog"
)

func newTestSession() *Session {
	return NewSession("owner-1", testCatalog())
}

func TestRestoreBringsBackPriorTag(t *testing.T) {
	s := newTestSession()

	if _, err := s.ToggleFavorite("Pollo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.RemoveItem("Pollo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.RestoreItem("Pollo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tag, ok := s.store.Tag("Pollo")
	if !ok || tag != StatusFavorite {
		t.Fatalf("expected favorite after restore, got %q (ok=%v)", tag, ok)
	}
}

func TestRestoreWithoutPriorDropsEntry(t *testing.T) {
	store := NewStatusStore()
	store.SetTag("Pollo", StatusRemoved) // removed with no recorded prior

	if _, ok := store.Restore("Pollo"); ok {
		t.Fatalf("expected no recoverable prior tag")
	}
	if _, ok := store.Tag("Pollo"); ok {
		t.Fatalf("entry should be dropped when no prior tag exists")
	}
}

func TestToggleFavoriteRoundTrip(t *testing.T) {
	s := newTestSession()

	tag, err := s.ToggleFavorite("Lentejas")
	if err != nil || tag != StatusFavorite {
		t.Fatalf("expected favorite, got %q err=%v", tag, err)
	}

	tag, err = s.ToggleFavorite("Lentejas")
	if err != nil || tag != StatusBase {
		t.Fatalf("catalog item should unpin back to base, got %q err=%v", tag, err)
	}

	// Manual items unpin back to added, not base
	manual := catalog.FoodItem{Name: "Charqui", Group: "Carnes y Vísceras"}
	if err := s.AddManualItem(manual, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.ToggleFavorite("Charqui"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tag, err = s.ToggleFavorite("Charqui")
	if err != nil || tag != StatusAdded {
		t.Fatalf("manual item should unpin back to added, got %q err=%v", tag, err)
	}
}

func TestRestoreReplayIsSafe(t *testing.T) {
	s := newTestSession()

	if _, err := s.ToggleFavorite("Lentejas"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.RemoveItem("Lentejas"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.RestoreItem("Lentejas"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A second restore must leave the recovered tag untouched
	if err := s.RestoreItem("Lentejas"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tag, ok := s.store.Tag("Lentejas")
	if !ok || tag != StatusFavorite {
		t.Fatalf("replayed restore changed the tag: got %q (ok=%v)", tag, ok)
	}
	if !containsItem(s.Resolve(), "Lentejas") {
		t.Fatalf("replayed restore dropped the item from the plan")
	}
}

func TestRestoreOnNonRemovedItemIsNoOp(t *testing.T) {
	s := newTestSession()

	if err := s.RestoreItem("Pollo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tag, ok := s.store.Tag("Pollo")
	if !ok || tag != StatusBase {
		t.Fatalf("restore on a base item should change nothing, got %q (ok=%v)", tag, ok)
	}
}

func TestToggleFavoriteRejectedWhileRemoved(t *testing.T) {
	s := newTestSession()

	if err := s.RemoveItem("Pollo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := s.ToggleFavorite("Pollo")
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError for removed item, got %v", err)
	}

	if containsItem(s.Resolve(), "Pollo") {
		t.Fatalf("favorite toggle resurrected a removed item")
	}
}

func TestToggleFavoriteUnknownItem(t *testing.T) {
	s := newTestSession()

	_, err := s.ToggleFavorite("No Existe")

	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestAddManualItemDuplicateRejected(t *testing.T) {
	s := newTestSession()

	err := s.AddManualItem(catalog.FoodItem{Name: "Pollo", Group: "Carnes y Vísceras"}, "")

	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError for duplicate name, got %v", err)
	}

	if len(s.store.ManualItems()) != 0 {
		t.Fatalf("rejected addition must not touch the manual pool")
	}
}

func TestCreateCustomGroupDuplicateRejected(t *testing.T) {
	s := newTestSession()

	if err := s.CreateCustomGroup("Colaciones"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var validation *ValidationError
	if err := s.CreateCustomGroup("Colaciones"); !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError for duplicate group, got %v", err)
	}

	// Colliding with a catalog-derived group is also rejected
	if err := s.CreateCustomGroup("Leguminosas"); !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError for catalog group collision, got %v", err)
	}
}

func TestEmptyCustomGroupStaysEnumerable(t *testing.T) {
	s := newTestSession()

	if err := s.CreateCustomGroup("Colaciones"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := false
	for _, g := range s.Groups() {
		if g.Name == "Colaciones" {
			found = true
			if len(g.Items) != 0 {
				t.Fatalf("fresh custom group should be empty")
			}
		}
	}
	if !found {
		t.Fatalf("empty custom group missing from enumeration")
	}
}

func TestDeleteGroupCascadesRemovals(t *testing.T) {
	s := newTestSession()

	if err := s.DeleteGroup("Carnes y Vísceras"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if containsItem(s.Resolve(), "Pollo") {
		t.Fatalf("member of deleted group should be removed")
	}

	tag, ok := s.store.Tag("Pollo")
	if !ok || tag != StatusRemoved {
		t.Fatalf("cascade should tag members removed, got %q", tag)
	}
}

func TestDeleteGroupUnknown(t *testing.T) {
	s := newTestSession()

	var notFound *NotFoundError
	if err := s.DeleteGroup("No Existe"); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSetMonthlyQuantityValidation(t *testing.T) {
	s := newTestSession()

	var validation *ValidationError
	if err := s.SetMonthlyQuantity("Pollo", -1); !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError for negative quantity, got %v", err)
	}

	var notFound *NotFoundError
	if err := s.SetMonthlyQuantity("No Existe", 2); !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}

	if err := s.SetMonthlyQuantity("Pollo", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, item := range s.CartItems() {
		if item.Name == "Pollo" && item.MonthlyQuantity != 3 {
			t.Fatalf("quantity override not applied, got %v", item.MonthlyQuantity)
		}
	}
}

func TestLinkPatientMergesRestrictions(t *testing.T) {
	s := newTestSession()
	s.SetConstraintActive("Diabético", true)

	s.LinkPatient("patient-1", []string{"Vegetariano", "", "Diabético"})

	cfg := s.Config()
	if cfg.PatientID != "patient-1" {
		t.Fatalf("patient not linked")
	}
	if len(cfg.ActiveConstraints) != 2 {
		t.Fatalf("expected 2 active constraints, got %v", cfg.ActiveConstraints)
	}
}

func TestCustomConstraintHasNoExclusionRule(t *testing.T) {
	s := newTestSession()

	if err := s.AddCustomConstraint("Sin Lactosa", "Sin Lactosa"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SetConstraintActive("Sin Lactosa", true)

	if len(s.Resolve()) != len(testCatalog()) {
		t.Fatalf("custom constraint must not exclude anything")
	}
}

func TestImportLegacyCategories(t *testing.T) {
	s := newTestSession()

	s.ImportDocument(Document{
		Name:             "Plan antiguo",
		FavoritesVisible: true,
		Categories: map[string][]catalog.FoodItem{
			"Desayuno": {
				{Name: "Avena", ProteinPer100g: 13},
				{Name: "Pollo"}, // already in the catalog
			},
		},
	})

	included := s.Resolve()
	if !containsItem(included, "Avena") {
		t.Fatalf("legacy item should be recovered as a manual addition")
	}
	if !s.store.IsManual("Avena") {
		t.Fatalf("unknown legacy item should land in the manual pool")
	}
	if s.store.IsManual("Pollo") {
		t.Fatalf("known catalog item should be retagged, not duplicated")
	}

	foundGroup := false
	for _, g := range s.Groups() {
		if g.Name == "Desayuno" {
			foundGroup = true
		}
	}
	if !foundGroup {
		t.Fatalf("legacy category should become a custom group")
	}
}

func TestResetWipesItemStateKeepsConfig(t *testing.T) {
	s := newTestSession()
	s.SetName("Plan de corte")
	s.SetConstraintActive("Vegetariano", true)
	if err := s.RemoveItem("Lentejas"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.AddManualItem(catalog.FoodItem{Name: "Charqui", Group: "Carnes y Vísceras"}, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Reset()

	if !containsItem(s.Resolve(), "Lentejas") {
		t.Fatalf("reset should reseed removed catalog items")
	}
	if containsItem(s.Resolve(), "Charqui") {
		t.Fatalf("reset should discard manual additions")
	}

	cfg := s.Config()
	if cfg.Name != "Plan de corte" || len(cfg.ActiveConstraints) != 1 {
		t.Fatalf("reset must not touch session config: %+v", cfg)
	}
}

func TestSnapshotCarriesSessionState(t *testing.T) {
	s := newTestSession()
	s.SetName("Plan de corte")
	s.SetConstraintActive("Vegetariano", true)
	if _, err := s.ToggleFavorite("Lentejas"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetMonthlyQuantity("Lentejas", 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := s.Snapshot()

	if doc.Name != "Plan de corte" {
		t.Fatalf("name missing from snapshot")
	}
	if doc.FoodStatus["Lentejas"] != StatusFavorite {
		t.Fatalf("status map missing favorite tag")
	}
	if doc.Quantities["Lentejas"] != 2 {
		t.Fatalf("quantity override missing from snapshot")
	}
	if len(doc.ActiveConstraints) != 1 || doc.ActiveConstraints[0] != "Vegetariano" {
		t.Fatalf("active constraints missing from snapshot")
	}
}
