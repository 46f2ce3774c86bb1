package diet

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"nutriplan/internal/catalog"
)

// TimeView is the display horizon used to scale nutrient and cost totals.
type TimeView string

const (
	ViewDay   TimeView = "day"
	ViewWeek  TimeView = "week"
	ViewMonth TimeView = "month"
)

// Scale is the daily-total multiplier for the view.
func (v TimeView) Scale() float64 {
	switch v {
	case ViewWeek:
		return 7
	case ViewMonth:
		return 30
	default:
		return 1
	}
}

func ParseTimeView(s string) (TimeView, error) {
	switch TimeView(s) {
	case ViewDay, ViewWeek, ViewMonth:
		return TimeView(s), nil
	}
	return "", &ValidationError{Reason: fmt.Sprintf("invalid time view %q", s)}
}

// Session is one diet-editing session: an immutable catalog snapshot,
// the status store, and the session-level configuration. Every public
// method recomputes from the latest store state; nothing is memoized.
// All mutations are serialized through one mutex.
type Session struct {
	mu sync.Mutex

	ID      string
	OwnerID string

	catalog []catalog.FoodItem
	store   *StatusStore

	name              string
	tags              []string
	activeConstraints []string
	customConstraints []Constraint
	customGroups      []string
	favoritesVisible  bool
	timeView          TimeView

	patientID  string
	quantities map[string]float64 // monthly purchase overrides, quantifier stage
}

// NewSession seeds a session from a catalog snapshot. The snapshot is
// fixed for the life of the session; manual additions live in the store.
func NewSession(ownerID string, items []catalog.FoodItem) *Session {
	s := &Session{
		ID:               uuid.New().String(),
		OwnerID:          ownerID,
		catalog:          items,
		store:            NewStatusStore(),
		favoritesVisible: true,
		timeView:         ViewWeek,
		quantities:       make(map[string]float64),
	}
	s.store.Seed(items)
	return s
}

// --------------------------------------------------
// Mutation surface
// --------------------------------------------------

func (s *Session) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *Session) SetTags(tags []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tags = tags
}

// ToggleFavorite pins an item, or unpins it back to the tag its origin
// implies (Added for manual items, Base for catalog items).
func (s *Session) ToggleFavorite(name string) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.knownLocked(name) {
		return "", &NotFoundError{Name: name}
	}

	tag, _ := s.store.Tag(name)

	// A removed item leaves that state only through an explicit restore
	if tag == StatusRemoved {
		return "", &ValidationError{
			Reason: fmt.Sprintf("food %q is removed; restore it first", name),
		}
	}

	next := StatusFavorite
	if tag == StatusFavorite {
		if s.store.IsManual(name) {
			next = StatusAdded
		} else {
			next = StatusBase
		}
	}

	s.store.SetTag(name, next)
	return next, nil
}

func (s *Session) RemoveItem(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.knownLocked(name) {
		return &NotFoundError{Name: name}
	}

	s.store.Remove(name)
	return nil
}

// RestoreItem undoes a remove, bringing back the exact prior tag.
func (s *Session) RestoreItem(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.knownLocked(name) {
		return &NotFoundError{Name: name}
	}

	s.store.Restore(name)
	return nil
}

// AddManualItem creates a user-defined food inside groupName. Rejected
// when the name already exists in the combined catalog+manual pool.
func (s *Session) AddManualItem(item catalog.FoodItem, groupName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := catalog.ValidateItem(item); err != nil {
		return &ValidationError{Reason: err.Error()}
	}

	if s.knownLocked(item.Name) {
		return &ValidationError{
			Reason: fmt.Sprintf("food %q already exists in the plan", item.Name),
		}
	}

	if groupName != "" {
		item.Group = groupName
	}
	if item.ID == "" {
		item.ID = "manual-" + uuid.New().String()
	}

	s.store.AddManual(item)
	return nil
}

// CreateCustomGroup registers an empty group. Exact-match collision with
// any existing catalog-derived or custom group name is rejected.
func (s *Session) CreateCustomGroup(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return &ValidationError{Reason: "group name is required"}
	}

	for _, g := range s.groupNamesLocked() {
		if g == name {
			return &ValidationError{
				Reason: fmt.Sprintf("group %q already exists", name),
			}
		}
	}

	s.customGroups = append(s.customGroups, name)
	return nil
}

// DeleteGroup removes every item currently resolved into the group. The
// group label itself survives if it is a declared custom group, so the
// now-empty group stays visible.
func (s *Session) DeleteGroup(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, g := range s.groupNamesLocked() {
		if g == name {
			found = true
			break
		}
	}
	if !found {
		return &NotFoundError{Name: name}
	}

	for _, item := range s.resolveLocked() {
		if item.Group == name {
			s.store.Remove(item.Name)
		}
	}

	return nil
}

func (s *Session) SetConstraintActive(id string, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.activeConstraints {
		if existing == id {
			if !active {
				s.activeConstraints = append(
					s.activeConstraints[:i],
					s.activeConstraints[i+1:]...,
				)
			}
			return
		}
	}

	if active {
		s.activeConstraints = append(s.activeConstraints, id)
	}
}

// AddCustomConstraint records a user-defined constraint. It carries no
// exclusion rule; activating it never removes an item.
func (s *Session) AddCustomConstraint(id, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		return &ValidationError{Reason: "constraint id is required"}
	}

	for _, existing := range s.customConstraints {
		if existing.ID == id {
			return &ValidationError{
				Reason: fmt.Sprintf("constraint %q already exists", id),
			}
		}
	}

	if label == "" {
		label = id
	}
	s.customConstraints = append(s.customConstraints, Constraint{ID: id, Label: label})
	return nil
}

func (s *Session) SetFavoritesVisible(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favoritesVisible = visible
}

func (s *Session) SetTimeView(view TimeView) error {
	if _, err := ParseTimeView(string(view)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeView = view
	return nil
}

// SetMonthlyQuantity overrides the purchase quantity used by the
// quantifier stage for one item.
func (s *Session) SetMonthlyQuantity(name string, qty float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty < 0 {
		return &ValidationError{Reason: "monthly quantity cannot be negative"}
	}

	if !s.knownLocked(name) {
		return &NotFoundError{Name: name}
	}

	s.quantities[name] = qty
	return nil
}

// Reset wipes the per-item state: tags reseed from the catalog snapshot,
// manual additions and quantity overrides are discarded. Session-level
// configuration (name, constraints, view) survives.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store = NewStatusStore()
	s.store.Seed(s.catalog)
	s.quantities = make(map[string]float64)
}

// LinkPatient attaches a patient and merges their dietary flags into the
// active constraint set. Blank flags are skipped; existing activations
// are kept.
func (s *Session) LinkPatient(patientID string, restrictions []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.patientID = patientID

	for _, r := range restrictions {
		if r == "" {
			continue
		}
		already := false
		for _, existing := range s.activeConstraints {
			if existing == r {
				already = true
				break
			}
		}
		if !already {
			s.activeConstraints = append(s.activeConstraints, r)
		}
	}
}

// --------------------------------------------------
// Query surface (always recomputed, never cached)
// --------------------------------------------------

func (s *Session) Resolve() []catalog.FoodItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolveLocked()
}

func (s *Session) Groups() []Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	return GroupItems(s.resolveLocked(), s.customGroups)
}

// CartItems is the resolved set with quantity overrides applied, ready
// for aggregation.
func (s *Session) CartItems() []catalog.FoodItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.resolveLocked()
	for i := range items {
		if qty, ok := s.quantities[items[i].Name]; ok {
			items[i].MonthlyQuantity = qty
		}
	}
	return items
}

func (s *Session) View() TimeView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeView
}

func (s *Session) PatientID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.patientID
}

// Config is the session-level state exposed to the UI.
type Config struct {
	Name              string       `json:"name"`
	Tags              []string     `json:"tags"`
	ActiveConstraints []string     `json:"active_constraints"`
	CustomConstraints []Constraint `json:"custom_constraints"`
	CustomGroups      []string     `json:"custom_groups"`
	FavoritesVisible  bool         `json:"favorites_visible"`
	TimeView          TimeView     `json:"time_view"`
	PatientID         string       `json:"patient_id,omitempty"`
}

func (s *Session) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Config{
		Name:              s.name,
		Tags:              append([]string(nil), s.tags...),
		ActiveConstraints: append([]string(nil), s.activeConstraints...),
		CustomConstraints: append([]Constraint(nil), s.customConstraints...),
		CustomGroups:      append([]string(nil), s.customGroups...),
		FavoritesVisible:  s.favoritesVisible,
		TimeView:          s.timeView,
		PatientID:         s.patientID,
	}
}

// --------------------------------------------------
// internal (callers hold s.mu)
// --------------------------------------------------

// combinedLocked is catalog ∪ manual, catalog order first. A manual item
// sharing a catalog name shadows the catalog copy.
func (s *Session) combinedLocked() []catalog.FoodItem {
	manualNames := make(map[string]bool)
	for _, item := range s.store.ManualItems() {
		manualNames[item.Name] = true
	}

	combined := make([]catalog.FoodItem, 0, len(s.catalog)+len(manualNames))
	for _, item := range s.catalog {
		if !manualNames[item.Name] {
			combined = append(combined, item)
		}
	}
	combined = append(combined, s.store.ManualItems()...)

	return combined
}

func (s *Session) resolveLocked() []catalog.FoodItem {
	return Resolve(
		s.combinedLocked(),
		s.store,
		s.activeConstraints,
		s.favoritesVisible,
	)
}

func (s *Session) groupNamesLocked() []string {
	var names []string
	seen := make(map[string]bool)

	for _, g := range GroupItems(s.resolveLocked(), s.customGroups) {
		if !seen[g.Name] {
			seen[g.Name] = true
			names = append(names, g.Name)
		}
	}

	return names
}

func (s *Session) knownLocked(name string) bool {
	for _, item := range s.catalog {
		if item.Name == name {
			return true
		}
	}
	return s.store.IsManual(name)
}
