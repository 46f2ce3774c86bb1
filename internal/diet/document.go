package diet

import "nutriplan/internal/catalog"

// Document is the persistable form of a session, shaped like the saved
// diet content the persistence layer stores and the UI re-imports.
type Document struct {
	Name              string             `json:"name"`
	Tags              []string           `json:"tags,omitempty"`
	ActiveConstraints []string           `json:"activeConstraints"`
	CustomConstraints []Constraint       `json:"customConstraints,omitempty"`
	CustomGroups      []string           `json:"customGroups,omitempty"`
	FoodStatus        map[string]Status  `json:"foodStatus"`
	ManualAdditions   []catalog.FoodItem `json:"manualAdditions,omitempty"`
	FavoritesVisible  bool               `json:"favoritesEnabled"`
	TimeView          TimeView           `json:"timeView,omitempty"`
	Quantities        map[string]float64 `json:"quantities,omitempty"`

	// Legacy saved diets carried only grouped items, no status map.
	Categories map[string][]catalog.FoodItem `json:"categories,omitempty"`
}

// Snapshot captures the session for the persistence collaborator.
func (s *Session) Snapshot() Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	quantities := make(map[string]float64, len(s.quantities))
	for name, qty := range s.quantities {
		quantities[name] = qty
	}

	return Document{
		Name:              s.name,
		Tags:              append([]string(nil), s.tags...),
		ActiveConstraints: append([]string(nil), s.activeConstraints...),
		CustomConstraints: append([]Constraint(nil), s.customConstraints...),
		CustomGroups:      append([]string(nil), s.customGroups...),
		FoodStatus:        s.store.Tags(),
		ManualAdditions:   append([]catalog.FoodItem(nil), s.store.ManualItems()...),
		FavoritesVisible:  s.favoritesVisible,
		TimeView:          s.timeView,
		Quantities:        quantities,
	}
}

// ImportDocument loads a saved diet into the session, merging its status
// overrides on top of the seeded base. Legacy documents that only carry
// grouped items are recovered as manual additions.
func (s *Session) ImportDocument(doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.Name != "" {
		s.name = doc.Name
	}
	if doc.Tags != nil {
		s.tags = doc.Tags
	}
	if doc.ActiveConstraints != nil {
		s.activeConstraints = doc.ActiveConstraints
	}
	if doc.CustomConstraints != nil {
		s.customConstraints = doc.CustomConstraints
	}
	if doc.CustomGroups != nil {
		s.customGroups = doc.CustomGroups
	}
	if doc.TimeView != "" {
		if _, err := ParseTimeView(string(doc.TimeView)); err == nil {
			s.timeView = doc.TimeView
		}
	}
	s.favoritesVisible = doc.FavoritesVisible

	if len(doc.FoodStatus) == 0 && len(doc.Categories) > 0 {
		s.importLegacyLocked(doc.Categories)
		return
	}

	if doc.ManualAdditions != nil {
		s.store.setManual(doc.ManualAdditions)
	}
	for name, tag := range doc.FoodStatus {
		s.store.SetTag(name, tag)
	}
	for name, qty := range doc.Quantities {
		if qty >= 0 {
			s.quantities[name] = qty
		}
	}
}

func (s *Session) importLegacyLocked(categories map[string][]catalog.FoodItem) {
	for groupName, items := range categories {
		known := false
		for _, g := range s.customGroups {
			if g == groupName {
				known = true
				break
			}
		}
		if !known {
			s.customGroups = append(s.customGroups, groupName)
		}

		for _, item := range items {
			item.Group = groupName
			if s.knownLocked(item.Name) {
				s.store.SetTag(item.Name, StatusAdded)
				continue
			}
			s.store.AddManual(item)
		}
	}
}
