package diet

import "nutriplan/internal/catalog"

// Status is the per-item override tag. The four tags are mutually
// exclusive; an item with no entry is not part of the plan.
type Status string

const (
	StatusBase     Status = "base"
	StatusFavorite Status = "favorite"
	StatusRemoved  Status = "removed"
	StatusAdded    Status = "added"
)

// StatusStore holds the per-item tag map plus the pool of manually
// created items. It is the single mutation point of a plan; everything
// else (resolver, groups, totals) is recomputed from it on demand.
type StatusStore struct {
	tags   map[string]Status
	prior  map[string]Status // tag held before a remove, for exact restore
	manual []catalog.FoodItem
}

func NewStatusStore() *StatusStore {
	return &StatusStore{
		tags:  make(map[string]Status),
		prior: make(map[string]Status),
	}
}

// Seed tags every catalog item Base unless it already carries an
// override. Only the seeding pass may create entries implicitly.
func (s *StatusStore) Seed(items []catalog.FoodItem) {
	for _, item := range items {
		if _, ok := s.tags[item.Name]; !ok {
			s.tags[item.Name] = StatusBase
		}
	}
}

func (s *StatusStore) Tag(name string) (Status, bool) {
	tag, ok := s.tags[name]
	return tag, ok
}

func (s *StatusStore) SetTag(name string, tag Status) {
	s.tags[name] = tag
}

// Remove tags the item Removed, remembering the tag it held so a later
// restore is exact instead of depending on a fresh seed pass.
func (s *StatusStore) Remove(name string) {
	if tag, ok := s.tags[name]; ok && tag != StatusRemoved {
		s.prior[name] = tag
	}
	s.tags[name] = StatusRemoved
}

// Restore undoes a remove, bringing back the specific prior tag. Only
// the Removed state can be left this way: restoring an item that is not
// currently removed is a no-op, so replayed undo sequences stay safe.
// A removed entry with no recoverable prior tag is dropped entirely and
// the item re-enters only through a fresh seed pass.
func (s *StatusStore) Restore(name string) (Status, bool) {
	if current, ok := s.tags[name]; !ok || current != StatusRemoved {
		return current, false
	}

	if tag, ok := s.prior[name]; ok {
		s.tags[name] = tag
		delete(s.prior, name)
		return tag, true
	}

	delete(s.tags, name)
	return "", false
}

func (s *StatusStore) AddManual(item catalog.FoodItem) {
	s.manual = append(s.manual, item)
	s.tags[item.Name] = StatusAdded
}

func (s *StatusStore) ManualItems() []catalog.FoodItem {
	return s.manual
}

func (s *StatusStore) IsManual(name string) bool {
	for _, item := range s.manual {
		if item.Name == name {
			return true
		}
	}
	return false
}

// Tags returns a copy of the tag map (persistence snapshot).
func (s *StatusStore) Tags() map[string]Status {
	out := make(map[string]Status, len(s.tags))
	for name, tag := range s.tags {
		out[name] = tag
	}
	return out
}

func (s *StatusStore) setManual(items []catalog.FoodItem) {
	s.manual = items
}
