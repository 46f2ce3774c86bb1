package diet

import "nutriplan/internal/catalog"

// Resolve decides final set membership for every candidate item.
// Precedence per item, in strict order:
//
//  1. Removed → out, overrides everything.
//  2. Manual addition (not removed) → in, unconditionally.
//  3. Favorite while favorites are hidden → out (tag untouched).
//  4. Base → out if any active constraint excludes it.
//  5. Base/Favorite/Added otherwise → in; no tag at all → out.
//
// Pure function over its inputs: input order is preserved, the store is
// never mutated, and two calls with identical inputs return identical
// ordered sets.
func Resolve(
	items []catalog.FoodItem,
	store *StatusStore,
	activeConstraints []string,
	favoritesVisible bool,
) []catalog.FoodItem {

	included := make([]catalog.FoodItem, 0, len(items))

	for _, item := range items {
		tag, ok := store.Tag(item.Name)

		if tag == StatusRemoved {
			continue
		}

		if store.IsManual(item.Name) {
			included = append(included, item)
			continue
		}

		if !ok {
			continue
		}

		if tag == StatusFavorite && !favoritesVisible {
			continue
		}

		if tag == StatusBase && excludedByConstraints(item, activeConstraints) {
			continue
		}

		included = append(included, item)
	}

	return included
}

func excludedByConstraints(item catalog.FoodItem, active []string) bool {
	for _, id := range active {
		if ExclusionFor(id, item) {
			return true
		}
	}
	return false
}
