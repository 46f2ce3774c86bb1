package diet

import "nutriplan/internal/catalog"

// Group is a named display bucket of included items. Custom groups stay
// enumerable while empty, so a freshly created group shows up before any
// item lands in it.
type Group struct {
	Name  string             `json:"name"`
	Items []catalog.FoodItem `json:"items"`
}

// GroupItems projects the resolved set into groups in first-appearance
// order, then appends any declared custom group that holds no item yet.
func GroupItems(included []catalog.FoodItem, customGroups []string) []Group {
	var order []string
	byName := make(map[string][]catalog.FoodItem)

	for _, item := range included {
		if _, ok := byName[item.Group]; !ok {
			order = append(order, item.Group)
		}
		byName[item.Group] = append(byName[item.Group], item)
	}

	for _, name := range customGroups {
		if _, ok := byName[name]; !ok {
			order = append(order, name)
			byName[name] = []catalog.FoodItem{}
		}
	}

	groups := make([]Group, 0, len(order))
	for _, name := range order {
		groups = append(groups, Group{Name: name, Items: byName[name]})
	}

	return groups
}
