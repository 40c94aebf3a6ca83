package trip

import "sort"

// CategoryNone is the sentinel stored when a trip has no category.
const CategoryNone = "None"

// CategoryInfo describes one entry of the category catalog, including the
// presentation hints the original catalog carried.
type CategoryInfo struct {
	ID    int
	Name  string
	Icon  string
	Color string
}

var categories = map[string]CategoryInfo{
	"Nature":      {ID: 1, Name: "Nature", Icon: "leaf", Color: "#4CAF50"},
	"Safari":      {ID: 2, Name: "Safari", Icon: "elephant", Color: "#D2B48C"},
	"Off Road":    {ID: 3, Name: "Off Road", Icon: "car", Color: "#8B4513"},
	"City Life":   {ID: 4, Name: "City Life", Icon: "city", Color: "#87CEEB"},
	"Beach":       {ID: 5, Name: "Beach", Icon: "beach", Color: "#1E90FF"},
	"Mountain":    {ID: 6, Name: "Mountain", Icon: "hiking", Color: "#708090"},
	"Culture":     {ID: 7, Name: "Culture", Icon: "book", Color: "#9370DB"},
	"Food & Wine": {ID: 8, Name: "Food & Wine", Icon: "food-fork-drink", Color: "#FF6347"},
	CategoryNone:  {ID: 9, Name: CategoryNone, Icon: "close", Color: "gray"},
}

// AllCategories returns the catalog ordered by id, the None sentinel last.
func AllCategories() []CategoryInfo {
	list := make([]CategoryInfo, 0, len(categories))
	for _, c := range categories {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

// LookupCategory finds a catalog entry by name.
func LookupCategory(name string) (CategoryInfo, bool) {
	c, ok := categories[name]
	return c, ok
}
