package resources

import "github.com/ahmetcoskunkizilkaya/studentsafe/internal/models"

type Group struct {
	Category  string            `json:"category"`
	Resources []models.Resource `json:"resources"`
}

// GroupByCategory groups resources keeping the order in which categories
// first appear.
func GroupByCategory(list []models.Resource) []Group {
	groups := []Group{}
	index := map[string]int{}
	for _, r := range list {
		i, ok := index[r.Category]
		if !ok {
			i = len(groups)
			index[r.Category] = i
			groups = append(groups, Group{Category: r.Category})
		}
		groups[i].Resources = append(groups[i].Resources, r)
	}
	return groups
}
