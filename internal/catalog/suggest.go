package catalog

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/meur/relicforge/internal/models"
)

// Suggest returns up to limit items whose names are close to name, for
// "did you mean" hints when a search comes back empty
func (c *Catalog) Suggest(name string, limit int) []models.Item {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		item models.Item
		dist int
	}
	var hits []scored
	maxDist := suggestLimit(len(query))
	for _, item := range c.items {
		d := nameDistance(query, strings.ToLower(item.Name))
		if d <= maxDist {
			hits = append(hits, scored{item: item, dist: d})
		}
	}

	slices.SortStableFunc(hits, func(a, b scored) int { return a.dist - b.dist })
	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]models.Item, len(hits))
	for i, h := range hits {
		out[i] = h.item
	}
	return out
}

// nameDistance compares the query with the whole name and with each
// leading run of words of the same word count, so "exclibur" still finds
// "Excalibur Prime Blueprint".
func nameDistance(query, name string) int {
	best := levenshtein.ComputeDistance(query, name)
	words := strings.Fields(name)
	n := len(strings.Fields(query))
	if n > 0 && n < len(words) {
		best = min(best, levenshtein.ComputeDistance(query, strings.Join(words[:n], " ")))
	}
	return best
}

func suggestLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}
