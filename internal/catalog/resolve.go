package catalog

import (
	"fmt"
	"strings"

	"github.com/meur/relicforge/internal/models"
)

// ResolveRelic finds the relic that rewards the given part of an item.
//
// The part item is the first item (catalog order) whose name contains
// "<itemName> <part>", ignoring case, among the items whose name contains
// itemName. When several relics reward that item the one with the lowest
// name wins, so the answer does not depend on relic table order.
//
// A missing part item or relic is reported with ok == false and a nil error.
func (c *Catalog) ResolveRelic(itemName, part string) (relic models.Relic, ok bool, err error) {
	if itemName == "" {
		return models.Relic{}, false, fmt.Errorf("%w: item name is empty", ErrInvalidArgument)
	}
	if part == "" {
		return models.Relic{}, false, fmt.Errorf("%w: part is empty", ErrInvalidArgument)
	}

	partItem, found := c.findPartItem(itemName, part)
	if !found {
		return models.Relic{}, false, nil
	}

	best := -1
	for i, r := range c.relics {
		if !r.Rewards(partItem.ID) {
			continue
		}
		if best < 0 || r.Name < c.relics[best].Name {
			best = i
		}
	}
	if best < 0 {
		return models.Relic{}, false, nil
	}
	return cloneRelic(c.relics[best]), true, nil
}

func (c *Catalog) findPartItem(itemName, part string) (models.Item, bool) {
	want := strings.ToLower(itemName + " " + part)
	for _, candidate := range c.ItemsByNameContains(itemName) {
		if strings.Contains(strings.ToLower(candidate.Name), want) {
			return candidate, true
		}
	}
	return models.Item{}, false
}
