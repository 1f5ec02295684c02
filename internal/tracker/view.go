package tracker

import (
	"github.com/meur/relicforge/internal/models"
)

// ItemView assembles the item screen: each scaffold part with its status,
// the relic that drops it, where that relic drops (best first) and how many
// copies the user owns.
func (t *Tracker) ItemView(itemID string) (models.ItemView, bool, error) {
	t.mu.Lock()
	tracked, ok, err := t.get(itemID)
	if err != nil || !ok {
		t.mu.Unlock()
		return models.ItemView{}, false, err
	}
	inv, err := t.inventory()
	t.mu.Unlock()
	if err != nil {
		return models.ItemView{}, false, err
	}

	item, _ := t.cat.ItemByID(itemID)
	view := models.ItemView{Item: item, Parts: []models.PartView{}}
	for _, part := range t.cat.Scaffold().Parts() {
		pv := models.PartView{Part: part, Status: tracked.Status[part], Drops: []models.MissionDrops{}}

		relic, found, err := t.cat.ResolveRelic(item.Name, part)
		if err != nil {
			return models.ItemView{}, false, err
		}
		if found {
			drops, err := t.cat.RankedDrops(relic.Name)
			if err != nil {
				return models.ItemView{}, false, err
			}
			pv.Relic = &relic
			pv.Drops = drops
			pv.Owned = countOf(inv, relic.Name)
		}
		view.Parts = append(view.Parts, pv)
	}
	return view, true, nil
}
