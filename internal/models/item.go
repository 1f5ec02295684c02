package models

// Item represents a catalog entry: either a whole collectible ("Excalibur")
// or one part of one ("Excalibur Blueprint")
type Item struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	CategoryID string `json:"categoryId" yaml:"categoryId"`
	Image      string `json:"image" yaml:"image"`
}

// ItemList is a collection of items
type ItemList struct {
	Items      []Item `json:"items"`
	TotalCount int    `json:"total_count"`
}

// Relic represents a farmable container rewarding one or more items
type Relic struct {
	Name  string        `json:"name" yaml:"name"` // "<Tier> <Letter>N", e.g. "Lith G1"
	Items []RelicReward `json:"items" yaml:"items"`
}

// RelicReward is a single reward slot of a relic
type RelicReward struct {
	ItemID     string `json:"itemId" yaml:"itemId"`
	DropChance string `json:"dropChance,omitempty" yaml:"dropChance,omitempty"`
}

// Rewards reports whether the relic has itemID among its rewards
func (r Relic) Rewards(itemID string) bool {
	for _, reward := range r.Items {
		if reward.ItemID == itemID {
			return true
		}
	}
	return false
}
