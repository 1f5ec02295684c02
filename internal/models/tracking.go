package models

import (
	"time"
)

// Status is the acquisition state of a single part
type Status string

const (
	StatusAcquired   Status = "acquired"
	StatusUnacquired Status = "unacquired"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	return s == StatusAcquired || s == StatusUnacquired
}

// Toggle returns the opposite status
func (s Status) Toggle() Status {
	if s == StatusAcquired {
		return StatusUnacquired
	}
	return StatusAcquired
}

// ItemStatus maps part key -> status
type ItemStatus map[string]Status

// TrackedItem is an item the user is collecting parts for
type TrackedItem struct {
	ItemID string     `json:"item_id"`
	Status ItemStatus `json:"status"`
}

// RelicCount is one entry of the user's relic inventory
type RelicCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PartView is a part of a tracked item with its drop source
type PartView struct {
	Part   string         `json:"part"`
	Status Status         `json:"status"`
	Relic  *Relic         `json:"relic"` // nil = no known drop source
	Drops  []MissionDrops `json:"drops"`
	Owned  int            `json:"owned"`
}

// ItemView is everything the item screen renders for a tracked item
type ItemView struct {
	Item  Item       `json:"item"`
	Parts []PartView `json:"parts"`
}

// Snapshot is a shared, read-only copy of a user's tracking state
type Snapshot struct {
	ID        string        `json:"id"`
	ShareCode string        `json:"share_code"`
	Items     []TrackedItem `json:"items"`
	Inventory []RelicCount  `json:"inventory"`
	CreatedAt time.Time     `json:"created_at"`
}
