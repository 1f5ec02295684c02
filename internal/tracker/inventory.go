package tracker

import (
	"fmt"

	"github.com/meur/relicforge/internal/catalog"
	"github.com/meur/relicforge/internal/models"
)

// Inventory returns the owned relic counts in insertion order
func (t *Tracker) Inventory() ([]models.RelicCount, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inventory()
}

// Count returns how many copies of a relic the user owns
func (t *Tracker) Count(relicName string) (int, error) {
	inv, err := t.Inventory()
	if err != nil {
		return 0, err
	}
	return countOf(inv, relicName), nil
}

// IncrementRelic adds one copy of a relic, creating the entry if needed
func (t *Tracker) IncrementRelic(relicName string) (models.RelicCount, error) {
	if relicName == "" {
		return models.RelicCount{}, fmt.Errorf("%w: relic name is empty", catalog.ErrInvalidArgument)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	inv, err := t.inventory()
	if err != nil {
		return models.RelicCount{}, err
	}
	i := indexOf(inv, relicName)
	if i < 0 {
		inv = append(inv, models.RelicCount{Name: relicName})
		i = len(inv) - 1
	}
	inv[i].Count++

	if err := t.saveJSON(RelicsKey, inv); err != nil {
		return models.RelicCount{}, err
	}
	return inv[i], nil
}

// DecrementRelic removes one copy of a relic. Counts never go below zero
// and unknown relics are left alone.
func (t *Tracker) DecrementRelic(relicName string) (models.RelicCount, error) {
	if relicName == "" {
		return models.RelicCount{}, fmt.Errorf("%w: relic name is empty", catalog.ErrInvalidArgument)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	inv, err := t.inventory()
	if err != nil {
		return models.RelicCount{}, err
	}
	i := indexOf(inv, relicName)
	if i < 0 {
		return models.RelicCount{Name: relicName}, nil
	}
	if inv[i].Count <= 0 {
		inv[i].Count = 0
		return inv[i], nil
	}
	inv[i].Count--

	if err := t.saveJSON(RelicsKey, inv); err != nil {
		return models.RelicCount{}, err
	}
	return inv[i], nil
}

// inventory loads the relic list, merging duplicate names and clamping
// negative counts left by older writers
func (t *Tracker) inventory() ([]models.RelicCount, error) {
	var stored []models.RelicCount
	if _, err := t.loadJSON(RelicsKey, &stored); err != nil {
		return nil, err
	}

	inv := []models.RelicCount{}
	for _, rc := range stored {
		if rc.Count < 0 {
			rc.Count = 0
		}
		if i := indexOf(inv, rc.Name); i >= 0 {
			inv[i].Count += rc.Count
			continue
		}
		inv = append(inv, rc)
	}
	return inv, nil
}

func indexOf(inv []models.RelicCount, name string) int {
	for i, rc := range inv {
		if rc.Name == name {
			return i
		}
	}
	return -1
}

func countOf(inv []models.RelicCount, name string) int {
	if i := indexOf(inv, name); i >= 0 {
		return inv[i].Count
	}
	return 0
}
