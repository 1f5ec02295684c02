// Package tracker keeps the user's tracked items, their part statuses and
// the relic inventory in a key-value store.
//
// Storage layout follows the browser app this backend replaces:
//
//	item-list     JSON array of tracked item ids
//	<item name>   JSON object part -> "acquired" | "unacquired"
//	relics        JSON array of {"name", "count"}
package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/meur/relicforge/internal/catalog"
	"github.com/meur/relicforge/internal/models"
	"github.com/meur/relicforge/internal/storage"
)

// Storage keys
const (
	ItemListKey = "item-list"
	RelicsKey   = "relics"
)

var (
	ErrUnknownItem   = errors.New("item is not in the catalog")
	ErrDuplicateItem = errors.New("item is already tracked")
	ErrNotTracked    = errors.New("item is not tracked")
)

// Tracker is the user's collection state. Read-modify-write sequences are
// serialised by mu.
type Tracker struct {
	mu  sync.Mutex
	kv  storage.KV
	cat *catalog.Catalog
}

// New creates a Tracker over kv, validating ids against cat
func New(kv storage.KV, cat *catalog.Catalog) *Tracker {
	return &Tracker{kv: kv, cat: cat}
}

// --- Tracked items ---

// AddItem starts tracking an item with a fresh status copied from the
// scaffold
func (t *Tracker) AddItem(itemID string) (models.TrackedItem, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	item, ok := t.cat.ItemByID(itemID)
	if !ok {
		return models.TrackedItem{}, fmt.Errorf("%w: %q", ErrUnknownItem, itemID)
	}

	ids, err := t.itemIDs()
	if err != nil {
		return models.TrackedItem{}, err
	}
	if slices.Contains(ids, itemID) {
		return models.TrackedItem{}, fmt.Errorf("%w: %q", ErrDuplicateItem, item.Name)
	}

	status := t.cat.Scaffold().NewStatus()
	if err := t.saveJSON(item.Name, status); err != nil {
		return models.TrackedItem{}, err
	}
	if err := t.saveJSON(ItemListKey, append(ids, itemID)); err != nil {
		return models.TrackedItem{}, err
	}

	return models.TrackedItem{ItemID: itemID, Status: status}, nil
}

// List returns the tracked items in catalog order. Ids that are no longer
// in the catalog are skipped.
func (t *Tracker) List() ([]models.Item, error) {
	t.mu.Lock()
	ids, err := t.itemIDs()
	t.mu.Unlock()
	if err != nil {
		return nil, err
	}

	items := []models.Item{}
	for _, item := range t.cat.Items("") {
		if slices.Contains(ids, item.ID) {
			items = append(items, item)
		}
	}
	return items, nil
}

// Get returns a tracked item with its status reconciled against the
// current scaffold
func (t *Tracker) Get(itemID string) (models.TrackedItem, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.get(itemID)
}

// All returns every tracked item that still exists in the catalog
func (t *Tracker) All() ([]models.TrackedItem, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids, err := t.itemIDs()
	if err != nil {
		return nil, err
	}
	out := []models.TrackedItem{}
	for _, id := range ids {
		tracked, ok, err := t.get(id)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, tracked)
		}
	}
	return out, nil
}

// TogglePart flips a part between acquired and unacquired. A part that is
// not in the scaffold leaves the item unchanged.
func (t *Tracker) TogglePart(itemID, part string) (models.TrackedItem, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	tracked, ok, err := t.get(itemID)
	if err != nil {
		return models.TrackedItem{}, err
	}
	if !ok {
		return models.TrackedItem{}, fmt.Errorf("%w: %q", ErrNotTracked, itemID)
	}
	if !t.cat.Scaffold().Has(part) {
		return tracked, nil
	}

	tracked.Status[part] = tracked.Status[part].Toggle()
	item, _ := t.cat.ItemByID(itemID)
	if err := t.saveJSON(item.Name, tracked.Status); err != nil {
		return models.TrackedItem{}, err
	}
	return tracked, nil
}

// RemoveItem stops tracking an item and deletes its status. Removing an
// untracked item is a no-op.
func (t *Tracker) RemoveItem(itemID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids, err := t.itemIDs()
	if err != nil {
		return err
	}
	i := slices.Index(ids, itemID)
	if i < 0 {
		return nil
	}

	if err := t.saveJSON(ItemListKey, slices.Delete(ids, i, i+1)); err != nil {
		return err
	}
	if item, ok := t.cat.ItemByID(itemID); ok {
		if err := t.kv.Delete(item.Name); err != nil {
			return fmt.Errorf("failed to delete status of %s: %w", item.Name, err)
		}
	}
	return nil
}

func (t *Tracker) get(itemID string) (models.TrackedItem, bool, error) {
	ids, err := t.itemIDs()
	if err != nil {
		return models.TrackedItem{}, false, err
	}
	if !slices.Contains(ids, itemID) {
		return models.TrackedItem{}, false, nil
	}
	item, ok := t.cat.ItemByID(itemID)
	if !ok {
		return models.TrackedItem{}, false, nil
	}

	var stored models.ItemStatus
	if _, err := t.loadJSON(item.Name, &stored); err != nil {
		return models.TrackedItem{}, false, err
	}
	return models.TrackedItem{ItemID: itemID, Status: reconcile(stored, t.cat.Scaffold())}, true, nil
}

// reconcile fits a stored status to the current scaffold: parts the
// scaffold gained start at their initial value, parts it lost are dropped.
func reconcile(stored models.ItemStatus, scaffold models.Scaffold) models.ItemStatus {
	out := scaffold.NewStatus()
	for part := range out {
		if s, ok := stored[part]; ok && s.Valid() {
			out[part] = s
		}
	}
	return out
}

func (t *Tracker) itemIDs() ([]string, error) {
	var ids []string
	if _, err := t.loadJSON(ItemListKey, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// --- Helpers ---

func (t *Tracker) loadJSON(key string, v interface{}) (bool, error) {
	data, ok, err := t.kv.Load(key)
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (t *Tracker) saveJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := t.kv.Save(key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
