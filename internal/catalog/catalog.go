// Package catalog holds the static game catalog and the relic
// cross-reference engine built on top of it.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/meur/relicforge/internal/models"
	"gopkg.in/yaml.v3"
)

// ErrInvalidArgument is returned when a required identifier is empty
var ErrInvalidArgument = errors.New("invalid argument")

// Catalog file base names, as exported from the game data tooling
const (
	ItemsFile    = "items"
	RelicsFile   = "relics-map"
	ScaffoldFile = "item-scafold-map"
	DropsFile    = "relic-drop-sorted-map"
)

// Catalog is the read-only, in-memory view of the four static tables.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	items    []models.Item
	itemByID map[string]int
	relics   []models.Relic
	relicIdx map[string]int
	scaffold models.Scaffold
	drops    []models.MissionDrops
}

// New builds a catalog from already decoded tables. The inputs are copied.
func New(items []models.Item, relics []models.Relic, scaffold models.Scaffold, drops []models.MissionDrops) *Catalog {
	c := &Catalog{
		items:    append([]models.Item(nil), items...),
		itemByID: make(map[string]int, len(items)),
		relics:   make([]models.Relic, len(relics)),
		relicIdx: make(map[string]int, len(relics)),
		scaffold: scaffold,
		drops:    models.CloneMissions(drops),
	}
	for i, item := range c.items {
		if _, dup := c.itemByID[item.ID]; !dup {
			c.itemByID[item.ID] = i
		}
	}
	for i, r := range relics {
		c.relics[i] = cloneRelic(r)
		if _, dup := c.relicIdx[r.Name]; !dup {
			c.relicIdx[r.Name] = i
		}
	}
	return c
}

// Load reads the catalog tables from dir. Each table may be stored as
// .json, .yaml or .yml.
func Load(dir string) (*Catalog, error) {
	var (
		items    []models.Item
		relics   []models.Relic
		scaffold models.Scaffold
		drops    []models.MissionDrops
	)

	tables := []struct {
		name string
		dst  interface{}
	}{
		{ItemsFile, &items},
		{RelicsFile, &relics},
		{ScaffoldFile, &scaffold},
		{DropsFile, &drops},
	}
	for _, t := range tables {
		if err := loadTable(dir, t.name, t.dst); err != nil {
			return nil, err
		}
	}

	return New(items, relics, scaffold, drops), nil
}

func loadTable(dir, name string, dst interface{}) error {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(dir, name+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		if ext == ".json" {
			err = json.Unmarshal(data, dst)
		} else {
			err = yaml.Unmarshal(data, dst)
		}
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("catalog table %q not found in %s", name, dir)
}

// --- Items ---

// ItemByID returns an item by ID
func (c *Catalog) ItemByID(id string) (models.Item, bool) {
	i, ok := c.itemByID[id]
	if !ok {
		return models.Item{}, false
	}
	return c.items[i], true
}

// ItemsByNameContains returns items whose name contains substr, ignoring
// case, in catalog order
func (c *Catalog) ItemsByNameContains(substr string) []models.Item {
	needle := strings.ToLower(substr)
	var out []models.Item
	for _, item := range c.items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			out = append(out, item)
		}
	}
	return out
}

// Items returns all items, optionally restricted to a category
func (c *Catalog) Items(categoryID string) []models.Item {
	out := make([]models.Item, 0, len(c.items))
	for _, item := range c.items {
		if categoryID != "" && item.CategoryID != categoryID {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Scaffold returns the part template
func (c *Catalog) Scaffold() models.Scaffold {
	return c.scaffold
}

// --- Relics ---

// RelicByName returns a relic by its exact name
func (c *Catalog) RelicByName(name string) (models.Relic, bool) {
	i, ok := c.relicIdx[name]
	if !ok {
		return models.Relic{}, false
	}
	return cloneRelic(c.relics[i]), true
}

// AllDropEntries returns a copy of the whole relic drop table
func (c *Catalog) AllDropEntries() []models.MissionDrops {
	return models.CloneMissions(c.drops)
}

func cloneRelic(r models.Relic) models.Relic {
	return models.Relic{Name: r.Name, Items: append([]models.RelicReward(nil), r.Items...)}
}
