// Command seed imports a browser localStorage dump of the old web app into
// the SQLite store.
//
// The dump is a JSON object of localStorage key -> string value, e.g. as
// printed by JSON.stringify(localStorage) in the browser console.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/meur/relicforge/internal/catalog"
	"github.com/meur/relicforge/internal/config"
	"github.com/meur/relicforge/internal/models"
	"github.com/meur/relicforge/internal/storage"
	"github.com/meur/relicforge/internal/tracker"
)

func main() {
	cfg := config.Load()

	dbPath := flag.String("db", cfg.DBPath, "SQLite database path")
	catalogDir := flag.String("catalog", cfg.CatalogDir, "Catalog data directory")
	dumpPath := flag.String("dump", "./localstorage.json", "localStorage dump to import")
	flag.Parse()

	cat, err := catalog.Load(*catalogDir)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	store, err := storage.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	dump, err := readDump(*dumpPath)
	if err != nil {
		log.Fatalf("Failed to read dump: %v", err)
	}

	tr := tracker.New(store, cat)
	items, relics := seed(tr, cat, dump)

	log.Printf("Imported %d items and %d relics from %s", items, relics, *dumpPath)
}

func readDump(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var dump map[string]string
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, err
	}
	return dump, nil
}

// seed replays the dump through the tracker so every id is validated
// against the catalog and every status is fitted to the current scaffold
func seed(tr *tracker.Tracker, cat *catalog.Catalog, dump map[string]string) (items, relics int) {
	var ids []string
	if raw, ok := dump[tracker.ItemListKey]; ok {
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			log.Printf("Warning: skipping %s: %v", tracker.ItemListKey, err)
		}
	}

	for _, id := range ids {
		tracked, err := tr.AddItem(id)
		if errors.Is(err, tracker.ErrDuplicateItem) {
			tracked, _, err = tr.Get(id)
		}
		if err != nil {
			log.Printf("Warning: skipping item %s: %v", id, err)
			continue
		}
		items++

		item, _ := cat.ItemByID(id)
		var stored models.ItemStatus
		if raw, ok := dump[item.Name]; ok {
			if err := json.Unmarshal([]byte(raw), &stored); err != nil {
				log.Printf("Warning: bad status for %s: %v", item.Name, err)
				continue
			}
		}
		for part, want := range stored {
			if cat.Scaffold().Has(part) && want.Valid() && tracked.Status[part] != want {
				if _, err := tr.TogglePart(id, part); err != nil {
					log.Printf("Warning: %s %s: %v", item.Name, part, err)
				}
			}
		}
	}

	var inventory []models.RelicCount
	if raw, ok := dump[tracker.RelicsKey]; ok {
		if err := json.Unmarshal([]byte(raw), &inventory); err != nil {
			log.Printf("Warning: skipping %s: %v", tracker.RelicsKey, err)
		}
	}
	for _, rc := range inventory {
		if _, ok := cat.RelicByName(rc.Name); !ok {
			log.Printf("Warning: unknown relic %q", rc.Name)
			continue
		}
		current, err := tr.Count(rc.Name)
		if err != nil {
			log.Printf("Warning: %s: %v", rc.Name, err)
			continue
		}
		for n := current; n < rc.Count; n++ {
			if _, err := tr.IncrementRelic(rc.Name); err != nil {
				log.Printf("Warning: %s: %v", rc.Name, err)
				break
			}
		}
		relics++
	}
	return items, relics
}
