package catalog

import (
	"errors"
	"testing"

	"github.com/meur/relicforge/internal/models"
)

func TestExtractDropDetailsEmptyName(t *testing.T) {
	c := warframeCatalog(t)

	if _, err := c.ExtractDropDetails(""); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("ExtractDropDetails(\"\") err = %v, want ErrInvalidArgument", err)
	}
}

func TestExtractDropDetailsSingleDrop(t *testing.T) {
	c := warframeCatalog(t)

	got, err := c.ExtractDropDetails("Axi A1")
	if err != nil {
		t.Fatalf("ExtractDropDetails: %v", err)
	}
	if len(got) != 1 || len(got[0].Rotations) != 1 || len(got[0].Rotations[0].Drops) != 1 {
		t.Fatalf("ExtractDropDetails(Axi A1) = %+v, want one mission/rotation/drop", got)
	}
	if got[0].Mission != "Mot, Void" || got[0].Rotations[0].Drops[0] != (models.Drop{Name: "Axi A1", Rarity: "8.33%"}) {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestExtractDropDetailsKeepsOrder(t *testing.T) {
	c := warframeCatalog(t)

	got, err := c.ExtractDropDetails("Neo V1")
	if err != nil {
		t.Fatalf("ExtractDropDetails: %v", err)
	}

	var missions []string
	for _, m := range got {
		missions = append(missions, m.Mission)
		for _, r := range m.Rotations {
			for _, d := range r.Drops {
				if d.Name != "Neo V1" {
					t.Errorf("%s/%s kept foreign drop %q", m.Mission, r.Rotation, d.Name)
				}
			}
		}
	}
	want := []string{"Ukko, Kuva Fortress", "Hepit, Void", "Mot, Void"}
	if len(missions) != len(want) {
		t.Fatalf("missions = %v, want %v", missions, want)
	}
	for i := range want {
		if missions[i] != want[i] {
			t.Fatalf("missions = %v, want %v", missions, want)
		}
	}
	if len(got[1].Rotations) != 1 || got[1].Rotations[0].Rotation != "C" {
		t.Errorf("Hepit rotations = %+v, want only C", got[1].Rotations)
	}
}

func TestExtractDropDetailsExactMatch(t *testing.T) {
	c := warframeCatalog(t)

	for _, name := range []string{"neo v1", "Neo V1 Relic", "Neo"} {
		got, err := c.ExtractDropDetails(name)
		if err != nil {
			t.Fatalf("ExtractDropDetails(%q): %v", name, err)
		}
		if len(got) != 0 {
			t.Errorf("ExtractDropDetails(%q) = %+v, want empty", name, got)
		}
	}
}

func TestExtractDropDetailsDoesNotShareCatalogMemory(t *testing.T) {
	c := warframeCatalog(t)

	got, _ := c.ExtractDropDetails("Lith G1")
	got[0].Rotations[0].Drops[0].Rarity = "0%"

	again, _ := c.ExtractDropDetails("Lith G1")
	if again[0].Rotations[0].Drops[0].Rarity != "14.29%" {
		t.Fatalf("catalog mutated: %+v", again[0])
	}
}
