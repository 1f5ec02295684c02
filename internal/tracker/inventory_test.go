package tracker

import (
	"errors"
	"testing"

	"github.com/meur/relicforge/internal/catalog"
	"github.com/meur/relicforge/internal/models"
)

func TestIncrementRelic(t *testing.T) {
	tr, _ := newTracker(t)

	for want := 1; want <= 3; want++ {
		rc, err := tr.IncrementRelic("Neo V1")
		if err != nil {
			t.Fatalf("IncrementRelic: %v", err)
		}
		if rc.Count != want {
			t.Fatalf("count = %d, want %d", rc.Count, want)
		}
	}
	tr.IncrementRelic("Lith V1")

	inv, err := tr.Inventory()
	if err != nil {
		t.Fatalf("Inventory: %v", err)
	}
	want := []models.RelicCount{{Name: "Neo V1", Count: 3}, {Name: "Lith V1", Count: 1}}
	if len(inv) != 2 || inv[0] != want[0] || inv[1] != want[1] {
		t.Fatalf("inventory = %+v, want %+v", inv, want)
	}
}

func TestDecrementRelicFloorsAtZero(t *testing.T) {
	tr, _ := newTracker(t)

	tr.IncrementRelic("Neo V1")
	if rc, _ := tr.DecrementRelic("Neo V1"); rc.Count != 0 {
		t.Fatalf("count = %d, want 0", rc.Count)
	}
	if rc, err := tr.DecrementRelic("Neo V1"); err != nil || rc.Count != 0 {
		t.Fatalf("decrement at zero = %+v, %v", rc, err)
	}
	if n, _ := tr.Count("Neo V1"); n != 0 {
		t.Fatalf("Count = %d, want 0", n)
	}
}

func TestDecrementUnknownRelicIsNoop(t *testing.T) {
	tr, kv := newTracker(t)

	rc, err := tr.DecrementRelic("Axi A1")
	if err != nil || rc.Count != 0 || rc.Name != "Axi A1" {
		t.Fatalf("DecrementRelic = %+v, %v", rc, err)
	}
	if _, ok, _ := kv.Load(RelicsKey); ok {
		t.Error("decrement of unknown relic wrote the inventory")
	}
}

func TestRelicEmptyName(t *testing.T) {
	tr, _ := newTracker(t)

	if _, err := tr.IncrementRelic(""); !errors.Is(err, catalog.ErrInvalidArgument) {
		t.Errorf("IncrementRelic(\"\") err = %v", err)
	}
	if _, err := tr.DecrementRelic(""); !errors.Is(err, catalog.ErrInvalidArgument) {
		t.Errorf("DecrementRelic(\"\") err = %v", err)
	}
}

func TestInventoryRepairsStoredData(t *testing.T) {
	tr, kv := newTracker(t)
	kv.Save(RelicsKey, []byte(`[{"name":"Neo V1","count":2},{"name":"Lith V1","count":-4},{"name":"Neo V1","count":1}]`))

	inv, err := tr.Inventory()
	if err != nil {
		t.Fatalf("Inventory: %v", err)
	}
	want := []models.RelicCount{{Name: "Neo V1", Count: 3}, {Name: "Lith V1", Count: 0}}
	if len(inv) != 2 || inv[0] != want[0] || inv[1] != want[1] {
		t.Fatalf("inventory = %+v, want %+v", inv, want)
	}
}
