package catalog

import (
	"reflect"
	"sort"
	"testing"

	"github.com/meur/relicforge/internal/models"
)

func TestExtractRarity(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"25.33% (1/4)", 25.33},
		{"Rare", 0},
		{"", 0},
		{"Uncommon (11%)", 11},
		{"2% then 40%", 2},
		{"7.", 0},
		{"100%", 100},
		{"0.5%", 0.5},
	}
	for _, tt := range tests {
		if got := ExtractRarity(tt.in); got != tt.want {
			t.Errorf("ExtractRarity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRankDropsEndToEnd(t *testing.T) {
	items := []models.Item{{ID: "1", Name: "Volt"}, {ID: "2", Name: "Volt Systems"}}
	relics := []models.Relic{{Name: "Neo V1", Items: []models.RelicReward{{ItemID: "2"}}}}
	drops := []models.MissionDrops{
		{Mission: "Ukko, Kuva Fortress", Rotations: []models.Rotation{
			{Rotation: "B", Drops: []models.Drop{{Name: "Neo V1", Rarity: "10.11% (1/4)"}}},
		}},
		{Mission: "Hepit, Void", Rotations: []models.Rotation{
			{Rotation: "C", Drops: []models.Drop{{Name: "Neo V1", Rarity: "25.33% (1/4)"}}},
		}},
	}
	c := New(items, relics, models.NewScaffold("system"), drops)

	relic, ok, err := c.ResolveRelic("Volt", "system")
	if err != nil || !ok {
		t.Fatalf("ResolveRelic = %v, %v", ok, err)
	}
	ranked, err := c.RankedDrops(relic.Name)
	if err != nil {
		t.Fatalf("RankedDrops: %v", err)
	}
	if len(ranked) != 2 || ranked[0].Mission != "Hepit, Void" || ranked[1].Mission != "Ukko, Kuva Fortress" {
		t.Fatalf("ranked = %+v, want Hepit before Ukko", ranked)
	}
}

func rankFixture() []models.MissionDrops {
	return []models.MissionDrops{
		{Mission: "low", Rotations: []models.Rotation{
			{Rotation: "A", Drops: []models.Drop{{Name: "r", Rarity: "2%"}, {Name: "r", Rarity: "Rare"}}},
		}},
		{Mission: "high", Rotations: []models.Rotation{
			{Rotation: "A", Drops: []models.Drop{{Name: "r", Rarity: "5%"}}},
			{Rotation: "B", Drops: []models.Drop{{Name: "r", Rarity: "1%"}, {Name: "r", Rarity: "20%"}}},
			{Rotation: "C", Drops: []models.Drop{{Name: "r", Rarity: "20% (1/4)"}}},
		}},
		{Mission: "tied", Rotations: []models.Rotation{
			{Rotation: "A", Drops: []models.Drop{{Name: "r", Rarity: "20.0%"}}},
		}},
	}
}

func TestRankDropsOrdering(t *testing.T) {
	ranked := RankDrops(rankFixture())

	var missions []string
	for _, m := range ranked {
		missions = append(missions, m.Mission)
	}
	if !reflect.DeepEqual(missions, []string{"high", "tied", "low"}) {
		t.Fatalf("missions = %v", missions)
	}

	high := ranked[0]
	var rotations []string
	for _, r := range high.Rotations {
		rotations = append(rotations, r.Rotation)
	}
	// B and C tie at 20%, B came first
	if !reflect.DeepEqual(rotations, []string{"B", "C", "A"}) {
		t.Fatalf("rotations = %v", rotations)
	}
	if high.Rotations[0].Drops[0].Rarity != "20%" || high.Rotations[0].Drops[1].Rarity != "1%" {
		t.Errorf("drops of B not sorted: %+v", high.Rotations[0].Drops)
	}
}

func TestRankDropsStable(t *testing.T) {
	tree := []models.MissionDrops{
		{Mission: "m", Rotations: []models.Rotation{
			{Rotation: "A", Drops: []models.Drop{
				{Name: "first", Rarity: "Rare"},
				{Name: "second", Rarity: ""},
				{Name: "third", Rarity: "10%"},
				{Name: "fourth", Rarity: "10.00% (1/4)"},
			}},
		}},
	}

	drops := RankDrops(tree)[0].Rotations[0].Drops
	var names []string
	for _, d := range drops {
		names = append(names, d.Name)
	}
	if !reflect.DeepEqual(names, []string{"third", "fourth", "first", "second"}) {
		t.Fatalf("order = %v", names)
	}
}

func TestRankDropsIdempotent(t *testing.T) {
	once := RankDrops(rankFixture())
	twice := RankDrops(once)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("ranking is not idempotent:\n%+v\n%+v", once, twice)
	}
}

func TestRankDropsPreservesContents(t *testing.T) {
	in := rankFixture()
	out := RankDrops(in)

	if !reflect.DeepEqual(flatten(in), flatten(out)) {
		t.Fatalf("contents changed:\n%v\n%v", flatten(in), flatten(out))
	}
}

func TestRankDropsDoesNotMutateInput(t *testing.T) {
	in := rankFixture()
	before := models.CloneMissions(in)

	_ = RankDrops(in)
	if !reflect.DeepEqual(in, before) {
		t.Fatalf("input mutated:\n%+v\n%+v", in, before)
	}
}

func TestRankDropsEmpty(t *testing.T) {
	if got := RankDrops(nil); len(got) != 0 {
		t.Errorf("RankDrops(nil) = %v", got)
	}
	empty := models.MissionDrops{Mission: "m", Rotations: []models.Rotation{{Rotation: "A"}}}
	if got := MaxRarity(empty); got != 0 {
		t.Errorf("MaxRarity(empty) = %v, want 0", got)
	}
}

// flatten renders every drop as "mission/rotation/name/rarity", sorted.
func flatten(tree []models.MissionDrops) []string {
	var out []string
	for _, m := range tree {
		for _, r := range m.Rotations {
			for _, d := range r.Drops {
				out = append(out, m.Mission+"/"+r.Rotation+"/"+d.Name+"/"+d.Rarity)
			}
		}
	}
	sort.Strings(out)
	return out
}
