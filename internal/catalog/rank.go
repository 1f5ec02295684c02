package catalog

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"

	"github.com/meur/relicforge/internal/models"
)

var rarityPattern = regexp.MustCompile(`(\d+(\.\d+)?)%`)

// ExtractRarity returns the first percentage found in a rarity string,
// e.g. 25.33 for "25.33% (1/4)", or 0 when there is none.
func ExtractRarity(rarity string) float64 {
	m := rarityPattern.FindStringSubmatch(rarity)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}

// RankDrops returns a copy of tree ordered so the best farming route comes
// first. Drops are sorted by rarity, rotations by their best drop and
// missions by their best drop, all descending. Sorts are stable so equal
// rarities keep their incoming order. The input is left untouched.
func RankDrops(tree []models.MissionDrops) []models.MissionDrops {
	ranked := models.CloneMissions(tree)

	for i := range ranked {
		mission := &ranked[i]
		for j := range mission.Rotations {
			slices.SortStableFunc(mission.Rotations[j].Drops, func(a, b models.Drop) int {
				return cmp.Compare(ExtractRarity(b.Rarity), ExtractRarity(a.Rarity))
			})
		}
		slices.SortStableFunc(mission.Rotations, func(a, b models.Rotation) int {
			return cmp.Compare(rotationMax(b), rotationMax(a))
		})
	}

	slices.SortStableFunc(ranked, func(a, b models.MissionDrops) int {
		return cmp.Compare(MaxRarity(b), MaxRarity(a))
	})
	return ranked
}

// MaxRarity returns the highest rarity of any drop in the mission, 0 if it
// has none
func MaxRarity(m models.MissionDrops) float64 {
	best := 0.0
	for _, r := range m.Rotations {
		best = max(best, rotationMax(r))
	}
	return best
}

func rotationMax(r models.Rotation) float64 {
	best := 0.0
	for _, d := range r.Drops {
		best = max(best, ExtractRarity(d.Rarity))
	}
	return best
}
