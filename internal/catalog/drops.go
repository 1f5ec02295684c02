package catalog

import (
	"fmt"

	"github.com/meur/relicforge/internal/models"
)

// ExtractDropDetails returns the part of the drop table that rewards
// relicName: rotations without the relic are removed, surviving rotations
// keep only the relic's drops, and missions left empty are removed.
// Names are compared exactly. Order is preserved and the result shares no
// memory with the catalog.
func (c *Catalog) ExtractDropDetails(relicName string) ([]models.MissionDrops, error) {
	if relicName == "" {
		return nil, fmt.Errorf("%w: relic name is empty", ErrInvalidArgument)
	}

	out := []models.MissionDrops{}
	for _, mission := range c.drops {
		var rotations []models.Rotation
		for _, rotation := range mission.Rotations {
			var drops []models.Drop
			for _, drop := range rotation.Drops {
				if drop.Name == relicName {
					drops = append(drops, drop)
				}
			}
			if len(drops) > 0 {
				rotations = append(rotations, models.Rotation{Rotation: rotation.Rotation, Drops: drops})
			}
		}
		if len(rotations) > 0 {
			out = append(out, models.MissionDrops{Mission: mission.Mission, Rotations: rotations})
		}
	}
	return out, nil
}

// RankedDrops extracts the drop details for relicName and ranks them
func (c *Catalog) RankedDrops(relicName string) ([]models.MissionDrops, error) {
	details, err := c.ExtractDropDetails(relicName)
	if err != nil {
		return nil, err
	}
	return RankDrops(details), nil
}
