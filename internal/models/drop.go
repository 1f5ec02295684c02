package models

// MissionDrops is a mission of the relic drop table with its reward rotations
type MissionDrops struct {
	Mission   string     `json:"mission" yaml:"mission"`
	Rotations []Rotation `json:"rotations" yaml:"rotations"`
}

// Rotation is a sub-phase of a mission with its own reward table
type Rotation struct {
	Rotation string `json:"rotation" yaml:"rotation"` // "A", "B", "C"
	Drops    []Drop `json:"drops" yaml:"drops"`
}

// Drop is a single relic reward inside a rotation
type Drop struct {
	Name   string `json:"name" yaml:"name"`
	Rarity string `json:"rarity" yaml:"rarity"` // free text, e.g. "25.33% (1/4)"
}

// Clone returns a deep copy of the mission
func (m MissionDrops) Clone() MissionDrops {
	out := MissionDrops{Mission: m.Mission}
	if m.Rotations == nil {
		return out
	}
	out.Rotations = make([]Rotation, len(m.Rotations))
	for i, r := range m.Rotations {
		out.Rotations[i] = Rotation{Rotation: r.Rotation}
		if r.Drops != nil {
			out.Rotations[i].Drops = append([]Drop(nil), r.Drops...)
		}
	}
	return out
}

// CloneMissions deep-copies a drop tree
func CloneMissions(missions []MissionDrops) []MissionDrops {
	if missions == nil {
		return nil
	}
	out := make([]MissionDrops, len(missions))
	for i, m := range missions {
		out[i] = m.Clone()
	}
	return out
}
