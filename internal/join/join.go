// Package join holds the pure lookup and partitioning helpers that turn
// independently fetched collections into displayable rows. Every foreign key
// may dangle (the referenced row can be deleted out-of-band between fetches),
// so each lookup degrades to a labeled fallback instead of failing.
package join

import (
	"fmt"
	"sort"

	"verdant/internal/models"
)

// PlantName resolves a plant id to its nickname, or "Plant #<id>" when the
// plant is not in the loaded collection.
func PlantName(plantID int, plants []models.Plant) string {
	for _, p := range plants {
		if p.ID == plantID {
			return p.Nickname
		}
	}
	return fmt.Sprintf("Plant #%d", plantID)
}

// CareTypeName resolves a care-type id against the unioned default+user list,
// falling back to "Care Type #<id>".
func CareTypeName(careTypeID int, careTypes []models.CareType) string {
	for _, ct := range careTypes {
		if ct.ID == careTypeID {
			return ct.Name
		}
	}
	return fmt.Sprintf("Care Type #%d", careTypeID)
}

// CareTypeIDByName maps a denormalized care-type name back to an id. The
// upcoming-schedule endpoint returns names, not ids, so marking a task done
// has to resolve through the unioned list. When a user-defined type shares a
// name with a default, the last match wins; user types are appended after
// defaults, so the user's own type shadows the default.
func CareTypeIDByName(name string, careTypes []models.CareType) (int, bool) {
	id, found := 0, false
	for _, ct := range careTypes {
		if ct.Name == name {
			id, found = ct.ID, true
		}
	}
	return id, found
}

// SpeciesRef distinguishes a plant with no species chosen from a plant whose
// species id no longer resolves.
type SpeciesRef int

const (
	SpeciesNone    SpeciesRef = iota // plant has no species_id
	SpeciesMissing                   // species_id set, record absent
	SpeciesFound
)

// SpeciesForPlant resolves a plant's species. The Species value is only
// meaningful when the ref is SpeciesFound.
func SpeciesForPlant(plant models.Plant, speciesList []models.Species) (models.Species, SpeciesRef) {
	if plant.SpeciesID == nil {
		return models.Species{}, SpeciesNone
	}
	for _, s := range speciesList {
		if s.ID == *plant.SpeciesID {
			return s, SpeciesFound
		}
	}
	return models.Species{}, SpeciesMissing
}

// UnionCareTypes builds the selection list every page uses: system defaults
// first, then the user's own types. Order matters for name resolution, see
// CareTypeIDByName.
func UnionCareTypes(defaults, userTypes []models.CareType) []models.CareType {
	union := make([]models.CareType, 0, len(defaults)+len(userTypes))
	union = append(union, defaults...)
	union = append(union, userTypes...)
	return union
}

// PartitionCarePlans splits plans into active and inactive for two-section
// rendering, preserving fetch order within each section.
func PartitionCarePlans(plans []models.CarePlan) (active, inactive []models.CarePlan) {
	active = []models.CarePlan{}
	inactive = []models.CarePlan{}
	for _, plan := range plans {
		if plan.Active {
			active = append(active, plan)
		} else {
			inactive = append(inactive, plan)
		}
	}
	return active, inactive
}

// SortCareLogsByDateDesc orders logs newest first. Equal dates keep their
// fetch order.
func SortCareLogsByDateDesc(logs []models.CareLog) {
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[j].CareDate.Before(logs[i].CareDate)
	})
}

// DistinctSpeciesCount counts the distinct species represented across the
// loaded plants. Plants without a species contribute nothing; duplicates
// collapse.
func DistinctSpeciesCount(plants []models.Plant) int {
	seen := make(map[int]struct{})
	for _, p := range plants {
		if p.SpeciesID != nil {
			seen[*p.SpeciesID] = struct{}{}
		}
	}
	return len(seen)
}

// FormatFrequency renders a plan's cadence, e.g. "Every 1 day" or
// "Every 7 days".
func FormatFrequency(days int) string {
	if days == 1 {
		return "Every 1 day"
	}
	return fmt.Sprintf("Every %d days", days)
}

// Pluralize appends "s" to noun when n is anything but one.
func Pluralize(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
