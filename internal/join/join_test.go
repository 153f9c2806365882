package join

import (
	"strings"
	"testing"
	"time"

	"verdant/internal/models"
)

func intPtr(n int) *int { return &n }

func TestPlantName(t *testing.T) {
	plants := []models.Plant{
		{ID: 1, Nickname: "Fern"},
		{ID: 2, Nickname: "Monstera"},
	}

	tests := []struct {
		name    string
		plantID int
		want    string
	}{
		{"found", 1, "Fern"},
		{"second entry", 2, "Monstera"},
		{"missing falls back to id", 99, "Plant #99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlantName(tt.plantID, plants); got != tt.want {
				t.Errorf("PlantName(%d) = %q, want %q", tt.plantID, got, tt.want)
			}
		})
	}
}

func TestPlantNameEmptyCollection(t *testing.T) {
	got := PlantName(7, nil)
	if !strings.Contains(got, "7") {
		t.Errorf("fallback %q does not embed the id", got)
	}
}

func TestCareTypeName(t *testing.T) {
	careTypes := []models.CareType{
		{ID: 1, Name: "Watering"},
		{ID: 2, Name: "Fertilizing"},
	}

	if got := CareTypeName(2, careTypes); got != "Fertilizing" {
		t.Errorf("CareTypeName(2) = %q, want %q", got, "Fertilizing")
	}
	if got := CareTypeName(42, careTypes); got != "Care Type #42" {
		t.Errorf("CareTypeName(42) = %q, want %q", got, "Care Type #42")
	}
}

func TestLookupsAreIdempotent(t *testing.T) {
	plants := []models.Plant{{ID: 1, Nickname: "Fern"}}
	careTypes := []models.CareType{{ID: 9, Name: "Watering"}}

	for i := 0; i < 3; i++ {
		if got := PlantName(1, plants); got != "Fern" {
			t.Fatalf("call %d: PlantName = %q", i, got)
		}
		if got := CareTypeName(9, careTypes); got != "Watering" {
			t.Fatalf("call %d: CareTypeName = %q", i, got)
		}
		if id, ok := CareTypeIDByName("Watering", careTypes); !ok || id != 9 {
			t.Fatalf("call %d: CareTypeIDByName = %d, %v", i, id, ok)
		}
	}
}

func TestCareTypeIDByName(t *testing.T) {
	userID := 3
	careTypes := []models.CareType{
		{ID: 1, Name: "Watering"},
		{ID: 2, Name: "Misting"},
		{ID: 10, UserID: &userID, Name: "Watering"},
	}

	t.Run("last match wins", func(t *testing.T) {
		// The user's own "Watering" shadows the default because user types
		// are appended after defaults in the union.
		id, ok := CareTypeIDByName("Watering", careTypes)
		if !ok || id != 10 {
			t.Errorf("CareTypeIDByName(Watering) = %d, %v, want 10, true", id, ok)
		}
	})

	t.Run("unique name", func(t *testing.T) {
		id, ok := CareTypeIDByName("Misting", careTypes)
		if !ok || id != 2 {
			t.Errorf("CareTypeIDByName(Misting) = %d, %v, want 2, true", id, ok)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		if _, ok := CareTypeIDByName("Pruning", careTypes); ok {
			t.Error("expected ok=false for unknown name")
		}
	})
}

func TestUnionCareTypes(t *testing.T) {
	userID := 3
	defaults := []models.CareType{
		{ID: 1, Name: "Watering"},
		{ID: 2, Name: "Fertilizing"},
	}
	userTypes := []models.CareType{
		{ID: 10, UserID: &userID, Name: "Misting"},
		{ID: 11, UserID: &userID, Name: "Pruning"},
		{ID: 12, UserID: &userID, Name: "Repotting"},
	}

	union := UnionCareTypes(defaults, userTypes)
	if len(union) != 5 {
		t.Fatalf("union length = %d, want 5", len(union))
	}

	seen := make(map[int]bool)
	for _, ct := range union {
		if seen[ct.ID] {
			t.Errorf("duplicate id %d in union", ct.ID)
		}
		seen[ct.ID] = true
	}

	// Defaults come first so user types shadow them in name resolution.
	for i, ct := range union[:2] {
		if !ct.IsDefault() {
			t.Errorf("union[%d] should be a default", i)
		}
	}
	for i, ct := range union[2:] {
		if ct.IsDefault() {
			t.Errorf("union[%d] should be user-owned", i+2)
		}
		if *ct.UserID != userID {
			t.Errorf("union[%d].UserID = %d, want %d", i+2, *ct.UserID, userID)
		}
	}
}

func TestSpeciesForPlant(t *testing.T) {
	species := []models.Species{
		{ID: 1, CommonName: "Boston Fern"},
	}

	tests := []struct {
		name    string
		plant   models.Plant
		wantRef SpeciesRef
	}{
		{"no species set", models.Plant{ID: 1}, SpeciesNone},
		{"species found", models.Plant{ID: 2, SpeciesID: intPtr(1)}, SpeciesFound},
		{"dangling reference", models.Plant{ID: 3, SpeciesID: intPtr(9)}, SpeciesMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ref := SpeciesForPlant(tt.plant, species)
			if ref != tt.wantRef {
				t.Fatalf("ref = %v, want %v", ref, tt.wantRef)
			}
			if ref == SpeciesFound && got.CommonName != "Boston Fern" {
				t.Errorf("CommonName = %q", got.CommonName)
			}
		})
	}
}

func TestPartitionCarePlans(t *testing.T) {
	plans := []models.CarePlan{
		{ID: 1, Active: true},
		{ID: 2, Active: false},
		{ID: 3, Active: true},
	}

	active, inactive := PartitionCarePlans(plans)
	if len(active) != 2 || active[0].ID != 1 || active[1].ID != 3 {
		t.Errorf("active = %+v", active)
	}
	if len(inactive) != 1 || inactive[0].ID != 2 {
		t.Errorf("inactive = %+v", inactive)
	}

	t.Run("empty input yields empty slices", func(t *testing.T) {
		active, inactive := PartitionCarePlans(nil)
		if active == nil || inactive == nil {
			t.Error("partitions must be non-nil")
		}
	})
}

func TestSortCareLogsByDateDesc(t *testing.T) {
	logs := []models.CareLog{
		{ID: 1, CareDate: models.NewDate(2024, time.June, 1)},
		{ID: 2, CareDate: models.NewDate(2024, time.June, 3)},
		{ID: 3, CareDate: models.NewDate(2024, time.June, 2)},
		{ID: 4, CareDate: models.NewDate(2024, time.June, 3)},
	}

	SortCareLogsByDateDesc(logs)

	wantOrder := []int{2, 4, 3, 1} // ties keep fetch order
	for i, want := range wantOrder {
		if logs[i].ID != want {
			t.Errorf("logs[%d].ID = %d, want %d", i, logs[i].ID, want)
		}
	}
}

func TestDistinctSpeciesCount(t *testing.T) {
	plants := []models.Plant{
		{ID: 1, SpeciesID: intPtr(1)},
		{ID: 2, SpeciesID: intPtr(2)},
		{ID: 3, SpeciesID: intPtr(2)},
		{ID: 4},
		{ID: 5, SpeciesID: intPtr(3)},
	}

	if got := DistinctSpeciesCount(plants); got != 3 {
		t.Errorf("DistinctSpeciesCount = %d, want 3", got)
	}
	if got := DistinctSpeciesCount(nil); got != 0 {
		t.Errorf("DistinctSpeciesCount(nil) = %d, want 0", got)
	}
}

func TestFormatFrequency(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{1, "Every 1 day"},
		{2, "Every 2 days"},
		{7, "Every 7 days"},
	}

	for _, tt := range tests {
		if got := FormatFrequency(tt.days); got != tt.want {
			t.Errorf("FormatFrequency(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "plants"},
		{1, "plant"},
		{2, "plants"},
	}

	for _, tt := range tests {
		if got := Pluralize(tt.n, "plant"); got != tt.want {
			t.Errorf("Pluralize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
