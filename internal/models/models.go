package models

// User identifies the authenticated session owner.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Plant is a plant owned by the current user. SpeciesID is optional; a plant
// with no species contributes nothing to the species-tracked count.
type Plant struct {
	ID          int    `json:"id"`
	Nickname    string `json:"nickname"`
	SpeciesID   *int   `json:"species_id,omitempty"`
	Location    string `json:"location,omitempty"`
	DateAdded   *Date  `json:"date_added,omitempty"`
	LastWatered *Date  `json:"last_watered,omitempty"`
}

// Species is community-scoped reference data, never owned or deleted by this
// client.
type Species struct {
	ID                int    `json:"id"`
	CommonName        string `json:"common_name"`
	ScientificName    string `json:"scientific_name,omitempty"`
	Sunlight          string `json:"sunlight,omitempty"`
	WaterRequirements string `json:"water_requirements,omitempty"`
}

// CareType names a category of care activity. A nil UserID marks a system
// default, which is visible to everyone and never editable from this client.
type CareType struct {
	ID          int    `json:"id"`
	UserID      *int   `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// IsDefault reports whether the care type is a shared system default.
func (ct CareType) IsDefault() bool {
	return ct.UserID == nil
}

// CarePlan binds one plant to one care type on a recurring schedule. Active
// is the only lifecycle state the server exposes.
type CarePlan struct {
	ID            int    `json:"id"`
	UserID        int    `json:"user_id,omitempty"`
	PlantID       int    `json:"plant_id"`
	CareTypeID    int    `json:"care_type_id"`
	StartDate     *Date  `json:"start_date,omitempty"`
	FrequencyDays *int   `json:"frequency_days,omitempty"`
	Note          string `json:"note,omitempty"`
	Active        bool   `json:"active"`
}

// CareLog records that a care activity happened on a date. Append-only from
// the client's perspective.
type CareLog struct {
	ID         int    `json:"id"`
	PlantID    int    `json:"plant_id"`
	CareTypeID int    `json:"care_type_id"`
	CareDate   Date   `json:"care_date"`
	Note       string `json:"note,omitempty"`
}

// UpcomingCareLog is a server-derived projection of a due or near-due care
// obligation. Unlike the other entities it denormalizes display strings: the
// care type arrives as a name, not an id, and must be resolved back before a
// completion can be logged.
type UpcomingCareLog struct {
	PlantID       int    `json:"plant_id"`
	PlantNickname string `json:"plant_nickname"`
	CareType      string `json:"care_type"`
	Note          string `json:"note,omitempty"`
	DueDate       Date   `json:"due_date"`
	DaysUntilDue  int    `json:"days_until_due"`
}
