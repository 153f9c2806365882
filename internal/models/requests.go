package models

// Request payloads. The API distinguishes an absent field from an explicit
// null or zero, so every optional field is a pointer with omitempty: a field
// the user left blank must not appear in the body at all.

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type PasswordChange struct {
	Email           string `json:"email"`
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type NewPlant struct {
	Nickname    string `json:"nickname"`
	SpeciesID   *int   `json:"species_id,omitempty"`
	Location    string `json:"location,omitempty"`
	DateAdded   *Date  `json:"date_added,omitempty"`
	LastWatered *Date  `json:"last_watered,omitempty"`
}

type PlantUpdate struct {
	Nickname    *string `json:"nickname,omitempty"`
	SpeciesID   *int    `json:"species_id,omitempty"`
	Location    *string `json:"location,omitempty"`
	DateAdded   *Date   `json:"date_added,omitempty"`
	LastWatered *Date   `json:"last_watered,omitempty"`
}

type NewSpecies struct {
	CommonName        string `json:"common_name"`
	ScientificName    string `json:"scientific_name,omitempty"`
	Sunlight          string `json:"sunlight,omitempty"`
	WaterRequirements string `json:"water_requirements,omitempty"`
}

type NewCareType struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CareTypeUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type NewCarePlan struct {
	PlantID       int    `json:"plant_id"`
	CareTypeID    int    `json:"care_type_id"`
	StartDate     *Date  `json:"start_date,omitempty"`
	FrequencyDays *int   `json:"frequency_days,omitempty"`
	Note          string `json:"note,omitempty"`
	Active        *bool  `json:"active,omitempty"`
}

type CarePlanUpdate struct {
	PlantID       *int    `json:"plant_id,omitempty"`
	CareTypeID    *int    `json:"care_type_id,omitempty"`
	StartDate     *Date   `json:"start_date,omitempty"`
	FrequencyDays *int    `json:"frequency_days,omitempty"`
	Note          *string `json:"note,omitempty"`
	Active        *bool   `json:"active,omitempty"`
}

type NewCareLog struct {
	PlantID    int    `json:"plant_id"`
	CareTypeID int    `json:"care_type_id"`
	CareDate   *Date  `json:"care_date,omitempty"`
	Note       string `json:"note,omitempty"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	Message     string `json:"message,omitempty"`
	User        User   `json:"user"`
}
