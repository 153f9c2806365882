// Package validation holds the pre-submission form checks. A validation
// failure never reaches the network layer; the message is shown as-is in the
// form's error banner.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"verdant/internal/constants"
)

func Login(email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return errors.New("Email and password are required")
	}
	return nil
}

func Registration(username, email, password, confirm string) error {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" || confirm == "" {
		return errors.New("All fields are required.")
	}
	if password != confirm {
		return errors.New("Passwords do not match.")
	}
	return nil
}

func PasswordChange(oldPassword, newPassword, confirm string) error {
	if oldPassword == "" || newPassword == "" || confirm == "" {
		return errors.New("All password fields are required")
	}
	if newPassword != confirm {
		return errors.New("New passwords do not match")
	}
	if len(newPassword) < constants.MinPasswordLength {
		return fmt.Errorf("New password must be at least %d characters", constants.MinPasswordLength)
	}
	return nil
}

func NewPlant(nickname string) error {
	if strings.TrimSpace(nickname) == "" {
		return errors.New("Plant nickname is required")
	}
	return nil
}

func NewCarePlan(plantID, careTypeID int) error {
	if plantID == 0 || careTypeID == 0 {
		return errors.New("Plant and care type are required")
	}
	return nil
}

func NewCareLog(plantID, careTypeID int) error {
	if plantID == 0 || careTypeID == 0 {
		return errors.New("Plant and care type are required")
	}
	return nil
}

func NewCareType(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("Name is required")
	}
	return nil
}

func NewSpecies(commonName string) error {
	if strings.TrimSpace(commonName) == "" {
		return errors.New("Common name is required")
	}
	return nil
}
