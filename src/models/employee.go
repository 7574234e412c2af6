package models

import (
	"hrms/src/types"
)

// Employee email uniqueness is global, not per tenant. Known quirk,
// kept on purpose.
type Employee struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	OrganisationID uint   `gorm:"not null;index" json:"organisationId"`
	Firstname      string `gorm:"not null" json:"firstname"`
	Lastname       string `gorm:"not null" json:"lastname"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Phone          string `json:"phone,omitempty"`
	Position       string `json:"position,omitempty"`
	Department     string `json:"department,omitempty"`

	Teams []*Team `gorm:"many2many:employee_teams" json:"teams"`

	types.Timestamps
}
