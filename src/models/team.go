package models

import (
	"hrms/src/types"
)

type Team struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	OrganisationID uint   `gorm:"not null;index" json:"organisationId"`
	Name           string `gorm:"not null" json:"name"`
	Description    string `json:"description,omitempty"`

	Employees []*Employee `gorm:"many2many:employee_teams" json:"employees"`

	types.Timestamps
}

// EmployeeTeam is the membership join row. The composite primary key
// makes assignment idempotent at the store layer: re-assigning an
// existing pair conflicts instead of duplicating.
type EmployeeTeam struct {
	EmployeeID uint `gorm:"primaryKey" json:"employeeId"`
	TeamID     uint `gorm:"primaryKey" json:"teamId"`

	types.Timestamps
}
