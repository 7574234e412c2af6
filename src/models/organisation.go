package models

import (
	"hrms/src/types"
)

// Organisation is the tenant boundary. Deleting one cascades to every
// row it owns.
type Organisation struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`

	Users     []User     `gorm:"foreignKey:OrganisationID;constraint:OnDelete:CASCADE" json:"-"`
	Employees []Employee `gorm:"foreignKey:OrganisationID;constraint:OnDelete:CASCADE" json:"-"`
	Teams     []Team     `gorm:"foreignKey:OrganisationID;constraint:OnDelete:CASCADE" json:"-"`
	Logs      []Log      `gorm:"foreignKey:OrganisationID;constraint:OnDelete:CASCADE" json:"-"`

	types.Timestamps
}
