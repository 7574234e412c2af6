package models

import (
	"hrms/src/types"
)

type User struct {
	ID             uint   `gorm:"primarykey" json:"id"`
	OrganisationID uint   `gorm:"not null;index" json:"organisationId"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Password       string `gorm:"not null" json:"-"`
	Role           string `gorm:"default:'admin'" json:"role"`

	Organisation *Organisation `gorm:"foreignKey:OrganisationID" json:"-"`

	types.Timestamps
}
