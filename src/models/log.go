package models

import (
	"time"

	"hrms/src/types"
)

// Log is the append-only audit trail. Rows are written once and never
// updated or deleted by the application; only an organisation cascade
// removes them.
type Log struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	OrganisationID uint           `gorm:"not null;index" json:"organisationId"`
	UserID         uint           `gorm:"not null" json:"userId"`
	Action         string         `gorm:"not null" json:"action"`
	Entity         string         `json:"entity"`
	EntityID       uint           `json:"entityId"`
	Metadata       types.Metadata `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}
