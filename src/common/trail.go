package common

import (
	"encoding/json"

	"hrms/src/models"
	"hrms/src/types"

	"gorm.io/gorm"
)

// RecordTrail appends one audit entry. It must run on the same
// transaction as the mutation it describes so neither can commit
// without the other.
func RecordTrail(tx *gorm.DB, organisationId uint, userId uint, action string, entity string, entityId uint, metadata types.Metadata) error {
	entry := models.Log{
		OrganisationID: organisationId,
		UserID:         userId,
		Action:         action,
		Entity:         entity,
		EntityID:       entityId,
		Metadata:       metadata,
	}
	return tx.Create(&entry).Error
}

// EntitySnapshot flattens a model into trail metadata, used to keep
// the prior state of hard-deleted rows.
func EntitySnapshot(v any) types.Metadata {
	raw, err := json.Marshal(v)
	if err != nil {
		return types.Metadata{}
	}
	var m types.Metadata
	if err := json.Unmarshal(raw, &m); err != nil {
		return types.Metadata{}
	}
	return m
}
