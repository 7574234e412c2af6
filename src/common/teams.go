package common

import (
	"errors"
	"strings"

	"hrms/src/models"
	"hrms/src/types"

	"gorm.io/gorm"
)

func ListTeams(d *gorm.DB, organisationId uint) ([]models.Team, error) {
	teams := []models.Team{}
	err := d.
		Model(&models.Team{}).
		Where(&models.Team{OrganisationID: organisationId}).
		Preload("Employees", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("employees.id", "employees.firstname", "employees.lastname", "employees.email")
		}).
		Order("created_at DESC").
		Find(&teams).
		Error
	if err != nil {
		return nil, err
	}
	// Associations serialize as arrays, never null.
	for i := range teams {
		if teams[i].Employees == nil {
			teams[i].Employees = []*models.Employee{}
		}
	}
	return teams, nil
}

func GetTeam(d *gorm.DB, organisationId uint, id uint) (*models.Team, error) {
	var team models.Team
	err := d.
		Where(&models.Team{ID: id, OrganisationID: organisationId}).
		Preload("Employees").
		First(&team).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound("Team not found")
		}
		return nil, err
	}
	if team.Employees == nil {
		team.Employees = []*models.Employee{}
	}
	return &team, nil
}

func CreateTeam(d *gorm.DB, organisationId uint, userId uint, body *types.CreateTeamRequestBody) (*models.Team, error) {
	team := models.Team{
		OrganisationID: organisationId,
		Employees:      []*models.Employee{},
		Name:           body.Name,
		Description:    body.Description,
	}
	err := d.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		return RecordTrail(tx, organisationId, userId, types.ACTION_CREATE, types.ENTITY_TEAM, team.ID, types.Metadata{
			"name": body.Name,
		})
	})
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func UpdateTeam(d *gorm.DB, organisationId uint, userId uint, id uint, body *types.UpdateTeamRequestBody) (*models.Team, error) {
	changes := map[string]any{}
	if body.Name != nil {
		if strings.TrimSpace(*body.Name) == "" {
			return nil, types.ErrValidation("name cannot be empty")
		}
		changes["name"] = *body.Name
	}
	if body.Description != nil {
		changes["description"] = *body.Description
	}

	var team models.Team
	err := d.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where(&models.Team{ID: id, OrganisationID: organisationId}).
			First(&team).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound("Team not found")
			}
			return err
		}
		if len(changes) > 0 {
			if err := tx.Model(&team).Updates(changes).Error; err != nil {
				return err
			}
		}
		return RecordTrail(tx, organisationId, userId, types.ACTION_UPDATE, types.ENTITY_TEAM, team.ID, types.Metadata{
			"changes": changes,
		})
	})
	if err != nil {
		return nil, err
	}
	if team.Employees == nil {
		team.Employees = []*models.Employee{}
	}
	return &team, nil
}

func DeleteTeam(d *gorm.DB, organisationId uint, userId uint, id uint) error {
	return d.Transaction(func(tx *gorm.DB) error {
		var team models.Team
		if err := tx.
			Where(&models.Team{ID: id, OrganisationID: organisationId}).
			First(&team).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound("Team not found")
			}
			return err
		}
		snapshot := EntitySnapshot(&team)
		if err := tx.Model(&team).Association("Employees").Clear(); err != nil {
			return err
		}
		if err := tx.Delete(&team).Error; err != nil {
			return err
		}
		return RecordTrail(tx, organisationId, userId, types.ACTION_DELETE, types.ENTITY_TEAM, id, snapshot)
	})
}
