package common

import (
	"errors"

	"hrms/src/models"
	"hrms/src/types"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssignTeam links an employee and a team. Both endpoints must belong
// to the caller's organisation. Assigning an existing pair is a no-op
// success; the join table's composite key plus ON CONFLICT DO NOTHING
// guarantees at most one membership row per pair.
func AssignTeam(d *gorm.DB, organisationId uint, userId uint, employeeId uint, teamId uint) error {
	return d.Transaction(func(tx *gorm.DB) error {
		employee, team, err := membershipEndpoints(tx, organisationId, employeeId, teamId)
		if err != nil {
			return err
		}
		membership := models.EmployeeTeam{EmployeeID: employee.ID, TeamID: team.ID}
		if err := tx.
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&membership).
			Error; err != nil {
			return err
		}
		return RecordTrail(tx, organisationId, userId, types.ACTION_ASSIGN_TEAM, types.ENTITY_EMPLOYEE, employee.ID, types.Metadata{
			"teamId":   team.ID,
			"teamName": team.Name,
		})
	})
}

// UnassignTeam removes the membership if present. Removing an absent
// membership is not an error.
func UnassignTeam(d *gorm.DB, organisationId uint, userId uint, employeeId uint, teamId uint) error {
	return d.Transaction(func(tx *gorm.DB) error {
		employee, team, err := membershipEndpoints(tx, organisationId, employeeId, teamId)
		if err != nil {
			return err
		}
		if err := tx.
			Where(&models.EmployeeTeam{EmployeeID: employee.ID, TeamID: team.ID}).
			Delete(&models.EmployeeTeam{}).
			Error; err != nil {
			return err
		}
		return RecordTrail(tx, organisationId, userId, types.ACTION_UNASSIGN_TEAM, types.ENTITY_EMPLOYEE, employee.ID, types.Metadata{
			"teamId":   team.ID,
			"teamName": team.Name,
		})
	})
}

func membershipEndpoints(tx *gorm.DB, organisationId uint, employeeId uint, teamId uint) (*models.Employee, *models.Team, error) {
	var employee models.Employee
	if err := tx.
		Where(&models.Employee{ID: employeeId, OrganisationID: organisationId}).
		First(&employee).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, types.ErrNotFound("Employee not found")
		}
		return nil, nil, err
	}
	var team models.Team
	if err := tx.
		Where(&models.Team{ID: teamId, OrganisationID: organisationId}).
		First(&team).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, types.ErrNotFound("Team not found")
		}
		return nil, nil, err
	}
	return &employee, &team, nil
}
