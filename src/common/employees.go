package common

import (
	"errors"
	"strings"

	"hrms/src/models"
	"hrms/src/types"

	"gorm.io/gorm"
)

// Every function here is implicitly scoped to the caller's
// organisation. A row under another tenant looks exactly like a row
// that does not exist.

func ListEmployees(d *gorm.DB, organisationId uint) ([]models.Employee, error) {
	employees := []models.Employee{}
	err := d.
		Model(&models.Employee{}).
		Where(&models.Employee{OrganisationID: organisationId}).
		Preload("Teams", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("teams.id", "teams.name")
		}).
		Order("created_at DESC").
		Find(&employees).
		Error
	if err != nil {
		return nil, err
	}
	// Associations serialize as arrays, never null.
	for i := range employees {
		if employees[i].Teams == nil {
			employees[i].Teams = []*models.Team{}
		}
	}
	return employees, nil
}

func GetEmployee(d *gorm.DB, organisationId uint, id uint) (*models.Employee, error) {
	var employee models.Employee
	err := d.
		Where(&models.Employee{ID: id, OrganisationID: organisationId}).
		Preload("Teams").
		First(&employee).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrNotFound("Employee not found")
		}
		return nil, err
	}
	if employee.Teams == nil {
		employee.Teams = []*models.Team{}
	}
	return &employee, nil
}

func CreateEmployee(d *gorm.DB, organisationId uint, userId uint, body *types.CreateEmployeeRequestBody) (*models.Employee, error) {
	employee := models.Employee{
		OrganisationID: organisationId,
		Teams:          []*models.Team{},
		Firstname:      body.Firstname,
		Lastname:       body.Lastname,
		Email:          body.Email,
		Phone:          body.Phone,
		Position:       body.Position,
		Department:     body.Department,
	}
	err := d.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&employee).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return types.ErrConflict("Employee email already exists")
			}
			return err
		}
		return RecordTrail(tx, organisationId, userId, types.ACTION_CREATE, types.ENTITY_EMPLOYEE, employee.ID, types.Metadata{
			"firstname": body.Firstname,
			"lastname":  body.Lastname,
			"email":     body.Email,
		})
	})
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func UpdateEmployee(d *gorm.DB, organisationId uint, userId uint, id uint, body *types.UpdateEmployeeRequestBody) (*models.Employee, error) {
	changes := map[string]any{}
	required := map[string]*string{
		"firstname": body.Firstname,
		"lastname":  body.Lastname,
		"email":     body.Email,
	}
	for column, value := range required {
		if value == nil {
			continue
		}
		if strings.TrimSpace(*value) == "" {
			return nil, types.ErrValidation(column + " cannot be empty")
		}
		changes[column] = *value
	}
	// Optional fields may be cleared with an explicit empty string.
	if body.Phone != nil {
		changes["phone"] = *body.Phone
	}
	if body.Position != nil {
		changes["position"] = *body.Position
	}
	if body.Department != nil {
		changes["department"] = *body.Department
	}

	var employee models.Employee
	err := d.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where(&models.Employee{ID: id, OrganisationID: organisationId}).
			First(&employee).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound("Employee not found")
			}
			return err
		}
		if len(changes) > 0 {
			if err := tx.Model(&employee).Updates(changes).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return types.ErrConflict("Employee email already exists")
				}
				return err
			}
		}
		return RecordTrail(tx, organisationId, userId, types.ACTION_UPDATE, types.ENTITY_EMPLOYEE, employee.ID, types.Metadata{
			"changes": changes,
		})
	})
	if err != nil {
		return nil, err
	}
	if employee.Teams == nil {
		employee.Teams = []*models.Team{}
	}
	return &employee, nil
}

func DeleteEmployee(d *gorm.DB, organisationId uint, userId uint, id uint) error {
	return d.Transaction(func(tx *gorm.DB) error {
		var employee models.Employee
		if err := tx.
			Where(&models.Employee{ID: id, OrganisationID: organisationId}).
			First(&employee).
			Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.ErrNotFound("Employee not found")
			}
			return err
		}
		snapshot := EntitySnapshot(&employee)
		if err := tx.Model(&employee).Association("Teams").Clear(); err != nil {
			return err
		}
		if err := tx.Delete(&employee).Error; err != nil {
			return err
		}
		return RecordTrail(tx, organisationId, userId, types.ACTION_DELETE, types.ENTITY_EMPLOYEE, id, snapshot)
	})
}
