package boot

import (
	"hrms/src/models"

	"gorm.io/gorm"
)

// InitDb registers the membership join table and migrates the schema.
// The join table must be set up before AutoMigrate so the composite
// (employee_id, team_id) key lands in the schema.
func InitDb(d *gorm.DB) error {
	if err := d.SetupJoinTable(&models.Employee{}, "Teams", &models.EmployeeTeam{}); err != nil {
		return err
	}
	if err := d.SetupJoinTable(&models.Team{}, "Employees", &models.EmployeeTeam{}); err != nil {
		return err
	}
	return d.AutoMigrate(
		&models.Organisation{},
		&models.User{},
		&models.Employee{},
		&models.Team{},
		&models.Log{},
	)
}
