package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Timestamps struct {
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt,omitempty"`
}

// Metadata is a schemaless jsonb payload attached to audit log entries.
type Metadata map[string]any

func (m Metadata) Value() (driver.Value, error) {
	valueString, err := json.Marshal(m)
	return string(valueString), err
}

func (m *Metadata) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported type for Metadata")
	}
}

const (
	ROLE_ADMIN = "admin"
)

const (
	ACTION_REGISTER      = "register"
	ACTION_LOGIN         = "login"
	ACTION_CREATE        = "create"
	ACTION_UPDATE        = "update"
	ACTION_DELETE        = "delete"
	ACTION_ASSIGN_TEAM   = "assign_team"
	ACTION_UNASSIGN_TEAM = "unassign_team"
)

const (
	ENTITY_ORGANISATION = "organisation"
	ENTITY_USER         = "user"
	ENTITY_EMPLOYEE     = "employee"
	ENTITY_TEAM         = "team"
)

type RegisterRequestBody struct {
	OrganisationName  string `json:"organisationName" binding:"required,notblank"`
	OrganisationEmail string `json:"organisationEmail" binding:"required,email"`
	UserEmail         string `json:"userEmail" binding:"required,email"`
	Password          string `json:"password" binding:"required,notblank"`
}

type LoginRequestBody struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateEmployeeRequestBody struct {
	Firstname  string `json:"firstname" binding:"required,notblank"`
	Lastname   string `json:"lastname" binding:"required,notblank"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone,omitempty"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`
}

// Update bodies use pointers so a field that was not sent is
// distinguishable from a field explicitly set to its zero value.
type UpdateEmployeeRequestBody struct {
	Firstname  *string `json:"firstname,omitempty"`
	Lastname   *string `json:"lastname,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
}

type CreateTeamRequestBody struct {
	Name        string `json:"name" binding:"required,notblank"`
	Description string `json:"description,omitempty"`
}

type UpdateTeamRequestBody struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type AssignTeamRequestBody struct {
	TeamID uint `json:"teamId" binding:"required"`
}

// UserProfile is the public shape of an authenticated user.
type UserProfile struct {
	ID               uint   `json:"id"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	OrganisationID   uint   `json:"organisationId"`
	OrganisationName string `json:"organisationName"`
}

type AuthResult struct {
	Token string
	User  UserProfile
}
