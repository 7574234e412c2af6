package controllers

import (
	"errors"
	"log"

	"hrms/src/common"
	"hrms/src/models"
	"hrms/src/types"
	"hrms/src/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// bindError separates a malformed email from a missing field so a
// fully populated body does not get the "required" message.
func bindError(err error, missingMessage string) *types.APIError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "email" {
				return types.ErrValidation("Invalid email address")
			}
		}
	}
	return types.ErrValidation(missingMessage)
}

// AuthRegister creates a new tenant: the organisation, its first admin
// user and the register trail entry commit in one transaction.
func AuthRegister(d *gorm.DB, ctx *gin.Context) (*types.AuthResult, error) {
	var body types.RegisterRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, bindError(err, "All fields are required")
	}

	var count int64
	if err := d.
		Model(&models.Organisation{}).
		Where(&models.Organisation{Email: body.OrganisationEmail}).
		Count(&count).
		Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, types.ErrConflict("Organisation email already exists")
	}
	if err := d.
		Model(&models.User{}).
		Where(&models.User{Email: body.UserEmail}).
		Count(&count).
		Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, types.ErrConflict("User email already exists")
	}

	hashed, err := utils.HashPassword(body.Password)
	if err != nil {
		return nil, err
	}

	organisation := models.Organisation{
		Name:  body.OrganisationName,
		Email: body.OrganisationEmail,
	}
	var user models.User
	err = d.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&organisation).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return types.ErrConflict("Organisation email already exists")
			}
			return err
		}
		user = models.User{
			OrganisationID: organisation.ID,
			Email:          body.UserEmail,
			Password:       hashed,
			Role:           types.ROLE_ADMIN,
		}
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return types.ErrConflict("User email already exists")
			}
			return err
		}
		return common.RecordTrail(tx, organisation.ID, user.ID, types.ACTION_REGISTER, types.ENTITY_ORGANISATION, organisation.ID, types.Metadata{
			"organisationName": body.OrganisationName,
			"userEmail":        body.UserEmail,
		})
	})
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(user.ID, organisation.ID, user.Role)
	if err != nil {
		log.Printf("Error generating token for user [%d]: %s\n", user.ID, err.Error())
		return nil, err
	}
	return &types.AuthResult{
		Token: token,
		User: types.UserProfile{
			ID:               user.ID,
			Email:            user.Email,
			Role:             user.Role,
			OrganisationID:   organisation.ID,
			OrganisationName: organisation.Name,
		},
	}, nil
}

// AuthLogin verifies credentials. The failure message never says
// whether the email or the password was wrong.
func AuthLogin(d *gorm.DB, ctx *gin.Context) (*types.AuthResult, error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, types.ErrValidation("Email and password are required")
	}

	var user models.User
	if err := d.
		Where(&models.User{Email: body.Email}).
		Preload("Organisation").
		First(&user).
		Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.ErrAuth("Invalid credentials")
		}
		return nil, err
	}
	if !utils.VerifyPassword(user.Password, body.Password) {
		return nil, types.ErrAuth("Invalid credentials")
	}

	if err := d.Transaction(func(tx *gorm.DB) error {
		return common.RecordTrail(tx, user.OrganisationID, user.ID, types.ACTION_LOGIN, types.ENTITY_USER, user.ID, nil)
	}); err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(user.ID, user.OrganisationID, user.Role)
	if err != nil {
		log.Printf("Error generating token for user [%d]: %s\n", user.ID, err.Error())
		return nil, err
	}
	organisationName := ""
	if user.Organisation != nil {
		organisationName = user.Organisation.Name
	}
	return &types.AuthResult{
		Token: token,
		User: types.UserProfile{
			ID:               user.ID,
			Email:            user.Email,
			Role:             user.Role,
			OrganisationID:   user.OrganisationID,
			OrganisationName: organisationName,
		},
	}, nil
}
