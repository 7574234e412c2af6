package utils

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"hrms/src/config"
	"hrms/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

func GenerateJWT(userId uint, organisationId uint, role string) (string, error) {
	now := time.Now()
	claims := types.Claims{
		UserID:         userId,
		OrganisationID: organisationId,
		Role:           role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userId),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(config.JWTExpiry())),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString(config.JWTSecret())
}

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(hashed string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// RespondError converts a component failure into the stable error
// envelope. Unknown errors are logged and reported as 500 without
// leaking internals.
func RespondError(ctx *gin.Context, err error) {
	var apiErr *types.APIError
	if errors.As(err, &apiErr) {
		ctx.JSON(apiErr.Status, gin.H{"success": false, "message": apiErr.Message})
		return
	}
	log.Printf("%s %s failed: %s\n", ctx.Request.Method, ctx.Request.URL.Path, err.Error())
	ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
}
