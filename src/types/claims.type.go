package types

import "github.com/golang-jwt/jwt/v4"

// Claims is the bearer token payload. Everything downstream needs to
// scope a request lives here, so the gate never touches the database.
type Claims struct {
	UserID         uint   `json:"userId"`
	OrganisationID uint   `json:"organisationId"`
	Role           string `json:"role"`
	jwt.RegisteredClaims
}
