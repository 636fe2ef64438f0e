package token

import "github.com/golang-jwt/jwt/v5"

type Claim struct {
	AdministratorID int64  `json:"administrator_id"`
	PersonID        int64  `json:"person_id"`
	Email           string `json:"email"`
	jwt.RegisteredClaims
}
