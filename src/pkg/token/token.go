package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// BearerLifetime is how long a session token stays valid.
const BearerLifetime = 30 * time.Minute

func Generate(administratorID, personID int64, email, issuer, secret string) (string, error) {
	now := time.Now()
	claims := &Claim{
		AdministratorID: administratorID,
		PersonID:        personID,
		Email:           email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(BearerLifetime)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func Verify(tokenString, secret string) (*Claim, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claim{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claim, ok := parsed.Claims.(*Claim)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claim, nil
}
