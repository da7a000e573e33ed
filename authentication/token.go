package authentication

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mohitt09/Counselling/models"
)

// GenerateToken signs a one-hour HS256 token for the given credential.
func GenerateToken(secret string, id uint, credType int) (string, error) {
	claims := &models.AuthClaims{
		ID:   id,
		Type: credType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
