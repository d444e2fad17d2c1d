package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dietplanner/backend/pkg/utils"
)

// AdminSession represents the admin session data stored in JWT
type AdminSession struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Claims represents JWT claims
type Claims struct {
	Admin AdminSession `json:"admin"`
	jwt.RegisteredClaims
}

// TokenTTL is the lifetime of issued tokens
const TokenTTL = 24 * time.Hour

var jwtSecret = []byte(getJWTSecret())

func getJWTSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default-secret-change-in-production"
	}
	return secret
}

// GenerateToken creates a JWT token for an admin session
func GenerateToken(session AdminSession) (string, time.Time, error) {
	expirationTime := time.Now().Add(TokenTTL)

	claims := &Claims{
		Admin: session,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        utils.GenerateID(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret)
	return signed, expirationTime, err
}

// ValidateToken validates and parses a JWT token
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
