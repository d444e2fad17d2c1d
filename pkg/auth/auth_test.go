package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct-horse-1")
	assert.NoError(t, err)
	assert.NotEqual(t, "correct-horse-1", hash)

	assert.True(t, VerifyPassword("correct-horse-1", hash))
	assert.False(t, VerifyPassword("wrong-password-1", hash))
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "password123", wantErr: false},
		{name: "too short", password: "pw1", wantErr: true},
		{name: "no digit", password: "passwordonly", wantErr: true},
		{name: "no letter", password: "1234567890", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	session := AdminSession{ID: "admin-1", Username: "admin"}

	token, expiresAt, err := GenerateToken(session)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "admin-1", claims.Admin.ID)
	assert.Equal(t, "admin", claims.Admin.Username)
	assert.NotEmpty(t, claims.RegisteredClaims.ID)
}

func TestValidateToken_Invalid(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}
