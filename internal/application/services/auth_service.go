package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dietplanner/backend/internal/infrastructure/persistence"
	"github.com/dietplanner/backend/pkg/auth"
	"github.com/dietplanner/backend/pkg/errors"
)

// AuthService authenticates admin accounts for the REST API
type AuthService struct {
	admins *persistence.AdminRepository
	log    *zap.Logger
}

func NewAuthService(admins *persistence.AdminRepository, log *zap.Logger) *AuthService {
	return &AuthService{admins: admins, log: log}
}

// LoginResult carries the issued token and its expiry
type LoginResult struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	Session   auth.AdminSession `json:"admin"`
}

// Login verifies credentials and issues a JWT
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if admin == nil || !auth.VerifyPassword(password, admin.PasswordHash) {
		s.log.Warn("failed login attempt", zap.String("username", username))
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	session := auth.AdminSession{ID: admin.ID, Username: admin.Username}
	token, expiresAt, err := auth.GenerateToken(session)
	if err != nil {
		return nil, errors.NewInternalError("token generation failed", err)
	}

	s.log.Info("admin logged in", zap.String("username", username))
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Session: session}, nil
}
