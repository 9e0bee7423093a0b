package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/takwin-app/landing-api/internal/models"
	"github.com/takwin-app/landing-api/pkg/config"
	appErrors "github.com/takwin-app/landing-api/pkg/errors"
)

// LoginRequest carries the admin credentials.
type LoginRequest struct {
	User string `json:"user" validate:"required"`
	Pass string `json:"pass" validate:"required"`
}

// AuthService manages the single-administrator session lifecycle.
type AuthService struct {
	store     SessionStore
	config    config.AdminConfig
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(store SessionStore, cfg config.AdminConfig, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{store: store, config: cfg, validator: validate, logger: logger}
}

// Login checks the credentials against the injected admin identity and, on
// match, issues an opaque session token with a fixed time-to-live. There is
// no lockout or rate limiting.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid credentials")
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.User), []byte(s.config.User))
	passOK := subtle.ConstantTimeCompare([]byte(req.Pass), []byte(s.config.Pass))
	if userOK&passOK != 1 {
		s.logger.Warn("failed admin login attempt", zap.String("user", req.User))
		return "", appErrors.Clone(appErrors.ErrInvalidCredentials, "invalid credentials")
	}

	token := uuid.NewString()
	s.store.Put(token, models.Session{
		User:      s.config.User,
		ExpiresAt: time.Now().Add(s.config.SessionTTL),
	})
	return token, nil
}

// Logout deletes the session record unconditionally. It never fails: an
// unknown or empty token is simply ignored.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	s.store.Delete(token)
}

// Authenticate resolves a token to the bound administrator name, failing
// with Unauthorized when the session is missing or expired.
func (s *AuthService) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", appErrors.ErrUnauthorized
	}
	session, ok := s.store.Get(token)
	if !ok {
		return "", appErrors.ErrUnauthorized
	}
	return session.User, nil
}

// SessionTTL exposes the configured lifetime for cookie Max-Age.
func (s *AuthService) SessionTTL() time.Duration {
	return s.config.SessionTTL
}
