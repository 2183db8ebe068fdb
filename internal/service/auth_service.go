package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/legalsuite/case-service/internal/auth"
	"github.com/legalsuite/case-service/internal/config"
	"github.com/legalsuite/case-service/internal/domain"
	"github.com/legalsuite/case-service/internal/repository"
	apperrors "github.com/legalsuite/case-service/pkg/errorutil"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Login authenticates an operator by username and password.
//
// Unknown username and wrong password produce the identical error so the
// response never reveals which check failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return "", time.Time{}, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", time.Time{}, apperrors.MapError(err)
	}
	return token, exp, nil
}

// RegisterUser creates a new operator account and issues a first token.
func (s *AuthService) RegisterUser(ctx context.Context, username, password string, role domain.UserRole) (*domain.User, string, time.Time, error) {
	if !domain.ValidUserRole(role) {
		return nil, "", time.Time{}, apperrors.NewValidationError([]string{"role must be one of: admin, operator"})
	}
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, "", time.Time{}, apperrors.NewValidationError([]string{"username is already taken"})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return user, token, exp, nil
}

// ListUsers returns every operator account.
func (s *AuthService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
