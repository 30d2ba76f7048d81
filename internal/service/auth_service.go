package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/pusdatin-umc/helpdesk-service/internal/auth"
	"github.com/pusdatin-umc/helpdesk-service/internal/domain"
	"github.com/pusdatin-umc/helpdesk-service/internal/repository"
	"github.com/pusdatin-umc/helpdesk-service/internal/validation"
	apperrors "github.com/pusdatin-umc/helpdesk-service/pkg/util/errorutil"
)

const invalidCredentialsMessage = "Username atau password salah"

// Session is the result of a successful login.
type Session struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// AuthService handles staff login.
type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
	hasher *auth.PasswordHasher
	logger *zap.Logger
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo repository.UserRepository
	Tokens   *auth.TokenManager
	Hasher   *auth.PasswordHasher
	Logger   *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:  deps.UserRepo,
		tokens: deps.Tokens,
		hasher: deps.Hasher,
		logger: logger,
	}
}

// Login checks credentials and issues a token. Unknown users and wrong passwords
// produce the same error.
func (s *AuthService) Login(ctx context.Context, input validation.LoginInput) (*Session, error) {
	in, fieldErrs := validation.ValidateLogin(input)
	if fieldErrs != nil {
		return nil, fieldErrs.Err()
	}

	user, err := s.users.GetByUsername(ctx, in.Username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewUnauthorized(invalidCredentialsMessage)
	}
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if err := s.hasher.Compare(user.PasswordHash, in.Password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			s.logger.Warn("compare password hash", zap.String("username", user.Username), zap.Error(err))
		}
		return nil, apperrors.NewUnauthorized(invalidCredentialsMessage)
	}
	if user.Status != domain.UserStatusActive {
		return nil, apperrors.NewForbidden("Akun tidak aktif")
	}

	token, exp, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	s.logger.Info("user logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return &Session{User: user, Token: token, ExpiresAt: exp}, nil
}

// Me returns the account behind an authenticated principal.
func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, mapRepoError(err, "Pengguna")
	}
	return user, nil
}
