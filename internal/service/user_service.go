package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/empowerhub/empowerhub-api/internal/domain"
	"github.com/empowerhub/empowerhub-api/internal/platform/logger"
	"github.com/empowerhub/empowerhub-api/internal/service/auth"
	"github.com/empowerhub/empowerhub-api/internal/store"
)

// AuthResult carries the outcome of a successful register, login, or token
// refresh: the user and a fresh access/refresh token pair.
type AuthResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

// UserService provides account registration and authentication operations.
type UserService interface {
	// Register creates a new user account and returns a token pair.
	// Returns store.ErrEmailExists if the email is already taken and
	// domain validation errors for invalid input.
	Register(ctx context.Context, email, password, phone string) (*AuthResult, error)

	// Login authenticates a user by email and password.
	// Returns ErrInvalidCredentials on unknown email or wrong password.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Refresh exchanges a valid refresh token for a new token pair.
	// Returns auth validation errors for invalid or expired tokens.
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
}

// userServiceImpl implements the UserService interface.
type userServiceImpl struct {
	userStore  store.UserStore
	passwords  auth.PasswordVerifier
	jwtService auth.JWTService
	logger     *slog.Logger
}

// Ensure userServiceImpl implements UserService interface
var _ UserService = (*userServiceImpl)(nil)

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(
	userStore store.UserStore,
	passwords auth.PasswordVerifier,
	jwtService auth.JWTService,
	log *slog.Logger,
) (UserService, error) {
	if userStore == nil {
		return nil, errors.New("user store cannot be nil")
	}
	if passwords == nil {
		return nil, errors.New("password verifier cannot be nil")
	}
	if jwtService == nil {
		return nil, errors.New("jwt service cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &userServiceImpl{
		userStore:  userStore,
		passwords:  passwords,
		jwtService: jwtService,
		logger:     log.With(slog.String("component", "user_service")),
	}, nil
}

// Register implements UserService.Register
func (s *userServiceImpl) Register(
	ctx context.Context,
	email, password, phone string,
) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(email, password, phone)
	if err != nil {
		log.Debug("registration rejected by validation",
			slog.String("error", err.Error()))
		return nil, err
	}

	hashed, err := s.passwords.Hash(password)
	if err != nil {
		log.Error("failed to hash password during registration",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID.String()))
	return result, nil
}

// Login implements UserService.Login
func (s *userServiceImpl) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Indistinguishable from a wrong password
			log.Debug("login failed: unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.passwords.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login failed: password mismatch",
			slog.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Info("user logged in",
		slog.String("user_id", user.ID.String()))
	return result, nil
}

// Refresh implements UserService.Refresh
func (s *userServiceImpl) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	claims, err := s.jwtService.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		log.Debug("token refresh failed",
			slog.String("error", err.Error()))
		return nil, err
	}

	user, err := s.userStore.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Token outlived the account
			log.Warn("token refresh for deleted user",
				slog.String("user_id", claims.UserID.String()))
			return nil, auth.ErrInvalidRefreshToken
		}
		return nil, err
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Debug("token pair refreshed",
		slog.String("user_id", user.ID.String()))
	return result, nil
}

// issueTokens generates a fresh access/refresh token pair for the user.
func (s *userServiceImpl) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtService.GenerateRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
