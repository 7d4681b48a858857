package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/shiningstar/learninglens/internal/app/models"
	"github.com/shiningstar/learninglens/internal/app/models/dto"
	"github.com/shiningstar/learninglens/internal/app/repositories"
	"github.com/shiningstar/learninglens/internal/db"
	"github.com/shiningstar/learninglens/internal/pkg/apperrors"
	"github.com/shiningstar/learninglens/internal/pkg/auth"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress string) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
	redis      *db.RedisClient
	activity   ActivityLogService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	jwtService *auth.JWTService,
	redis *db.RedisClient,
	activity ActivityLogService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		redis:      redis,
		activity:   activity,
		logger:     logger,
	}
}

// Login authenticates a user by username and password and issues a token pair.
// The refresh token is stored server-side so it can be rotated and revoked.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest, ipAddress string) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			s.activity.Record(ctx, nil, "login_failed", fmt.Sprintf("unknown username %q", req.Username), ipAddress)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		s.activity.Record(ctx, &user.ID, "login_failed", "wrong password", ipAddress)
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login time")
	} else {
		now := time.Now()
		user.LastLogin = &now
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.activity.Record(ctx, &user.ID, "login", "", ipAddress)

	return &dto.AuthResponse{
		Token: *tokens,
		User:  *dto.NewUserResponse(user),
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new token pair.
// The presented token is consumed, each refresh token is single use.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	if refreshToken == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	key := db.PrefixRefresh + refreshToken
	userIDStr, err := s.redis.GetString(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrCacheMiss) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, fmt.Errorf("error looking up refresh token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrTokenInvalid
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	if err := s.redis.Delete(ctx, key); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to invalidate consumed refresh token")
	}

	return s.issueTokens(ctx, user)
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	ttl := time.Until(s.jwtService.GetRefreshTokenExpiry())
	if err := s.redis.SetString(ctx, db.PrefixRefresh+refreshToken, strconv.FormatInt(user.ID, 10), ttl); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             int64(expiresIn),
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: int64(refreshExpiresIn),
	}, nil
}
