package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/intempo-hq/timesheet-backend-go/internal/domain/auth"
	"github.com/intempo-hq/timesheet-backend-go/internal/domain/user"
	"github.com/intempo-hq/timesheet-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error)
	LoginWithGoogle(ctx context.Context, googleEmail string) (auth.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error)
	Logout(refreshToken string)
}

type ServiceImpl struct {
	userRepo user.UserRepository
	jwt      jwt.Service
}

func NewService(userRepo user.UserRepository, jwtService jwt.Service) Service {
	return &ServiceImpl{
		userRepo: userRepo,
		jwt:      jwtService,
	}
}

// Login implements Service.
func (s *ServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !userData.Active {
		return auth.TokenResponse{}, auth.ErrUserInactive
	}
	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(userData)
}

// LoginWithGoogle implements Service. Google accounts map onto local
// users by username, accounts are provisioned by an admin beforehand.
func (s *ServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail string) (auth.TokenResponse, error) {
	userData, err := s.userRepo.GetByUsername(ctx, googleEmail)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !userData.Active {
		return auth.TokenResponse{}, auth.ErrUserInactive
	}

	return s.issueTokens(userData)
}

// Refresh implements Service. Refresh tokens rotate: the presented
// token is revoked and a fresh pair is issued.
func (s *ServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	if s.jwt.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	token, err := jwtauth.VerifyToken(s.jwt.JWTAuth(), refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !userData.Active {
		return auth.TokenResponse{}, auth.ErrUserInactive
	}

	s.jwt.RevokeToken(refreshToken)

	return s.issueTokens(userData)
}

// Logout implements Service.
func (s *ServiceImpl) Logout(refreshToken string) {
	if refreshToken != "" {
		s.jwt.RevokeToken(refreshToken)
	}
}

func (s *ServiceImpl) issueTokens(userData user.User) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = s.jwt.GenerateAccessToken(
		userData.ID, userData.Username, userData.Role, userData.Machine,
	)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = s.jwt.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return tokenResponse, nil
}
