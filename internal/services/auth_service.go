package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"cofoundr_backend/internal/auth"
	"cofoundr_backend/internal/email"
	"cofoundr_backend/internal/logger"
	"cofoundr_backend/internal/models"
	"cofoundr_backend/internal/repositories"
	"cofoundr_backend/internal/services/dto"
	"cofoundr_backend/pkg/apperrors"
)

const refreshTokenTTL = 30 * 24 * time.Hour

// AuthService handles registration, email verification, login and token
// rotation.
type AuthService interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	VerifyEmail(token string) error
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(refreshToken string) (*dto.AuthResponse, error)
	Logout(refreshToken string) error
}

type authService struct {
	userRepo repositories.UserRepository
	mailer   email.Provider
}

func NewAuthService(userRepo repositories.UserRepository, mailer email.Provider) AuthService {
	return &authService{userRepo: userRepo, mailer: mailer}
}

func (s *authService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:             strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:      hash,
		Name:              req.Name,
		Role:              models.UserRoleMember,
		Status:            models.UserStatusPending,
		VerificationToken: uuid.NewString(),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.TransientStorageError("create user", err)
	}

	// Registration already committed; a mail outage should not undo it.
	if err := s.mailer.SendVerification(user.Email, user.VerificationToken); err != nil {
		logger.WithError(err).Error("failed to send verification email", "user_id", user.ID)
	}

	logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

func (s *authService) VerifyEmail(token string) error {
	if token == "" {
		return apperrors.ErrInvalidToken
	}
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.TransientStorageError("look up verification token", err)
	}
	if err := s.userRepo.VerifyUser(user.ID); err != nil {
		return apperrors.TransientStorageError("verify user", err)
	}
	logger.Info("email verified", "user_id", user.ID)
	return nil
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.TransientStorageError("look up user", err)
	}
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}
	return s.issueTokens(user)
}

func (s *authService) Refresh(refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.TransientStorageError("look up refresh token", err)
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	// One-shot tokens: the presented token is consumed and a new one issued.
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return nil, apperrors.TransientStorageError("rotate refresh token", err)
	}
	return s.issueTokens(user)
}

func (s *authService) Logout(refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil &&
		!errors.Is(err, repositories.ErrRefreshTokenNotFound) {
		return apperrors.TransientStorageError("delete refresh token", err)
	}
	return nil
}

func (s *authService) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.userRepo.CreateRefreshToken(refresh); err != nil {
		return nil, apperrors.TransientStorageError("store refresh token", err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		User:         user.Public(),
	}, nil
}
