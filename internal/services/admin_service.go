package services

import (
	"errors"

	"cofoundr_backend/internal/logger"
	"cofoundr_backend/internal/models"
	"cofoundr_backend/internal/repositories"
	"cofoundr_backend/pkg/apperrors"
)

// AdminService exposes moderation actions. Route-level role checks gate
// access; the service only validates the transition itself.
type AdminService interface {
	SetUserStatus(actorID, userID string, status models.UserStatus) error
}

type adminService struct {
	userRepo repositories.UserRepository
}

func NewAdminService(userRepo repositories.UserRepository) AdminService {
	return &adminService{userRepo: userRepo}
}

func (s *adminService) SetUserStatus(actorID, userID string, status models.UserStatus) error {
	switch status {
	case models.UserStatusActive, models.UserStatusSuspended:
	default:
		return apperrors.NewBadRequestError("Status must be active or suspended")
	}
	if actorID == userID {
		return apperrors.NewBadRequestError("Cannot change your own status")
	}
	if err := s.userRepo.UpdateStatus(userID, status); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUnknownUser
		}
		return apperrors.TransientStorageError("update user status", err)
	}
	logger.Info("user status changed", "actor_id", actorID, "user_id", userID, "status", status)
	return nil
}
