package services

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"

	"cofoundr_backend/internal/logger"
	"cofoundr_backend/internal/models"
	"cofoundr_backend/internal/repositories"
	"cofoundr_backend/internal/services/dto"
	"cofoundr_backend/pkg/apperrors"
)

// UserService covers profile reads and writes for the authenticated member,
// plus startup CRUD and account deletion.
type UserService interface {
	GetProfile(userID string) (*models.User, error)
	GetPublicProfile(userID string) (*models.PublicUser, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error)
	SetSkills(userID string, names []string) error
	SetOffers(userID string, labels []string) error
	SetLookingFor(userID string, labels []string) error
	CreateStartup(ownerID string, req *dto.StartupRequest) (*models.Startup, error)
	UpdateStartup(ownerID, startupID string, req *dto.StartupRequest) (*models.Startup, error)
	DeleteStartup(ownerID, startupID string) error
	DeleteAccount(userID string) error
}

type userService struct {
	userRepo    repositories.UserRepository
	skillRepo   repositories.SkillRepository
	tagRepo     repositories.TagRepository
	startupRepo repositories.StartupRepository
}

func NewUserService(
	userRepo repositories.UserRepository,
	skillRepo repositories.SkillRepository,
	tagRepo repositories.TagRepository,
	startupRepo repositories.StartupRepository,
) UserService {
	return &userService{
		userRepo:    userRepo,
		skillRepo:   skillRepo,
		tagRepo:     tagRepo,
		startupRepo: startupRepo,
	}
}

func (s *userService) GetProfile(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByIDWithProfile(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUnknownUser
		}
		return nil, apperrors.TransientStorageError("load profile", err)
	}
	return user, nil
}

func (s *userService) GetPublicProfile(userID string) (*models.PublicUser, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	public := user.Public()
	return &public, nil
}

func (s *userService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUnknownUser
		}
		return nil, apperrors.TransientStorageError("load user", err)
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	user.Headline = req.Headline
	user.Bio = req.Bio
	user.Location = req.Location
	user.Availability = req.Availability
	user.EquityPreference = models.EquityPreference(req.EquityPreference)
	user.RemotePreference = models.RemotePreference(req.RemotePreference)
	if req.Languages != nil {
		raw, err := json.Marshal(req.Languages)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.Languages = datatypes.JSON(raw)
	}

	if err := s.userRepo.UpdateProfile(user); err != nil {
		return nil, apperrors.TransientStorageError("update profile", err)
	}
	return s.GetProfile(userID)
}

func (s *userService) SetSkills(userID string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	skillIDs := make([]string, 0, len(names))
	for _, raw := range names {
		name := models.NormalizeSkillName(raw)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		skill, err := s.skillRepo.GetOrCreate(name)
		if err != nil {
			return apperrors.TransientStorageError("resolve skill", err)
		}
		skillIDs = append(skillIDs, skill.ID)
	}
	if err := s.skillRepo.ReplaceUserSkills(userID, skillIDs); err != nil {
		return apperrors.TransientStorageError("replace skills", err)
	}
	return nil
}

func (s *userService) SetOffers(userID string, labels []string) error {
	if err := s.tagRepo.ReplaceOffers(userID, labels); err != nil {
		return apperrors.TransientStorageError("replace offers", err)
	}
	return nil
}

func (s *userService) SetLookingFor(userID string, labels []string) error {
	if err := s.tagRepo.ReplaceLookingFor(userID, labels); err != nil {
		return apperrors.TransientStorageError("replace looking-for tags", err)
	}
	return nil
}

func (s *userService) CreateStartup(ownerID string, req *dto.StartupRequest) (*models.Startup, error) {
	startup := &models.Startup{
		OwnerID:  ownerID,
		Name:     req.Name,
		Pitch:    req.Pitch,
		Stage:    models.StartupStage(req.Stage),
		TeamSize: req.TeamSize,
	}
	if err := encodeStartupLists(startup, req); err != nil {
		return nil, err
	}
	if err := s.startupRepo.Create(startup); err != nil {
		return nil, apperrors.TransientStorageError("create startup", err)
	}
	return startup, nil
}

func (s *userService) UpdateStartup(ownerID, startupID string, req *dto.StartupRequest) (*models.Startup, error) {
	startup, err := s.ownedStartup(ownerID, startupID)
	if err != nil {
		return nil, err
	}
	startup.Name = req.Name
	startup.Pitch = req.Pitch
	startup.Stage = models.StartupStage(req.Stage)
	startup.TeamSize = req.TeamSize
	if err := encodeStartupLists(startup, req); err != nil {
		return nil, err
	}
	if err := s.startupRepo.Update(startup); err != nil {
		return nil, apperrors.TransientStorageError("update startup", err)
	}
	return startup, nil
}

func (s *userService) DeleteStartup(ownerID, startupID string) error {
	startup, err := s.ownedStartup(ownerID, startupID)
	if err != nil {
		return err
	}
	if err := s.startupRepo.Delete(startup.ID); err != nil {
		return apperrors.TransientStorageError("delete startup", err)
	}
	return nil
}

// ownedStartup resolves a startup and hides its existence from non-owners.
func (s *userService) ownedStartup(ownerID, startupID string) (*models.Startup, error) {
	startup, err := s.startupRepo.FindByID(startupID)
	if err != nil {
		if errors.Is(err, repositories.ErrStartupNotFound) {
			return nil, apperrors.ErrStartupNotFound
		}
		return nil, apperrors.TransientStorageError("load startup", err)
	}
	if startup.OwnerID != ownerID {
		return nil, apperrors.ErrStartupNotFound
	}
	return startup, nil
}

func (s *userService) DeleteAccount(userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUnknownUser
		}
		return apperrors.TransientStorageError("delete account", err)
	}
	logger.Info("account deleted", "user_id", userID)
	return nil
}

func encodeStartupLists(startup *models.Startup, req *dto.StartupRequest) error {
	markets, err := json.Marshal(req.TargetMarkets)
	if err != nil {
		return apperrors.InternalError(err)
	}
	needs, err := json.Marshal(req.HiringNeeds)
	if err != nil {
		return apperrors.InternalError(err)
	}
	startup.TargetMarkets = datatypes.JSON(markets)
	startup.HiringNeeds = datatypes.JSON(needs)
	return nil
}
