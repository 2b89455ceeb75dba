package services

import (
	"errors"

	"gorm.io/gorm"

	"cofoundr_backend/internal/logger"
	"cofoundr_backend/internal/models"
	"cofoundr_backend/internal/repositories"
	"cofoundr_backend/internal/services/dto"
	"cofoundr_backend/pkg/apperrors"
)

// InterestService records one-directional likes and triggers match formation
// when a like closes a mutual pair.
type InterestService interface {
	ExpressInterest(fromID, toID string, message *string) (*dto.ExpressInterestResult, error)
}

type interestService struct {
	db           *gorm.DB
	interestRepo repositories.InterestRepository
	userRepo     repositories.UserRepository
	matchService MatchService
	publisher    EventPublisher
}

func NewInterestService(
	db *gorm.DB,
	interestRepo repositories.InterestRepository,
	userRepo repositories.UserRepository,
	matchService MatchService,
	publisher EventPublisher,
) InterestService {
	return &interestService{
		db:           db,
		interestRepo: interestRepo,
		userRepo:     userRepo,
		matchService: matchService,
		publisher:    publisher,
	}
}

func (s *interestService) ExpressInterest(fromID, toID string, message *string) (*dto.ExpressInterestResult, error) {
	if fromID == toID {
		return nil, apperrors.ErrSelfInterest
	}
	if _, err := s.userRepo.FindByID(toID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUnknownUser
		}
		return nil, apperrors.TransientStorageError("look up interest target", err)
	}

	interest := &models.Interest{
		FromUserID: fromID,
		ToUserID:   toID,
		Message:    message,
	}

	var (
		match  *models.Match
		formed bool
	)
	// The pair lock serializes mirror-image likes; without it both
	// transactions can commit without seeing the other's edge and the
	// match never forms. The unique pair index on matches stays as the
	// final arbiter against duplicates.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.interestRepo.LockPair(tx, fromID, toID); err != nil {
			return apperrors.TransientStorageError("lock interest pair", err)
		}
		if err := s.interestRepo.Create(tx, interest); err != nil {
			if errors.Is(err, repositories.ErrDuplicateInterest) {
				return apperrors.ErrDuplicateInterest
			}
			return apperrors.TransientStorageError("record interest", err)
		}
		var err error
		match, formed, err = s.matchService.TryFormMatch(tx, fromID, toID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("interest recorded",
		"from_user_id", fromID,
		"to_user_id", toID,
		"matched", formed,
	)

	result := &dto.ExpressInterestResult{Like: interest, IsMatch: formed}
	if formed {
		result.Match = match
		// Published only after the transaction committed, so subscribers
		// never see a match that later rolled back.
		s.publisher.Publish([]string{match.UserAID, match.UserBID}, Event{
			Type:    EventMatchCreated,
			MatchID: match.ID,
			Payload: match,
		})
	}
	return result, nil
}
