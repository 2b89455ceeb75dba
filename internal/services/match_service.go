package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"cofoundr_backend/internal/logger"
	"cofoundr_backend/internal/models"
	"cofoundr_backend/internal/repositories"
	"cofoundr_backend/internal/services/dto"
	"cofoundr_backend/pkg/apperrors"
)

// MatchService owns match lifecycle: formation on mutual interest, listing,
// and dissolution.
type MatchService interface {
	// TryFormMatch runs inside the caller's transaction. It checks whether
	// the reverse interest (to -> from) already exists and, if so, creates
	// the match record. A previously dissolved pair is never re-formed.
	TryFormMatch(tx *gorm.DB, fromID, toID string) (*models.Match, bool, error)
	ListMatches(userID string) ([]dto.MatchSummary, error)
	GetForParticipant(userID, matchID string) (*models.Match, error)
	Unmatch(userID, matchID string) error
}

type matchService struct {
	matchRepo    repositories.MatchRepository
	interestRepo repositories.InterestRepository
	userRepo     repositories.UserRepository
}

func NewMatchService(
	matchRepo repositories.MatchRepository,
	interestRepo repositories.InterestRepository,
	userRepo repositories.UserRepository,
) MatchService {
	return &matchService{
		matchRepo:    matchRepo,
		interestRepo: interestRepo,
		userRepo:     userRepo,
	}
}

func (s *matchService) TryFormMatch(tx *gorm.DB, fromID, toID string) (*models.Match, bool, error) {
	reciprocal, err := s.interestRepo.Exists(tx, toID, fromID)
	if err != nil {
		return nil, false, apperrors.TransientStorageError("check reciprocal interest", err)
	}
	if !reciprocal {
		return nil, false, nil
	}

	// An existing row for the pair, active or not, blocks formation. In
	// particular a dissolved match stays dissolved even if the two users
	// keep liking each other.
	existing, err := s.matchRepo.FindByPair(tx, fromID, toID)
	if err != nil && !errors.Is(err, repositories.ErrMatchNotFound) {
		return nil, false, apperrors.TransientStorageError("look up match pair", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	match, err := s.matchRepo.Create(tx, fromID, toID)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateMatch) {
			// Lost the race against the mirror-image like. The winning
			// insert is the match; report it without claiming formation.
			match, err = s.matchRepo.FindByPair(tx, fromID, toID)
			if err != nil {
				return nil, false, apperrors.TransientStorageError("reload match after duplicate insert", err)
			}
			return match, false, nil
		}
		return nil, false, apperrors.TransientStorageError("create match", err)
	}

	logger.Info("match formed",
		"match_id", match.ID,
		"user_a_id", match.UserAID,
		"user_b_id", match.UserBID,
	)
	return match, true, nil
}

func (s *matchService) ListMatches(userID string) ([]dto.MatchSummary, error) {
	matches, err := s.matchRepo.FindActiveForUser(userID)
	if err != nil {
		return nil, apperrors.TransientStorageError("list matches", err)
	}

	summaries := make([]dto.MatchSummary, 0, len(matches))
	for _, match := range matches {
		partnerID := match.OtherUserID(userID)
		partner, err := s.userRepo.FindByIDWithProfile(partnerID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				// Partner account was deleted out from under the match.
				continue
			}
			return nil, apperrors.TransientStorageError("load match partner", err)
		}

		summary := dto.MatchSummary{
			ID:        match.ID,
			CreatedAt: match.CreatedAt,
			Partner:   partner.Public(),
		}
		// Surface the note the partner attached when they liked the viewer.
		interest, err := s.interestRepo.FindBetween(partnerID, userID)
		if err == nil && interest != nil {
			summary.LikeMessage = interest.Message
		} else if err != nil && !errors.Is(err, repositories.ErrInterestNotFound) {
			return nil, apperrors.TransientStorageError("load like message", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// GetForParticipant loads a match only if the user is one of its two
// participants and it is still active. Anything else reads as not found so
// outsiders cannot probe which matches exist.
func (s *matchService) GetForParticipant(userID, matchID string) (*models.Match, error) {
	match, err := s.matchRepo.FindByID(matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, apperrors.ErrMatchNotFound
		}
		return nil, apperrors.TransientStorageError("load match", err)
	}
	if !match.Involves(userID) || !match.Active {
		return nil, apperrors.ErrMatchNotFound
	}
	return match, nil
}

func (s *matchService) Unmatch(userID, matchID string) error {
	match, err := s.matchRepo.FindByID(matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return apperrors.ErrMatchNotFound
		}
		return apperrors.TransientStorageError("load match", err)
	}
	if !match.Involves(userID) {
		return apperrors.ErrMatchNotFound
	}
	if !match.Active {
		// Already dissolved; treat repeat calls as a no-op.
		return nil
	}
	if err := s.matchRepo.Deactivate(match.ID); err != nil {
		return apperrors.TransientStorageError(fmt.Sprintf("deactivate match %s", match.ID), err)
	}
	logger.Info("match dissolved", "match_id", match.ID, "user_id", userID)
	return nil
}
