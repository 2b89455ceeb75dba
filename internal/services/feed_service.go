package services

import (
	"errors"
	"sort"

	"cofoundr_backend/internal/algorithms"
	"cofoundr_backend/internal/config"
	"cofoundr_backend/internal/repositories"
	"cofoundr_backend/internal/services/dto"
	"cofoundr_backend/pkg/apperrors"
)

// FeedService assembles the ranked candidate feed for a viewer.
type FeedService interface {
	BuildFeed(viewerID string) ([]dto.Candidate, error)
}

type feedService struct {
	userRepo     repositories.UserRepository
	interestRepo repositories.InterestRepository
	candidateCap int
}

func NewFeedService(
	userRepo repositories.UserRepository,
	interestRepo repositories.InterestRepository,
	cfg *config.Config,
) FeedService {
	return &feedService{
		userRepo:     userRepo,
		interestRepo: interestRepo,
		candidateCap: cfg.Feed.CandidateCap,
	}
}

func (s *feedService) BuildFeed(viewerID string) ([]dto.Candidate, error) {
	viewer, err := s.userRepo.FindByIDWithProfile(viewerID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUnknownUser
		}
		return nil, apperrors.TransientStorageError("load viewer profile", err)
	}

	// Everyone the viewer already liked drops out of the pool; a like is a
	// decision that does not need re-asking.
	liked, err := s.interestRepo.FindSentTargetIDs(viewerID)
	if err != nil {
		return nil, apperrors.TransientStorageError("load sent interests", err)
	}

	pool, err := s.userRepo.FindCandidates(viewerID, liked, s.candidateCap)
	if err != nil {
		return nil, apperrors.TransientStorageError("load candidate pool", err)
	}

	feed := make([]dto.Candidate, 0, len(pool))
	for i := range pool {
		score, reasons := algorithms.CompatibilityScore(viewer, &pool[i])
		feed = append(feed, dto.Candidate{
			PublicUser:   pool[i].Public(),
			MatchScore:   score,
			MatchReasons: reasons,
		})
	}

	// Highest score first; ties break on id so the order is stable across
	// requests.
	sort.Slice(feed, func(i, j int) bool {
		if feed[i].MatchScore != feed[j].MatchScore {
			return feed[i].MatchScore > feed[j].MatchScore
		}
		return feed[i].ID < feed[j].ID
	})
	return feed, nil
}
