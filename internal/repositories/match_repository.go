package repositories

import (
	"errors"

	"cofoundr_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrMatchNotFound  = errors.New("match not found")
	ErrDuplicateMatch = errors.New("match already exists for this pair")
)

type MatchRepository interface {
	// Create inserts a match for the pair, canonicalizing storage order.
	// Returns ErrDuplicateMatch when a row for the unordered pair already
	// exists, which callers treat as "already matched".
	Create(tx *gorm.DB, userX, userY string) (*models.Match, error)
	// FindByPair returns the match for the unordered pair regardless of the
	// active flag; match formation must also see deactivated rows.
	FindByPair(tx *gorm.DB, userX, userY string) (*models.Match, error)
	FindByID(matchID string) (*models.Match, error)
	FindActiveForUser(userID string) ([]models.Match, error)
	Deactivate(matchID string) error
}

type MatchRepositoryImpl struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &MatchRepositoryImpl{db: db}
}

func (r *MatchRepositoryImpl) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *MatchRepositoryImpl) Create(tx *gorm.DB, userX, userY string) (*models.Match, error) {
	userA, userB := models.CanonicalPair(userX, userY)
	match := &models.Match{
		UserAID: userA,
		UserBID: userB,
		Active:  true,
	}

	err := r.conn(tx).Create(match).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicateMatch
	}
	if err != nil {
		return nil, err
	}
	return match, nil
}

func (r *MatchRepositoryImpl) FindByPair(tx *gorm.DB, userX, userY string) (*models.Match, error) {
	userA, userB := models.CanonicalPair(userX, userY)

	var match models.Match
	err := r.conn(tx).Where("user_a_id = ? AND user_b_id = ?", userA, userB).
		First(&match).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *MatchRepositoryImpl) FindByID(matchID string) (*models.Match, error) {
	var match models.Match
	err := r.db.First(&match, "id = ?", matchID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *MatchRepositoryImpl) FindActiveForUser(userID string) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.Where("active = ?", true).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&matches).Error
	return matches, err
}

// Deactivate soft-deletes the relationship; the row and its messages stay.
func (r *MatchRepositoryImpl) Deactivate(matchID string) error {
	result := r.db.Model(&models.Match{}).
		Where("id = ?", matchID).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMatchNotFound
	}
	return nil
}
