package repositories

import (
	"errors"

	"cofoundr_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInterestNotFound  = errors.New("interest not found")
	ErrDuplicateInterest = errors.New("interest already exists")
)

type InterestRepository interface {
	// LockPair serializes concurrent transactions touching the same user
	// pair. Without it two racing mutual likes can each commit without
	// seeing the other's edge, and the mutual match never forms.
	LockPair(tx *gorm.DB, userX, userY string) error
	// Create persists the directed edge. Returns ErrDuplicateInterest when
	// the (from, to) pair already exists, including when a concurrent
	// request won the unique-index race.
	Create(tx *gorm.DB, interest *models.Interest) error
	Exists(tx *gorm.DB, fromID, toID string) (bool, error)
	FindBetween(fromID, toID string) (*models.Interest, error)
	FindSentTargetIDs(fromID string) ([]string, error)
	FindReceived(toID string) ([]models.Interest, error)
}

type InterestRepositoryImpl struct {
	db *gorm.DB
}

func NewInterestRepository(db *gorm.DB) InterestRepository {
	return &InterestRepositoryImpl{db: db}
}

// tx lets the interest insert share the match-formation transaction; pass
// nil to use the repository's own connection.
func (r *InterestRepositoryImpl) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// LockPair takes a transaction-scoped advisory lock keyed on the canonical
// pair. Released automatically at commit or rollback.
func (r *InterestRepositoryImpl) LockPair(tx *gorm.DB, userX, userY string) error {
	userA, userB := models.CanonicalPair(userX, userY)
	return r.conn(tx).Exec("SELECT pg_advisory_xact_lock(hashtext(? || ':' || ?))", userA, userB).Error
}

func (r *InterestRepositoryImpl) Create(tx *gorm.DB, interest *models.Interest) error {
	err := r.conn(tx).Create(interest).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateInterest
	}
	return err
}

func (r *InterestRepositoryImpl) Exists(tx *gorm.DB, fromID, toID string) (bool, error) {
	var count int64
	err := r.conn(tx).Model(&models.Interest{}).
		Where("from_user_id = ? AND to_user_id = ?", fromID, toID).
		Count(&count).Error
	return count > 0, err
}

func (r *InterestRepositoryImpl) FindBetween(fromID, toID string) (*models.Interest, error) {
	var interest models.Interest
	err := r.db.Where("from_user_id = ? AND to_user_id = ?", fromID, toID).
		First(&interest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterestNotFound
		}
		return nil, err
	}
	return &interest, nil
}

// FindSentTargetIDs returns every user id the given user has already
// expressed interest toward; the feed excludes these.
func (r *InterestRepositoryImpl) FindSentTargetIDs(fromID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Interest{}).
		Where("from_user_id = ?", fromID).
		Pluck("to_user_id", &ids).Error
	return ids, err
}

func (r *InterestRepositoryImpl) FindReceived(toID string) ([]models.Interest, error) {
	var interests []models.Interest
	err := r.db.Where("to_user_id = ?", toID).
		Order("created_at DESC").
		Find(&interests).Error
	return interests, err
}
