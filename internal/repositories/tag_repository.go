package repositories

import (
	"cofoundr_backend/internal/models"

	"gorm.io/gorm"
)

// TagRepository owns the free-text Offer / LookingFor tags. No uniqueness is
// enforced; duplicates are an accepted data state.
type TagRepository interface {
	ReplaceOffers(userID string, labels []string) error
	ReplaceLookingFor(userID string, labels []string) error
}

type TagRepositoryImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &TagRepositoryImpl{db: db}
}

func (r *TagRepositoryImpl) ReplaceOffers(userID string, labels []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Offer{}).Error; err != nil {
			return err
		}
		for _, label := range labels {
			if err := tx.Create(&models.Offer{UserID: userID, Label: label}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *TagRepositoryImpl) ReplaceLookingFor(userID string, labels []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.LookingFor{}).Error; err != nil {
			return err
		}
		for _, label := range labels {
			if err := tx.Create(&models.LookingFor{UserID: userID, Label: label}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
