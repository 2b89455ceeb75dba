package repositories

import (
	"errors"

	"cofoundr_backend/internal/models"

	"gorm.io/gorm"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillRepository interface {
	// GetOrCreate resolves a skill by normalized name, creating it on first
	// use. Safe under concurrent first-use races.
	GetOrCreate(name string) (*models.Skill, error)
	FindByName(name string) (*models.Skill, error)
	ReplaceUserSkills(userID string, skillIDs []string) error
}

type SkillRepositoryImpl struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &SkillRepositoryImpl{db: db}
}

func (r *SkillRepositoryImpl) GetOrCreate(name string) (*models.Skill, error) {
	normalized := models.NormalizeSkillName(name)

	skill, err := r.FindByName(normalized)
	if err == nil {
		return skill, nil
	}
	if !errors.Is(err, ErrSkillNotFound) {
		return nil, err
	}

	created := &models.Skill{Name: normalized}
	err = r.db.Create(created).Error
	if err == nil {
		return created, nil
	}

	// Lost a concurrent first-use race: the unique index rejected the
	// insert, so the winner's row is now readable.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return r.FindByName(normalized)
	}
	return nil, err
}

func (r *SkillRepositoryImpl) FindByName(name string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, err
	}
	return &skill, nil
}

// ReplaceUserSkills swaps the user's skill associations for the given set.
func (r *SkillRepositoryImpl) ReplaceUserSkills(userID string, skillIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserSkill{}).Error; err != nil {
			return err
		}
		for _, skillID := range skillIDs {
			link := &models.UserSkill{UserID: userID, SkillID: skillID}
			if err := tx.Create(link).Error; err != nil {
				// A duplicate inside the same request means the caller sent
				// the same skill twice; collapse instead of failing.
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					continue
				}
				return err
			}
		}
		return nil
	})
}
