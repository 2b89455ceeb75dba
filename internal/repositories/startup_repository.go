package repositories

import (
	"errors"

	"cofoundr_backend/internal/models"

	"gorm.io/gorm"
)

var ErrStartupNotFound = errors.New("startup not found")

type StartupRepository interface {
	Create(startup *models.Startup) error
	FindByID(id string) (*models.Startup, error)
	FindByOwner(ownerID string) ([]models.Startup, error)
	Update(startup *models.Startup) error
	Delete(id string) error
}

type StartupRepositoryImpl struct {
	db *gorm.DB
}

func NewStartupRepository(db *gorm.DB) StartupRepository {
	return &StartupRepositoryImpl{db: db}
}

func (r *StartupRepositoryImpl) Create(startup *models.Startup) error {
	return r.db.Create(startup).Error
}

func (r *StartupRepositoryImpl) FindByID(id string) (*models.Startup, error) {
	var startup models.Startup
	err := r.db.First(&startup, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStartupNotFound
		}
		return nil, err
	}
	return &startup, nil
}

func (r *StartupRepositoryImpl) FindByOwner(ownerID string) ([]models.Startup, error) {
	var startups []models.Startup
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&startups).Error
	return startups, err
}

func (r *StartupRepositoryImpl) Update(startup *models.Startup) error {
	result := r.db.Model(startup).Updates(map[string]interface{}{
		"name":           startup.Name,
		"pitch":          startup.Pitch,
		"stage":          startup.Stage,
		"target_markets": startup.TargetMarkets,
		"team_size":      startup.TeamSize,
		"hiring_needs":   startup.HiringNeeds,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStartupNotFound
	}
	return nil
}

func (r *StartupRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Startup{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStartupNotFound
	}
	return nil
}
