package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cofoundr_backend/internal/models"
)

// Connect opens the postgres connection. TranslateError turns driver unique
// violations into gorm.ErrDuplicatedKey, which the repositories rely on for
// duplicate interests, matches and skills.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Migrate applies the schema. Order matters for foreign keys: users before
// everything that references them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Skill{},
		&models.UserSkill{},
		&models.Offer{},
		&models.LookingFor{},
		&models.Startup{},
		&models.Interest{},
		&models.Match{},
		&models.Message{},
	)
}
