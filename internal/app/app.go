package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cofoundr_backend/database"
	"cofoundr_backend/internal/auth"
	"cofoundr_backend/internal/config"
	"cofoundr_backend/internal/email"
	"cofoundr_backend/internal/handlers"
	"cofoundr_backend/internal/logger"
	"cofoundr_backend/internal/middleware"
	"cofoundr_backend/internal/models"
	"cofoundr_backend/internal/routes"
	"cofoundr_backend/internal/services"
	"cofoundr_backend/internal/validator"
	"cofoundr_backend/ws"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Database connected")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires services, handlers and the websocket hub into a gin
// engine. Integration tests mount this directly on an httptest server.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	var mailer email.Provider
	if cfg.Email.Enabled {
		mailer = email.NewSMTPProvider(cfg)
	} else {
		mailer = email.NewNoopProvider()
	}

	wsManager := ws.NewManager()
	go wsManager.Run()

	serviceContainer := services.NewServiceContainer(gormDB, cfg, mailer, wsManager)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())
	wsHandler := ws.NewHandler(wsManager, serviceContainer.Conversation)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)
	return ginRouter
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.Server.Env == "test" {
		gin.SetMode(gin.TestMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
		gin.Recovery(),
	)
	return r
}

// seedFirstAdmin creates the configured admin account on first boot so a
// fresh deployment is manageable without manual SQL. A no-op once any admin
// exists.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	var admin models.User
	err := db.Where("role = ?", models.UserRoleAdmin).First(&admin).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}
	admin = models.User{
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logger.Info("First admin user created", "email", cfg.FirstAdminEmail)
	return nil
}
