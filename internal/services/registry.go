package services

import (
	"gorm.io/gorm"

	"cofoundr_backend/internal/config"
	"cofoundr_backend/internal/email"
	"cofoundr_backend/internal/repositories"
)

// ServiceContainer bundles every service the handler layer needs.
type ServiceContainer struct {
	Auth         AuthService
	User         UserService
	Feed         FeedService
	Interest     InterestService
	Match        MatchService
	Conversation ConversationService
	Admin        AdminService
}

// NewServiceContainer wires repositories into services. The publisher is the
// realtime fan-out; pass NopPublisher when no websocket hub is running.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, mailer email.Provider, publisher EventPublisher) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	skillRepo := repositories.NewSkillRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	startupRepo := repositories.NewStartupRepository(db)
	interestRepo := repositories.NewInterestRepository(db)
	matchRepo := repositories.NewMatchRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	matchService := NewMatchService(matchRepo, interestRepo, userRepo)

	return &ServiceContainer{
		Auth:         NewAuthService(userRepo, mailer),
		User:         NewUserService(userRepo, skillRepo, tagRepo, startupRepo),
		Feed:         NewFeedService(userRepo, interestRepo, cfg),
		Interest:     NewInterestService(db, interestRepo, userRepo, matchService, publisher),
		Match:        matchService,
		Conversation: NewConversationService(messageRepo, matchService, publisher),
		Admin:        NewAdminService(userRepo),
	}
}
