package handlers

import (
	"cofoundr_backend/internal/services"
	"cofoundr_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	Auth           *AuthHandler
	Profile        *ProfileHandler
	Recommendation *RecommendationHandler
	Interest       *InterestHandler
	Match          *MatchHandler
	Message        *MessageHandler
	Admin          *AdminHandler
}

func NewAppHandlers(svc *services.ServiceContainer, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		Auth:           NewAuthHandler(base, svc.Auth),
		Profile:        NewProfileHandler(base, svc.User),
		Recommendation: NewRecommendationHandler(base, svc.Feed),
		Interest:       NewInterestHandler(base, svc.Interest),
		Match:          NewMatchHandler(base, svc.Match),
		Message:        NewMessageHandler(base, svc.Conversation),
		Admin:          NewAdminHandler(base, svc.Admin),
	}
}
