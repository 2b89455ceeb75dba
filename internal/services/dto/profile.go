package dto

type UpdateProfileRequest struct {
	Name             string   `json:"name" validate:"omitempty,min=2,max=100"`
	Headline         string   `json:"headline" validate:"max=160"`
	Bio              string   `json:"bio" validate:"max=4000"`
	Location         string   `json:"location" validate:"max=120"`
	Availability     *int     `json:"availability" validate:"omitempty,min=0,max=100"`
	EquityPreference string   `json:"equity_preference" validate:"is-equity-pref"`
	RemotePreference string   `json:"remote_preference" validate:"is-remote-pref"`
	Languages        []string `json:"languages" validate:"max=20,dive,max=50"`
}

type SetSkillsRequest struct {
	Skills []string `json:"skills" validate:"max=30,dive,min=1,max=80"`
}

type SetTagsRequest struct {
	Labels []string `json:"labels" validate:"max=30,dive,min=1,max=120"`
}

type StartupRequest struct {
	Name          string   `json:"name" binding:"required" validate:"required,min=1,max=120"`
	Pitch         string   `json:"pitch" validate:"max=280"`
	Stage         string   `json:"stage" validate:"is-startup-stage"`
	TargetMarkets []string `json:"target_markets" validate:"max=20,dive,max=80"`
	TeamSize      int      `json:"team_size" validate:"omitempty,min=1,max=10000"`
	HiringNeeds   []string `json:"hiring_needs" validate:"max=20,dive,max=120"`
}
