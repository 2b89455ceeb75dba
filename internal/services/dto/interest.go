package dto

import "cofoundr_backend/internal/models"

type ExpressInterestRequest struct {
	ToUserID string  `json:"to_user_id" binding:"required" validate:"required,uuid"`
	Message  *string `json:"message" validate:"omitempty,max=500"`
}

// ExpressInterestResult reports the created edge plus whether this call
// closed a mutual pair into a match.
type ExpressInterestResult struct {
	Like    *models.Interest `json:"like"`
	IsMatch bool             `json:"is_match"`
	Match   *models.Match    `json:"match,omitempty"`
}
