package dto

import (
	"time"

	"cofoundr_backend/internal/models"
)

// MatchSummary is a match seen from one participant's side: the other
// participant's public profile plus the like message they attached, if any.
type MatchSummary struct {
	ID          string            `json:"id"`
	CreatedAt   time.Time         `json:"created_at"`
	Partner     models.PublicUser `json:"partner"`
	LikeMessage *string           `json:"like_message,omitempty"`
}
