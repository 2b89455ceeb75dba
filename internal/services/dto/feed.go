package dto

import "cofoundr_backend/internal/models"

// Candidate is one entry of the ranked feed.
type Candidate struct {
	models.PublicUser
	MatchScore   int      `json:"match_score"`
	MatchReasons []string `json:"match_reasons"`
}
