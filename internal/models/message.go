package models

import "time"

// Message belongs to exactly one match; the sender must be a participant.
// Visibility is gated by match membership, never by the row itself.
type Message struct {
	ID        string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	MatchID   string     `gorm:"not null;index" json:"match_id"`
	SenderID  string     `gorm:"not null;index" json:"sender_id"`
	Body      string     `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time  `gorm:"default:now();index" json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`

	Match *Match `gorm:"foreignKey:MatchID" json:"-"`
}
