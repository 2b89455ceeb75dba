package models

// Offer is a free-text "what I provide" tag owned by exactly one user.
// Duplicates are a possible data state and must be tolerated downstream.
type Offer struct {
	BaseModel
	UserID string `gorm:"not null;index" json:"user_id"`
	Label  string `gorm:"not null" json:"label"`
}

// LookingFor is a free-text "what I seek" tag owned by exactly one user.
type LookingFor struct {
	BaseModel
	UserID string `gorm:"not null;index" json:"user_id"`
	Label  string `gorm:"not null" json:"label"`
}
