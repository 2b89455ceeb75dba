package models

// Interest is a one-directional expression of willingness to connect.
// At most one edge may exist per ordered (from, to) pair; the unique index is
// the safety net against concurrent double-submission. Edges are never
// mutated, only deleted when either account is erased.
type Interest struct {
	BaseModel
	FromUserID string  `gorm:"not null;uniqueIndex:idx_interest_from_to" json:"from_user_id"`
	ToUserID   string  `gorm:"not null;uniqueIndex:idx_interest_from_to;index" json:"to_user_id"`
	Message    *string `gorm:"type:text" json:"message,omitempty"`

	FromUser *User `gorm:"foreignKey:FromUserID" json:"-"`
	ToUser   *User `gorm:"foreignKey:ToUserID" json:"-"`
}
