package models

import "strings"

// Skill is a global, deduplicated tag. Rows are created lazily on first use
// and never owned by a single user.
type Skill struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// NormalizeSkillName is the canonical form used for dedup: trimmed,
// inner whitespace collapsed. Case is preserved so display names stay intact.
func NormalizeSkillName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// UserSkill links a user to a shared skill. Unique per (user, skill) pair.
type UserSkill struct {
	BaseModel
	UserID  string `gorm:"not null;uniqueIndex:idx_user_skill" json:"user_id"`
	SkillID string `gorm:"not null;uniqueIndex:idx_user_skill" json:"skill_id"`

	Skill *Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}
