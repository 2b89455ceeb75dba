package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Email             string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string     `gorm:"not null" json:"-"`
	Role              UserRole   `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	Status            UserStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	IsVerified        bool       `gorm:"default:false" json:"is_verified"`
	VerificationToken string     `json:"-"`

	Name             string           `gorm:"not null" json:"name"`
	Headline         string           `json:"headline"`
	Bio              string           `gorm:"type:text" json:"bio"`
	Location         string           `json:"location"`
	Availability     *int             `json:"availability"` // percentage of time, 0..100
	EquityPreference EquityPreference `gorm:"type:varchar(10)" json:"equity_preference"`
	RemotePreference RemotePreference `gorm:"type:varchar(10)" json:"remote_preference"`
	Languages        datatypes.JSON   `json:"languages"`

	// Relations
	Skills        []UserSkill    `gorm:"foreignKey:UserID" json:"skills,omitempty"`
	Offers        []Offer        `gorm:"foreignKey:UserID" json:"offers,omitempty"`
	LookingFor    []LookingFor   `gorm:"foreignKey:UserID" json:"looking_for,omitempty"`
	Startups      []Startup      `gorm:"foreignKey:OwnerID" json:"startups,omitempty"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}

// GetLanguages decodes the JSON language list. Returns nil on malformed data
// instead of failing; bad rows must not break scoring.
func (u *User) GetLanguages() []string {
	if len(u.Languages) == 0 {
		return nil
	}
	var langs []string
	if err := json.Unmarshal(u.Languages, &langs); err != nil {
		return nil
	}
	return langs
}

// SkillNames flattens the preloaded skill associations.
func (u *User) SkillNames() []string {
	names := make([]string, 0, len(u.Skills))
	for _, us := range u.Skills {
		if us.Skill != nil {
			names = append(names, us.Skill.Name)
		}
	}
	return names
}

// OfferLabels returns the labels of everything the user provides.
func (u *User) OfferLabels() []string {
	labels := make([]string, 0, len(u.Offers))
	for _, o := range u.Offers {
		labels = append(labels, o.Label)
	}
	return labels
}

// LookingForLabels returns the labels of everything the user seeks.
func (u *User) LookingForLabels() []string {
	labels := make([]string, 0, len(u.LookingFor))
	for _, lf := range u.LookingFor {
		labels = append(labels, lf.Label)
	}
	return labels
}

// PublicUser is the subset of User safe to show to other members.
type PublicUser struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Headline         string           `json:"headline"`
	Bio              string           `json:"bio"`
	Location         string           `json:"location"`
	Availability     *int             `json:"availability"`
	EquityPreference EquityPreference `json:"equity_preference"`
	RemotePreference RemotePreference `json:"remote_preference"`
	Languages        []string         `json:"languages"`
	Skills           []string         `json:"skills"`
	Offers           []string         `json:"offers"`
	LookingFor       []string         `json:"looking_for"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:               u.ID,
		Name:             u.Name,
		Headline:         u.Headline,
		Bio:              u.Bio,
		Location:         u.Location,
		Availability:     u.Availability,
		EquityPreference: u.EquityPreference,
		RemotePreference: u.RemotePreference,
		Languages:        u.GetLanguages(),
		Skills:           u.SkillNames(),
		Offers:           u.OfferLabels(),
		LookingFor:       u.LookingForLabels(),
	}
}
