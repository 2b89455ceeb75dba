package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Startup is a company profile owned by one user. It feeds scoring as a weak
// signal only; its lifecycle is independent of matching.
type Startup struct {
	BaseModel
	OwnerID       string         `gorm:"not null;index" json:"owner_id"`
	Name          string         `gorm:"not null" json:"name"`
	Pitch         string         `json:"pitch"`
	Stage         StartupStage   `gorm:"type:varchar(20)" json:"stage"`
	TargetMarkets datatypes.JSON `json:"target_markets"`
	TeamSize      int            `gorm:"default:1" json:"team_size"`
	HiringNeeds   datatypes.JSON `json:"hiring_needs"`
}

func (s *Startup) GetTargetMarkets() []string {
	return decodeStringList(s.TargetMarkets)
}

func (s *Startup) GetHiringNeeds() []string {
	return decodeStringList(s.HiringNeeds)
}

func decodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}
