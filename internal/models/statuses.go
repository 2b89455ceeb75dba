package models

type UserStatus string
type UserRole string
type EquityPreference string
type RemotePreference string
type StartupStage string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	UserRoleMember UserRole = "member"
	UserRoleAdmin  UserRole = "admin"

	EquityPreferenceEquity EquityPreference = "equity"
	EquityPreferenceCash   EquityPreference = "cash"
	EquityPreferenceBoth   EquityPreference = "both"

	RemotePreferenceRemote RemotePreference = "remote"
	RemotePreferenceHybrid RemotePreference = "hybrid"
	RemotePreferenceOnsite RemotePreference = "onsite"

	StartupStageIdea      StartupStage = "idea"
	StartupStagePrototype StartupStage = "prototype"
	StartupStageMVP       StartupStage = "mvp"
	StartupStageBeta      StartupStage = "beta"
	StartupStageRevenue   StartupStage = "revenue"
	StartupStageGrowth    StartupStage = "growth"
)
