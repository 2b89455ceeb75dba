package validator

import (
	"log"

	"cofoundr_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules adds the enum rules used by the DTOs. Empty values pass
// here; 'required' handles presence separately.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-equity-pref", validateEquityPreference)
	mustRegister("is-remote-pref", validateRemotePreference)
	mustRegister("is-startup-stage", validateStartupStage)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleMember, models.UserRoleAdmin:
		return true
	default:
		return false
	}
}

func validateEquityPreference(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.EquityPreference(value) {
	case models.EquityPreferenceEquity, models.EquityPreferenceCash, models.EquityPreferenceBoth:
		return true
	default:
		return false
	}
}

func validateRemotePreference(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.RemotePreference(value) {
	case models.RemotePreferenceRemote, models.RemotePreferenceHybrid, models.RemotePreferenceOnsite:
		return true
	default:
		return false
	}
}

func validateStartupStage(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.StartupStage(value) {
	case models.StartupStageIdea, models.StartupStagePrototype, models.StartupStageMVP,
		models.StartupStageBeta, models.StartupStageRevenue, models.StartupStageGrowth:
		return true
	default:
		return false
	}
}
