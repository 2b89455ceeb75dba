package auth

import "cofoundr_backend/internal/models"

// Role permissions. Admin access is decided by the role attribute on the
// User row, never by comparing against a hardcoded identity.
var Permissions = map[models.UserRole][]string{
	models.UserRoleAdmin: {
		"users:read",
		"users:write",
		"users:delete",
		"matches:read",
		"system:admin",
	},
	models.UserRoleMember: {
		"users:read",
		"users:write:self",
		"users:delete:self",
		"matches:read:self",
	},
}

// HasPermission reports whether the role grants the permission.
func HasPermission(role models.UserRole, permission string) bool {
	permissions, exists := Permissions[role]
	if !exists {
		return false
	}
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// CanPerformAction checks a permission against token claims.
func CanPerformAction(claims *Claims, permission string) bool {
	return HasPermission(claims.Role, permission)
}

// IsAdmin reports whether the claims belong to an administrator.
func IsAdmin(claims *Claims) bool {
	return claims.Role == models.UserRoleAdmin
}
