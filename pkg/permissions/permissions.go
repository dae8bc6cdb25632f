// Package permissions implements the owner/admin/user permission model.
// Evaluation is pure: it only consults the immutable configuration.
package permissions

import (
	"fmt"

	"github.com/AstralStudios/GeminiBotGo/pkg/config"
	"github.com/AstralStudios/GeminiBotGo/pkg/logger"
)

// Level represents a user's permission level
type Level int

const (
	LevelUser Level = iota
	LevelAdmin
	LevelOwner
)

// String returns the string representation of the permission level
func (l Level) String() string {
	switch l {
	case LevelOwner:
		return "owner"
	case LevelAdmin:
		return "admin"
	default:
		return "user"
	}
}

// IsOwner returns true if the user is the configured bot owner
func IsOwner(cfg *config.Config, userID string) bool {
	return userID != "" && userID == cfg.OwnerID
}

// IsAdmin returns true if the user is in the configured admin list
func IsAdmin(cfg *config.Config, userID string) bool {
	for _, id := range cfg.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Evaluate returns the permission level for a user
func Evaluate(cfg *config.Config, userID string) Level {
	if IsOwner(cfg, userID) {
		return LevelOwner
	}
	if IsAdmin(cfg, userID) {
		return LevelAdmin
	}
	return LevelUser
}

// HasAdminPermission returns true if the user may run admin-gated commands
func HasAdminPermission(cfg *config.Config, userID string) bool {
	return Evaluate(cfg, userID) != LevelUser
}

// LogCheck emits an audit record for a permission check
func LogCheck(cfg *config.Config, userID, command string, granted bool) {
	verdict := "DENIED"
	if granted {
		verdict = "GRANTED"
	}
	level := Evaluate(cfg, userID)
	logger.Info(fmt.Sprintf("Permission check: %s (%s) attempted %s - %s", userID, level, command, verdict), "Permissions")
}
