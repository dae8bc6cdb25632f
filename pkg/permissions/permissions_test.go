package permissions

import (
	"testing"

	"github.com/AstralStudios/GeminiBotGo/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		OwnerID:  "100000000000000001",
		AdminIDs: []string{"100000000000000002", "100000000000000003"},
	}
}

func TestEvaluate(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name   string
		userID string
		want   Level
	}{
		{"owner", "100000000000000001", LevelOwner},
		{"admin", "100000000000000002", LevelAdmin},
		{"second admin", "100000000000000003", LevelAdmin},
		{"regular user", "100000000000000009", LevelUser},
		{"empty id", "", LevelUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(cfg, tt.userID); got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.userID, got, tt.want)
			}
		})
	}
}

func TestHasAdminPermission(t *testing.T) {
	cfg := testConfig()

	if !HasAdminPermission(cfg, cfg.OwnerID) {
		t.Error("owner should have admin permission")
	}
	if !HasAdminPermission(cfg, "100000000000000002") {
		t.Error("admin should have admin permission")
	}
	if HasAdminPermission(cfg, "100000000000000009") {
		t.Error("regular user should not have admin permission")
	}
}

func TestEvaluateDependsOnlyOnConfig(t *testing.T) {
	// With no owner/admins configured nobody is elevated
	empty := &config.Config{}

	if HasAdminPermission(empty, "100000000000000001") {
		t.Error("no user should be elevated with an empty permission config")
	}
	if IsOwner(empty, "") {
		t.Error("empty user id must never match an unset owner id")
	}
}

func TestLevelString(t *testing.T) {
	if LevelOwner.String() != "owner" || LevelAdmin.String() != "admin" || LevelUser.String() != "user" {
		t.Error("Level.String() mismatch")
	}
}
