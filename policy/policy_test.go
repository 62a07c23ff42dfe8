package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reviewdb/models"
)

func TestAllowedGrantTable(t *testing.T) {
	tests := []struct {
		name   string
		caller Caller
		op     Operation
		want   bool
	}{
		{"user cannot manage catalog", Caller{Role: models.RoleUser}, OpManageCatalog, false},
		{"moderator cannot manage catalog", Caller{Role: models.RoleModerator}, OpManageCatalog, false},
		{"admin manages catalog", Caller{Role: models.RoleAdmin}, OpManageCatalog, true},
		{"user cannot manage users", Caller{Role: models.RoleUser}, OpManageUsers, false},
		{"moderator cannot manage users", Caller{Role: models.RoleModerator}, OpManageUsers, false},
		{"admin manages users", Caller{Role: models.RoleAdmin}, OpManageUsers, true},
		{"user writes content", Caller{Role: models.RoleUser}, OpWriteContent, true},
		{"moderator writes content", Caller{Role: models.RoleModerator}, OpWriteContent, true},
		{"admin writes content", Caller{Role: models.RoleAdmin}, OpWriteContent, true},
		{"superuser overrides role", Caller{Role: models.RoleUser, IsSuperuser: true}, OpManageUsers, true},
		{"unknown role denied", Caller{Role: models.UserRole("guest")}, OpWriteContent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.caller.Allowed(tt.op))
		})
	}
}

func TestCanMutateObject(t *testing.T) {
	author := uint(7)

	assert.True(t, Caller{ID: author, Role: models.RoleUser}.CanMutateObject(author))
	assert.False(t, Caller{ID: 8, Role: models.RoleUser}.CanMutateObject(author))
	assert.True(t, Caller{ID: 8, Role: models.RoleModerator}.CanMutateObject(author))
	assert.True(t, Caller{ID: 8, Role: models.RoleAdmin}.CanMutateObject(author))
	assert.True(t, Caller{ID: 8, Role: models.RoleUser, IsSuperuser: true}.CanMutateObject(author))
}
