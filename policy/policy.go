// Package policy centralizes every role-based access decision as a single
// grant table instead of per-handler role comparisons. Decisions are pure
// functions of the caller's identity and are evaluated fresh on each request.
package policy

import "reviewdb/models"

// Operation names a guarded action class. Handlers declare the operation
// they need; the grant table says which roles hold it.
type Operation string

const (
	// OpManageCatalog covers category/genre/title create, update and delete.
	OpManageCatalog Operation = "catalog:manage"
	// OpManageUsers covers the admin /users resource.
	OpManageUsers Operation = "users:manage"
	// OpWriteContent covers review/comment creation; mutating an existing
	// object is checked separately with CanMutateObject.
	OpWriteContent Operation = "content:write"
)

var grants = map[Operation]map[models.UserRole]bool{
	OpManageCatalog: {
		models.RoleAdmin: true,
	},
	OpManageUsers: {
		models.RoleAdmin: true,
	},
	OpWriteContent: {
		models.RoleUser:      true,
		models.RoleModerator: true,
		models.RoleAdmin:     true,
	},
}

// Caller is the authenticated identity a request acts as.
type Caller struct {
	ID          uint
	Username    string
	Role        models.UserRole
	IsSuperuser bool
}

// Allowed reports whether the caller may perform op. Superuser status
// grants everything regardless of role.
func (c Caller) Allowed(op Operation) bool {
	if c.IsSuperuser {
		return true
	}
	return grants[op][c.Role]
}

// CanMutateObject is the object-level check for reviews and comments: the
// author may mutate their own rows, moderators and admins may mutate any.
// Safe (read) methods never reach this check.
func (c Caller) CanMutateObject(authorID uint) bool {
	if c.IsSuperuser || c.Role == models.RoleModerator || c.Role == models.RoleAdmin {
		return true
	}
	return c.ID == authorID
}
