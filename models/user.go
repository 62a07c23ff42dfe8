package models

import (
	"time"
)

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

// Valid reports whether the role is one of the closed three-value set.
func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID          uint     `json:"id" gorm:"primarykey"`
	Username    string   `json:"username" gorm:"uniqueIndex;not null"`
	Email       string   `json:"email" gorm:"uniqueIndex;not null"`
	Bio         string   `json:"bio" gorm:"type:text"`
	Role        UserRole `json:"role" gorm:"type:varchar(15);default:'user'"`
	IsSuperuser bool     `json:"-" gorm:"default:false"`
	// ConfirmationCode holds the per-signup salt the emailed code is derived
	// from, not the code itself. Regenerated on every signup attempt; null
	// until the first signup for this username.
	ConfirmationCode *string   `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
