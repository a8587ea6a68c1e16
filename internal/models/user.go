package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is a platform member. Plan controls which content tiers the user can
// see; Roles is a comma-joined set ("user" or "user,admin").
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	Phone     *string        `gorm:"size:50" json:"phone"`
	Plan      string         `gorm:"size:20;not null;default:'basic'" json:"plan"`
	Roles     string         `gorm:"size:100;not null;default:'user'" json:"-"`
	Progress  datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"progress"`
	IsActive  bool           `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// RoleList splits the comma-joined Roles column into a slice.
func (u *User) RoleList() []string {
	parts := strings.Split(u.Roles, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			roles = append(roles, trimmed)
		}
	}
	return roles
}

func (u *User) HasRole(role string) bool {
	for _, r := range u.RoleList() {
		if r == role {
			return true
		}
	}
	return false
}

// JoinRoles normalizes a role slice into the stored comma-joined form.
func JoinRoles(roles []string) string {
	cleaned := make([]string, 0, len(roles))
	for _, r := range roles {
		if trimmed := strings.TrimSpace(r); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return "user"
	}
	return strings.Join(cleaned, ",")
}
