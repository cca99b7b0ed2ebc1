// internal/model/structure.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	// AdminRoleName and AdminRoleInfo describe the role bootstrapped with every structure.
	AdminRoleName = "Team administrator"
	AdminRoleInfo = "Creator of the structure"
)

// Structure is the tenant boundary: every role and relation belongs to exactly one.
type Structure struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Info      string    `gorm:"type:text;not null;default:''" json:"info"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Roles []Role `gorm:"foreignKey:StructureID;constraint:OnDelete:CASCADE" json:"-"`
}

// NewAdminRole builds the bootstrap administrator role for s.
func (s *Structure) NewAdminRole() *Role {
	return &Role{
		Name:             AdminRoleName,
		Info:             AdminRoleInfo,
		StructureID:      s.ID,
		IsStructureAdmin: true,
	}
}
