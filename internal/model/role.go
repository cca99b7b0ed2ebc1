// internal/model/role.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Info        string    `gorm:"type:text;not null;default:''" json:"info"`
	StructureID uuid.UUID `gorm:"type:uuid;not null;index" json:"structure_id"`

	// IsStructureAdmin is set once, on the role bootstrapped with the structure.
	// Admin standing never follows from Name.
	IsStructureAdmin bool      `gorm:"not null;default:false" json:"is_structure_admin"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Users []User `gorm:"foreignKey:RoleID;constraint:OnDelete:SET NULL" json:"users,omitempty"`
}

// SameStructure reports whether r and other live in the same structure.
func (r *Role) SameStructure(other *Role) bool {
	return r != nil && other != nil && r.StructureID == other.StructureID
}
