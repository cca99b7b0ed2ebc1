// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:text;not null" json:"-"`
	Name         string     `gorm:"type:text;not null" json:"name"`
	LastName     string     `gorm:"type:text;not null;default:''" json:"last_name"`
	Info         string     `gorm:"type:text;not null;default:''" json:"info"`
	RoleID       *uuid.UUID `gorm:"type:uuid;index" json:"role_id"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	IsSuperuser  bool       `gorm:"not null;default:false" json:"is_superuser"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// HasRole reports whether the user is bound to a role, i.e. is a member of a structure.
func (u *User) HasRole() bool {
	return u.RoleID != nil && *u.RoleID != uuid.Nil
}
