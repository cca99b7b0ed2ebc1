// internal/model/meeting.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Meeting struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Topic        string    `gorm:"type:text;not null" json:"topic"`
	Info         string    `gorm:"type:text;not null;default:''" json:"info"`
	MeetDatetime time.Time `gorm:"not null" json:"meet_datetime"`
	CreatorID    uuid.UUID `gorm:"type:uuid;not null" json:"creator_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Users []User `gorm:"many2many:meeting_participants;constraint:OnDelete:CASCADE" json:"users,omitempty"`
}

// HasUser reports whether userID is among the loaded participants.
func (m *Meeting) HasUser(userID uuid.UUID) bool {
	for _, u := range m.Users {
		if u.ID == userID {
			return true
		}
	}
	return false
}
