// internal/model/work_task.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type WorkTaskStatus string

const (
	TaskStatusCreated   WorkTaskStatus = "CREATED"
	TaskStatusInWork    WorkTaskStatus = "IN_WORK"
	TaskStatusCompleted WorkTaskStatus = "COMPLETED"
)

// next holds the single forward step allowed from each status.
var next = map[WorkTaskStatus]WorkTaskStatus{
	TaskStatusCreated: TaskStatusInWork,
	TaskStatusInWork:  TaskStatusCompleted,
}

func (s WorkTaskStatus) Valid() bool {
	switch s {
	case TaskStatusCreated, TaskStatusInWork, TaskStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether to is the immediate successor of s.
func (s WorkTaskStatus) CanTransitionTo(to WorkTaskStatus) bool {
	n, ok := next[s]
	return ok && n == to
}

type WorkTaskRate int16

const (
	RateUnset      WorkTaskRate = 0
	RateAcceptable WorkTaskRate = 1
	RateGood       WorkTaskRate = 2
	RateGreat      WorkTaskRate = 3
)

func (r WorkTaskRate) Valid() bool {
	return r >= RateAcceptable && r <= RateGreat
}

type WorkTask struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string         `gorm:"type:text;not null" json:"name"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Comments    string         `gorm:"type:text;not null;default:''" json:"comments"`
	Status      WorkTaskStatus `gorm:"type:text;not null;default:'CREATED'" json:"status"`
	Rate        WorkTaskRate   `gorm:"type:smallint;not null;default:0" json:"rate"`
	CompleteBy  time.Time      `gorm:"not null" json:"complete_by"`
	CreatorID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"creator_id"`
	AssigneeID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"assignee_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	Creator  *User `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE" json:"-"`
	Assignee *User `gorm:"foreignKey:AssigneeID" json:"-"`
}
