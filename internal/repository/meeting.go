// internal/repository/meeting.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MeetingRepositoryIface interface {
	Create(ctx context.Context, meeting *model.Meeting) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Meeting, error)
	Update(ctx context.Context, meeting *model.Meeting) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddUser(ctx context.Context, meeting *model.Meeting, user *model.User) error
	RemoveUser(ctx context.Context, meeting *model.Meeting, user *model.User) error
	FindForUser(ctx context.Context, userID uuid.UUID) ([]*model.Meeting, error)
}

type MeetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

func (r *MeetingRepository) Create(ctx context.Context, meeting *model.Meeting) error {
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return fmt.Errorf("creating meeting: %w", err)
	}
	return nil
}

// FindByID returns the meeting with its participants loaded.
func (r *MeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Meeting, error) {
	var meeting model.Meeting
	if err := r.db.WithContext(ctx).Preload("Users").First(&meeting, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, domain.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("finding meeting: %w", err)
	}
	return &meeting, nil
}

func (r *MeetingRepository) Update(ctx context.Context, meeting *model.Meeting) error {
	result := r.db.WithContext(ctx).
		Model(meeting).
		Select("topic", "info", "meet_datetime").
		Updates(meeting)
	if result.Error != nil {
		return fmt.Errorf("updating meeting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMeetingNotFound
	}
	return nil
}

func (r *MeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := inTransaction(ctx, r.db, "meeting.delete", func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM meeting_participants WHERE meeting_id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting participants: %w", err)
		}
		result := tx.Where("id = ?", id).Delete(&model.Meeting{})
		if result.Error != nil {
			return fmt.Errorf("deleting meeting: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrMeetingNotFound
		}
		return nil
	})
	if err != nil {
		return passThrough(err, "transaction failed", domain.ErrMeetingNotFound)
	}
	return nil
}

func (r *MeetingRepository) AddUser(ctx context.Context, meeting *model.Meeting, user *model.User) error {
	if err := r.db.WithContext(ctx).Model(meeting).Association("Users").Append(user); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyAdded
		}
		return fmt.Errorf("adding meeting participant: %w", err)
	}
	return nil
}

func (r *MeetingRepository) RemoveUser(ctx context.Context, meeting *model.Meeting, user *model.User) error {
	if err := r.db.WithContext(ctx).Model(meeting).Association("Users").Delete(user); err != nil {
		return fmt.Errorf("removing meeting participant: %w", err)
	}
	return nil
}

// FindForUser returns meetings userID created or takes part in, ordered by time.
func (r *MeetingRepository) FindForUser(ctx context.Context, userID uuid.UUID) ([]*model.Meeting, error) {
	var meetings []*model.Meeting
	if err := r.db.WithContext(ctx).
		Preload("Users").
		Where("creator_id = ? OR id IN (?)", userID,
			r.db.Table("meeting_participants").Select("meeting_id").Where("user_id = ?", userID)).
		Order("meet_datetime").
		Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("finding user meetings: %w", err)
	}
	return meetings, nil
}
