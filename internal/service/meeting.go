package service

import (
	"context"
	"time"

	"github.com/dangerclosesec/structura/internal/auth"
	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/dangerclosesec/structura/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type MeetingService struct {
	meetings repository.MeetingRepositoryIface
	users    repository.UserRepositoryIface
	gate     *auth.Gate
	validate *validator.Validate
	opts     options
}

func NewMeetingService(
	meetings repository.MeetingRepositoryIface,
	users repository.UserRepositoryIface,
	gate *auth.Gate,
	opts ...Option,
) *MeetingService {
	return &MeetingService{
		meetings: meetings,
		users:    users,
		gate:     gate,
		validate: newValidator(),
		opts:     applyOptions(opts),
	}
}

type MeetingInput struct {
	Topic        string    `json:"topic" validate:"required,notblank,max=255"`
	Info         string    `json:"info"`
	MeetDatetime time.Time `json:"meet_datetime" validate:"required"`
}

// CreateMeeting schedules a meeting owned by creator, who must hold a role.
func (s *MeetingService) CreateMeeting(ctx context.Context, creator *model.User, input MeetingInput) (*model.Meeting, error) {
	if _, err := s.gate.ResolveCurrentRole(ctx, creator); err != nil {
		return nil, err
	}
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}
	if !input.MeetDatetime.After(s.opts.now()) {
		return nil, domain.ErrMeetingBeforeNow
	}

	meeting := &model.Meeting{
		Topic:        input.Topic,
		Info:         input.Info,
		MeetDatetime: input.MeetDatetime,
		CreatorID:    creator.ID,
	}
	if err := s.meetings.Create(ctx, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

func (s *MeetingService) ownedMeeting(ctx context.Context, meetingID, creatorID uuid.UUID) (*model.Meeting, error) {
	meeting, err := s.meetings.FindByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting.CreatorID != creatorID {
		return nil, domain.ErrNotMeetingCreator
	}
	return meeting, nil
}

func (s *MeetingService) UpdateMeeting(ctx context.Context, user *model.User, meetingID uuid.UUID, input MeetingInput) (*model.Meeting, error) {
	meeting, err := s.ownedMeeting(ctx, meetingID, user.ID)
	if err != nil {
		return nil, err
	}
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}
	if !input.MeetDatetime.After(s.opts.now()) {
		return nil, domain.ErrMeetingBeforeNow
	}

	meeting.Topic = input.Topic
	meeting.Info = input.Info
	meeting.MeetDatetime = input.MeetDatetime
	if err := s.meetings.Update(ctx, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

func (s *MeetingService) DeleteMeeting(ctx context.Context, user *model.User, meetingID uuid.UUID) error {
	meeting, err := s.ownedMeeting(ctx, meetingID, user.ID)
	if err != nil {
		return err
	}
	return s.meetings.Delete(ctx, meeting.ID)
}

// AddUser invites userID to a meeting the caller created.
func (s *MeetingService) AddUser(ctx context.Context, user *model.User, meetingID, userID uuid.UUID) (*model.Meeting, error) {
	meeting, err := s.ownedMeeting(ctx, meetingID, user.ID)
	if err != nil {
		return nil, err
	}

	participant, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if meeting.HasUser(participant.ID) {
		return nil, domain.ErrUserAlreadyAdded
	}

	if err := s.meetings.AddUser(ctx, meeting, participant); err != nil {
		return nil, err
	}
	return meeting, nil
}

// RemoveUser drops userID from a meeting the caller created.
func (s *MeetingService) RemoveUser(ctx context.Context, user *model.User, meetingID, userID uuid.UUID) (*model.Meeting, error) {
	meeting, err := s.ownedMeeting(ctx, meetingID, user.ID)
	if err != nil {
		return nil, err
	}

	participant, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !meeting.HasUser(participant.ID) {
		return nil, domain.ErrUserNotInMeeting
	}

	if err := s.meetings.RemoveUser(ctx, meeting, participant); err != nil {
		return nil, err
	}
	return meeting, nil
}

// MyMeetings lists meetings the user created or joins. With today set only
// meetings on the current calendar day are returned, otherwise upcoming ones.
func (s *MeetingService) MyMeetings(ctx context.Context, user *model.User, today bool) ([]*model.Meeting, error) {
	all, err := s.meetings.FindForUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	now := s.opts.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	meetings := make([]*model.Meeting, 0, len(all))
	for _, m := range all {
		at := m.MeetDatetime.In(now.Location())
		if today {
			if !at.Before(dayStart) && at.Before(dayEnd) {
				meetings = append(meetings, m)
			}
			continue
		}
		if !at.Before(now) {
			meetings = append(meetings, m)
		}
	}
	return meetings, nil
}
