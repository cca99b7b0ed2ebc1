package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/structura/internal/auth"
	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/mocks"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/dangerclosesec/structura/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateMeeting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	role := &model.Role{ID: uuid.New(), StructureID: uuid.New()}
	creator := &model.User{ID: uuid.New(), RoleID: &role.ID}

	t.Run("schedules", func(t *testing.T) {
		meetings := mocks.NewMockMeetingRepositoryIface(ctrl)
		roles := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewMeetingService(meetings, nil, auth.NewGate(roles), service.WithClock(clock))

		roles.EXPECT().FindByID(gomock.Any(), role.ID).Return(role, nil)
		meetings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		m, err := svc.CreateMeeting(context.Background(), creator, service.MeetingInput{
			Topic: "Planning", MeetDatetime: fixedNow.Add(time.Hour),
		})
		require.NoError(t, err)
		assert.Equal(t, creator.ID, m.CreatorID)
	})

	t.Run("in the past", func(t *testing.T) {
		roles := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewMeetingService(mocks.NewMockMeetingRepositoryIface(ctrl), nil, auth.NewGate(roles), service.WithClock(clock))

		roles.EXPECT().FindByID(gomock.Any(), role.ID).Return(role, nil)

		_, err := svc.CreateMeeting(context.Background(), creator, service.MeetingInput{
			Topic: "Retro", MeetDatetime: fixedNow.Add(-time.Hour),
		})
		assert.ErrorIs(t, err, domain.ErrMeetingBeforeNow)
	})

	t.Run("creator without role", func(t *testing.T) {
		svc := service.NewMeetingService(mocks.NewMockMeetingRepositoryIface(ctrl), nil, auth.NewGate(nil), service.WithClock(clock))

		_, err := svc.CreateMeeting(context.Background(), &model.User{ID: uuid.New()}, service.MeetingInput{
			Topic: "Planning", MeetDatetime: fixedNow.Add(time.Hour),
		})
		assert.ErrorIs(t, err, domain.ErrRoleNotFoundForUser)
	})
}

func TestMeetingParticipants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creator := &model.User{ID: uuid.New()}
	guest := &model.User{ID: uuid.New()}

	setup := func() (*service.MeetingService, *mocks.MockMeetingRepositoryIface, *mocks.MockUserRepositoryIface, *model.Meeting) {
		meetings := mocks.NewMockMeetingRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		m := &model.Meeting{ID: uuid.New(), CreatorID: creator.ID, MeetDatetime: fixedNow.Add(time.Hour)}
		meetings.EXPECT().FindByID(gomock.Any(), m.ID).Return(m, nil).AnyTimes()
		users.EXPECT().FindByID(gomock.Any(), guest.ID).Return(guest, nil).AnyTimes()
		return service.NewMeetingService(meetings, users, auth.NewGate(nil), service.WithClock(clock)), meetings, users, m
	}

	t.Run("add then add again", func(t *testing.T) {
		svc, meetings, _, m := setup()
		meetings.EXPECT().AddUser(gomock.Any(), m, guest).DoAndReturn(
			func(_ context.Context, m *model.Meeting, u *model.User) error {
				m.Users = append(m.Users, *u)
				return nil
			})

		_, err := svc.AddUser(context.Background(), creator, m.ID, guest.ID)
		require.NoError(t, err)

		_, err = svc.AddUser(context.Background(), creator, m.ID, guest.ID)
		assert.ErrorIs(t, err, domain.ErrUserAlreadyAdded)
	})

	t.Run("only creator manages participants", func(t *testing.T) {
		svc, _, _, m := setup()

		_, err := svc.AddUser(context.Background(), guest, m.ID, guest.ID)
		assert.ErrorIs(t, err, domain.ErrNotMeetingCreator)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _, users, m := setup()
		ghost := uuid.New()
		users.EXPECT().FindByID(gomock.Any(), ghost).Return(nil, domain.ErrUserNotFound)

		_, err := svc.AddUser(context.Background(), creator, m.ID, ghost)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("remove someone not invited", func(t *testing.T) {
		svc, _, _, m := setup()

		_, err := svc.RemoveUser(context.Background(), creator, m.ID, guest.ID)
		assert.ErrorIs(t, err, domain.ErrUserNotInMeeting)
	})

	t.Run("remove participant", func(t *testing.T) {
		svc, meetings, _, m := setup()
		m.Users = []model.User{*guest}
		meetings.EXPECT().RemoveUser(gomock.Any(), m, guest).Return(nil)

		_, err := svc.RemoveUser(context.Background(), creator, m.ID, guest.ID)
		assert.NoError(t, err)
	})

	t.Run("missing meeting", func(t *testing.T) {
		meetings := mocks.NewMockMeetingRepositoryIface(ctrl)
		svc := service.NewMeetingService(meetings, nil, auth.NewGate(nil))
		id := uuid.New()
		meetings.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrMeetingNotFound)

		assert.ErrorIs(t, svc.DeleteMeeting(context.Background(), creator, id), domain.ErrMeetingNotFound)
	})
}

func TestMyMeetings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &model.User{ID: uuid.New()}
	earlier := &model.Meeting{ID: uuid.New(), MeetDatetime: fixedNow.Add(-2 * time.Hour)}
	later := &model.Meeting{ID: uuid.New(), MeetDatetime: fixedNow.Add(3 * time.Hour)}
	tomorrow := &model.Meeting{ID: uuid.New(), MeetDatetime: fixedNow.Add(24 * time.Hour)}
	yesterday := &model.Meeting{ID: uuid.New(), MeetDatetime: fixedNow.Add(-24 * time.Hour)}

	meetings := mocks.NewMockMeetingRepositoryIface(ctrl)
	meetings.EXPECT().FindForUser(gomock.Any(), user.ID).
		Return([]*model.Meeting{yesterday, earlier, later, tomorrow}, nil).Times(2)
	svc := service.NewMeetingService(meetings, nil, auth.NewGate(nil), service.WithClock(clock))

	today, err := svc.MyMeetings(context.Background(), user, true)
	require.NoError(t, err)
	assert.Equal(t, []*model.Meeting{earlier, later}, today)

	upcoming, err := svc.MyMeetings(context.Background(), user, false)
	require.NoError(t, err)
	assert.Equal(t, []*model.Meeting{later, tomorrow}, upcoming)
}
