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

var fixedNow = time.Date(2024, time.March, 14, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type taskFixture struct {
	svc       *service.WorkTaskService
	tasks     *mocks.MockWorkTaskRepositoryIface
	users     *mocks.MockUserRepositoryIface
	roles     *mocks.MockRoleRepositoryIface
	relations *mocks.MockRelationRepositoryIface
}

func newTaskFixture(ctrl *gomock.Controller) *taskFixture {
	f := &taskFixture{
		tasks:     mocks.NewMockWorkTaskRepositoryIface(ctrl),
		users:     mocks.NewMockUserRepositoryIface(ctrl),
		roles:     mocks.NewMockRoleRepositoryIface(ctrl),
		relations: mocks.NewMockRelationRepositoryIface(ctrl),
	}
	cache := service.NewCacheService(service.CacheConfig{TTL: time.Minute, Size: 16})
	f.svc = service.NewWorkTaskService(f.tasks, f.users, f.roles, f.relations, auth.NewGate(f.roles), cache, service.WithClock(clock))
	return f
}

// org is R1 -> R2 -> R3 with users U1, U2, U3 bound in order.
type org struct {
	r1, r2, r3 *model.Role
	u1, u2, u3 *model.User
}

func newOrg() org {
	structureID := uuid.New()
	o := org{
		r1: &model.Role{ID: uuid.New(), StructureID: structureID, IsStructureAdmin: true},
		r2: &model.Role{ID: uuid.New(), StructureID: structureID},
		r3: &model.Role{ID: uuid.New(), StructureID: structureID},
	}
	o.u1 = &model.User{ID: uuid.New(), RoleID: &o.r1.ID}
	o.u2 = &model.User{ID: uuid.New(), RoleID: &o.r2.ID}
	o.u3 = &model.User{ID: uuid.New(), RoleID: &o.r3.ID}
	return o
}

func (f *taskFixture) knows(o org) {
	for _, r := range []*model.Role{o.r1, o.r2, o.r3} {
		f.roles.EXPECT().FindByID(gomock.Any(), r.ID).Return(r, nil).AnyTimes()
	}
	for _, u := range []*model.User{o.u1, o.u2, o.u3} {
		f.users.EXPECT().FindByID(gomock.Any(), u.ID).Return(u, nil).AnyTimes()
	}
	direct := map[[2]uuid.UUID]bool{
		{o.r1.ID, o.r2.ID}: true,
		{o.r2.ID, o.r3.ID}: true,
	}
	f.relations.EXPECT().Exists(gomock.Any(), gomock.Any(), gomock.Any(), o.r1.StructureID).DoAndReturn(
		func(_ context.Context, sup, sub, _ uuid.UUID) (bool, error) {
			return direct[[2]uuid.UUID{sup, sub}], nil
		}).AnyTimes()
}

func TestCreateTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o := newOrg()
	due := fixedNow.Add(48 * time.Hour)

	t.Run("direct superior", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		f.knows(o)
		f.tasks.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		task, err := f.svc.CreateTask(context.Background(), o.u1, service.CreateWorkTaskInput{
			Name:       "Write report",
			CompleteBy: due,
			AssigneeID: o.u2.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, model.TaskStatusCreated, task.Status)
		assert.Equal(t, model.RateUnset, task.Rate)
		assert.Equal(t, o.u1.ID, task.CreatorID)
	})

	t.Run("grandparent is not a direct superior", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		f.knows(o)

		_, err := f.svc.CreateTask(context.Background(), o.u1, service.CreateWorkTaskInput{
			Name: "Skip a level", CompleteBy: due, AssigneeID: o.u3.ID,
		})
		assert.ErrorIs(t, err, domain.ErrNotDirectSuperior)
	})

	t.Run("upwards", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		f.knows(o)

		_, err := f.svc.CreateTask(context.Background(), o.u2, service.CreateWorkTaskInput{
			Name: "Boss, do this", CompleteBy: due, AssigneeID: o.u1.ID,
		})
		assert.ErrorIs(t, err, domain.ErrNotDirectSuperior)
	})

	t.Run("deadline in the past", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		f.knows(o)

		_, err := f.svc.CreateTask(context.Background(), o.u1, service.CreateWorkTaskInput{
			Name: "Too late", CompleteBy: fixedNow.Add(-time.Minute), AssigneeID: o.u2.ID,
		})
		assert.ErrorIs(t, err, domain.ErrTaskBeforeNow)
	})

	t.Run("creator without role", func(t *testing.T) {
		f := newTaskFixture(ctrl)

		_, err := f.svc.CreateTask(context.Background(), &model.User{ID: uuid.New()}, service.CreateWorkTaskInput{
			Name: "x", CompleteBy: due, AssigneeID: o.u2.ID,
		})
		assert.ErrorIs(t, err, domain.ErrRoleNotFoundForUser)
	})

	t.Run("unknown assignee", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		f.knows(o)
		ghost := uuid.New()
		f.users.EXPECT().FindByID(gomock.Any(), ghost).Return(nil, domain.ErrUserNotFound)

		_, err := f.svc.CreateTask(context.Background(), o.u1, service.CreateWorkTaskInput{
			Name: "x", CompleteBy: due, AssigneeID: ghost,
		})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("assignee without role", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		f.knows(o)
		loner := &model.User{ID: uuid.New()}
		f.users.EXPECT().FindByID(gomock.Any(), loner.ID).Return(loner, nil)

		_, err := f.svc.CreateTask(context.Background(), o.u1, service.CreateWorkTaskInput{
			Name: "x", CompleteBy: due, AssigneeID: loner.ID,
		})
		assert.ErrorIs(t, err, domain.ErrRoleNotFound)
	})
}

func TestTaskStatusAndRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o := newOrg()
	newTask := func() *model.WorkTask {
		return &model.WorkTask{
			ID:         uuid.New(),
			Status:     model.TaskStatusCreated,
			CreatorID:  o.u1.ID,
			AssigneeID: o.u2.ID,
			CompleteBy: fixedNow.Add(time.Hour),
		}
	}

	t.Run("assignee walks the machine", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		task := newTask()
		f.tasks.EXPECT().FindByID(gomock.Any(), task.ID).Return(task, nil).Times(3)
		f.tasks.EXPECT().Update(gomock.Any(), task).Return(nil).Times(2)

		_, err := f.svc.UpdateStatus(context.Background(), o.u2, task.ID, service.UpdateStatusInput{Status: model.TaskStatusInWork})
		require.NoError(t, err)
		_, err = f.svc.UpdateStatus(context.Background(), o.u2, task.ID, service.UpdateStatusInput{Status: model.TaskStatusCompleted})
		require.NoError(t, err)

		_, err = f.svc.UpdateStatus(context.Background(), o.u2, task.ID, service.UpdateStatusInput{Status: model.TaskStatusCreated})
		assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
		assert.Equal(t, model.TaskStatusCompleted, task.Status)
	})

	t.Run("skipping a step", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		task := newTask()
		f.tasks.EXPECT().FindByID(gomock.Any(), task.ID).Return(task, nil)

		_, err := f.svc.UpdateStatus(context.Background(), o.u2, task.ID, service.UpdateStatusInput{Status: model.TaskStatusCompleted})
		assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	})

	t.Run("creator cannot move status", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		task := newTask()
		f.tasks.EXPECT().FindByID(gomock.Any(), task.ID).Return(task, nil)

		_, err := f.svc.UpdateStatus(context.Background(), o.u1, task.ID, service.UpdateStatusInput{Status: model.TaskStatusInWork})
		assert.ErrorIs(t, err, domain.ErrNotTaskAssignee)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newTaskFixture(ctrl)

		_, err := f.svc.UpdateStatus(context.Background(), o.u2, uuid.New(), service.UpdateStatusInput{Status: "DONE"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("creator rates, assignee cannot", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		task := newTask()
		f.tasks.EXPECT().FindByID(gomock.Any(), task.ID).Return(task, nil).Times(2)
		f.tasks.EXPECT().Update(gomock.Any(), task).Return(nil)

		got, err := f.svc.UpdateRate(context.Background(), o.u1, task.ID, service.UpdateRateInput{Rate: model.RateGreat})
		require.NoError(t, err)
		assert.Equal(t, model.RateGreat, got.Rate)

		_, err = f.svc.UpdateRate(context.Background(), o.u2, task.ID, service.UpdateRateInput{Rate: model.RateGood})
		assert.ErrorIs(t, err, domain.ErrNotTaskCreator)
	})

	t.Run("rate out of range", func(t *testing.T) {
		f := newTaskFixture(ctrl)

		for _, r := range []model.WorkTaskRate{0, 4, -1} {
			_, err := f.svc.UpdateRate(context.Background(), o.u1, uuid.New(), service.UpdateRateInput{Rate: r})
			assert.ErrorIs(t, err, domain.ErrInvalidRate)
		}
	})

	t.Run("only creator deletes", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		task := newTask()
		f.tasks.EXPECT().FindByID(gomock.Any(), task.ID).Return(task, nil).Times(2)
		f.tasks.EXPECT().Delete(gomock.Any(), task.ID).Return(nil)

		assert.ErrorIs(t, f.svc.DeleteTask(context.Background(), o.u2, task.ID), domain.ErrNotTaskCreator)
		assert.NoError(t, f.svc.DeleteTask(context.Background(), o.u1, task.ID))
	})

	t.Run("update moves deadline forward only", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		task := newTask()
		f.tasks.EXPECT().FindByID(gomock.Any(), task.ID).Return(task, nil)
		f.tasks.EXPECT().Update(gomock.Any(), task).Return(nil)

		past := fixedNow.Add(-time.Hour)
		_, err := f.svc.UpdateTask(context.Background(), o.u1, task.ID, service.UpdateWorkTaskInput{CompleteBy: &past})
		assert.ErrorIs(t, err, domain.ErrTaskBeforeNow)

		name := "Renamed"
		got, err := f.svc.UpdateTask(context.Background(), o.u1, task.ID, service.UpdateWorkTaskInput{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
	})
}

func TestRatings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	o := newOrg()
	since := fixedNow.Add(-service.RatingWindow)

	t.Run("user rating is cached until a rate changes", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		first, second := 2.5, 3.0

		gomock.InOrder(
			f.tasks.EXPECT().AverageRateForAssignee(gomock.Any(), o.u2.ID, since).Return(&first, nil),
			f.tasks.EXPECT().AverageRateForAssignee(gomock.Any(), o.u2.ID, since).Return(&second, nil),
		)

		got, err := f.svc.UserRating(context.Background(), o.u2.ID)
		require.NoError(t, err)
		assert.Equal(t, 2.5, got)

		got, err = f.svc.UserRating(context.Background(), o.u2.ID)
		require.NoError(t, err)
		assert.Equal(t, 2.5, got)

		task := &model.WorkTask{ID: uuid.New(), CreatorID: o.u1.ID, AssigneeID: o.u2.ID, Status: model.TaskStatusCompleted}
		f.tasks.EXPECT().FindByID(gomock.Any(), task.ID).Return(task, nil)
		f.tasks.EXPECT().Update(gomock.Any(), task).Return(nil)
		_, err = f.svc.UpdateRate(context.Background(), o.u1, task.ID, service.UpdateRateInput{Rate: model.RateGreat})
		require.NoError(t, err)

		got, err = f.svc.UserRating(context.Background(), o.u2.ID)
		require.NoError(t, err)
		assert.Equal(t, 3.0, got)
	})

	t.Run("moving a rated deadline refreshes the user rating", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		stale, fresh := 1.0, 2.0

		gomock.InOrder(
			f.tasks.EXPECT().AverageRateForAssignee(gomock.Any(), o.u2.ID, since).Return(&stale, nil),
			f.tasks.EXPECT().AverageRateForAssignee(gomock.Any(), o.u2.ID, since).Return(&fresh, nil),
		)

		got, err := f.svc.UserRating(context.Background(), o.u2.ID)
		require.NoError(t, err)
		assert.Equal(t, 1.0, got)

		task := &model.WorkTask{
			ID:         uuid.New(),
			CreatorID:  o.u1.ID,
			AssigneeID: o.u2.ID,
			Status:     model.TaskStatusCompleted,
			Rate:       model.RateGood,
			CompleteBy: fixedNow.Add(-200 * 24 * time.Hour),
		}
		f.tasks.EXPECT().FindByID(gomock.Any(), task.ID).Return(task, nil)
		f.tasks.EXPECT().Update(gomock.Any(), task).Return(nil)

		tomorrow := fixedNow.Add(24 * time.Hour)
		_, err = f.svc.UpdateTask(context.Background(), o.u1, task.ID, service.UpdateWorkTaskInput{CompleteBy: &tomorrow})
		require.NoError(t, err)

		got, err = f.svc.UserRating(context.Background(), o.u2.ID)
		require.NoError(t, err)
		assert.Equal(t, 2.0, got)
	})

	t.Run("unrated deadline change keeps the cache", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		avg := 2.0
		f.tasks.EXPECT().AverageRateForAssignee(gomock.Any(), o.u2.ID, since).Return(&avg, nil).Times(1)

		_, err := f.svc.UserRating(context.Background(), o.u2.ID)
		require.NoError(t, err)

		task := &model.WorkTask{
			ID:         uuid.New(),
			CreatorID:  o.u1.ID,
			AssigneeID: o.u2.ID,
			Status:     model.TaskStatusCreated,
			CompleteBy: fixedNow.Add(time.Hour),
		}
		f.tasks.EXPECT().FindByID(gomock.Any(), task.ID).Return(task, nil)
		f.tasks.EXPECT().Update(gomock.Any(), task).Return(nil)

		later := fixedNow.Add(48 * time.Hour)
		_, err = f.svc.UpdateTask(context.Background(), o.u1, task.ID, service.UpdateWorkTaskInput{CompleteBy: &later})
		require.NoError(t, err)

		got, err := f.svc.UserRating(context.Background(), o.u2.ID)
		require.NoError(t, err)
		assert.Equal(t, 2.0, got)
	})

	t.Run("no rated tasks", func(t *testing.T) {
		f := newTaskFixture(ctrl)
		f.tasks.EXPECT().AverageRateForStructure(gomock.Any(), o.r1.StructureID, since).Return(nil, nil)

		_, err := f.svc.TeamRating(context.Background(), o.r1.StructureID)
		assert.ErrorIs(t, err, domain.ErrTasksNotFound)
	})
}
