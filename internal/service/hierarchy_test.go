package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dangerclosesec/structura/internal/auth"
	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/mocks"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/dangerclosesec/structura/internal/repository"
	"github.com/dangerclosesec/structura/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recorded struct {
	entity, operation string
}

type fakeRecorder struct {
	calls []recorded
}

func (f *fakeRecorder) RecordMutation(entity, operation string) {
	f.calls = append(f.calls, recorded{entity, operation})
}

func TestStructureCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("bootstraps admin role", func(t *testing.T) {
		structures := mocks.NewMockStructureRepositoryIface(ctrl)
		rec := &fakeRecorder{}
		svc := service.NewStructureService(structures, nil, nil, auth.NewGate(nil), service.WithRecorder(rec))

		creator := &model.User{ID: uuid.New()}
		structures.EXPECT().CreateWithAdmin(gomock.Any(), gomock.Any(), creator.ID).DoAndReturn(
			func(_ context.Context, s *model.Structure, _ uuid.UUID) (*model.Role, error) {
				s.ID = uuid.New()
				role := s.NewAdminRole()
				role.ID = uuid.New()
				return role, nil
			})

		out, err := svc.Create(context.Background(), creator, service.StructureInput{Name: "Acme"})
		require.NoError(t, err)
		assert.Equal(t, "Acme", out.Structure.Name)
		assert.True(t, out.Role.IsStructureAdmin)
		assert.Equal(t, model.AdminRoleName, out.Role.Name)
		assert.Equal(t, out.Structure.ID, out.Role.StructureID)
		require.NotNil(t, creator.RoleID)
		assert.Equal(t, out.Role.ID, *creator.RoleID)
		assert.Equal(t, []recorded{{"structure", "create"}}, rec.calls)
	})

	t.Run("user already has a role", func(t *testing.T) {
		svc := service.NewStructureService(mocks.NewMockStructureRepositoryIface(ctrl), nil, nil, auth.NewGate(nil))

		roleID := uuid.New()
		_, err := svc.Create(context.Background(), &model.User{ID: uuid.New(), RoleID: &roleID}, service.StructureInput{Name: "Acme"})
		assert.ErrorIs(t, err, domain.ErrAlreadyHaveRole)
	})

	t.Run("blank name", func(t *testing.T) {
		svc := service.NewStructureService(mocks.NewMockStructureRepositoryIface(ctrl), nil, nil, auth.NewGate(nil))

		_, err := svc.Create(context.Background(), &model.User{ID: uuid.New()}, service.StructureInput{Name: "   "})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestStructureForUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	structures := mocks.NewMockStructureRepositoryIface(ctrl)
	roles := mocks.NewMockRoleRepositoryIface(ctrl)
	svc := service.NewStructureService(structures, roles, nil, auth.NewGate(roles))

	t.Run("no role means no structure", func(t *testing.T) {
		_, err := svc.GetForUser(context.Background(), &model.User{ID: uuid.New()})
		assert.ErrorIs(t, err, domain.ErrStructureNotFound)
	})

	t.Run("member", func(t *testing.T) {
		structure := &model.Structure{ID: uuid.New(), Name: "Acme"}
		role := &model.Role{ID: uuid.New(), StructureID: structure.ID}

		roles.EXPECT().FindByID(gomock.Any(), role.ID).Return(role, nil)
		structures.EXPECT().FindByID(gomock.Any(), structure.ID).Return(structure, nil)

		got, err := svc.GetForUser(context.Background(), &model.User{RoleID: &role.ID})
		require.NoError(t, err)
		assert.Equal(t, structure, got)
	})
}

func TestStructureUpdateRequiresAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	structures := mocks.NewMockStructureRepositoryIface(ctrl)
	svc := service.NewStructureService(structures, nil, nil, auth.NewGate(nil))

	structure := &model.Structure{ID: uuid.New(), Name: "Acme"}
	admin := structure.NewAdminRole()

	_, err := svc.Update(context.Background(), &model.Role{StructureID: structure.ID}, service.StructureInput{Name: "Evil"})
	assert.ErrorIs(t, err, domain.ErrNotTeamAdministrator)

	structures.EXPECT().FindByID(gomock.Any(), structure.ID).Return(structure, nil)
	structures.EXPECT().Update(gomock.Any(), structure).Return(nil)

	got, err := svc.Update(context.Background(), admin, service.StructureInput{Name: "Acme Corp", Info: "new"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.Name)
}

func TestDeleteRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	structureID := uuid.New()
	admin := (&model.Structure{ID: structureID}).NewAdminRole()
	admin.ID = uuid.New()
	member := &model.Role{ID: uuid.New(), StructureID: structureID}

	t.Run("self deletion is rejected before anything else", func(t *testing.T) {
		svc := service.NewRoleService(mocks.NewMockRoleRepositoryIface(ctrl), auth.NewGate(nil))

		assert.ErrorIs(t, svc.DeleteRole(context.Background(), admin, admin.ID), domain.ErrSelfDeletion)
		assert.ErrorIs(t, svc.DeleteRole(context.Background(), member, member.ID), domain.ErrSelfDeletion)
	})

	t.Run("non admin", func(t *testing.T) {
		svc := service.NewRoleService(mocks.NewMockRoleRepositoryIface(ctrl), auth.NewGate(nil))

		assert.ErrorIs(t, svc.DeleteRole(context.Background(), member, admin.ID), domain.ErrNotTeamAdministrator)
	})

	t.Run("missing target", func(t *testing.T) {
		roles := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewRoleService(roles, auth.NewGate(roles))

		missing := uuid.New()
		roles.EXPECT().FindByID(gomock.Any(), missing).Return(nil, domain.ErrRoleNotFound)

		assert.ErrorIs(t, svc.DeleteRole(context.Background(), admin, missing), domain.ErrRoleNotFound)
	})

	t.Run("other structure", func(t *testing.T) {
		roles := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewRoleService(roles, auth.NewGate(roles))

		foreign := &model.Role{ID: uuid.New(), StructureID: uuid.New()}
		roles.EXPECT().FindByID(gomock.Any(), foreign.ID).Return(foreign, nil)

		assert.ErrorIs(t, svc.DeleteRole(context.Background(), admin, foreign.ID), domain.ErrCrossStructureViolation)
	})

	t.Run("deletes", func(t *testing.T) {
		roles := mocks.NewMockRoleRepositoryIface(ctrl)
		rec := &fakeRecorder{}
		svc := service.NewRoleService(roles, auth.NewGate(roles), service.WithRecorder(rec))

		gomock.InOrder(
			roles.EXPECT().FindByID(gomock.Any(), member.ID).Return(member, nil),
			roles.EXPECT().Delete(gomock.Any(), member.ID).Return(nil),
		)

		require.NoError(t, svc.DeleteRole(context.Background(), admin, member.ID))
		assert.Equal(t, []recorded{{"role", "delete"}}, rec.calls)
	})
}

func TestCreateRoleBoundToUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	structureID := uuid.New()
	admin := (&model.Structure{ID: structureID}).NewAdminRole()
	userID := uuid.New()
	input := service.BoundRoleInput{RoleInput: service.RoleInput{Name: "Engineer"}, UserID: userID}

	t.Run("binds into the admin's structure", func(t *testing.T) {
		roles := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewRoleService(roles, auth.NewGate(roles))

		roles.EXPECT().CreateBoundToUser(gomock.Any(), gomock.Any(), userID).DoAndReturn(
			func(_ context.Context, r *model.Role, _ uuid.UUID) error {
				assert.Equal(t, structureID, r.StructureID)
				assert.False(t, r.IsStructureAdmin)
				return nil
			})

		role, err := svc.CreateRoleBoundToUser(context.Background(), admin, input)
		require.NoError(t, err)
		assert.Equal(t, "Engineer", role.Name)
	})

	t.Run("user already bound", func(t *testing.T) {
		roles := mocks.NewMockRoleRepositoryIface(ctrl)
		svc := service.NewRoleService(roles, auth.NewGate(roles))

		roles.EXPECT().CreateBoundToUser(gomock.Any(), gomock.Any(), userID).Return(domain.ErrAlreadyHaveRole)

		_, err := svc.CreateRoleBoundToUser(context.Background(), admin, input)
		assert.ErrorIs(t, err, domain.ErrAlreadyHaveRole)
	})

	t.Run("member cannot create roles", func(t *testing.T) {
		svc := service.NewRoleService(mocks.NewMockRoleRepositoryIface(ctrl), auth.NewGate(nil))

		_, err := svc.CreateRoleBoundToUser(context.Background(), &model.Role{StructureID: structureID}, input)
		assert.ErrorIs(t, err, domain.ErrNotTeamAdministrator)
	})
}

func TestCreateRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	structureID := uuid.New()

	t.Run("creates an unbound role", func(t *testing.T) {
		roles := mocks.NewMockRoleRepositoryIface(ctrl)
		rec := &fakeRecorder{}
		svc := service.NewRoleService(roles, auth.NewGate(roles), service.WithRecorder(rec))

		roles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *model.Role) error {
			assert.Equal(t, structureID, r.StructureID)
			assert.False(t, r.IsStructureAdmin)
			return nil
		})

		role, err := svc.CreateRole(context.Background(), structureID, service.RoleInput{Name: "Designer", Info: "UI"})
		require.NoError(t, err)
		assert.Equal(t, "Designer", role.Name)
		assert.Equal(t, []recorded{{"role", "create"}}, rec.calls)
	})

	t.Run("blank name", func(t *testing.T) {
		svc := service.NewRoleService(mocks.NewMockRoleRepositoryIface(ctrl), auth.NewGate(nil))

		_, err := svc.CreateRole(context.Background(), structureID, service.RoleInput{Name: "  "})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestRoleChangesRefreshTeamRating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	structureID := uuid.New()
	admin := (&model.Structure{ID: structureID}).NewAdminRole()
	admin.ID = uuid.New()
	member := &model.Role{ID: uuid.New(), StructureID: structureID}
	now := time.Date(2024, time.March, 14, 10, 0, 0, 0, time.UTC)
	since := now.Add(-service.RatingWindow)

	setup := func() (*service.WorkTaskService, *service.RoleService, *mocks.MockWorkTaskRepositoryIface, *mocks.MockRoleRepositoryIface) {
		tasks := mocks.NewMockWorkTaskRepositoryIface(ctrl)
		roles := mocks.NewMockRoleRepositoryIface(ctrl)
		cache := service.NewCacheService(service.CacheConfig{TTL: time.Minute, Size: 16})
		clock := service.WithClock(func() time.Time { return now })
		gate := auth.NewGate(roles)
		tasksSvc := service.NewWorkTaskService(tasks, mocks.NewMockUserRepositoryIface(ctrl), roles,
			mocks.NewMockRelationRepositoryIface(ctrl), gate, cache, clock)
		return tasksSvc, service.NewRoleService(roles, gate, clock, service.WithCache(cache)), tasks, roles
	}

	t.Run("after deleting a role", func(t *testing.T) {
		tasksSvc, roleSvc, tasks, roles := setup()
		before, after := 2.0, 3.0
		gomock.InOrder(
			tasks.EXPECT().AverageRateForStructure(gomock.Any(), structureID, since).Return(&before, nil),
			tasks.EXPECT().AverageRateForStructure(gomock.Any(), structureID, since).Return(&after, nil),
		)
		roles.EXPECT().FindByID(gomock.Any(), member.ID).Return(member, nil)
		roles.EXPECT().Delete(gomock.Any(), member.ID).Return(nil)

		got, err := tasksSvc.TeamRating(context.Background(), structureID)
		require.NoError(t, err)
		assert.Equal(t, 2.0, got)

		require.NoError(t, roleSvc.DeleteRole(context.Background(), admin, member.ID))

		got, err = tasksSvc.TeamRating(context.Background(), structureID)
		require.NoError(t, err)
		assert.Equal(t, 3.0, got)
	})

	t.Run("after binding a user to a new role", func(t *testing.T) {
		tasksSvc, roleSvc, tasks, roles := setup()
		before, after := 2.0, 1.5
		gomock.InOrder(
			tasks.EXPECT().AverageRateForStructure(gomock.Any(), structureID, since).Return(&before, nil),
			tasks.EXPECT().AverageRateForStructure(gomock.Any(), structureID, since).Return(&after, nil),
		)
		userID := uuid.New()
		roles.EXPECT().CreateBoundToUser(gomock.Any(), gomock.Any(), userID).Return(nil)

		_, err := tasksSvc.TeamRating(context.Background(), structureID)
		require.NoError(t, err)

		_, err = roleSvc.CreateRoleBoundToUser(context.Background(), admin, service.BoundRoleInput{
			RoleInput: service.RoleInput{Name: "Engineer"}, UserID: userID,
		})
		require.NoError(t, err)

		got, err := tasksSvc.TeamRating(context.Background(), structureID)
		require.NoError(t, err)
		assert.Equal(t, 1.5, got)
	})

	t.Run("other structures stay cached", func(t *testing.T) {
		tasksSvc, roleSvc, tasks, roles := setup()
		otherID := uuid.New()
		avg := 2.5
		tasks.EXPECT().AverageRateForStructure(gomock.Any(), otherID, since).Return(&avg, nil).Times(1)
		roles.EXPECT().FindByID(gomock.Any(), member.ID).Return(member, nil)
		roles.EXPECT().Delete(gomock.Any(), member.ID).Return(nil)

		_, err := tasksSvc.TeamRating(context.Background(), otherID)
		require.NoError(t, err)
		require.NoError(t, roleSvc.DeleteRole(context.Background(), admin, member.ID))

		got, err := tasksSvc.TeamRating(context.Background(), otherID)
		require.NoError(t, err)
		assert.Equal(t, 2.5, got)
	})
}

func TestUpdateMyRoleKeepsNameAndStanding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roles := mocks.NewMockRoleRepositoryIface(ctrl)
	svc := service.NewRoleService(roles, auth.NewGate(roles))

	admin := (&model.Structure{ID: uuid.New()}).NewAdminRole()
	roles.EXPECT().Update(gomock.Any(), admin).Return(nil)

	got, err := svc.UpdateMyRole(context.Background(), admin, service.UpdateRoleInput{Info: "runs the place"})
	require.NoError(t, err)
	assert.Equal(t, "runs the place", got.Info)
	assert.Equal(t, model.AdminRoleName, got.Name)
	assert.True(t, got.IsStructureAdmin)
}

// relationFixture wires a RelationService over mocks holding the given roles.
type relationFixture struct {
	svc       *service.RelationService
	relations *mocks.MockRelationRepositoryIface
	roles     *mocks.MockRoleRepositoryIface
}

func newRelationFixture(ctrl *gomock.Controller, known ...*model.Role) *relationFixture {
	roles := mocks.NewMockRoleRepositoryIface(ctrl)
	relations := mocks.NewMockRelationRepositoryIface(ctrl)

	byID := make(map[uuid.UUID]*model.Role, len(known))
	for _, r := range known {
		byID[r.ID] = r
	}
	roles.EXPECT().FindByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id uuid.UUID) (*model.Role, error) {
			if r, ok := byID[id]; ok {
				return r, nil
			}
			return nil, domain.ErrRoleNotFound
		}).AnyTimes()

	return &relationFixture{
		svc:       service.NewRelationService(relations, roles, auth.NewGate(roles)),
		relations: relations,
		roles:     roles,
	}
}

// storeWith makes Create run its guard against existing and then apply the
// unique constraint on the triple.
func (f *relationFixture) storeWith(existing ...*model.Relation) {
	f.relations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rel *model.Relation, guard repository.RelationGuard) error {
			if err := guard(existing); err != nil {
				return err
			}
			for _, e := range existing {
				if e.SuperiorID == rel.SuperiorID && e.SubordinateID == rel.SubordinateID && e.StructureID == rel.StructureID {
					return domain.ErrRelationAlreadyExists
				}
			}
			existing = append(existing, rel)
			return nil
		}).AnyTimes()
}

func TestCreateRelation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s1, s2 := uuid.New(), uuid.New()
	admin := (&model.Structure{ID: s1}).NewAdminRole()
	admin.ID = uuid.New()
	r2 := &model.Role{ID: uuid.New(), StructureID: s1}
	r3 := &model.Role{ID: uuid.New(), StructureID: s1}
	foreign := &model.Role{ID: uuid.New(), StructureID: s2}

	t.Run("member is not administrator", func(t *testing.T) {
		f := newRelationFixture(ctrl, admin, r2)
		_, err := f.svc.CreateRelation(context.Background(), r2, service.RelationInput{SuperiorID: r2.ID, SubordinateID: admin.ID})
		assert.ErrorIs(t, err, domain.ErrNotTeamAdministrator)
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		f := newRelationFixture(ctrl, admin)
		_, err := f.svc.CreateRelation(context.Background(), admin, service.RelationInput{SuperiorID: admin.ID, SubordinateID: uuid.New()})
		assert.ErrorIs(t, err, domain.ErrRoleNotFound)
	})

	t.Run("either endpoint in another structure", func(t *testing.T) {
		f := newRelationFixture(ctrl, admin, foreign)

		_, err := f.svc.CreateRelation(context.Background(), admin, service.RelationInput{SuperiorID: admin.ID, SubordinateID: foreign.ID})
		assert.ErrorIs(t, err, domain.ErrCrossStructureViolation)

		_, err = f.svc.CreateRelation(context.Background(), admin, service.RelationInput{SuperiorID: foreign.ID, SubordinateID: admin.ID})
		assert.ErrorIs(t, err, domain.ErrCrossStructureViolation)
	})

	t.Run("acting structure differs from both endpoints", func(t *testing.T) {
		f := newRelationFixture(ctrl, r2, r3)

		_, err := f.svc.Create(context.Background(), r2.ID, r3.ID, s2)
		assert.ErrorIs(t, err, domain.ErrCrossStructureViolation)
	})

	t.Run("self relation", func(t *testing.T) {
		f := newRelationFixture(ctrl, admin, r2)
		_, err := f.svc.CreateRelation(context.Background(), admin, service.RelationInput{SuperiorID: r2.ID, SubordinateID: r2.ID})
		assert.ErrorIs(t, err, domain.ErrSelfRelation)
	})

	t.Run("duplicate triple", func(t *testing.T) {
		f := newRelationFixture(ctrl, admin, r2)
		f.storeWith()

		in := service.RelationInput{SuperiorID: admin.ID, SubordinateID: r2.ID}
		rel, err := f.svc.CreateRelation(context.Background(), admin, in)
		require.NoError(t, err)
		assert.Equal(t, s1, rel.StructureID)

		_, err = f.svc.CreateRelation(context.Background(), admin, in)
		assert.ErrorIs(t, err, domain.ErrRelationAlreadyExists)
	})

	t.Run("cycle through existing edges", func(t *testing.T) {
		f := newRelationFixture(ctrl, admin, r2, r3)
		f.storeWith(
			&model.Relation{SuperiorID: admin.ID, SubordinateID: r2.ID, StructureID: s1},
			&model.Relation{SuperiorID: r2.ID, SubordinateID: r3.ID, StructureID: s1},
		)

		_, err := f.svc.CreateRelation(context.Background(), admin, service.RelationInput{SuperiorID: r3.ID, SubordinateID: admin.ID})
		assert.ErrorIs(t, err, domain.ErrRelationCycle)

		_, err = f.svc.CreateRelation(context.Background(), admin, service.RelationInput{SuperiorID: admin.ID, SubordinateID: r3.ID})
		assert.NoError(t, err)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		f := newRelationFixture(ctrl, admin, r2)
		boom := errors.New("connection reset")
		f.relations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)

		_, err := f.svc.CreateRelation(context.Background(), admin, service.RelationInput{SuperiorID: admin.ID, SubordinateID: r2.ID})
		assert.ErrorIs(t, err, boom)
	})
}

func TestDeleteRelation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s1, s2 := uuid.New(), uuid.New()
	admin := (&model.Structure{ID: s1}).NewAdminRole()
	otherAdmin := (&model.Structure{ID: s2}).NewAdminRole()
	rel := &model.Relation{ID: uuid.New(), SuperiorID: uuid.New(), SubordinateID: uuid.New(), StructureID: s1}

	t.Run("from another structure", func(t *testing.T) {
		f := newRelationFixture(ctrl)
		f.relations.EXPECT().FindByID(gomock.Any(), rel.ID).Return(rel, nil)

		assert.ErrorIs(t, f.svc.DeleteRelation(context.Background(), otherAdmin, rel.ID), domain.ErrCrossStructureViolation)
	})

	t.Run("missing", func(t *testing.T) {
		f := newRelationFixture(ctrl)
		id := uuid.New()
		f.relations.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrRelationNotFound)

		assert.ErrorIs(t, f.svc.DeleteRelation(context.Background(), admin, id), domain.ErrRelationNotFound)
	})

	t.Run("member", func(t *testing.T) {
		f := newRelationFixture(ctrl)
		assert.ErrorIs(t, f.svc.DeleteRelation(context.Background(), &model.Role{StructureID: s1}, rel.ID), domain.ErrNotTeamAdministrator)
	})

	t.Run("deletes", func(t *testing.T) {
		f := newRelationFixture(ctrl)
		f.relations.EXPECT().FindByID(gomock.Any(), rel.ID).Return(rel, nil)
		f.relations.EXPECT().Delete(gomock.Any(), rel.ID).Return(nil)

		assert.NoError(t, f.svc.DeleteRelation(context.Background(), admin, rel.ID))
	})
}

func TestSubordinatesAndSuperiors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boss := &model.Role{ID: uuid.New(), StructureID: uuid.New()}
	f := newRelationFixture(ctrl, boss)

	edges := []*model.Relation{{ID: uuid.New(), SuperiorID: boss.ID}}
	f.relations.EXPECT().FindBySuperior(gomock.Any(), boss.ID).Return(edges, nil)
	f.relations.EXPECT().FindBySubordinate(gomock.Any(), boss.ID).Return(nil, nil)

	got, err := f.svc.GetSubordinates(context.Background(), boss.ID)
	require.NoError(t, err)
	assert.Equal(t, edges, got)

	got, err = f.svc.GetSuperiors(context.Background(), boss.ID)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = f.svc.GetSubordinates(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrRoleNotFound)
}
