package service

import (
	"context"

	"github.com/dangerclosesec/structura/internal/auth"
	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/dangerclosesec/structura/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type RoleService struct {
	roles    repository.RoleRepositoryIface
	gate     *auth.Gate
	validate *validator.Validate
	opts     options
}

func NewRoleService(roles repository.RoleRepositoryIface, gate *auth.Gate, opts ...Option) *RoleService {
	return &RoleService{
		roles:    roles,
		gate:     gate,
		validate: newValidator(),
		opts:     applyOptions(opts),
	}
}

type RoleInput struct {
	Name string `json:"name" validate:"required,notblank,max=255"`
	Info string `json:"info"`
}

type BoundRoleInput struct {
	RoleInput
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

type UpdateRoleInput struct {
	Info string `json:"info"`
}

// CreateRole inserts an unbound role into structureID. The caller vouches for
// the structure.
func (s *RoleService) CreateRole(ctx context.Context, structureID uuid.UUID, input RoleInput) (*model.Role, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	role := &model.Role{Name: input.Name, Info: input.Info, StructureID: structureID}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}

	s.opts.recorder.RecordMutation("role", "create")
	return role, nil
}

// CreateRoleBoundToUser adds a role to the acting administrator's structure and
// binds input.UserID to it in one transaction.
func (s *RoleService) CreateRoleBoundToUser(ctx context.Context, acting *model.Role, input BoundRoleInput) (*model.Role, error) {
	if _, err := s.gate.RequireTeamAdministrator(acting); err != nil {
		return nil, err
	}
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	role := &model.Role{Name: input.Name, Info: input.Info, StructureID: acting.StructureID}
	if err := s.roles.CreateBoundToUser(ctx, role, input.UserID); err != nil {
		return nil, err
	}
	s.opts.dropTeamRating(ctx, role.StructureID)

	s.opts.recorder.RecordMutation("role", "create")
	return role, nil
}

// UpdateMyRole changes the description of the acting role. Name and admin
// standing stay as they are.
func (s *RoleService) UpdateMyRole(ctx context.Context, acting *model.Role, input UpdateRoleInput) (*model.Role, error) {
	acting.Info = input.Info
	if err := s.roles.Update(ctx, acting); err != nil {
		return nil, err
	}

	s.opts.recorder.RecordMutation("role", "update")
	return acting, nil
}

// DeleteRole removes roleID together with its relations and unbinds its users.
// Checks run in a fixed order: self deletion, admin standing, existence, structure.
func (s *RoleService) DeleteRole(ctx context.Context, acting *model.Role, roleID uuid.UUID) error {
	if acting != nil && acting.ID == roleID {
		return domain.ErrSelfDeletion
	}
	if _, err := s.gate.RequireTeamAdministrator(acting); err != nil {
		return err
	}

	target, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		return err
	}
	if err := s.gate.RequireSameStructure(acting, target); err != nil {
		return err
	}

	if err := s.roles.Delete(ctx, target.ID); err != nil {
		return err
	}
	s.opts.dropTeamRating(ctx, target.StructureID)

	s.opts.recorder.RecordMutation("role", "delete")
	return nil
}
