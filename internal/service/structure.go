package service

import (
	"context"
	"errors"

	"github.com/dangerclosesec/structura/internal/auth"
	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/dangerclosesec/structura/internal/repository"
	"github.com/go-playground/validator/v10"
)

type StructureService struct {
	structures repository.StructureRepositoryIface
	roles      repository.RoleRepositoryIface
	relations  repository.RelationRepositoryIface
	gate       *auth.Gate
	validate   *validator.Validate
	opts       options
}

func NewStructureService(
	structures repository.StructureRepositoryIface,
	roles repository.RoleRepositoryIface,
	relations repository.RelationRepositoryIface,
	gate *auth.Gate,
	opts ...Option,
) *StructureService {
	return &StructureService{
		structures: structures,
		roles:      roles,
		relations:  relations,
		gate:       gate,
		validate:   newValidator(),
		opts:       applyOptions(opts),
	}
}

type StructureInput struct {
	Name string `json:"name" validate:"required,notblank,max=255"`
	Info string `json:"info"`
}

type CreateStructureOutput struct {
	Structure *model.Structure `json:"structure"`
	Role      *model.Role      `json:"role"`
}

// Create founds a structure with creator as its team administrator.
func (s *StructureService) Create(ctx context.Context, creator *model.User, input StructureInput) (*CreateStructureOutput, error) {
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}
	if creator.HasRole() {
		return nil, domain.ErrAlreadyHaveRole
	}

	structure := &model.Structure{Name: input.Name, Info: input.Info}
	admin, err := s.structures.CreateWithAdmin(ctx, structure, creator.ID)
	if err != nil {
		return nil, err
	}

	creator.RoleID = &admin.ID
	s.opts.recorder.RecordMutation("structure", "create")

	return &CreateStructureOutput{Structure: structure, Role: admin}, nil
}

// currentRole resolves user's role, reporting a missing one as a missing structure.
func (s *StructureService) currentRole(ctx context.Context, user *model.User) (*model.Role, error) {
	role, err := s.gate.ResolveCurrentRole(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFoundForUser) {
			return nil, domain.ErrStructureNotFound
		}
		return nil, err
	}
	return role, nil
}

// GetForUser returns the structure user belongs to.
func (s *StructureService) GetForUser(ctx context.Context, user *model.User) (*model.Structure, error) {
	role, err := s.currentRole(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.structures.FindByID(ctx, role.StructureID)
}

// Team lists every role of user's structure with the users bound to it.
func (s *StructureService) Team(ctx context.Context, user *model.User) ([]*model.Role, error) {
	role, err := s.currentRole(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.roles.FindByStructure(ctx, role.StructureID)
}

// Update renames or re-describes the acting administrator's structure.
func (s *StructureService) Update(ctx context.Context, acting *model.Role, input StructureInput) (*model.Structure, error) {
	if _, err := s.gate.RequireTeamAdministrator(acting); err != nil {
		return nil, err
	}
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	structure, err := s.structures.FindByID(ctx, acting.StructureID)
	if err != nil {
		return nil, err
	}

	structure.Name = input.Name
	structure.Info = input.Info
	if err := s.structures.Update(ctx, structure); err != nil {
		return nil, err
	}

	s.opts.recorder.RecordMutation("structure", "update")
	return structure, nil
}

type Hierarchy struct {
	Structure *model.Structure  `json:"structure"`
	Roles     []*model.Role     `json:"roles"`
	Relations []*model.Relation `json:"relations"`
}

// Hierarchy returns the whole org chart of the acting role's structure.
func (s *StructureService) Hierarchy(ctx context.Context, acting *model.Role) (*Hierarchy, error) {
	structure, err := s.structures.FindByID(ctx, acting.StructureID)
	if err != nil {
		return nil, err
	}

	roles, err := s.roles.FindByStructure(ctx, structure.ID)
	if err != nil {
		return nil, err
	}

	relations, err := s.relations.FindByStructure(ctx, structure.ID)
	if err != nil {
		return nil, err
	}

	return &Hierarchy{Structure: structure, Roles: roles, Relations: relations}, nil
}
