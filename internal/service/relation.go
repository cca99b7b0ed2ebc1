package service

import (
	"context"

	"github.com/dangerclosesec/structura/internal/auth"
	"github.com/dangerclosesec/structura/internal/auth/graph"
	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/dangerclosesec/structura/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type RelationService struct {
	relations repository.RelationRepositoryIface
	roles     repository.RoleRepositoryIface
	gate      *auth.Gate
	validate  *validator.Validate
	opts      options
}

func NewRelationService(
	relations repository.RelationRepositoryIface,
	roles repository.RoleRepositoryIface,
	gate *auth.Gate,
	opts ...Option,
) *RelationService {
	return &RelationService{
		relations: relations,
		roles:     roles,
		gate:      gate,
		validate:  newValidator(),
		opts:      applyOptions(opts),
	}
}

type RelationInput struct {
	SuperiorID    uuid.UUID `json:"superior_id" validate:"required"`
	SubordinateID uuid.UUID `json:"subordinate_id" validate:"required"`
}

// CreateRelation links input.SuperiorID above input.SubordinateID on behalf of
// the acting administrator.
func (s *RelationService) CreateRelation(ctx context.Context, acting *model.Role, input RelationInput) (*model.Relation, error) {
	if _, err := s.gate.RequireTeamAdministrator(acting); err != nil {
		return nil, err
	}
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}
	return s.Create(ctx, input.SuperiorID, input.SubordinateID, acting.StructureID)
}

// Create inserts the edge superiorID -> subordinateID into structureID. Both
// roles must exist and live in structureID, and the edge may not close a loop.
func (s *RelationService) Create(ctx context.Context, superiorID, subordinateID, structureID uuid.UUID) (*model.Relation, error) {
	superior, err := s.roles.FindByID(ctx, superiorID)
	if err != nil {
		return nil, err
	}
	subordinate, err := s.roles.FindByID(ctx, subordinateID)
	if err != nil {
		return nil, err
	}

	if superior.StructureID != structureID || subordinate.StructureID != structureID {
		return nil, domain.ErrCrossStructureViolation
	}
	if superiorID == subordinateID {
		return nil, domain.ErrSelfRelation
	}

	relation := &model.Relation{
		SuperiorID:    superiorID,
		SubordinateID: subordinateID,
		StructureID:   structureID,
	}

	guard := func(existing []*model.Relation) error {
		if graph.FromRelations(existing).WouldCreateCycle(superiorID, subordinateID) {
			return domain.ErrRelationCycle
		}
		return nil
	}

	if err := s.relations.Create(ctx, relation, guard); err != nil {
		return nil, err
	}

	s.opts.recorder.RecordMutation("relation", "create")
	return relation, nil
}

// DeleteRelation removes relationID when it belongs to the acting administrator's structure.
func (s *RelationService) DeleteRelation(ctx context.Context, acting *model.Role, relationID uuid.UUID) error {
	if _, err := s.gate.RequireTeamAdministrator(acting); err != nil {
		return err
	}

	relation, err := s.relations.FindByID(ctx, relationID)
	if err != nil {
		return err
	}
	if relation.StructureID != acting.StructureID {
		return domain.ErrCrossStructureViolation
	}

	if err := s.relations.Delete(ctx, relation.ID); err != nil {
		return err
	}

	s.opts.recorder.RecordMutation("relation", "delete")
	return nil
}

// GetSubordinates returns the edges where roleID is the superior.
func (s *RelationService) GetSubordinates(ctx context.Context, roleID uuid.UUID) ([]*model.Relation, error) {
	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		return nil, err
	}
	return s.relations.FindBySuperior(ctx, roleID)
}

// GetSuperiors returns the edges where roleID is the subordinate.
func (s *RelationService) GetSuperiors(ctx context.Context, roleID uuid.UUID) ([]*model.Relation, error) {
	if _, err := s.roles.FindByID(ctx, roleID); err != nil {
		return nil, err
	}
	return s.relations.FindBySubordinate(ctx, roleID)
}
