// internal/repository/relation.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RelationGuard inspects the structure's current edges before an insert and
// returns an error to abort it.
type RelationGuard func(existing []*model.Relation) error

type RelationRepositoryIface interface {
	Create(ctx context.Context, relation *model.Relation, guard RelationGuard) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Relation, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindBySuperior(ctx context.Context, roleID uuid.UUID) ([]*model.Relation, error)
	FindBySubordinate(ctx context.Context, roleID uuid.UUID) ([]*model.Relation, error)
	FindByStructure(ctx context.Context, structureID uuid.UUID) ([]*model.Relation, error)
	Exists(ctx context.Context, superiorID, subordinateID, structureID uuid.UUID) (bool, error)
}

type RelationRepository struct {
	db *gorm.DB
}

func NewRelationRepository(db *gorm.DB) *RelationRepository {
	return &RelationRepository{db: db}
}

// Create inserts relation with the owning structure row locked, so concurrent
// writers in one structure see each other's edges when guard runs. The unique
// constraint on (superior_id, subordinate_id, structure_id) is what rejects
// duplicates; its violation surfaces as domain.ErrRelationAlreadyExists.
func (r *RelationRepository) Create(ctx context.Context, relation *model.Relation, guard RelationGuard) error {
	var guardErr error

	err := inTransaction(ctx, r.db, "relation.create", func(tx *gorm.DB) error {
		var structure model.Structure
		if err := lockForUpdate(tx).First(&structure, "id = ?", relation.StructureID).Error; err != nil {
			if isNotFound(err) {
				return domain.ErrStructureNotFound
			}
			return fmt.Errorf("locking structure: %w", err)
		}

		if guard != nil {
			var existing []*model.Relation
			if err := tx.Where("structure_id = ?", relation.StructureID).Find(&existing).Error; err != nil {
				return fmt.Errorf("loading structure relations: %w", err)
			}
			if guardErr = guard(existing); guardErr != nil {
				return guardErr
			}
		}

		if err := tx.Create(relation).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrRelationAlreadyExists
			}
			return fmt.Errorf("creating relation: %w", err)
		}
		return nil
	})
	if err != nil {
		if guardErr != nil && errors.Is(err, guardErr) {
			return guardErr
		}
		return passThrough(err, "transaction failed", domain.ErrStructureNotFound, domain.ErrRelationAlreadyExists)
	}
	return nil
}

func (r *RelationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Relation, error) {
	var relation model.Relation
	if err := r.db.WithContext(ctx).First(&relation, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, domain.ErrRelationNotFound
		}
		return nil, fmt.Errorf("finding relation: %w", err)
	}
	return &relation, nil
}

func (r *RelationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Relation{})
	if result.Error != nil {
		return fmt.Errorf("deleting relation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRelationNotFound
	}
	return nil
}

// FindBySuperior returns the edges where roleID is the superior, with the
// subordinate role loaded.
func (r *RelationRepository) FindBySuperior(ctx context.Context, roleID uuid.UUID) ([]*model.Relation, error) {
	var relations []*model.Relation
	if err := r.db.WithContext(ctx).
		Preload("Subordinate").
		Where("superior_id = ?", roleID).
		Find(&relations).Error; err != nil {
		return nil, fmt.Errorf("finding subordinates: %w", err)
	}
	return relations, nil
}

// FindBySubordinate returns the edges where roleID is the subordinate, with the
// superior role loaded.
func (r *RelationRepository) FindBySubordinate(ctx context.Context, roleID uuid.UUID) ([]*model.Relation, error) {
	var relations []*model.Relation
	if err := r.db.WithContext(ctx).
		Preload("Superior").
		Where("subordinate_id = ?", roleID).
		Find(&relations).Error; err != nil {
		return nil, fmt.Errorf("finding superiors: %w", err)
	}
	return relations, nil
}

func (r *RelationRepository) FindByStructure(ctx context.Context, structureID uuid.UUID) ([]*model.Relation, error) {
	var relations []*model.Relation
	if err := r.db.WithContext(ctx).
		Where("structure_id = ?", structureID).
		Order("created_at").
		Find(&relations).Error; err != nil {
		return nil, fmt.Errorf("finding structure relations: %w", err)
	}
	return relations, nil
}

// Exists reports whether the direct edge superiorID -> subordinateID is stored
// in structureID.
func (r *RelationRepository) Exists(ctx context.Context, superiorID, subordinateID, structureID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&model.Relation{}).
		Where("superior_id = ? AND subordinate_id = ? AND structure_id = ?", superiorID, subordinateID, structureID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking relation: %w", err)
	}
	return count > 0, nil
}
