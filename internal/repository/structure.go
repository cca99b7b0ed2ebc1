// internal/repository/structure.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StructureRepositoryIface interface {
	CreateWithAdmin(ctx context.Context, structure *model.Structure, creatorID uuid.UUID) (*model.Role, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Structure, error)
	Update(ctx context.Context, structure *model.Structure) error
}

type StructureRepository struct {
	db *gorm.DB
}

func NewStructureRepository(db *gorm.DB) *StructureRepository {
	return &StructureRepository{db: db}
}

// CreateWithAdmin inserts the structure, its administrator role and binds the creator
// to that role in one transaction. Nothing is persisted unless all three succeed.
func (r *StructureRepository) CreateWithAdmin(ctx context.Context, structure *model.Structure, creatorID uuid.UUID) (*model.Role, error) {
	var admin *model.Role

	err := inTransaction(ctx, r.db, "structure.create", func(tx *gorm.DB) error {
		if err := lockUnboundUser(tx, creatorID); err != nil {
			return err
		}

		if err := tx.Create(structure).Error; err != nil {
			return fmt.Errorf("creating structure: %w", err)
		}

		admin = structure.NewAdminRole()
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("creating administrator role: %w", err)
		}

		if err := bindUser(tx, creatorID, admin.ID); err != nil {
			return fmt.Errorf("binding creator: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, passThrough(err, "transaction failed", domain.ErrUserNotFound, domain.ErrAlreadyHaveRole)
	}

	return admin, nil
}

func (r *StructureRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Structure, error) {
	var structure model.Structure
	if err := r.db.WithContext(ctx).First(&structure, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, domain.ErrStructureNotFound
		}
		return nil, fmt.Errorf("finding structure: %w", err)
	}
	return &structure, nil
}

func (r *StructureRepository) Update(ctx context.Context, structure *model.Structure) error {
	result := r.db.WithContext(ctx).
		Model(structure).
		Select("name", "info").
		Updates(structure)
	if result.Error != nil {
		return fmt.Errorf("updating structure: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrStructureNotFound
	}
	return nil
}
