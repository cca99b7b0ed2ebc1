// internal/repository/role.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleRepositoryIface interface {
	Create(ctx context.Context, role *model.Role) error
	CreateBoundToUser(ctx context.Context, role *model.Role, userID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
	FindByStructure(ctx context.Context, structureID uuid.UUID) ([]*model.Role, error)
	Update(ctx context.Context, role *model.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) Create(ctx context.Context, role *model.Role) error {
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		return fmt.Errorf("creating role: %w", err)
	}
	return nil
}

// CreateBoundToUser inserts role and sets the user's role_id in the same transaction.
func (r *RoleRepository) CreateBoundToUser(ctx context.Context, role *model.Role, userID uuid.UUID) error {
	err := inTransaction(ctx, r.db, "role.create_bound", func(tx *gorm.DB) error {
		if err := lockUnboundUser(tx, userID); err != nil {
			return err
		}
		if err := tx.Create(role).Error; err != nil {
			return fmt.Errorf("creating role: %w", err)
		}
		if err := bindUser(tx, userID, role.ID); err != nil {
			return fmt.Errorf("binding user: %w", err)
		}
		return nil
	})
	if err != nil {
		return passThrough(err, "transaction failed", domain.ErrUserNotFound, domain.ErrAlreadyHaveRole)
	}
	return nil
}

func (r *RoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).First(&role, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("finding role: %w", err)
	}
	return &role, nil
}

// FindByStructure returns the structure's roles with their bound users.
func (r *RoleRepository) FindByStructure(ctx context.Context, structureID uuid.UUID) ([]*model.Role, error) {
	var roles []*model.Role
	if err := r.db.WithContext(ctx).
		Preload("Users").
		Where("structure_id = ?", structureID).
		Order("created_at").
		Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("finding structure roles: %w", err)
	}
	return roles, nil
}

// Update persists name and info. structure_id and the admin flag are immutable.
func (r *RoleRepository) Update(ctx context.Context, role *model.Role) error {
	result := r.db.WithContext(ctx).
		Model(role).
		Select("name", "info").
		Updates(role)
	if result.Error != nil {
		return fmt.Errorf("updating role: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrRoleNotFound
	}
	return nil
}

// Delete removes the role and every relation touching it, and unbinds its users.
// All of it happens in one transaction.
func (r *RoleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := inTransaction(ctx, r.db, "role.delete", func(tx *gorm.DB) error {
		if err := tx.Where("superior_id = ? OR subordinate_id = ?", id, id).
			Delete(&model.Relation{}).Error; err != nil {
			return fmt.Errorf("deleting role relations: %w", err)
		}

		if err := tx.Model(&model.User{}).
			Where("role_id = ?", id).
			Update("role_id", nil).Error; err != nil {
			return fmt.Errorf("unbinding role users: %w", err)
		}

		result := tx.Where("id = ?", id).Delete(&model.Role{})
		if result.Error != nil {
			return fmt.Errorf("deleting role: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrRoleNotFound
		}
		return nil
	})
	if err != nil {
		return passThrough(err, "transaction failed", domain.ErrRoleNotFound)
	}
	return nil
}
