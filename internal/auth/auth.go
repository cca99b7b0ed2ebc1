// internal/auth/auth.go

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/google/uuid"
)

// RoleFinder loads a role by id. repository.RoleRepository satisfies it.
type RoleFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
}

// Gate answers the three questions every hierarchy operation asks about its
// caller, always in the same order: does the user hold a role, is that role the
// structure administrator, and is the target in the same structure.
type Gate struct {
	roles RoleFinder
}

func NewGate(roles RoleFinder) *Gate {
	return &Gate{roles: roles}
}

// ResolveCurrentRole returns the role bound to user. A null or dangling role_id
// yields domain.ErrRoleNotFoundForUser.
func (g *Gate) ResolveCurrentRole(ctx context.Context, user *model.User) (*model.Role, error) {
	if user == nil || !user.HasRole() {
		return nil, domain.ErrRoleNotFoundForUser
	}

	role, err := g.roles.FindByID(ctx, *user.RoleID)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, domain.ErrRoleNotFoundForUser
		}
		return nil, fmt.Errorf("resolving current role: %w", err)
	}
	return role, nil
}

// RequireTeamAdministrator passes role through only when it is its structure's
// bootstrap administrator.
func (g *Gate) RequireTeamAdministrator(role *model.Role) (*model.Role, error) {
	if role == nil || !role.IsStructureAdmin {
		return nil, domain.ErrNotTeamAdministrator
	}
	return role, nil
}

// RequireSameStructure fails with domain.ErrCrossStructureViolation unless acting
// and target belong to one structure.
func (g *Gate) RequireSameStructure(acting, target *model.Role) error {
	if !acting.SameStructure(target) {
		return domain.ErrCrossStructureViolation
	}
	return nil
}
