// internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/structura/internal/domain"
	"github.com/dangerclosesec/structura/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// inTransaction runs fn in a single database transaction and logs rollbacks.
func inTransaction(ctx context.Context, db *gorm.DB, op string, fn func(tx *gorm.DB) error) error {
	err := db.WithContext(ctx).Transaction(fn)
	if err != nil {
		slog.WarnContext(ctx, "Rolling back transaction", "op", op, "error", err)
	}
	return err
}

// isUniqueViolation reports whether err was raised by a unique constraint, with or
// without gorm's TranslateError enabled.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func lockForUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// lockUnboundUser locks the user row until tx ends and fails if the user is
// missing or already bound to a role.
func lockUnboundUser(tx *gorm.DB, userID uuid.UUID) error {
	var user model.User
	if err := lockForUpdate(tx).First(&user, "id = ?", userID).Error; err != nil {
		if isNotFound(err) {
			return domain.ErrUserNotFound
		}
		return err
	}
	if user.HasRole() {
		return domain.ErrAlreadyHaveRole
	}
	return nil
}

func bindUser(tx *gorm.DB, userID, roleID uuid.UUID) error {
	return tx.Model(&model.User{}).Where("id = ?", userID).Update("role_id", roleID).Error
}

// passThrough returns domain errors unchanged and wraps anything else with msg.
func passThrough(err error, msg string, domainErrs ...error) error {
	for _, de := range domainErrs {
		if errors.Is(err, de) {
			return err
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
