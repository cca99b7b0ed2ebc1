package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	structura "github.com/dangerclosesec/structura"
	_ "github.com/lib/pq"
)

// Migrator applies the embedded schema migrations and tracks them in
// schema_migrations.
type Migrator struct {
	DB *sql.DB
}

func NewMigrator(db *sql.DB) *Migrator {
	return &Migrator{DB: db}
}

// Open connects through lib/pq using a keyword/value or URL DSN.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// InitializeSchema creates the bookkeeping table if it is missing.
func (m *Migrator) InitializeSchema(ctx context.Context) error {
	_, err := m.DB.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}
	return nil
}

// Applied returns the set of versions already recorded.
func (m *Migrator) Applied(ctx context.Context) (map[string]bool, error) {
	rows, err := m.DB.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("listing applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// Up applies every migration not yet recorded, each in its own transaction,
// and returns the ones it ran.
func (m *Migrator) Up(ctx context.Context, migrations []structura.Migration) ([]structura.Migration, error) {
	if err := m.InitializeSchema(ctx); err != nil {
		return nil, err
	}

	applied, err := m.Applied(ctx)
	if err != nil {
		return nil, err
	}

	var ran []structura.Migration
	for _, mig := range migrations {
		if applied[mig.Version] {
			continue
		}
		if err := m.apply(ctx, mig); err != nil {
			return ran, err
		}
		slog.InfoContext(ctx, "Applied migration", "version", mig.Version, "name", mig.Name)
		ran = append(ran, mig)
	}
	return ran, nil
}

func (m *Migrator) apply(ctx context.Context, mig structura.Migration) error {
	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, mig.SQL); err != nil {
		tx.Rollback()
		return fmt.Errorf("applying migration %s: %w", mig.Name, err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`,
		mig.Version, mig.Name,
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("recording migration %s: %w", mig.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
