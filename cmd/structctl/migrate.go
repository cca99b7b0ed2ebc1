package main

import (
	"fmt"

	structura "github.com/dangerclosesec/structura"
	"github.com/dangerclosesec/structura/internal/migration"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		migrations, err := structura.Migrations()
		if err != nil {
			return fmt.Errorf("loading migrations: %w", err)
		}

		db, err := migration.Open(dsn())
		if err != nil {
			return err
		}
		defer db.Close()

		ran, err := migration.NewMigrator(db).Up(cmd.Context(), migrations)
		if err != nil {
			return err
		}

		if len(ran) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No pending migrations.")
			return nil
		}
		for _, m := range ran {
			fmt.Fprintf(cmd.OutOrStdout(), "Applied %s\n", m.Name)
		}
		return nil
	},
}
