package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dangerclosesec/structura/internal/config"
	"github.com/spf13/cobra"
)

var version = "dev"

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (defaults to DB_* environment)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(createSuperuserCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "structctl",
	Short: "structctl administers a structura installation",
	Long:  `structctl applies schema migrations, checks hierarchy integrity and bootstraps superusers.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the structctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "structctl %s\n", version)
	},
}

// dsn prefers the --db flag and falls back to the API's environment configuration.
func dsn() string {
	if dbConnString != "" {
		return dbConnString
	}
	return config.Load().DSN()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
