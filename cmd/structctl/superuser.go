package main

import (
	"fmt"

	"github.com/dangerclosesec/structura/internal/auth"
	"github.com/dangerclosesec/structura/internal/config"
	"github.com/dangerclosesec/structura/internal/repository"
	"github.com/dangerclosesec/structura/internal/service"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var superuserInput service.RegisterInput

func init() {
	f := createSuperuserCmd.Flags()
	f.StringVar(&superuserInput.Email, "email", "", "Email address")
	f.StringVar(&superuserInput.Password, "password", "", "Password (at least 8 characters)")
	f.StringVar(&superuserInput.Name, "name", "", "First name")
	f.StringVar(&superuserInput.LastName, "last-name", "", "Last name")
	_ = createSuperuserCmd.MarkFlagRequired("email")
	_ = createSuperuserCmd.MarkFlagRequired("password")
	_ = createSuperuserCmd.MarkFlagRequired("name")
}

var createSuperuserCmd = &cobra.Command{
	Use:   "create-superuser",
	Short: "Create an active superuser account",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := gorm.Open(postgres.Open(dsn()), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}

		cfg := config.Load()
		users := service.NewUserService(
			repository.NewUserRepository(db),
			auth.NewPasswordHasher(),
			auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod),
			nil,
		)

		user, err := users.CreateSuperuser(cmd.Context(), superuserInput)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created superuser %s (%s)\n", user.Email, user.ID)
		return nil
	},
}
