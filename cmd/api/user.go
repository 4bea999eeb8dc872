package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/mediflow/mediflow-api/internal/model"
	"github.com/mediflow/mediflow-api/internal/repository/sqlstore"
	"github.com/mediflow/mediflow-api/internal/service"
	authService "github.com/mediflow/mediflow-api/internal/service/auth"
	"github.com/mediflow/mediflow-api/pkg/auth"
	"github.com/mediflow/mediflow-api/pkg/security"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage API users",
	}
	cmd.AddCommand(newUserCreateCmd())
	return cmd
}

func newUserCreateCmd() *cobra.Command {
	var (
		req      model.CreateUserRequest
		role     string
		fullName string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user who can log in to the API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, l, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			db, err := sqlstore.NewDB(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			if cfg.Database.AutoMigrate {
				if err := sqlstore.Migrate(ctx, db); err != nil {
					return err
				}
			}

			jwt, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTokenTTL)
			if err != nil {
				return err
			}

			req.Role = model.Role(role)
			if fullName != "" {
				req.FullName = &fullName
			}

			repos := sqlstore.NewRepositories(db)
			svc := authService.NewService(repos.Users, jwt, security.NewBcryptHasher(bcrypt.DefaultCost), service.SystemClock)
			user, err := svc.CreateUser(ctx, &req)
			if err != nil {
				return err
			}

			l.Info("User created", "id", user.ID.String(), "username", user.Username, "role", string(user.Role))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "login name")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.Password, "password", "", "password (at least 8 characters)")
	cmd.Flags().StringVar(&role, "role", string(model.RoleStaff), "admin, doctor, nurse, analyst or staff")
	cmd.Flags().StringVar(&fullName, "full-name", "", "display name")
	for _, name := range []string{"username", "email", "password"} {
		_ = cmd.MarkFlagRequired(name)
	}

	cmd.PreRunE = func(*cobra.Command, []string) error {
		if !model.Role(role).Valid() {
			return errors.New("role must be one of admin, doctor, nurse, analyst, staff")
		}
		return nil
	}
	return cmd
}
