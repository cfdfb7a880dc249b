// Command saasctl bundles the developer tooling: the first-run setup wizard,
// schema migration, seeding and dev session tokens.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sefazor/saas-starter/internal/config"
	"github.com/sefazor/saas-starter/internal/setup"
	"github.com/sefazor/saas-starter/pkg/database"
	jwtPkg "github.com/sefazor/saas-starter/pkg/jwt"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	root := &cobra.Command{
		Use:           "saasctl",
		Short:         "Developer tooling for the SaaS starter API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(setupCmd(), migrateCmd(), seedCmd(), tokenCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Provision Postgres and write the .env file interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return setup.NewWizard(dir).Run(cmd.Context())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, _, err := openDatabase()
			if err != nil {
				return err
			}
			if err := database.RunMigrations(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample user and team",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, cfg, err := openDatabase()
			if err != nil {
				return err
			}
			if err := database.RunMigrations(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			result, err := database.Seed(cmd.Context(), db)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Seed data created successfully.")
			fmt.Fprintf(out, "User:  %s (%s)\n", result.User.Email, result.User.ClerkID)
			fmt.Fprintf(out, "Team:  %s\n", result.Team.Name)

			if cfg.AuthSecret != "" {
				token, err := jwtPkg.GenerateToken(cfg.AuthSecret, result.User.ClerkID, result.User.Email, 24*time.Hour)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Token: %s\n", token)
			}
			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	var (
		subject string
		email   string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an HS256 session token signed with AUTH_SECRET",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.AuthSecret == "" {
				return fmt.Errorf("AUTH_SECRET is not set")
			}

			token, err := jwtPkg.GenerateToken(cfg.AuthSecret, subject, email, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "sub", database.SeedClerkID, "session subject (Clerk user ID)")
	cmd.Flags().StringVar(&email, "email", database.SeedEmail, "email claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}

func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return config.LoadConfig(), nil
}

func openDatabase() (*gorm.DB, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("POSTGRES_URL is not set, run `saasctl setup` first")
	}

	db, err := database.NewDatabase(cfg.DatabaseURL, gormlogger.Warn)
	if err != nil {
		return nil, nil, err
	}
	return db, cfg, nil
}
