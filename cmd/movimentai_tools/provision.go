package main

import (
	"errors"
	"fmt"

	"github.com/2beens/movimentai/internal/accounts"
	"github.com/2beens/movimentai/internal/config"
	"github.com/2beens/movimentai/internal/db"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	provisionEmail string
	provisionName  string
)

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Create an account with a temporary password that must be reset on first login",
	RunE: func(cmd *cobra.Command, args []string) error {
		if provisionEmail == "" {
			return errors.New("--email is required")
		}

		cfg, err := config.Load(env, configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		ctx := cmd.Context()
		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			TracingEnabled: false,
		})
		if err != nil {
			return fmt.Errorf("db pool: %w", err)
		}
		defer dbPool.Close()

		provisioner := accounts.NewProvisioner(accounts.NewRepo(dbPool))
		res, err := provisioner.Provision(ctx, provisionEmail, provisionName, accounts.CreatedViaAdmin)
		if err != nil {
			return fmt.Errorf("provision %s: %w", provisionEmail, err)
		}

		out := cmd.OutOrStdout()
		if !res.Created {
			color.New(color.FgYellow).Fprintf(out, "⚠ account already exists: %s (%s)\n", res.Account.Email, res.Account.ID)
			return nil
		}
		color.New(color.FgGreen).Fprintf(out, "✓ created %s (%s)\n", res.Account.Email, res.Account.ID)
		fmt.Fprintf(out, "temporary password: %s\n", res.TempPassword)
		return nil
	},
}

func init() {
	provisionCmd.Flags().StringVar(&provisionEmail, "email", "", "account email")
	provisionCmd.Flags().StringVar(&provisionName, "name", "", "display name")
}
