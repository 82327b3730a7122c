package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/murahdahla/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the PostgreSQL tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Store.Backend != "postgres" {
			return errors.New("migrate only applies to the postgres backend")
		}

		pool, err := database.NewPool(cmd.Context(), &database.Config{URL: cfg.Store.PostgresDSN})
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := database.Migrate(cmd.Context(), pool); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
		return nil
	},
}
