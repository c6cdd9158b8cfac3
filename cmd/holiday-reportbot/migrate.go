package main

import (
	"context"
	"errors"

	"holiday-reportbot/internal/database"
	"holiday-reportbot/internal/repository"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the report tables and seed the report types",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.Database.Enabled {
			return errors.New("database is disabled (DB_ENABLED=false)")
		}
		ctx := context.Background()
		db, err := database.NewPostgresDB(ctx, &cfg.Database)
		if err != nil {
			return err
		}
		defer database.Close(db)

		if err := repository.EnsureSchema(ctx, db); err != nil {
			return err
		}
		log.Info("Schema is up to date")
		return nil
	},
}
