package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/config"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if _, err := openDatabase(cfg); err != nil {
				return err
			}
			slog.Info("database migrated", "driver", cfg.Database.Driver)
			return nil
		},
	}
}
