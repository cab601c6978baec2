package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/config"
	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/db"
)

func newCreateAdminCommand() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "createadmin",
		Short: "Create a staff account for the admin API",
		Long:  `Creates an active staff user. Nothing happens when the username is already taken.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if username == "" {
				username = cfg.SuperRootUserName
			}
			if password == "" {
				password = cfg.SuperRootPassword
			}
			if username == "" || password == "" {
				return errors.New("username and password are required")
			}

			gdb, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			if err := db.EnsureUser(gdb, username, password); err != nil {
				return err
			}
			slog.Info("admin user ready", "username", username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username (defaults to SUPER_ROOT_USER_NAME)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (defaults to SUPER_ROOT_PASSWORD)")
	return cmd
}
