package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mwrites/ledgerbot/internal/config"
)

func addUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adduser <telegram-id>",
		Short: "Add a user to the whitelist",
		Long: `Adds a Telegram user id to the whitelist. Only whitelisted senders
have their messages processed; everyone else gets an access-denied
reply. Adding an existing id is a no-op.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			store, err := initStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			user, err := store.CreateUser(ctx, args[0])
			if err != nil {
				return err
			}

			slog.Info("user whitelisted", "telegram_id", user.TelegramID, "user_id", user.ID)
			return nil
		},
	}
}
