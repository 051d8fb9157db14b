package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwrites/ledgerbot/internal/config"
	"github.com/mwrites/ledgerbot/internal/model"
)

func processCmd() *cobra.Command {
	var senderID string

	cmd := &cobra.Command{
		Use:   "process [message...]",
		Short: "Run one message through the pipeline locally",
		Long: `Runs a single message through the full pipeline (access gate,
extraction, persistence, response) without Telegram. Useful for
smoke-testing extraction and the whitelist.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			proc, store, err := initPipeline(ctx, cfg, slog.Default())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			result := proc.Process(ctx, model.Message{
				Text:       strings.Join(args, " "),
				SenderID:   senderID,
				ReceivedAt: time.Now().UTC(),
			})

			fmt.Println(result.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&senderID, "sender", "", "telegram id of the simulated sender")
	_ = cmd.MarkFlagRequired("sender")

	return cmd
}
