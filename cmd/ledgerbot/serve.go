package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"

	"github.com/mwrites/ledgerbot/internal/config"
	"github.com/mwrites/ledgerbot/internal/ingest"
	"github.com/mwrites/ledgerbot/internal/relay"
	"github.com/mwrites/ledgerbot/internal/service"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the bot: ingestion gateway, pipeline and relay API",
		Long: `Starts the ingestion gateway in the configured mode (pull polling or
push webhook) together with the relay/admin HTTP API. When relay.url is
set, messages are forwarded to a remote processor instead of being
handled in-process.`,
		RunE: runServe,
	}
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required")
	}

	logger := slog.Default()

	proc, store, err := initPipeline(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	// The gateway talks to a remote processor when relay.url is set,
	// otherwise to the in-process pipeline.
	var processor service.Processor = proc
	if cfg.Relay.URL != "" {
		processor = relay.NewClient(cfg.Relay.URL, logger)
		logger.Info("processing delegated to relay", "url", cfg.Relay.URL)
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return fmt.Errorf("failed to init bot API: %w", err)
	}

	gateway, err := ingest.New(cfg.Telegram, botAPI, processor, ingest.NewTelegramSender(botAPI), logger)
	if err != nil {
		return err
	}

	// Relay/admin API always serves locally; the pipeline behind it is
	// the in-process one even when ingestion delegates to a remote.
	relaySrv := relay.NewServer(proc, store, logger)
	httpSrv := &http.Server{
		Addr:              cfg.Relay.Addr,
		Handler:           relaySrv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("relay API listening", "addr", cfg.Relay.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		logger.Info("ingestion gateway starting", "mode", cfg.Telegram.Mode)
		errCh <- gateway.Run(ctx)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
	return nil
}
