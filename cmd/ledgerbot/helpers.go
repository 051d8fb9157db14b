package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mwrites/ledgerbot/internal/config"
	"github.com/mwrites/ledgerbot/internal/extract"
	"github.com/mwrites/ledgerbot/internal/llm"
	"github.com/mwrites/ledgerbot/internal/pipeline"
	"github.com/mwrites/ledgerbot/internal/service"
	"github.com/mwrites/ledgerbot/internal/storage"
)

// initStorage opens the SQLite database and applies pending migrations.
func initStorage(ctx context.Context, cfg *config.Config) (*storage.SQLiteStorage, error) {
	dbPath := config.ExpandPath(cfg.Database.Path)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initExtractor builds the extraction engine. Without an API key the
// engine runs fallback-only, which keeps local smoke tests usable.
func initExtractor(cfg *config.Config, logger *slog.Logger) (service.Extractor, error) {
	var client llm.Client
	if cfg.LLM.APIKey != "" {
		var err error
		client, err = llm.NewClient(llm.Config{
			Provider:    cfg.LLM.Provider,
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
			HTTPTimeout: cfg.LLM.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	} else {
		logger.Warn("no LLM API key configured, extraction runs fallback-only")
	}

	return extract.NewEngine(client, extract.Config{
		Timeout:    cfg.LLM.Timeout,
		MaxRetries: cfg.LLM.MaxRetries,
		RetryDelay: cfg.LLM.RetryDelay,
	}, logger), nil
}

// initPipeline assembles the local processing pipeline.
func initPipeline(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pipeline.Pipeline, *storage.SQLiteStorage, error) {
	store, err := initStorage(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	extractor, err := initExtractor(cfg, logger)
	if err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	return pipeline.New(store, extractor, logger), store, nil
}
