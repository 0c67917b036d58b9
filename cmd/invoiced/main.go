package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/invoiceworks/invoice-pipeline/internal/classify"
	"github.com/invoiceworks/invoice-pipeline/internal/common"
	docazure "github.com/invoiceworks/invoice-pipeline/internal/docintel/azure"
	"github.com/invoiceworks/invoice-pipeline/internal/export"
	"github.com/invoiceworks/invoice-pipeline/internal/llm"
	"github.com/invoiceworks/invoice-pipeline/internal/llm/openai"
	"github.com/invoiceworks/invoice-pipeline/internal/pipeline"
	repo "github.com/invoiceworks/invoice-pipeline/internal/repository"
	"github.com/invoiceworks/invoice-pipeline/internal/server"
	storazure "github.com/invoiceworks/invoice-pipeline/internal/storage/azure"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	blobs, err := storazure.NewBlobStore(storazure.Config{
		AccountName: cfg.Blob.AccountName,
		AccountKey:  cfg.Blob.AccountKey,
		Container:   cfg.Blob.Container,
	}, logger)
	if err != nil {
		logger.Error("failed to create blob store", "error", err)
		os.Exit(1)
	}

	analyzer := docazure.NewClient(docazure.Config{
		Endpoint:    cfg.DocIntel.Endpoint,
		APIKey:      cfg.DocIntel.APIKey,
		ModelID:     cfg.DocIntel.ModelID,
		Timeout:     cfg.DocIntel.Timeout,
		PollBackoff: cfg.DocIntel.PollBackoff,
	}, logger)

	completer := openai.NewClient(openai.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)
	classifier := classify.NewEngine(completer, llm.SamplingConfig{
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		TopP:        cfg.LLM.TopP,
	}, logger)

	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	processor := pipeline.NewProcessor(logger, blobs, analyzer, classifier, invoicesRepo)
	exporter := export.NewService(invoicesRepo, logger)

	srv := server.New(logger, processor, invoicesRepo, blobs, exporter)
	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	logger.Info("stopped")
}
