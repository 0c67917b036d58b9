package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/invoiceworks/invoice-pipeline/internal/async"
	"github.com/invoiceworks/invoice-pipeline/internal/classify"
	"github.com/invoiceworks/invoice-pipeline/internal/common"
	docazure "github.com/invoiceworks/invoice-pipeline/internal/docintel/azure"
	"github.com/invoiceworks/invoice-pipeline/internal/export"
	"github.com/invoiceworks/invoice-pipeline/internal/ingest"
	"github.com/invoiceworks/invoice-pipeline/internal/llm"
	"github.com/invoiceworks/invoice-pipeline/internal/llm/openai"
	"github.com/invoiceworks/invoice-pipeline/internal/pipeline"
	repo "github.com/invoiceworks/invoice-pipeline/internal/repository"
	storazure "github.com/invoiceworks/invoice-pipeline/internal/storage/azure"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem   = flag.Bool("inmem", false, "use in-memory SQLite database")
		dbPath  = flag.String("db", "", "SQLite database file path (ignored with --inmem)")
		dir     = flag.String("dir", "", "directory to process invoices from (required)")
		out     = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		workers = flag.Int("workers", 4, "number of concurrent processing workers")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "invoices.xlsx")
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	// Local batch runs keep records in SQLite instead of Postgres.
	sqlitePath := *dbPath
	if *inmem || sqlitePath == "" {
		sqlitePath = ":memory:"
	}
	entc, err := repo.OpenSQLite(ctx, sqlitePath, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := entc.Close(); err != nil {
			logger.Error("failed to close ent client", "error", err)
		}
	}()

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

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(*workers),
		async.WithProcessTimeout(5*time.Minute),
	)

	walker := ingest.NewWalker(queue, logger)
	results, stats, err := walker.WalkDirectory(ctx, *dir, nil, true)
	if err != nil {
		logger.Error("directory walk failed", "error", err)
		os.Exit(1)
	}
	for _, r := range results {
		if r.Err != "" {
			logger.Warn("file skipped", "path", r.Path, "error", r.Err)
		}
	}
	logger.Info("ingest complete",
		"scanned", stats.Scanned,
		"matched", stats.Matched,
		"queued", stats.Queued,
		"failed", stats.Failed,
	)

	// Wait for all queued files to finish
	drainCtx, cancel := context.WithTimeout(ctx, 30*time.Minute)
	queue.Shutdown(drainCtx)
	cancel()

	exporter := export.NewService(invoicesRepo, logger)
	b, err := exporter.ExportInvoicesXLSX(ctx)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, b, 0o644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("batch complete", "output", *out)
}
