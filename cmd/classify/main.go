package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/invoiceworks/invoice-pipeline/internal/classify"
	"github.com/invoiceworks/invoice-pipeline/internal/common"
	"github.com/invoiceworks/invoice-pipeline/internal/entity"
	"github.com/invoiceworks/invoice-pipeline/internal/llm"
	"github.com/invoiceworks/invoice-pipeline/internal/llm/openai"
)

// One-shot classification against a JSON file of extracted data. Useful for
// prompt debugging without running the full pipeline.
func main() {
	var (
		in    = flag.String("in", "", "path to extracted data JSON (required)")
		times = flag.Int("times", 1, "number of classification runs")
	)
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if *in == "" {
		logger.Error("usage: classify --in <extracted-data.json> [--times n]")
		os.Exit(2)
	}
	if os.Getenv("OPENAI_API_KEY") == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		logger.Error("failed to read input", "path", *in, "error", err)
		os.Exit(1)
	}
	var data entity.ExtractedData
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Error("failed to parse input", "path", *in, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	completer := openai.NewClient(openai.Config{
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
		Model:   cfg.LLM.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)
	engine := classify.NewEngine(completer, llm.SamplingConfig{
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		TopP:        cfg.LLM.TopP,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for i := 0; i < *times; i++ {
		result := engine.Classify(ctx, data)
		out, _ := json.Marshal(result)
		fmt.Println(string(out))
	}
}
