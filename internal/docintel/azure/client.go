package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/invoiceworks/invoice-pipeline/internal/docintel"
)

const apiVersion = "2023-07-31"

// Config for the Azure Document Intelligence client.
type Config struct {
	Endpoint    string        // e.g. https://<resource>.cognitiveservices.azure.com
	APIKey      string
	ModelID     string        // default "prebuilt-invoice"
	Timeout     time.Duration // overall analyze deadline, default 2m
	PollBackoff time.Duration // delay between result polls, default 2s
}

// Client implements docintel.Analyzer against the Document Intelligence
// REST API: submit the document, then poll the operation until it
// resolves.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.ModelID == "" {
		cfg.ModelID = "prebuilt-invoice"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	if cfg.PollBackoff <= 0 {
		cfg.PollBackoff = 2 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		log:        logger,
	}
}

func (c *Client) Analyze(ctx context.Context, content []byte, contentType string) (*docintel.AnalysisResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("docintel.analyze.start",
		"req_id", rid,
		"model", c.cfg.ModelID,
		"content_type", contentType,
		"bytes", len(content),
	)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	opURL, err := c.submit(ctx, content, contentType)
	if err != nil {
		c.log.Error("docintel.analyze.submit_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	raw, err := c.poll(ctx, opURL)
	if err != nil {
		c.log.Error("docintel.analyze.poll_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	result := convertResult(raw)
	c.log.Info("docintel.analyze.ok",
		"req_id", rid,
		"fields", len(result.Fields),
		"pages", len(result.Pages),
		"tables", len(result.Tables),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

func (c *Client) submit(ctx context.Context, content []byte, contentType string) (string, error) {
	url := fmt.Sprintf("%s/formrecognizer/documentModels/%s:analyze?api-version=%s",
		c.cfg.Endpoint, c.cfg.ModelID, apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(content))
	if err != nil {
		return "", err
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.APIKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("docintel submit: %w", err)
	}
	defer drainClose(resp.Body, c.log)

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("docintel submit status %d: %s", resp.StatusCode, body)
	}

	opURL := resp.Header.Get("Operation-Location")
	if opURL == "" {
		return "", fmt.Errorf("docintel submit: missing Operation-Location header")
	}
	return opURL, nil
}

func (c *Client) poll(ctx context.Context, opURL string) (*analyzeResult, error) {
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, opURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.APIKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("docintel poll: %w", err)
		}
		body, err := io.ReadAll(resp.Body)
		drainClose(resp.Body, c.log)
		if err != nil {
			return nil, fmt.Errorf("docintel poll read: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("docintel poll status %d: %s", resp.StatusCode, body)
		}

		var op analyzeOperation
		if err := json.Unmarshal(body, &op); err != nil {
			return nil, fmt.Errorf("docintel poll decode: %w", err)
		}

		switch op.Status {
		case "succeeded":
			if op.AnalyzeResult == nil {
				return nil, fmt.Errorf("docintel poll: succeeded without analyzeResult")
			}
			return op.AnalyzeResult, nil
		case "failed":
			return nil, fmt.Errorf("docintel analysis failed: %s", op.Error.Message)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.cfg.PollBackoff):
		}
	}
}

func drainClose(body io.ReadCloser, log *slog.Logger) {
	_, _ = io.Copy(io.Discard, body)
	if err := body.Close(); err != nil {
		log.Warn("docintel response body close error", "error", err)
	}
}
