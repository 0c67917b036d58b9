package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	DocIntel DocIntelConfig
	Blob     BlobConfig
	LLM      LLMConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	HTTPAddr string
}

// DocIntelConfig holds document-analysis service configuration
type DocIntelConfig struct {
	Endpoint    string
	APIKey      string
	ModelID     string
	Timeout     time.Duration
	PollBackoff time.Duration
}

// BlobConfig holds blob storage configuration
type BlobConfig struct {
	AccountName string
	AccountKey  string
	Container   string
}

// LLMConfig holds text-generation model configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	MaxTokens   int
	TopP        float32
	Timeout     time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		},
		DocIntel: DocIntelConfig{
			Endpoint:    getEnv("DOCINTEL_ENDPOINT", ""),
			APIKey:      getEnv("DOCINTEL_API_KEY", ""),
			ModelID:     getEnv("DOCINTEL_MODEL_ID", "prebuilt-invoice"),
			Timeout:     getEnvAsDuration("DOCINTEL_TIMEOUT", 2*time.Minute),
			PollBackoff: getEnvAsDuration("DOCINTEL_POLL_BACKOFF", 2*time.Second),
		},
		Blob: BlobConfig{
			AccountName: getEnv("BLOB_ACCOUNT_NAME", ""),
			AccountKey:  getEnv("BLOB_ACCOUNT_KEY", ""),
			Container:   getEnv("BLOB_CONTAINER", "invoices"),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.3),
			MaxTokens:   getEnvAsInt("OPENAI_MAX_TOKENS", 200),
			TopP:        getEnvAsFloat32("OPENAI_TOP_P", 0.95),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrValidation)
	}
	if c.DocIntel.Endpoint == "" {
		return NewAppError("CONFIG_ERROR", "DOCINTEL_ENDPOINT is required", ErrValidation)
	}
	if c.DocIntel.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "DOCINTEL_API_KEY is required", ErrValidation)
	}
	if c.Blob.AccountName == "" || c.Blob.AccountKey == "" {
		return NewAppError("CONFIG_ERROR", "BLOB_ACCOUNT_NAME and BLOB_ACCOUNT_KEY are required", ErrValidation)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrValidation)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrValidation)
	}
	return nil
}
