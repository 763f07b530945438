package config

import (
	"fmt"
	"os"
	"strconv"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment. It is
// loaded once at process start and never mutated afterwards.
type Config struct {
	Environment string `validate:"required,oneof=development production"`
	ListenAddr  string `validate:"required"`

	// OrdersTable selects the DynamoDB-backed store when set; when empty the
	// service falls back to the simulated store.
	OrdersTable string

	// QueueURL enables the order.created publisher when set.
	QueueURL string

	// MetricsNamespace enables CloudWatch metric emission when set.
	MetricsNamespace string

	// RunLocal runs a plain HTTP server instead of the Lambda adapter.
	RunLocal bool
}

// Load reads configuration from the environment. A .env file is honored for
// local development; missing files are not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Environment:      envOr("APP_ENV", "development"),
		ListenAddr:       envOr("LISTEN_ADDR", ":8080"),
		OrdersTable:      os.Getenv("ORDERS_TABLE"),
		QueueURL:         os.Getenv("ORDERS_QUEUE_URL"),
		MetricsNamespace: os.Getenv("METRICS_NAMESPACE"),
	}

	if v := os.Getenv("RUN_LOCAL"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse RUN_LOCAL: %w", err)
		}
		cfg.RunLocal = b
	}

	if err := validatorv10.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
