package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "LISTEN_ADDR", "ORDERS_TABLE", "ORDERS_QUEUE_URL", "METRICS_NAMESPACE", "RUN_LOCAL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Environment != "development" {
		t.Fatalf("expected development default, got %s", cfg.Environment)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected :8080 default, got %s", cfg.ListenAddr)
	}
	if cfg.OrdersTable != "" || cfg.QueueURL != "" || cfg.MetricsNamespace != "" {
		t.Fatalf("AWS collaborators must default to off: %+v", cfg)
	}
	if cfg.RunLocal {
		t.Fatal("RunLocal must default to false")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LISTEN_ADDR", ":9000")
	t.Setenv("ORDERS_TABLE", "orders")
	t.Setenv("RUN_LOCAL", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Environment != "production" || cfg.ListenAddr != ":9000" || cfg.OrdersTable != "orders" || !cfg.RunLocal {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for unknown environment")
	}
}

func TestLoad_BadRunLocal(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("RUN_LOCAL", "maybe")

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error for RUN_LOCAL")
	}
}
