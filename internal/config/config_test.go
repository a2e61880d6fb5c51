package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Fatalf("expected default port 3000, got %d", cfg.Server.Port)
	}
	if cfg.PayPal.APIBase != "https://api-m.sandbox.paypal.com" {
		t.Fatalf("unexpected default api base: %s", cfg.PayPal.APIBase)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.HTTP.RateLimitPerSecond != 25 || cfg.HTTP.RateLimitBurst != 50 {
		t.Fatalf("unexpected rate limit defaults: %+v", cfg.HTTP)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("PAYPAL_CLIENT_ID", "client-id")
	t.Setenv("PAYPAL_CLIENT_SECRET", "client-secret")
	t.Setenv("PAYPAL_API_BASE", "https://api-m.paypal.com/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.PayPal.ClientID != "client-id" || cfg.PayPal.ClientSecret != "client-secret" {
		t.Fatalf("unexpected credentials: %+v", cfg.PayPal)
	}
	if cfg.PayPal.APIBase != "https://api-m.paypal.com" {
		t.Fatalf("expected trailing slash stripped, got %s", cfg.PayPal.APIBase)
	}
}

func TestAllowedOrigins(t *testing.T) {
	cfg := HTTPConfig{CORSOrigins: "https://a.example, https://b.example ,,"}
	got := cfg.AllowedOrigins()
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
