package config

import (
	"testing"
	"time"
)

func TestEmbeddedDefaultsLoad(t *testing.T) {
	cfg := GetConfig()

	if !cfg.Feeds.URLHaus.Enabled || cfg.Feeds.URLHaus.URL == "" {
		t.Fatalf("URLHaus defaults missing: %+v", cfg.Feeds.URLHaus)
	}
	if !cfg.Feeds.FeodoTracker.Enabled || cfg.Feeds.FeodoTracker.URL == "" {
		t.Fatalf("FeodoTracker defaults missing: %+v", cfg.Feeds.FeodoTracker)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Fatalf("default timeout = %v, want 30s", cfg.Timeout())
	}
}

func TestParseOverrides(t *testing.T) {
	raw := []byte(`
http:
  timeout_seconds: 5
feeds:
  urlhaus:
    enabled: false
    url: "http://mirror.example/urlhaus.csv"
`)

	cfg, err := parse(raw)
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}

	if cfg.Timeout() != 5*time.Second {
		t.Fatalf("timeout = %v, want 5s", cfg.Timeout())
	}
	if cfg.Feeds.URLHaus.Enabled {
		t.Fatal("urlhaus should be disabled by the override")
	}
	if cfg.Feeds.URLHaus.URL != "http://mirror.example/urlhaus.csv" {
		t.Fatalf("urlhaus url = %q, want the override", cfg.Feeds.URLHaus.URL)
	}

	if _, err := parse([]byte("{not yaml")); err == nil {
		t.Fatal("expected error for malformed settings")
	}
}

func TestZeroTimeoutFallsBack(t *testing.T) {
	var cfg Config
	if cfg.Timeout() != 30*time.Second {
		t.Fatalf("zero timeout = %v, want 30s fallback", cfg.Timeout())
	}
}
