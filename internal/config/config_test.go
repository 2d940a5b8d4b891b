package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "launchgate.db" {
		t.Errorf("db path: got %q, want launchgate.db", cfg.DBPath)
	}
	if cfg.HistoryLimit != 20 {
		t.Errorf("history limit: got %d, want 20", cfg.HistoryLimit)
	}
	if cfg.ShortSessionMinutes != 8 {
		t.Errorf("short session minutes: got %v, want 8", cfg.ShortSessionMinutes)
	}
	if cfg.PublishEnabled() {
		t.Error("publishing should be disabled without brokers")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LAUNCHGATE_DB", "/tmp/gates.db")
	t.Setenv("HISTORY_LIMIT", "5")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/gates.db" {
		t.Errorf("db path: got %q", cfg.DBPath)
	}
	if cfg.HistoryLimit != 5 {
		t.Errorf("history limit: got %d, want 5", cfg.HistoryLimit)
	}
	if len(cfg.KafkaBrokers) != 2 || !cfg.PublishEnabled() {
		t.Errorf("brokers: got %v", cfg.KafkaBrokers)
	}
}

func TestLoad_RejectsNegativeHistoryLimit(t *testing.T) {
	t.Setenv("HISTORY_LIMIT", "-1")
	if _, err := Load(); err == nil {
		t.Error("expected error for negative history limit")
	}
}
