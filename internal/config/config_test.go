package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LEADERBOARD_WINDOW", "")
	t.Setenv("LEADERBOARD_LIMIT", "")
	t.Setenv("PORT", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("want default port 8080, got %s", cfg.Port)
	}
	if cfg.Leaderboard.Window != 24*time.Hour {
		t.Errorf("want default window 24h, got %v", cfg.Leaderboard.Window)
	}
	if cfg.Leaderboard.Limit != 5 {
		t.Errorf("want default limit 5, got %d", cfg.Leaderboard.Limit)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LEADERBOARD_WINDOW", "6h")
	t.Setenv("LEADERBOARD_LIMIT", "10")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg := Load()
	if cfg.Leaderboard.Window != 6*time.Hour {
		t.Errorf("want window 6h, got %v", cfg.Leaderboard.Window)
	}
	if cfg.Leaderboard.Limit != 10 {
		t.Errorf("want limit 10, got %d", cfg.Leaderboard.Limit)
	}
	if cfg.DB.MaxOpenConns != 25 {
		t.Errorf("invalid int should fall back to 25, got %d", cfg.DB.MaxOpenConns)
	}
}
