package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"TermPong/core"
)

func writeProperties(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadReadsProperties(t *testing.T) {
	dir := t.TempDir()
	writeProperties(t, dir, "test.properties", `TICK_RATE=30
CELL_WIDTH=8
CELL_HEIGHT=16
KEY_HOLD_MS=200
FINAL_SCORE=5
P2_UP_KEY=i
`)

	cfg, err := Load([]string{"--env", "test", "--config-dir", dir})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.TickRate != 30 || cfg.CellWidth != 8 || cfg.CellHeight != 16 {
		t.Errorf("unexpected values %+v", cfg)
	}
	if cfg.KeyHold != 200*time.Millisecond {
		t.Errorf("expected 200ms hold, got %v", cfg.KeyHold)
	}
	if cfg.FinalScore != 5 {
		t.Errorf("expected final score 5, got %d", cfg.FinalScore)
	}
	if cfg.Keys[core.P2Up] != "i" {
		t.Errorf("expected P2 up bound to i, got %q", cfg.Keys[core.P2Up])
	}
	// defaults fill the rest
	if cfg.Keys[core.Serve] != "space" || cfg.Keys[core.P1Down] != "s" || cfg.QuitKey != "esc" {
		t.Errorf("defaults not applied: %v quit=%q", cfg.Keys, cfg.QuitKey)
	}
	if cfg.TickInterval() != time.Second/30 {
		t.Errorf("unexpected tick interval %v", cfg.TickInterval())
	}
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	writeProperties(t, dir, "local.properties", "TICK_RATE=30\nFINAL_SCORE=5\n")

	cfg, err := Load([]string{"--config-dir", dir, "--tick-rate", "120", "--final-score", "11"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TickRate != 120 || cfg.FinalScore != 11 {
		t.Errorf("flags should win, got tick rate %d final score %d", cfg.TickRate, cfg.FinalScore)
	}
	if cfg.Env != "local" {
		t.Errorf("expected default env local, got %q", cfg.Env)
	}
	// no KEY_HOLD_MS in the file: the hold must outlast the terminal repeat delay
	if cfg.KeyHold != 600*time.Millisecond {
		t.Errorf("expected default 600ms hold, got %v", cfg.KeyHold)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load([]string{"--config-dir", dir}); err == nil {
		t.Error("expected an error for a missing properties file")
	}

	writeProperties(t, dir, "local.properties", "TICK_RATE=0\n")
	if _, err := Load([]string{"--config-dir", dir}); err == nil {
		t.Error("expected an error for a zero tick rate")
	}

	writeProperties(t, dir, "local.properties", "TICK_RATE=5000\n")
	if _, err := Load([]string{"--config-dir", dir}); err == nil {
		t.Error("expected an error for a tick rate above the limit")
	}
	if _, err := Load([]string{"--config-dir", dir, "--tick-rate", "2000000000"}); err == nil {
		t.Error("expected an error for a tick rate that rounds the interval to zero")
	}

	if _, err := Load([]string{"--no-such-flag"}); err == nil {
		t.Error("expected an error for an unknown flag")
	}
}
