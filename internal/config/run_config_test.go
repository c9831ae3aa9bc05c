package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "allocate.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadRunConfig(t *testing.T) {
	path := writeConfig(t, "drivers_csv: d.csv\ndeliveries_csv: v.csv\nroutes_csv: r.csv\nlock_wait_ms: 500\n")

	cfg, err := LoadRunConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DriversCSV != "d.csv" || cfg.DeliveriesCSV != "v.csv" || cfg.RoutesCSV != "r.csv" {
		t.Errorf("paths = %+v", cfg)
	}
	if cfg.LockWaitMS != 500 {
		t.Errorf("lock_wait_ms = %d, want 500", cfg.LockWaitMS)
	}
}

func TestLoadRunConfigDefaults(t *testing.T) {
	path := writeConfig(t, "routes_csv: out.csv\n")

	cfg, err := LoadRunConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DriversCSV != "data/seeds/drivers.csv" {
		t.Errorf("drivers default = %q", cfg.DriversCSV)
	}
	if cfg.LockWaitMS != 2000 {
		t.Errorf("lock wait default = %d", cfg.LockWaitMS)
	}
}

func TestLoadRunConfigRejectsNegativeWait(t *testing.T) {
	path := writeConfig(t, "lock_wait_ms: -1\n")

	if _, err := LoadRunConfig(path); err == nil {
		t.Fatal("expected error for negative lock_wait_ms")
	}
}

func TestGetFallback(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "")
	if got := Get("CONFIG_TEST_KEY", "fallback"); got != "fallback" {
		t.Errorf("Get = %q, want fallback", got)
	}

	t.Setenv("CONFIG_TEST_KEY", "set")
	if got := Get("CONFIG_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("Get = %q, want set", got)
	}

	t.Setenv("CONFIG_TEST_INT", "250")
	if got := GetInt("CONFIG_TEST_INT", 5); got != 250 {
		t.Errorf("GetInt = %d, want 250", got)
	}
	t.Setenv("CONFIG_TEST_INT", "nope")
	if got := GetInt("CONFIG_TEST_INT", 5); got != 5 {
		t.Errorf("GetInt = %d, want fallback 5", got)
	}
}
