package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `server:
  addr: ":9000"
prediction:
  temp_threshold: 410.0
  vib_threshold: 0.5
inventory:
  seed:
    BRAKE_PAD: 5
    ENGINE_BELT: 10
    FILTER: 20
supplier:
  latency_ms: 250
metrics:
  prometheus_enabled: true
mqtt:
  enabled: true
  broker: "tcp://localhost:1883"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"server.addr", cfg.Server.Addr, ":9000"},
		{"temp_threshold", cfg.Prediction.TempThreshold, 410.0},
		{"vib_threshold", cfg.Prediction.VibThreshold, 0.5},
		{"rul_cutoff default", cfg.Prediction.RULCutoff, 30},
		{"seed", cfg.Inventory.Seed["FILTER"], 20},
		{"latency", cfg.Supplier.LatencyMS, 250},
		{"eta default", cfg.Supplier.ETAHours, 24},
		{"prom", cfg.Metrics.PrometheusEnabled, true},
		{"mqtt broker", cfg.MQTT.Broker, "tcp://localhost:1883"},
		{"mqtt topic default", cfg.MQTT.Topic, "fleet/+/telemetry"},
		{"sim target default", cfg.Simulator.Target, "http://localhost:8000"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestLoadDefaultsOnEmptyConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Server.Addr != ":8000" {
		t.Fatalf("addr = %s", cfg.Server.Addr)
	}
	if cfg.Prediction.VibThreshold != 0.2 || cfg.Prediction.TempThreshold != 400.0 {
		t.Fatalf("thresholds = %+v", cfg.Prediction)
	}
	if cfg.Inventory.Seed["ENGINE_BELT"] != 10 {
		t.Fatalf("seed = %v", cfg.Inventory.Seed)
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("toml config accepted")
	}
}

func TestLoadRejectsUnseededRulePart(t *testing.T) {
	path := writeConfig(t, `rules:
  - overheating: true
    vibrating: true
    part: "TURBO"
    reason: "boost failure"
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("rule part missing from seed accepted")
	}
}

func TestLoadRejectsNegativeSeed(t *testing.T) {
	path := writeConfig(t, `inventory:
  seed:
    FILTER: -1
`)
	if _, err := Load(path); err == nil {
		t.Fatalf("negative seed accepted")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("PP_SERVER__ADDR", ":7777")
	cfg, err := Load(writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Server.Addr != ":7777" {
		t.Fatalf("env override ignored, addr = %s", cfg.Server.Addr)
	}
}
