package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// TestLoadDefaults verifies defaults apply when no file and no env are set.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("Expected default addr :8080, got %q", cfg.HTTP.Addr)
	}
	if cfg.Database.Path != "vigil.db" {
		t.Errorf("Expected default db path, got %q", cfg.Database.Path)
	}
	if cfg.Pipeline.Workers != 3 || cfg.Pipeline.QueueDepth != 100 {
		t.Errorf("Unexpected pipeline defaults: %+v", cfg.Pipeline)
	}
	if cfg.Detection.ConfidenceThreshold != 0.5 {
		t.Errorf("Expected default confidence 0.5, got %f", cfg.Detection.ConfidenceThreshold)
	}
}

// TestLoadYAML verifies the YAML file overrides defaults.
func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "vigil.yaml", `
http:
  addr: ":9090"
pipeline:
  workers: 8
  motion_threshold: 0.05
kafka:
  brokers:
    - broker-1:9092
    - broker-2:9092
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("Expected :9090, got %q", cfg.HTTP.Addr)
	}
	if cfg.Pipeline.Workers != 8 {
		t.Errorf("Expected 8 workers, got %d", cfg.Pipeline.Workers)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[0] != "broker-1:9092" {
		t.Errorf("Unexpected brokers: %v", cfg.Kafka.Brokers)
	}
}

// TestLoadEnvOverridesYAML verifies environment wins over the file.
func TestLoadEnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "vigil.yaml", "http:\n  addr: \":9090\"\n")

	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("PIPELINE_WORKERS", "5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.HTTP.Addr != ":7070" {
		t.Errorf("Expected env to win, got %q", cfg.HTTP.Addr)
	}
	if cfg.Pipeline.Workers != 5 {
		t.Errorf("Expected 5 workers from env, got %d", cfg.Pipeline.Workers)
	}
}

// TestLoadBadYAML verifies a malformed file is an error, not a silent skip.
func TestLoadBadYAML(t *testing.T) {
	path := writeFile(t, "vigil.yaml", "http: [not a map")
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

// TestPipelineConfigMerge verifies config values land on the pipeline
// defaults without clobbering unset fields.
func TestPipelineConfigMerge(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg.Pipeline.Workers = 6
	cfg.Pipeline.MotionThreshold = 0.04

	global := cfg.PipelineConfig()
	if global.Workers != 6 {
		t.Errorf("Expected 6 workers, got %d", global.Workers)
	}
	if global.MotionThreshold != 0.04 {
		t.Errorf("Expected motion threshold 0.04, got %f", global.MotionThreshold)
	}
	if global.MaxHashSkips != 10 {
		t.Errorf("Expected untouched default MaxHashSkips=10, got %d", global.MaxHashSkips)
	}
}

// TestLoadRegistry verifies registry parsing and validation.
func TestLoadRegistry(t *testing.T) {
	path := writeFile(t, "cameras.yaml", `
cameras:
  - id: cam-entrance
    name: Entrance
    source: rtsp://host/entrance
    capture_fps: 15
    detect_fps: 5
    priority: 1
  - id: cam-lot
    name: Parking Lot
    source: /videos/lot.mp4
`)

	cams, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry failed: %v", err)
	}
	if len(cams) != 2 {
		t.Fatalf("Expected 2 cameras, got %d", len(cams))
	}
	if cams[0].ID != "cam-entrance" || cams[0].CaptureFPS != 15 {
		t.Errorf("Unexpected first camera: %+v", cams[0])
	}
}

// TestLoadRegistryMissingFile verifies a missing registry is empty, not fatal.
func TestLoadRegistryMissingFile(t *testing.T) {
	cams, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Expected no error for missing registry, got %v", err)
	}
	if cams != nil {
		t.Errorf("Expected empty registry, got %v", cams)
	}
}

// TestLoadRegistryValidation covers duplicate IDs and missing fields.
func TestLoadRegistryValidation(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"missing id", "cameras:\n  - name: x\n    source: rtsp://h/1\n"},
		{"missing source", "cameras:\n  - id: cam-1\n    name: x\n"},
		{"duplicate id", "cameras:\n  - id: cam-1\n    source: rtsp://h/1\n  - id: cam-1\n    source: rtsp://h/2\n"},
	}

	for _, tc := range cases {
		path := writeFile(t, "cameras.yaml", tc.yaml)
		if _, err := LoadRegistry(path); err == nil {
			t.Errorf("Expected error for %s", tc.name)
		}
	}
}
