package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"vigil/internal/pipeline"
)

// Config is the full service configuration. Values load from an optional
// YAML file first, then environment variables override field by field.
type Config struct {
	HTTP struct {
		Addr string `yaml:"addr" env:"HTTP_ADDR" envDefault:":8080"`
	} `yaml:"http"`

	Database struct {
		Path string `yaml:"path" env:"DATABASE_PATH" envDefault:"vigil.db"`
	} `yaml:"database"`

	Detection struct {
		Endpoint            string  `yaml:"endpoint" env:"DETECTION_ENDPOINT" envDefault:"localhost:50051"`
		TimeoutMs           int     `yaml:"timeout_ms" env:"DETECTION_TIMEOUT_MS" envDefault:"2000"`
		ConfidenceThreshold float32 `yaml:"confidence_threshold" env:"DETECTION_CONFIDENCE" envDefault:"0.5"`
	} `yaml:"detection"`

	Pipeline struct {
		Workers         int     `yaml:"workers" env:"PIPELINE_WORKERS" envDefault:"3"`
		QueueDepth      int     `yaml:"queue_depth" env:"PIPELINE_QUEUE_DEPTH" envDefault:"100"`
		MotionThreshold float32 `yaml:"motion_threshold" env:"MOTION_THRESHOLD" envDefault:"0.02"`
	} `yaml:"pipeline"`

	Cameras struct {
		Registry string `yaml:"registry" env:"CAMERA_REGISTRY" envDefault:"cameras.yaml"`
	} `yaml:"cameras"`

	Minio struct {
		Endpoint  string `yaml:"endpoint" env:"MINIO_ENDPOINT"`
		AccessKey string `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
		SecretKey string `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
		Bucket    string `yaml:"bucket" env:"MINIO_BUCKET" envDefault:"vigil-snapshots"`
		UseSSL    bool   `yaml:"use_ssl" env:"MINIO_USE_SSL"`
	} `yaml:"minio"`

	Kafka struct {
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" envSeparator:","`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" envDefault:"vigil-events"`
	} `yaml:"kafka"`

	Telegram struct {
		BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN"`
		ChatID   string `yaml:"chat_id" env:"TELEGRAM_CHAT_ID"`
		Enabled  bool   `yaml:"enabled" env:"TELEGRAM_ENABLED"`
	} `yaml:"telegram"`

	Webhook struct {
		URL    string `yaml:"url" env:"WEBHOOK_URL"`
		Secret string `yaml:"secret" env:"WEBHOOK_SECRET"`
	} `yaml:"webhook"`
}

// Load reads the configuration: .env file if present, then the YAML file
// (skipped when missing), then environment variables on top.
func Load(yamlPath string) (*Config, error) {
	// Missing .env is fine; real deployments use actual environment.
	_ = godotenv.Load()

	cfg := &Config{}

	if yamlPath != "" {
		data, err := os.ReadFile(yamlPath)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", yamlPath, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", yamlPath, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// PipelineConfig materializes the global pipeline settings
func (c *Config) PipelineConfig() *pipeline.GlobalPipelineConfig {
	global := pipeline.DefaultPipelineConfig()
	if c.Pipeline.Workers > 0 {
		global.Workers = c.Pipeline.Workers
	}
	if c.Pipeline.QueueDepth > 0 {
		global.QueueDepth = c.Pipeline.QueueDepth
	}
	if c.Pipeline.MotionThreshold > 0 {
		global.MotionThreshold = c.Pipeline.MotionThreshold
	}
	if c.Detection.ConfidenceThreshold > 0 {
		global.ConfidenceThreshold = c.Detection.ConfidenceThreshold
	}
	return global
}

// registryFile is the on-disk shape of the camera registry
type registryFile struct {
	Cameras []pipeline.CameraConfig `yaml:"cameras"`
}

// LoadRegistry reads the camera registry YAML. A missing file yields an
// empty registry, not an error, so fresh deployments start clean.
func LoadRegistry(path string) ([]pipeline.CameraConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read camera registry %s: %w", path, err)
	}

	var reg registryFile
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse camera registry %s: %w", path, err)
	}

	seen := make(map[string]bool, len(reg.Cameras))
	for i := range reg.Cameras {
		cam := &reg.Cameras[i]
		if cam.ID == "" {
			return nil, fmt.Errorf("camera registry entry %d missing id", i)
		}
		if seen[cam.ID] {
			return nil, fmt.Errorf("duplicate camera id %q in registry", cam.ID)
		}
		seen[cam.ID] = true
		if cam.Source == "" {
			return nil, fmt.Errorf("camera %s missing source", cam.ID)
		}
	}
	return reg.Cameras, nil
}
