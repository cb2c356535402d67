package config

import (
	_ "embed"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP struct {
		TimeoutSeconds uint32 `yaml:"timeout_seconds"`
		UserAgent      string `yaml:"user_agent"`
	} `yaml:"http"`

	Feeds struct {
		URLHaus      FeedConfig `yaml:"urlhaus"`
		FeodoTracker FeedConfig `yaml:"feodo_tracker"`
	} `yaml:"feeds"`
}

// FeedConfig describes a single remote feed endpoint.
type FeedConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
}

// Timeout returns the configured HTTP timeout as a duration.
func (c Config) Timeout() time.Duration {
	if c.HTTP.TimeoutSeconds == 0 {
		return 30 * time.Second
	}
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

const settingsFilePath = "data/settings.yaml"

var (
	//go:embed default_settings.yaml
	defaultConfig []byte

	configValue atomic.Value
)

func init() {
	cfg, err := parse(defaultConfig)
	if err != nil {
		log.Fatal("invalid embedded default settings", "error", err)
	}
	configValue.Store(cfg)
}

// ReadSettings loads the settings file when present; otherwise the embedded
// defaults stay active. A malformed file is reported and ignored.
func ReadSettings() {
	data, err := os.ReadFile(settingsFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("Settings file not found, using defaults", "path", settingsFilePath)
			return
		}
		log.Error("Error reading settings file", "path", settingsFilePath, "error", err)
		return
	}

	cfg, err := parse(data)
	if err != nil {
		log.Error("Error parsing settings file", "path", settingsFilePath, "error", err)
		return
	}

	configValue.Store(cfg)
	log.Debug("Settings file loaded", "path", settingsFilePath)
}

func parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func GetConfig() Config {
	return configValue.Load().(Config)
}

// SetConfig replaces the active configuration. Intended for tests and for the
// CLI applying flag overrides.
func SetConfig(cfg Config) {
	configValue.Store(cfg)
}
