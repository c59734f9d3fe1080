package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aschey/vortex/internal/persist"
	"github.com/aschey/vortex/internal/stopwatch"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	appName        = "vortex"
	configFileName = "config.yaml"
	envPrefix      = "VORTEX_"
)

// Config holds runtime options. Values come from defaults, then the YAML
// file, then VORTEX_* environment variables, then command line flags.
type Config struct {
	Store           string        `env:"STORE"`
	StorePath       string        `env:"STORE_PATH"`
	StoreKey        string        `env:"STORE_KEY"`
	QuotaBytes      int64         `env:"QUOTA_BYTES"`
	LogPath         string        `env:"LOG_PATH"`
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
	ExportPath      string        `env:"EXPORT_PATH"`
}

type yamlConfig struct {
	Store             string `yaml:"store"`
	StorePath         string `yaml:"store_path"`
	StoreKey          string `yaml:"store_key"`
	QuotaBytes        int64  `yaml:"quota_bytes"`
	LogPath           string `yaml:"log_path"`
	RefreshIntervalMs int    `yaml:"refresh_interval_ms"`
	ExportPath        string `yaml:"export_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Store:           persist.BackendFile,
		StoreKey:        persist.DefaultKey,
		LogPath:         filepath.Join(dataDir(), appName+".log"),
		RefreshInterval: 33 * time.Millisecond,
		ExportPath:      stopwatch.DefaultExportName,
	}
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join("."+appName, configFileName)
	}
	return filepath.Join(configDir, appName, configFileName)
}

// Load builds a configuration from the YAML file at path (DefaultPath when
// empty) and the environment. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	rawData, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileData yamlConfig
		if err := yaml.Unmarshal(rawData, &fileData); err != nil {
			return cfg, fmt.Errorf("parse config yaml: %w", err)
		}
		applyYamlConfig(&cfg, fileData)
	case errors.Is(err, os.ErrNotExist):
	default:
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	fileData := yamlConfig{
		Store:             cfg.Store,
		StorePath:         cfg.StorePath,
		StoreKey:          cfg.StoreKey,
		QuotaBytes:        cfg.QuotaBytes,
		LogPath:           cfg.LogPath,
		RefreshIntervalMs: int(cfg.RefreshInterval / time.Millisecond),
		ExportPath:        cfg.ExportPath,
	}
	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}
	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks option ranges.
func (c Config) Validate() error {
	switch strings.ToLower(c.Store) {
	case persist.BackendFile, persist.BackendSQLite, persist.BackendMemory:
	default:
		return fmt.Errorf("unknown store %q: expected file, sqlite or memory", c.Store)
	}
	if strings.TrimSpace(c.StoreKey) == "" {
		return fmt.Errorf("store key is required")
	}
	if c.QuotaBytes < 0 {
		return fmt.Errorf("quota must not be negative")
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh interval must be positive")
	}
	return nil
}

// ResolvedStorePath returns StorePath, or the per-backend default location.
func (c Config) ResolvedStorePath() string {
	if c.StorePath != "" {
		return c.StorePath
	}
	name := "store.json"
	if strings.EqualFold(c.Store, persist.BackendSQLite) {
		name = "store.db"
	}
	return filepath.Join(dataDir(), name)
}

func applyYamlConfig(cfg *Config, fileData yamlConfig) {
	if fileData.Store != "" {
		cfg.Store = fileData.Store
	}
	if fileData.StorePath != "" {
		cfg.StorePath = fileData.StorePath
	}
	if fileData.StoreKey != "" {
		cfg.StoreKey = fileData.StoreKey
	}
	if fileData.QuotaBytes > 0 {
		cfg.QuotaBytes = fileData.QuotaBytes
	}
	if fileData.LogPath != "" {
		cfg.LogPath = fileData.LogPath
	}
	if fileData.RefreshIntervalMs > 0 {
		cfg.RefreshInterval = time.Duration(fileData.RefreshIntervalMs) * time.Millisecond
	}
	if fileData.ExportPath != "" {
		cfg.ExportPath = fileData.ExportPath
	}
}

func dataDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(configDir, appName)
}
