// Package config provides configuration management for hypersort.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Sort      SortConfig      `mapstructure:"sort"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Log       LogConfig       `mapstructure:"log"`
}

// SortConfig holds sort-related configuration.
type SortConfig struct {
	// Procs is the default number of ranks when --procs is not given.
	// Must be a power of two.
	Procs int `mapstructure:"procs"`
	// Record enables persisting run summaries to the database.
	Record bool `mapstructure:"record"`
	// Archive enables uploading run summaries to object storage.
	Archive bool `mapstructure:"archive"`
}

// DatabaseConfig holds database connection configuration.
type DatabaseConfig struct {
	Type     string `mapstructure:"type"` // sqlite, mysql or postgres
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Path     string `mapstructure:"path"` // for sqlite
}

// StorageConfig holds object storage configuration.
type StorageConfig struct {
	Type      string `mapstructure:"type"` // cos or local
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	SecretID  string `mapstructure:"secret_id"`
	SecretKey string `mapstructure:"secret_key"`
	Scheme    string `mapstructure:"scheme"`
	LocalPath string `mapstructure:"local_path"` // for local storage
}

// TelemetryConfig holds tracing configuration.
type TelemetryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Exporter    string  `mapstructure:"exporter"` // grpc or http
	Endpoint    string  `mapstructure:"endpoint"`
	Insecure    bool    `mapstructure:"insecure"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
	ServiceName string  `mapstructure:"service_name"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from the specified file path.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/hypersort")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file, defaults apply.
		} else if os.IsNotExist(err) {
			// File specified but doesn't exist, defaults apply.
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("HYPERSORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadFromReader loads configuration from raw content (useful for testing).
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for invalid combinations.
func (c *Config) Validate() error {
	if c.Sort.Procs < 1 {
		return fmt.Errorf("sort.procs must be at least 1, got %d", c.Sort.Procs)
	}
	if c.Sort.Procs&(c.Sort.Procs-1) != 0 {
		return fmt.Errorf("sort.procs must be a power of two, got %d", c.Sort.Procs)
	}

	switch c.Database.Type {
	case "sqlite", "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported database type: %s", c.Database.Type)
	}

	switch c.Storage.Type {
	case "local", "cos":
	default:
		return fmt.Errorf("unsupported storage type: %s", c.Storage.Type)
	}

	if c.Telemetry.Enabled {
		switch c.Telemetry.Exporter {
		case "grpc", "http":
		default:
			return fmt.Errorf("unsupported telemetry exporter: %s", c.Telemetry.Exporter)
		}
		if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1 {
			return fmt.Errorf("telemetry.sample_ratio must be in [0,1], got %f", c.Telemetry.SampleRatio)
		}
	}

	return nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("sort.procs", 4)
	v.SetDefault("sort.record", false)
	v.SetDefault("sort.archive", false)

	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", "./hypersort.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.database", "hypersort")

	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.local_path", "./archive")
	v.SetDefault("storage.scheme", "https")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.exporter", "grpc")
	v.SetDefault("telemetry.endpoint", "localhost:4317")
	v.SetDefault("telemetry.insecure", true)
	v.SetDefault("telemetry.sample_ratio", 1.0)
	v.SetDefault("telemetry.service_name", "hypersort")

	v.SetDefault("log.level", "info")
}
