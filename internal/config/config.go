package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	DataDir         string
	MetaFile        string
	TablesFile      string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataDir:         envOrDefault("DATA_DIR", "data"),
		MetaFile:        envOrDefault("META_CSV", "yield_tables_meta.csv"),
		TablesFile:      envOrDefault("TABLES_CSV", "yield_tables.csv"),
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		CORSOrigins:     splitList(envOrDefault("CORS_ORIGINS", "*")),
	}

	if cfg.DataDir == "" {
		return nil, errors.New("DATA_DIR is required")
	}
	if cfg.MetaFile == "" {
		return nil, errors.New("META_CSV is required")
	}
	if cfg.TablesFile == "" {
		return nil, errors.New("TABLES_CSV is required")
	}

	return cfg, nil
}

// MetaPath is the full path to the metadata CSV.
func (c *Config) MetaPath() string {
	return filepath.Join(c.DataDir, c.MetaFile)
}

// TablesPath is the full path to the table data CSV.
func (c *Config) TablesPath() string {
	return filepath.Join(c.DataDir, c.TablesFile)
}

func parseShutdownTimeout() (time.Duration, error) {
	s := envOrDefault("SHUTDOWN_TIMEOUT", "10s")
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, errors.New("invalid SHUTDOWN_TIMEOUT")
	}
	return d, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
