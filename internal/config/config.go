package config

import (
	"os"
	"strconv"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Stats  StatsConfig
}

// ServerConfig holds results-viewer server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds data source and report output settings
type DataConfig struct {
	CurvesFile string
	ReportDir  string
}

// StatsConfig holds estimator settings
type StatsConfig struct {
	// BootstrapSeed seeds the resampling streams; a fixed seed makes
	// reports reproducible.
	BootstrapSeed int64
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    getEnv("SERVER_PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Data: DataConfig{
			CurvesFile: getEnv("CURVES_FILE", ""),
			ReportDir:  getEnv("REPORT_DIR", "."),
		},
		Stats: StatsConfig{
			BootstrapSeed: getEnvInt64("BOOTSTRAP_SEED", 42),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
