// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Registry RegistryConfig `mapstructure:"registry"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// EngineConfig holds tunables for combo generation and recommendations.
type EngineConfig struct {
	ComboCapPerPattern int    `mapstructure:"combo_cap_per_pattern"`
	RecommendLimit     int    `mapstructure:"recommend_limit"`
	DefaultLocale      string `mapstructure:"default_locale"`
	DefaultPlatform    string `mapstructure:"default_platform"`
}

// RegistryConfig points at the KPI registry document. An empty path selects
// the embedded default registry.
type RegistryConfig struct {
	Path string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig controls the prometheus/pprof listener of the CLI driver.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "aso-engine"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Engine.ComboCapPerPattern == 0 {
		cfg.Engine.ComboCapPerPattern = 500
	}
	if cfg.Engine.RecommendLimit == 0 {
		cfg.Engine.RecommendLimit = 50
	}
	if cfg.Engine.DefaultLocale == "" {
		cfg.Engine.DefaultLocale = "en-US"
	}
	if cfg.Engine.DefaultPlatform == "" {
		cfg.Engine.DefaultPlatform = "primary"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = ":9464"
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Engine.ComboCapPerPattern < 1 {
		return fmt.Errorf("engine.combo_cap_per_pattern must be positive, got %d", cfg.Engine.ComboCapPerPattern)
	}
	if cfg.Engine.RecommendLimit < 1 {
		return fmt.Errorf("engine.recommend_limit must be positive, got %d", cfg.Engine.RecommendLimit)
	}
	switch cfg.Engine.DefaultPlatform {
	case "primary", "secondary":
	default:
		return fmt.Errorf("engine.default_platform must be primary or secondary, got %q", cfg.Engine.DefaultPlatform)
	}
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug/info/warn/error, got %q", cfg.Logging.Level)
	}
	return nil
}
