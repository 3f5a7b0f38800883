package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Hermes     HermesConfig     `yaml:"hermes"`
	Evaluation EvaluationConfig `yaml:"evaluation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Port               int    `yaml:"port"`
	MetricsPort        int    `yaml:"metrics_port"`
	AdminToken         string `yaml:"admin_token"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute"`
}

type HermesConfig struct {
	URL string `yaml:"url"`
}

// EvaluationConfig bounds the size of a single evaluation request and controls
// what the API reports alongside the scores.
type EvaluationConfig struct {
	MaxAlternatives int  `yaml:"max_alternatives"`
	MaxCriteria     int  `yaml:"max_criteria"`
	ScorePrecision  int  `yaml:"score_precision"`
	ParetoEnabled   bool `yaml:"pareto_enabled"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               8700,
			MetricsPort:        8701,
			RateLimitPerMinute: 120,
		},
		Hermes: HermesConfig{
			URL: "nats://localhost:4222",
		},
		Evaluation: EvaluationConfig{
			MaxAlternatives: 500,
			MaxCriteria:     50,
			ScorePrecision:  6,
			ParetoEnabled:   false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.MetricsPort <= 0 {
		return fmt.Errorf("invalid ports: api=%d metrics=%d", c.Server.Port, c.Server.MetricsPort)
	}
	if c.Server.RateLimitPerMinute <= 0 {
		return fmt.Errorf("rate_limit_per_minute must be positive, got %d", c.Server.RateLimitPerMinute)
	}
	if c.Evaluation.MaxAlternatives <= 0 || c.Evaluation.MaxCriteria <= 0 {
		return fmt.Errorf("evaluation limits must be positive: max_alternatives=%d max_criteria=%d",
			c.Evaluation.MaxAlternatives, c.Evaluation.MaxCriteria)
	}
	if c.Evaluation.ScorePrecision < 0 {
		return fmt.Errorf("score_precision must not be negative, got %d", c.Evaluation.ScorePrecision)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TALLY_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("TALLY_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("TALLY_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("TALLY_RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimitPerMinute = n
		}
	}
	if v, ok := os.LookupEnv("TALLY_HERMES_URL"); ok {
		// An explicitly empty value disables events.
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("TALLY_MAX_ALTERNATIVES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Evaluation.MaxAlternatives = n
		}
	}
	if v := os.Getenv("TALLY_MAX_CRITERIA"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Evaluation.MaxCriteria = n
		}
	}
	if v := os.Getenv("TALLY_PARETO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Evaluation.ParetoEnabled = b
		}
	}
	if v := os.Getenv("TALLY_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TALLY_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
