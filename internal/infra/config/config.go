package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/travel-wellness/pkg/util"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	JetLag    JetLagConfig    `yaml:"jetLag"`
	Exposure  ExposureConfig  `yaml:"exposure"`
	Hydration HydrationConfig `yaml:"hydration"`
	Cache     CacheConfig     `yaml:"cache"`
	Auth      AuthConfig      `yaml:"auth"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// JetLagConfig tunes the circadian planner.
type JetLagConfig struct {
	MaxDailyAdjustmentHours float64        `yaml:"maxDailyAdjustmentHours"`
	MinimalMaxHours         float64        `yaml:"minimalMaxHours"`
	MildMaxHours            float64        `yaml:"mildMaxHours"`
	ModerateMaxHours        float64        `yaml:"moderateMaxHours"`
	DefaultBedtime          util.ClockTime `yaml:"defaultBedtime"`
	DefaultWakeTime         util.ClockTime `yaml:"defaultWakeTime"`
}

// ExposureConfig holds the combined-risk breakpoints of the activity aggregator.
type ExposureConfig struct {
	Severe   int `yaml:"severe"`
	High     int `yaml:"high"`
	Moderate int `yaml:"moderate"`
}

// HydrationConfig tunes the intake model.
type HydrationConfig struct {
	BaseMlPerKg float64 `yaml:"baseMlPerKg"`
	WakingHours int     `yaml:"wakingHours"`
}

// CacheConfig contains connection information for plan memoization.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Addr    string        `yaml:"addr"`
	Prefix  string        `yaml:"prefix"`
	TTL     time.Duration `yaml:"ttl"`
}

// AuthConfig controls bearer token verification. An empty secret disables it.
type AuthConfig struct {
	Secret string `yaml:"secret"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
	if v := os.Getenv("JETLAG_MAX_DAILY_ADJUSTMENT_HOURS"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.JetLag.MaxDailyAdjustmentHours = parsed
		}
	}
	if v := os.Getenv("JETLAG_DEFAULT_BEDTIME"); v != "" {
		if parsed, err := util.ParseClockTime(v); err == nil {
			cfg.JetLag.DefaultBedtime = parsed
		}
	}
	if v := os.Getenv("JETLAG_DEFAULT_WAKE_TIME"); v != "" {
		if parsed, err := util.ParseClockTime(v); err == nil {
			cfg.JetLag.DefaultWakeTime = parsed
		}
	}
	if v := os.Getenv("HYDRATION_BASE_ML_PER_KG"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Hydration.BaseMlPerKg = parsed
		}
	}
	if v := os.Getenv("HYDRATION_WAKING_HOURS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Hydration.WakingHours = parsed
		}
	}
	if v := os.Getenv("CACHE_ENABLED"); v != "" {
		cfg.Cache.Enabled = parseBool(v)
	}
	if v := os.Getenv("CACHE_ADDR"); v != "" {
		cfg.Cache.Addr = v
	}
	if v := os.Getenv("CACHE_PREFIX"); v != "" {
		cfg.Cache.Prefix = v
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Cache.TTL = parsed
		}
	}
	if v := os.Getenv("AUTH_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:        ":8080",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   5 * time.Second,
			AllowedOrigins: []string{"*"},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
				Exclude: []string{
					"/healthz",
				},
			},
		},
		JetLag: JetLagConfig{
			MaxDailyAdjustmentHours: 1.5,
			MinimalMaxHours:         2,
			MildMaxHours:            4,
			ModerateMaxHours:        8,
			DefaultBedtime:          util.NewClockTime(23 * 60),
			DefaultWakeTime:         util.NewClockTime(7 * 60),
		},
		Exposure: ExposureConfig{
			Severe:   10,
			High:     7,
			Moderate: 4,
		},
		Hydration: HydrationConfig{
			BaseMlPerKg: 35,
			WakingHours: 16,
		},
		Cache: CacheConfig{
			Enabled: false,
			Addr:    "",
			Prefix:  "travel-wellness",
			TTL:     30 * time.Minute,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if err := c.JetLag.Policy().Validate(); err != nil {
		return fmt.Errorf("jetLag: %w", err)
	}
	if err := c.Exposure.Policy().Validate(); err != nil {
		return fmt.Errorf("exposure: %w", err)
	}
	if err := c.Hydration.Policy().Validate(); err != nil {
		return fmt.Errorf("hydration: %w", err)
	}
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Addr) == "" {
		return errors.New("cache.addr cannot be empty when cache is enabled")
	}
	if c.Cache.TTL < 0 {
		return errors.New("cache.ttl cannot be negative")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	return nil
}
