package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration for careerfeed.
type Config struct {
	Feed      FeedConfig
	Retry     RetryConfig
	RateLimit RateLimitConfig
	Server    ServerConfig
	Probe     ProbeConfig
	Log       LogConfig
}

// FeedConfig locates the upstream careers feed.
type FeedConfig struct {
	BaseURL         string        `validate:"required,url"`  // recruiting system root
	URL             string        `validate:"omitempty,url"` // full feed URL override
	ClientID        string        `validate:"required,alphanum"`
	Language        string        `validate:"required,alpha"`
	Timeout         time.Duration // per-request HTTP timeout
	UserAgent       string
	DefaultWhoWeAre string // stands in for a missing "Who We Are" section; empty disables
}

// RetryConfig controls retries of transient feed failures.
type RetryConfig struct {
	MaxRetries int `validate:"gte=0,lte=10"`
	BaseDelay  time.Duration
	MaxDelay   time.Duration // longest wait before a retry; a longer Retry-After fails the fetch
}

// RateLimitConfig throttles requests to the feed host.
type RateLimitConfig struct {
	MinInterval time.Duration // 0 disables limiting
	Burst       int           `validate:"gte=1"`
}

// ServerConfig controls the read API and metrics listeners.
type ServerConfig struct {
	Addr            string `validate:"required"`
	MetricsAddr     string // empty disables the metrics listener
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// ProbeConfig controls the background ingestion health probe.
type ProbeConfig struct {
	Interval time.Duration // 0 disables the probe
}

// LogConfig controls the log level.
type LogConfig struct {
	Level string `validate:"oneof=debug info warn error"`
}

const (
	DefaultBaseURL   = "https://recruitingbypaycor.com/career"
	DefaultClientID  = "8acda11040238c0b014035a043691733"
	DefaultUserAgent = "careerfeed/1.0 (+https://recruitingbypaycor.com)"

	DefaultWhoWeAre = "TradeStation is the home of those born to trade. As an online brokerage firm " +
		"and trading ecosystem, we are focused on delivering the ultimate trading experience for " +
		"active traders and institutions. We continuously push the boundaries of what's possible, " +
		"encourage out-of-the-box thinking, and relentlessly search for like-minded innovators."
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Feed: FeedConfig{
			BaseURL:   DefaultBaseURL,
			ClientID:  DefaultClientID,
			Language:  "en",
			Timeout:   15 * time.Second,
			UserAgent: DefaultUserAgent,

			DefaultWhoWeAre: DefaultWhoWeAre,
		},
		Retry: RetryConfig{
			MaxRetries: 1,
			BaseDelay:  2 * time.Second,
			MaxDelay:   30 * time.Second,
		},
		RateLimit: RateLimitConfig{
			MinInterval: time.Second,
			Burst:       5,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			MetricsAddr:     ":9090",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{Level: "info"},
	}
}

// rawConfig is used for YAML unmarshaling (snake_case fields and durations as strings).
type rawConfig struct {
	Feed      rawFeedConfig      `yaml:"feed"`
	Retry     rawRetryConfig     `yaml:"retry"`
	RateLimit rawRateLimitConfig `yaml:"rate_limit"`
	Server    rawServerConfig    `yaml:"server"`
	Probe     rawProbeConfig     `yaml:"probe"`
	Log       rawLogConfig       `yaml:"log"`
}

type rawFeedConfig struct {
	BaseURL         string  `yaml:"base_url"`
	URL             string  `yaml:"url"`
	ClientID        string  `yaml:"client_id"`
	Language        string  `yaml:"language"`
	Timeout         string  `yaml:"timeout"`
	UserAgent       string  `yaml:"user_agent"`
	DefaultWhoWeAre *string `yaml:"default_who_we_are"`
}

type rawRetryConfig struct {
	MaxRetries *int   `yaml:"max_retries"`
	BaseDelay  string `yaml:"base_delay"`
	MaxDelay   string `yaml:"max_delay"`
}

type rawRateLimitConfig struct {
	MinInterval string `yaml:"min_interval"`
	Burst       int    `yaml:"burst"`
}

type rawServerConfig struct {
	Addr            string  `yaml:"addr"`
	MetricsAddr     *string `yaml:"metrics_addr"`
	ReadTimeout     string  `yaml:"read_timeout"`
	WriteTimeout    string  `yaml:"write_timeout"`
	ShutdownTimeout string  `yaml:"shutdown_timeout"`
}

type rawProbeConfig struct {
	Interval string `yaml:"interval"`
}

type rawLogConfig struct {
	Level string `yaml:"level"`
}

// Load reads and parses the YAML config file at path, applies defaults for
// anything left out, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse builds a Config from YAML bytes. Environment variables in the
// document are expanded first.
func Parse(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	setString(&cfg.Feed.BaseURL, raw.Feed.BaseURL)
	setString(&cfg.Feed.URL, raw.Feed.URL)
	setString(&cfg.Feed.ClientID, raw.Feed.ClientID)
	setString(&cfg.Feed.Language, raw.Feed.Language)
	setString(&cfg.Feed.UserAgent, raw.Feed.UserAgent)
	if raw.Feed.DefaultWhoWeAre != nil {
		cfg.Feed.DefaultWhoWeAre = strings.TrimSpace(*raw.Feed.DefaultWhoWeAre)
	}

	if raw.Retry.MaxRetries != nil {
		cfg.Retry.MaxRetries = *raw.Retry.MaxRetries
	}
	if raw.RateLimit.Burst != 0 {
		cfg.RateLimit.Burst = raw.RateLimit.Burst
	}

	setString(&cfg.Server.Addr, raw.Server.Addr)
	if raw.Server.MetricsAddr != nil {
		cfg.Server.MetricsAddr = *raw.Server.MetricsAddr
	}
	setString(&cfg.Log.Level, strings.ToLower(raw.Log.Level))

	durations := []struct {
		key string
		raw string
		dst *time.Duration
	}{
		{"feed.timeout", raw.Feed.Timeout, &cfg.Feed.Timeout},
		{"retry.base_delay", raw.Retry.BaseDelay, &cfg.Retry.BaseDelay},
		{"retry.max_delay", raw.Retry.MaxDelay, &cfg.Retry.MaxDelay},
		{"rate_limit.min_interval", raw.RateLimit.MinInterval, &cfg.RateLimit.MinInterval},
		{"server.read_timeout", raw.Server.ReadTimeout, &cfg.Server.ReadTimeout},
		{"server.write_timeout", raw.Server.WriteTimeout, &cfg.Server.WriteTimeout},
		{"server.shutdown_timeout", raw.Server.ShutdownTimeout, &cfg.Server.ShutdownTimeout},
		{"probe.interval", raw.Probe.Interval, &cfg.Probe.Interval},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s %q: %w", d.key, d.raw, err)
		}
		*d.dst = v
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

var structValidator = validator.New()

func validate(cfg *Config) error {
	if err := structValidator.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if cfg.Feed.Timeout <= 0 {
		return fmt.Errorf("feed.timeout must be positive, got %v", cfg.Feed.Timeout)
	}
	if cfg.Retry.MaxRetries > 0 && cfg.Retry.BaseDelay <= 0 {
		return fmt.Errorf("retry.base_delay must be positive when retries are enabled, got %v", cfg.Retry.BaseDelay)
	}
	if cfg.Retry.MaxRetries > 0 && cfg.Retry.MaxDelay < cfg.Retry.BaseDelay {
		return fmt.Errorf("retry.max_delay must be at least retry.base_delay, got %v", cfg.Retry.MaxDelay)
	}
	if cfg.RateLimit.MinInterval < 0 {
		return fmt.Errorf("rate_limit.min_interval must not be negative, got %v", cfg.RateLimit.MinInterval)
	}
	if cfg.Probe.Interval < 0 {
		return fmt.Errorf("probe.interval must not be negative, got %v", cfg.Probe.Interval)
	}
	if cfg.Probe.Interval > 0 && cfg.Probe.Interval < 30*time.Second {
		return fmt.Errorf("probe.interval must be at least 30s, got %v", cfg.Probe.Interval)
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %v", cfg.Server.ShutdownTimeout)
	}
	return nil
}
