package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/amishk599/careerfeed/internal/config"
	"github.com/amishk599/careerfeed/internal/feed"
	"github.com/amishk599/careerfeed/internal/jobs"
	"github.com/amishk599/careerfeed/internal/model"
	"github.com/amishk599/careerfeed/internal/ratelimit"
	"github.com/amishk599/careerfeed/internal/retry"
)

const defaultConfigPath = "config.yaml"

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "careerfeed",
	Short: "Careers feed reader",
	Long:  "careerfeed fetches the recruiting system's Atom feed, parses each posting into a job record and serves listings over JSON.",
	// `careerfeed` with no subcommand runs the API server.
	RunE:         runServe,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: CAREERFEED_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > CAREERFEED_CONFIG env var > "./config.yaml".
// When the default file does not exist the built-in defaults are used.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = os.Getenv("CAREERFEED_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		path = defaultConfigPath
	}
	return config.Load(path)
}

func setupLogger(level string, dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

// discardLogger is used by the TUI; log lines would corrupt the screen.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// bootstrap loads config and builds the logger every subcommand needs.
func bootstrap() (*config.Config, *slog.Logger, error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return nil, nil, err
	}
	return cfg, setupLogger(cfg.Log.Level, debug), nil
}

func feedLinks(cfg *config.Config) feed.Links {
	return feed.Links{
		BaseURL:  cfg.Feed.BaseURL,
		ClientID: cfg.Feed.ClientID,
		Language: cfg.Feed.Language,
	}
}

func feedURL(cfg *config.Config) string {
	if cfg.Feed.URL != "" {
		return cfg.Feed.URL
	}
	return feedLinks(cfg).FeedURL()
}

// buildService wires client -> rate limit -> retry -> service, so every
// attempt waits for the limiter.
func buildService(cfg *config.Config, logger *slog.Logger) *jobs.Service {
	url := feedURL(cfg)
	httpClient := &http.Client{Timeout: cfg.Feed.Timeout}

	var source model.FeedSource = feed.NewClient(url, cfg.Feed.UserAgent, httpClient)
	limiter := ratelimit.NewHostLimiter(cfg.RateLimit.MinInterval, cfg.RateLimit.Burst)
	source = ratelimit.NewSource(source, limiter, url)
	source = retry.NewSource(source, retry.Policy{
		MaxRetries: cfg.Retry.MaxRetries,
		BaseDelay:  cfg.Retry.BaseDelay,
		Jitter:     retry.DefaultJitter,
		MaxDelay:   cfg.Retry.MaxDelay,
	}, logger)

	parser := feed.NewParser(feedLinks(cfg), cfg.Feed.DefaultWhoWeAre, logger)

	logger.Debug("feed source configured",
		"url", url,
		"timeout", cfg.Feed.Timeout.String(),
		"max_retries", cfg.Retry.MaxRetries,
		"min_interval", cfg.RateLimit.MinInterval.String(),
	)
	return jobs.NewService(source, parser, logger)
}
