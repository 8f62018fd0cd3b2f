package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/amishk599/careerfeed/internal/api"
	"github.com/amishk599/careerfeed/internal/metrics"
	"github.com/amishk599/careerfeed/internal/probe"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the job listing API",
	Long:  "Serve the JSON read API and the metrics endpoint; blocks until SIGINT/SIGTERM.",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}

	logger.Info("config loaded",
		"feed", feedURL(cfg),
		"addr", cfg.Server.Addr,
		"metrics_addr", cfg.Server.MetricsAddr,
		"probe_interval", cfg.Probe.Interval.String(),
	)

	svc := buildService(cfg, logger)
	opts := api.ServerOptions{
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	router := api.NewRouter(svc, metrics.NewMiddleware(prometheus.DefaultRegisterer), logger)
	apiServer := api.NewServer("api", cfg.Server.Addr, router, opts, logger)
	g.Go(func() error { return apiServer.Run(gCtx) })

	if cfg.Server.MetricsAddr != "" {
		metricsServer := api.NewServer("metrics", cfg.Server.MetricsAddr, api.NewMetricsRouter(), opts, logger)
		g.Go(func() error { return metricsServer.Run(gCtx) })
	}

	if cfg.Probe.Interval > 0 {
		p := probe.New(svc, cfg.Probe.Interval, logger)
		g.Go(func() error { return p.Run(gCtx) })
	}

	if err := g.Wait(); err != nil {
		logger.Error("server error", "error", err)
		return err
	}

	logger.Info("goodbye")
	return nil
}
