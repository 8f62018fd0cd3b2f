package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch the feed once and report parse results",
	Long:  "One-shot ingestion check: fetches the feed, parses every entry and prints counts. Exits non-zero when the feed cannot be fetched.",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, list := buildService(cfg, logger).Snapshot(ctx)
	if !report.OK() {
		fmt.Fprintf(os.Stderr, "feed fetch failed after %s: %v\n", report.Elapsed, report.Err)
		os.Exit(1)
	}

	s := report.Stats
	fmt.Printf("feed:     %s\n", feedURL(cfg))
	fmt.Printf("entries:  %d\n", s.Entries)
	fmt.Printf("valid:    %d\n", s.Parsed)
	fmt.Printf("invalid:  %d\n", s.Invalid)
	fmt.Printf("failed:   %d\n", s.Failed)
	fmt.Printf("elapsed:  %s\n", report.Elapsed)

	missing := 0
	for _, j := range list {
		if j.WhoWeAre == "" || len(j.Responsibilities) == 0 {
			missing++
		}
	}
	if missing > 0 {
		fmt.Printf("\n%d jobs lack a Who We Are or responsibilities section\n", missing)
	}

	logger.Info("check complete")
	return nil
}
