package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Print one job posting as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}

	job, ok := buildService(cfg, logger).JobBySlug(context.Background(), args[0])
	if !ok {
		fmt.Fprintf(os.Stderr, "job not found: %s\n", args[0])
		os.Exit(1)
	}
	return printJSON(job)
}
