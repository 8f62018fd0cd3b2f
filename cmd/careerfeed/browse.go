package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amishk599/careerfeed/internal/browse"
	"github.com/amishk599/careerfeed/internal/filter"
	"github.com/amishk599/careerfeed/internal/jobs"
	"github.com/amishk599/careerfeed/internal/model"
)

const browseFetchTimeout = 2 * time.Minute

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse jobs interactively (TUI)",
	Long:  "Fetches the feed, shows the department picker, then a split-pane view ordered by title and by date.",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, _, err := bootstrap()
	if err != nil {
		return err
	}

	svc := buildService(cfg, discardLogger())
	all, err := browse.RunLoader(cfg.Feed.BaseURL, svc.FetchJobs, browseFetchTimeout)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No job postings found.")
		return nil
	}

	counts := browse.DepartmentCounts(all)
	for {
		dept, ok, err := browse.RunPicker("Careers — select a department", jobs.Departments(all), counts)
		if err != nil {
			return fmt.Errorf("picker: %w", err)
		}
		if !ok {
			return nil
		}

		byTitle := filter.Apply(all, filter.Criteria{Department: dept})
		newest := append([]model.Job(nil), byTitle...)
		jobs.SortByPublished(newest)

		wantQuit, err := browse.RunBrowser(dept, byTitle, newest)
		if err != nil {
			return fmt.Errorf("browser: %w", err)
		}
		if wantQuit {
			return nil
		}
	}
}
