package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amishk599/careerfeed/internal/filter"
	"github.com/amishk599/careerfeed/internal/jobs"
	"github.com/amishk599/careerfeed/internal/model"
)

var (
	jobsOrder      string
	jobsDepartment string
	jobsLocation   string
	jobsQuery      string
	jobsJSON       bool
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List current job postings",
	Long:  "Fetches the feed once and prints every valid posting, by title or newest first.",
	RunE:  runJobs,
}

func init() {
	jobsCmd.Flags().StringVar(&jobsOrder, "order", string(jobs.OrderTitle), `sort order: "title" or "published"`)
	jobsCmd.Flags().StringVar(&jobsDepartment, "department", "", "only this department")
	jobsCmd.Flags().StringVar(&jobsLocation, "location", "", `only this location label, e.g. "USA (Remote)"`)
	jobsCmd.Flags().StringVarP(&jobsQuery, "query", "q", "", "text to find in title, department, location, type, job id or summary")
	jobsCmd.Flags().BoolVar(&jobsJSON, "json", false, "print JSON instead of a table")
	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, args []string) error {
	order, err := jobs.ParseOrder(jobsOrder)
	if err != nil {
		return err
	}

	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}

	list := buildService(cfg, logger).List(context.Background(), order)
	list = filter.Apply(list, filter.Criteria{
		Department: jobsDepartment,
		Location:   jobsLocation,
		Query:      jobsQuery,
	})

	if jobsJSON {
		return printJSON(list)
	}
	printJobTable(list)
	return nil
}

func printJobTable(list []model.Job) {
	fmt.Printf("%-45s %-22s %-28s %s\n", "Title", "Department", "Location", "Posted")
	fmt.Println(strings.Repeat("─", 110))
	for _, j := range list {
		posted := "n/a"
		if t, ok := j.PublishedAt(); ok {
			posted = t.Format("2006-01-02")
		}
		fmt.Printf("%-45s %-22s %-28s %s\n", truncate(j.Title, 45), truncate(j.Department, 22), truncate(j.LocationLabel(), 28), posted)
	}
	fmt.Printf("\nTotal: %d jobs\n", len(list))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
