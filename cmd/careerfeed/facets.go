package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "List department and location filter options",
	RunE:  runFacets,
}

func init() {
	rootCmd.AddCommand(facetsCmd)
}

func runFacets(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	svc := buildService(cfg, logger)
	ctx := context.Background()

	fmt.Println("Departments:")
	for _, d := range svc.Departments(ctx) {
		fmt.Printf("  %s\n", d)
	}
	fmt.Println("\nLocations:")
	for _, l := range svc.Locations(ctx) {
		fmt.Printf("  %s\n", l)
	}
	return nil
}
