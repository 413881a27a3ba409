package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ternarybob/finsight/internal/models"
)

var benchmarksCmd = &cobra.Command{
	Use:   "benchmarks",
	Short: "Manage sector benchmarks",
}

var benchmarksRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Derive sector averages from stored companies and publish them",
	RunE:  runBenchmarksRefresh,
}

var benchmarksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored sector benchmarks",
	RunE:  runBenchmarksList,
}

func init() {
	benchmarksCmd.AddCommand(benchmarksRefreshCmd, benchmarksListCmd)
}

func runBenchmarksRefresh(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}
	defer application.Close()

	if err := application.BenchmarkService.Refresh(cmd.Context()); err != nil {
		return err
	}
	return printBenchmarks(cmd, application.BenchmarkService.All())
}

func runBenchmarksList(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}
	defer application.Close()

	return printBenchmarks(cmd, application.BenchmarkService.All())
}

func printBenchmarks(cmd *cobra.Command, all []models.SectorBenchmark) error {
	out := cmd.OutOrStdout()
	if len(all) == 0 {
		fmt.Fprintln(out, "No sector benchmarks")
		return nil
	}
	for _, b := range all {
		fmt.Fprintf(out, "%s (%s, %d companies)\n", b.Sector, b.Source, b.CompanyCount)
		keys := make([]string, 0, len(b.Averages))
		for k := range b.Averages {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "  %-28s %10.2f\n", k, b.Averages[k])
		}
	}
	return nil
}
