package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ternarybob/finsight/internal/models"
)

var (
	reportPrice  float64
	reportPE     float64
	reportPB     float64
	reportYears  int
	reportFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report <company-code>",
	Short: "Generate a financial analysis report",
	Args:  cobra.ExactArgs(1),
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().Float64Var(&reportPrice, "price", 0, "Market price used for the target price")
	reportCmd.Flags().Float64Var(&reportPE, "pe", 0, "Market P/E")
	reportCmd.Flags().Float64Var(&reportPB, "pb", 0, "Market P/B")
	reportCmd.Flags().IntVar(&reportYears, "years", 0, "Most recent years to analyze (overrides config)")
	reportCmd.Flags().StringVarP(&reportFormat, "output", "o", "text", "Output format: text or json")
}

func runReport(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}
	defer application.Close()

	rep, err := application.ReportService.Generate(cmd.Context(), args[0], models.ReportOptions{
		Price:    reportPrice,
		PE:       reportPE,
		PB:       reportPB,
		MaxYears: reportYears,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch reportFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "text":
		writeReportText(out, rep)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", reportFormat)
	}
}

// writeReportText prints a condensed plain-text view of a report
func writeReportText(w io.Writer, rep *models.Report) {
	name := rep.Company.Code
	if rep.Company.Name != "" {
		name = fmt.Sprintf("%s (%s)", rep.Company.Name, rep.Company.Code)
	}
	fmt.Fprintf(w, "%s\nYears: %v\n", name, rep.Years)
	if rep.Sector != nil {
		fmt.Fprintf(w, "Sector: %s\n", rep.Sector.Sector)
	}

	if latest := rep.LatestRatios(); latest != nil {
		fmt.Fprintf(w, "\nRatios %d\n", latest.Year)
		for _, name := range models.RatioNames {
			if latest.Available(name) {
				fmt.Fprintf(w, "  %-28s %10.2f\n", name, latest.Get(name))
			}
		}
	}

	if h := rep.Health; h != nil {
		fmt.Fprintf(w, "\nHealth: %s (score %d)\n  %s\n", h.OverallRating, h.OverallScore, h.Summary)
	}
	if v := rep.Valuation; v != nil {
		fmt.Fprintf(w, "\nValuation: Z-score %.2f (%s), SGR %.2f%%, EVA %.0f\n",
			v.ZScore, v.FinancialStrength, v.SustainableGrowthRate, v.EconomicValueAdded)
	}
	if r := rep.Recommendation; r != nil {
		fmt.Fprintf(w, "\nRecommendation: %s (score %d)\n", r.Rating, r.Score)
		for _, reason := range r.Reasons {
			fmt.Fprintf(w, "  - %s\n", reason)
		}
		fmt.Fprintf(w, "  %s\n", r.Conclusion)
	}
	if len(rep.Heuristics) > 0 {
		fmt.Fprintf(w, "\nHeuristics: %s\n", strings.Join(rep.Heuristics, ", "))
	}
}
