package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <bundle>...",
	Short: "Import statement bundles (JSON or YAML)",
	Long: `Imports one or more statement bundles. The format follows the file extension
(.json, .yaml, .yml). Each bundle is validated before anything is written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}
	defer application.Close()

	ctx := cmd.Context()
	failed := 0
	for _, path := range args {
		result, err := application.ImportService.ImportFile(ctx, path)
		if err != nil {
			failed++
			logger.Error().Err(err).Str("path", path).Msg("Import failed")
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s statements=%d benchmarks=%d quote=%t skipped=%d\n",
			path, result.CompanyCode, result.Statements, result.Benchmarks, result.Quote, len(result.Skipped))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d bundles failed to import", failed, len(args))
	}
	return nil
}
