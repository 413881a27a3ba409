package common

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/banner"
)

// PrintBanner displays the application banner and logs the resolved runtime settings
func PrintBanner(config *Config, logger arbor.ILogger) {
	b := banner.New().
		SetStyle(banner.StyleDouble).
		SetWidth(60).
		SetBorderColor(banner.ColorCyan).
		SetTextColor(banner.ColorWhite).
		SetBold(true)

	b.PrintTopLine()
	b.PrintCenteredText("FINSIGHT")
	b.PrintCenteredText("Financial Analysis Engine")
	b.PrintSeparatorLine()
	b.PrintKeyValue("Version", GetVersion(), 12)
	b.PrintKeyValue("Environment", config.Environment, 12)
	b.PrintKeyValue("Storage", config.Storage.Badger.Path, 12)
	b.PrintBottomLine()

	logger.Debug().
		Str("environment", config.Environment).
		Str("badger_path", config.Storage.Badger.Path).
		Str("log_level", config.Logging.Level).
		Strs("log_output", config.Logging.Output).
		Int("max_years", config.Analysis.MaxYears).
		Bool("benchmarks_enabled", config.Benchmarks.Enabled).
		Bool("tracing_enabled", config.Tracing.Enabled).
		Msg("Resolved configuration")
}
