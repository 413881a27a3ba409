// Package heuristics records when fixed filler text substitutes for derived analysis content.
package heuristics

import "github.com/ternarybob/arbor"

// Flags raised when a fallback fires
const (
	FlagStrengthsPadded      = "health.strengths_padded"
	FlagWeaknessesPadded     = "health.weaknesses_padded"
	FlagStrategicPadded      = "business.strategic_padded"
	FlagOperationalPadded    = "business.operational_padded"
	FlagFinancialPadded      = "business.financial_padded"
	FlagPositiveFactorPadded = "risk.positive_padded"
	FlagNegativeFactorPadded = "risk.negative_padded"
	FlagReasonsPadded        = "recommendation.reasons_padded"
	FlagDefaultBenchmarks    = "benchmark.defaults_used"
	FlagCOGSApproximated     = "ratios.cogs_approximated"
	FlagDefaultGrowthRate    = "forecast.default_growth_rate"
	FlagRetainedEarnings     = "valuation.retained_earnings_estimated"
	FlagTargetPriceMissing   = "recommendation.no_market_price"
)

// Pad extends items with fillers until it holds at least min entries.
// It returns the padded list and whether any filler was used; the caller's slice is not modified.
func Pad(logger arbor.ILogger, flag string, items []string, fillers []string, min int) ([]string, bool) {
	out := make([]string, len(items), max(len(items), min))
	copy(out, items)
	if len(out) >= min {
		return out, false
	}

	need := min - len(out)
	if need > len(fillers) {
		need = len(fillers)
	}
	out = append(out, fillers[:need]...)

	if logger != nil {
		logger.Debug().
			Str("heuristic", flag).
			Int("organic", len(items)).
			Int("filled", need).
			Msg("Filler text substituted for derived content")
	}
	return out, true
}

// Truncate limits items to at most n entries
func Truncate(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

// Set collects fired flags in first-seen order
type Set struct {
	flags []string
	seen  map[string]bool
}

// Add records a flag once
func (s *Set) Add(flag string) {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	if s.seen[flag] {
		return
	}
	s.seen[flag] = true
	s.flags = append(s.flags, flag)
}

// AddIf records a flag when fired is true
func (s *Set) AddIf(fired bool, flag string) {
	if fired {
		s.Add(flag)
	}
}

// Merge records every flag of another list
func (s *Set) Merge(flags []string) {
	for _, f := range flags {
		s.Add(f)
	}
}

// List returns the recorded flags, nil when none fired
func (s *Set) List() []string {
	if len(s.flags) == 0 {
		return nil
	}
	out := make([]string, len(s.flags))
	copy(out, s.flags)
	return out
}
