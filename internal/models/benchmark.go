package models

import "time"

// Benchmark keys for market multiples, alongside the RatioName keys
const (
	BenchmarkPE = "PE"
	BenchmarkPB = "PB"
)

// Benchmark sources
const (
	BenchmarkSourceImported = "imported"
	BenchmarkSourceDerived  = "derived"
)

// SectorBenchmark holds the average ratios of one sector.
// Averages is keyed by RatioName strings plus BenchmarkPE and BenchmarkPB.
// Published benchmarks are shared between requests and must not be mutated.
type SectorBenchmark struct {
	Sector       string             `json:"sector" yaml:"sector" validate:"required"`
	Averages     map[string]float64 `json:"averages" yaml:"averages"`
	CompanyCount int                `json:"company_count" yaml:"company_count"`
	Source       string             `json:"source" yaml:"source"`
	UpdatedAt    time.Time          `json:"updated_at" yaml:"-"`
}

// Average returns the sector average for a key and whether it is present and positive
func (b *SectorBenchmark) Average(key string) (float64, bool) {
	if b == nil || b.Averages == nil {
		return 0, false
	}
	v, ok := b.Averages[key]
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

// AverageOr returns the sector average for a key, or fallback when absent
func (b *SectorBenchmark) AverageOr(key string, fallback float64) float64 {
	if v, ok := b.Average(key); ok {
		return v
	}
	return fallback
}

// Clone returns a deep copy of the benchmark
func (b SectorBenchmark) Clone() SectorBenchmark {
	out := b
	if b.Averages != nil {
		out.Averages = make(map[string]float64, len(b.Averages))
		for k, v := range b.Averages {
			out.Averages[k] = v
		}
	}
	return out
}
