package benchmarks

import (
	"time"

	"github.com/ternarybob/finsight/internal/models"
)

// CalculateSectorAverages averages each ratio over the companies of a sector.
// Zero values are not-computable sentinels and are excluded from the mean.
func CalculateSectorAverages(sector string, latest []models.RatioSet) models.SectorBenchmark {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, set := range latest {
		for _, name := range models.RatioNames {
			v := set.Values[name]
			if v == 0 {
				continue
			}
			sums[string(name)] += v
			counts[string(name)]++
		}
	}

	averages := make(map[string]float64, len(sums))
	for key, sum := range sums {
		averages[key] = sum / float64(counts[key])
	}

	return models.SectorBenchmark{
		Sector:       sector,
		Averages:     averages,
		CompanyCount: len(latest),
		Source:       models.BenchmarkSourceDerived,
		UpdatedAt:    time.Now(),
	}
}

// CompareWithSector returns the percentage difference of each available ratio
// from the sector average. Ratios whose sector average is zero or missing are omitted.
func CompareWithSector(ratios *models.RatioSet, bench *models.SectorBenchmark) map[models.RatioName]float64 {
	out := make(map[models.RatioName]float64)
	if ratios == nil || bench == nil {
		return out
	}
	for _, name := range models.RatioNames {
		if !ratios.Available(name) {
			continue
		}
		avg, ok := bench.Averages[string(name)]
		if !ok || avg == 0 {
			continue
		}
		out[name] = (ratios.Get(name) - avg) / avg * 100
	}
	return out
}

// Merge overlays derived averages on a stored benchmark.
// Keys only present in the stored benchmark, such as imported P/E and P/B, are kept.
func Merge(stored *models.SectorBenchmark, derived models.SectorBenchmark) models.SectorBenchmark {
	if stored == nil {
		return derived
	}
	merged := stored.Clone()
	if merged.Averages == nil {
		merged.Averages = make(map[string]float64, len(derived.Averages))
	}
	for key, v := range derived.Averages {
		merged.Averages[key] = v
	}
	merged.CompanyCount = derived.CompanyCount
	merged.Source = models.BenchmarkSourceDerived
	merged.UpdatedAt = derived.UpdatedAt
	return merged
}
