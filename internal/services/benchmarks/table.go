// Package benchmarks derives, stores and publishes sector benchmark tables.
package benchmarks

import (
	"sort"

	"github.com/ternarybob/finsight/internal/models"
)

// Table is an immutable sector -> benchmark snapshot. It is never modified after
// construction, so it can be shared between concurrent report requests.
type Table struct {
	bySector map[string]models.SectorBenchmark
	sectors  []string
}

// NewTable builds a table from deep copies of the given benchmarks.
// A later entry for the same sector replaces an earlier one.
func NewTable(benchmarks []models.SectorBenchmark) *Table {
	t := &Table{bySector: make(map[string]models.SectorBenchmark, len(benchmarks))}
	for _, b := range benchmarks {
		if b.Sector == "" {
			continue
		}
		t.bySector[b.Sector] = b.Clone()
	}
	for sector := range t.bySector {
		t.sectors = append(t.sectors, sector)
	}
	sort.Strings(t.sectors)
	return t
}

// Get returns the benchmark of a sector, or nil. The result must be treated as read-only.
func (t *Table) Get(sector string) *models.SectorBenchmark {
	if t == nil {
		return nil
	}
	b, ok := t.bySector[sector]
	if !ok {
		return nil
	}
	return &b
}

// All returns deep copies of every benchmark ordered by sector
func (t *Table) All() []models.SectorBenchmark {
	if t == nil {
		return []models.SectorBenchmark{}
	}
	out := make([]models.SectorBenchmark, 0, len(t.sectors))
	for _, sector := range t.sectors {
		out = append(out, t.bySector[sector].Clone())
	}
	return out
}

// Len returns the number of sectors
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.sectors)
}
