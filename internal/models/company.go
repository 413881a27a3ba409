package models

import "time"

// Company holds the descriptive attributes of a listed company.
// Sector is the join key for sector benchmarks; it falls back to ICB level 3.
type Company struct {
	Code      string    `json:"code" yaml:"code" validate:"required"`
	Name      string    `json:"name" yaml:"name"`
	Exchange  string    `json:"exchange" yaml:"exchange"`
	ICBLevel1 string    `json:"icb_level1" yaml:"icb_level1"`
	ICBLevel2 string    `json:"icb_level2" yaml:"icb_level2"`
	ICBLevel3 string    `json:"icb_level3" yaml:"icb_level3"`
	Sector    string    `json:"sector" yaml:"sector"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}

// SectorName returns the sector used for benchmark lookups
func (c *Company) SectorName() string {
	if c.Sector != "" {
		return c.Sector
	}
	return c.ICBLevel3
}

// MarketQuote is a caller-supplied market observation for a company.
// It is only used by the recommendation target price and P/E, P/B comparisons.
type MarketQuote struct {
	CompanyCode string    `json:"company_code" yaml:"company_code"`
	Price       float64   `json:"price" yaml:"price" validate:"gte=0"`
	PE          float64   `json:"pe,omitempty" yaml:"pe" validate:"gte=0"`
	PB          float64   `json:"pb,omitempty" yaml:"pb" validate:"gte=0"`
	AsOf        time.Time `json:"as_of" yaml:"as_of"`
}
