package models

// SectorAnalysis summarizes the stored companies of one sector
type SectorAnalysis struct {
	Sector       string           `json:"sector"`
	CompanyCount int              `json:"company_count"`
	Benchmark    *SectorBenchmark `json:"benchmark,omitempty"`
	TopCompanies []SectorCompany  `json:"top_companies"`
}

// SectorCompany is one company of a sector ranking, measured on its latest year
type SectorCompany struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Year          int     `json:"year"`
	ROE           float64 `json:"roe"`
	ROA           float64 `json:"roa"`
	ROS           float64 `json:"ros"`
	RevenueGrowth float64 `json:"revenue_growth"`
}

// Comparison lines up the latest figures of several companies and sectors in request order
type Comparison struct {
	Companies []CompanyComparison `json:"companies"`
	Sectors   []SectorBenchmark   `json:"sectors"`
}

// CompanyComparison is the latest snapshot and ratio set of one compared company
type CompanyComparison struct {
	Company       Company        `json:"company"`
	Year          int            `json:"year"`
	Snapshot      AnnualSnapshot `json:"snapshot"`
	Ratios        RatioSet       `json:"ratios"`
	RevenueGrowth float64        `json:"revenue_growth"`
}
