package domain

// MetricAverages is the average-only view of an accumulator.
type MetricAverages struct {
	NominalRate    float64 `json:"nominalRate"`
	AfterTaxReturn float64 `json:"afterTaxReturn"`
	RealReturn     float64 `json:"realReturn"`
}

// MetricDetail is the full statistical view of one metric's samples.
type MetricDetail struct {
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	StdDev  float64 `json:"stdDev"`
}

// PortfolioDetail breaks each portfolio metric down into
// average/median/stdDev.
type PortfolioDetail struct {
	NominalRate    MetricDetail `json:"nominalRate"`
	AfterTaxReturn MetricDetail `json:"afterTaxReturn"`
	RealReturn     MetricDetail `json:"realReturn"`
}

// FundSummary is one fund's reduction within a month. Rank is 1-based
// and assigned after sorting funds by descending average nominal rate.
type FundSummary struct {
	ManagerName    string  `json:"managerName"`
	NominalRate    float64 `json:"nominalRate"`
	AfterTaxReturn float64 `json:"afterTaxReturn"`
	RealReturn     float64 `json:"realReturn"`
	DataPoints     int     `json:"dataPoints"`
	Rank           int     `json:"rank"`
}

type MonthSummary struct {
	Month           string          `json:"month"`
	Year            string          `json:"year"`
	PortfolioStats  MetricAverages  `json:"portfolioStats"`
	PortfolioDetail PortfolioDetail `json:"portfolioDetail"`
	Funds           []FundSummary   `json:"funds"`
	TotalFunds      int             `json:"totalFunds"`
	TopPerformer    FundSummary     `json:"topPerformer"`
	BottomPerformer FundSummary     `json:"bottomPerformer"`
}

func (m MonthSummary) Key() MonthKey {
	return MonthKey{Month: m.Month, Year: m.Year}
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type OverallSummary struct {
	TotalMonths      int       `json:"totalMonths"`
	DateRange        DateRange `json:"dateRange"`
	AvgFundsPerMonth float64   `json:"avgFundsPerMonth"`
}

// MonthlyReport is the full output of one aggregation run.
type MonthlyReport struct {
	MonthlySummaries []MonthSummary `json:"monthlySummaries"`
	Overall          OverallSummary `json:"overallSummary"`
}

// FundCSVRow flattens one fund's month summary for CSV export.
type FundCSVRow struct {
	Month          string  `csv:"month"`
	Year           string  `csv:"year"`
	ManagerName    string  `csv:"manager_name"`
	NominalRate    float64 `csv:"nominal_rate"`
	AfterTaxReturn float64 `csv:"after_tax_return"`
	RealReturn     float64 `csv:"real_return"`
	DataPoints     int     `csv:"data_points"`
	Rank           int     `csv:"rank"`
}
