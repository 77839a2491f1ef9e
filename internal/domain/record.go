package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DailyRecord is one day of fund performance data as supplied by the
// input feed. PortfolioStats is the feed's own cross-fund average for
// the day - we carry it through as-is rather than recomputing it.
type DailyRecord struct {
	Date           string         `json:"date"`
	Funds          []FundSample   `json:"funds"`
	PortfolioStats PortfolioStats `json:"portfolioStats"`
}

type FundSample struct {
	ManagerName    string  `json:"managerName"`
	NominalRate    float64 `json:"nominalRate"`
	AfterTaxReturn float64 `json:"afterTaxReturn"`
	RealReturn     float64 `json:"realReturn"`
}

type PortfolioStats struct {
	NominalRate    float64 `json:"nominalRate"`
	AfterTaxReturn float64 `json:"afterTaxReturn"`
	RealReturn     float64 `json:"realReturn"`
}

// MonthKey identifies one aggregation bucket. Month is always stored
// uppercase so "January" and "JANUARY" land in the same bucket.
type MonthKey struct {
	Month string
	Year  string
}

func (k MonthKey) String() string {
	return k.Month + " " + k.Year
}

// ParseMonthKey derives the bucket key from a record's date string,
// e.g. "01 January 2024" -> {JANUARY 2024}. The day token is ignored.
func ParseMonthKey(date string) (MonthKey, error) {
	parts := strings.Fields(date)
	if len(parts) < 3 {
		return MonthKey{}, &RecordParseError{Date: date, Reason: "expected 'DD Month YYYY'"}
	}
	return MonthKey{
		Month: strings.ToUpper(parts[1]),
		Year:  parts[2],
	}, nil
}

var monthIndexes = map[string]int{
	"JANUARY":   0,
	"FEBRUARY":  1,
	"MARCH":     2,
	"APRIL":     3,
	"MAY":       4,
	"JUNE":      5,
	"JULY":      6,
	"AUGUST":    7,
	"SEPTEMBER": 8,
	"OCTOBER":   9,
	"NOVEMBER":  10,
	"DECEMBER":  11,
}

// SortValue maps the key onto a single int for chronological ordering,
// year-major with January=0. Unknown months and non-numeric years are
// integrity failures - ParseMonthKey should have normalized them away.
func (k MonthKey) SortValue() (int, error) {
	idx, ok := monthIndexes[strings.ToUpper(k.Month)]
	if !ok {
		return 0, &IntegrityError{Detail: fmt.Sprintf("unrecognized month name %q", k.Month)}
	}
	year, err := strconv.Atoi(k.Year)
	if err != nil {
		return 0, &IntegrityError{Detail: fmt.Sprintf("non-numeric year %q", k.Year)}
	}
	return year*12 + idx, nil
}
