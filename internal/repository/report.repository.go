package repository

import (
	"encoding/json"
	"fmt"
	"fundreport/internal/domain"
	"os"

	"github.com/gocarina/gocsv"
)

// ReportRepository is the output collaborator - it serializes a
// finished monthly report to disk.
type ReportRepository interface {
	WriteJSON(path string, report *domain.MonthlyReport) error
	WriteCSV(path string, report *domain.MonthlyReport) error
}

func NewReportRepository() ReportRepository {
	return reportRepositoryHandler{}
}

type reportRepositoryHandler struct{}

func (h reportRepositoryHandler) WriteJSON(path string, report *domain.MonthlyReport) error {
	bytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	err = os.WriteFile(path, bytes, 0644)
	if err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}

	return nil
}

// WriteCSV flattens the per-fund summaries into one row per
// (month, fund) for spreadsheet use. Portfolio-level stats and the
// overall summary stay JSON-only.
func (h reportRepositoryHandler) WriteCSV(path string, report *domain.MonthlyReport) error {
	rows := []domain.FundCSVRow{}
	for _, month := range report.MonthlySummaries {
		for _, fund := range month.Funds {
			rows = append(rows, domain.FundCSVRow{
				Month:          month.Month,
				Year:           month.Year,
				ManagerName:    fund.ManagerName,
				NominalRate:    fund.NominalRate,
				AfterTaxReturn: fund.AfterTaxReturn,
				RealReturn:     fund.RealReturn,
				DataPoints:     fund.DataPoints,
				Rank:           fund.Rank,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file %s: %w", path, err)
	}
	defer f.Close()

	err = gocsv.MarshalFile(&rows, f)
	if err != nil {
		return fmt.Errorf("failed to write csv rows: %w", err)
	}

	return nil
}
