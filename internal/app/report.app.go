package app

import (
	"context"
	"fmt"
	"fundreport/internal/domain"
	"fundreport/internal/logger"
	"fundreport/internal/repository"
	"fundreport/internal/service"
)

// ReportApp orchestrates one full report run:
// 1. Load the daily record feed from disk
// 2. Aggregate it into monthly summaries
// 3. Write the report (JSON, optionally CSV)
// The aggregation core stays pure - all I/O lives in the repositories.
type ReportApp interface {
	GenerateReport(ctx context.Context, req GenerateReportRequest) (*domain.MonthlyReport, error)
}

type GenerateReportRequest struct {
	InputPath  string
	OutputPath string
	// CSVPath is optional - empty means no CSV export
	CSVPath string
}

type reportAppHandler struct {
	RecordRepository   repository.RecordRepository
	ReportRepository   repository.ReportRepository
	AggregationService service.AggregationService
}

func NewReportApp(
	recordRepository repository.RecordRepository,
	reportRepository repository.ReportRepository,
	aggregationService service.AggregationService,
) ReportApp {
	return &reportAppHandler{
		RecordRepository:   recordRepository,
		ReportRepository:   reportRepository,
		AggregationService: aggregationService,
	}
}

func (h *reportAppHandler) GenerateReport(ctx context.Context, req GenerateReportRequest) (*domain.MonthlyReport, error) {
	log := logger.FromContext(ctx)

	log.Infof("reading daily records from %s", req.InputPath)
	records, err := h.RecordRepository.Load(req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily records: %w", err)
	}
	log.Infof("loaded %d daily records", len(records))

	report, err := h.AggregationService.Aggregate(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate records: %w", err)
	}
	log.Infof("aggregated %d months (%s - %s), avg %.2f funds/month",
		report.Overall.TotalMonths,
		report.Overall.DateRange.Start,
		report.Overall.DateRange.End,
		report.Overall.AvgFundsPerMonth,
	)

	err = h.ReportRepository.WriteJSON(req.OutputPath, report)
	if err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	log.Infof("wrote report to %s", req.OutputPath)

	if req.CSVPath != "" {
		err = h.ReportRepository.WriteCSV(req.CSVPath, report)
		if err != nil {
			return nil, fmt.Errorf("failed to write csv export: %w", err)
		}
		log.Infof("wrote csv export to %s", req.CSVPath)
	}

	return report, nil
}
