package app

import (
	"context"
	"fmt"
	"fundreport/internal/domain"
	mock_repository "fundreport/internal/repository/mocks"
	"fundreport/internal/service"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_reportAppHandler_GenerateReport(t *testing.T) {
	records := []domain.DailyRecord{
		{
			Date: "01 January 2024",
			Funds: []domain.FundSample{
				{ManagerName: "X", NominalRate: 4, AfterTaxReturn: 3, RealReturn: 2},
			},
			PortfolioStats: domain.PortfolioStats{NominalRate: 4, AfterTaxReturn: 3, RealReturn: 2},
		},
		{
			Date: "15 January 2024",
			Funds: []domain.FundSample{
				{ManagerName: "X", NominalRate: 6, AfterTaxReturn: 5, RealReturn: 4},
			},
			PortfolioStats: domain.PortfolioStats{NominalRate: 6, AfterTaxReturn: 5, RealReturn: 4},
		},
	}

	t.Run("load, aggregate, write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		recordRepository := mock_repository.NewMockRecordRepository(ctrl)
		reportRepository := mock_repository.NewMockReportRepository(ctrl)

		handler := NewReportApp(recordRepository, reportRepository, service.NewAggregationService())

		recordRepository.EXPECT().Load("fund_data.json").Return(records, nil)
		reportRepository.EXPECT().WriteJSON("monthly_report.json", gomock.Any()).Return(nil)

		report, err := handler.GenerateReport(context.Background(), GenerateReportRequest{
			InputPath:  "fund_data.json",
			OutputPath: "monthly_report.json",
		})
		require.NoError(t, err)
		require.Equal(t, 1, report.Overall.TotalMonths)
		require.Equal(t, 5.0, report.MonthlySummaries[0].Funds[0].NominalRate)
	})

	t.Run("csv export only when requested", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		recordRepository := mock_repository.NewMockRecordRepository(ctrl)
		reportRepository := mock_repository.NewMockReportRepository(ctrl)

		handler := NewReportApp(recordRepository, reportRepository, service.NewAggregationService())

		recordRepository.EXPECT().Load("fund_data.json").Return(records, nil)
		reportRepository.EXPECT().WriteJSON("monthly_report.json", gomock.Any()).Return(nil)
		reportRepository.EXPECT().WriteCSV("monthly_report.csv", gomock.Any()).Return(nil)

		_, err := handler.GenerateReport(context.Background(), GenerateReportRequest{
			InputPath:  "fund_data.json",
			OutputPath: "monthly_report.json",
			CSVPath:    "monthly_report.csv",
		})
		require.NoError(t, err)
	})

	t.Run("load failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		recordRepository := mock_repository.NewMockRecordRepository(ctrl)
		reportRepository := mock_repository.NewMockReportRepository(ctrl)

		handler := NewReportApp(recordRepository, reportRepository, service.NewAggregationService())

		recordRepository.EXPECT().Load("fund_data.json").Return(nil, fmt.Errorf("no such file"))

		_, err := handler.GenerateReport(context.Background(), GenerateReportRequest{
			InputPath:  "fund_data.json",
			OutputPath: "monthly_report.json",
		})
		require.ErrorContains(t, err, "no such file")
	})

	t.Run("empty feed surfaces integrity error without writing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		recordRepository := mock_repository.NewMockRecordRepository(ctrl)
		reportRepository := mock_repository.NewMockReportRepository(ctrl)

		handler := NewReportApp(recordRepository, reportRepository, service.NewAggregationService())

		recordRepository.EXPECT().Load("fund_data.json").Return([]domain.DailyRecord{}, nil)

		_, err := handler.GenerateReport(context.Background(), GenerateReportRequest{
			InputPath:  "fund_data.json",
			OutputPath: "monthly_report.json",
		})
		var integrityErr *domain.IntegrityError
		require.ErrorAs(t, err, &integrityErr)
	})
}
