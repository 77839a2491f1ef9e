package main

import (
	"context"
	"fundreport/api"
	"fundreport/internal/app"
	"fundreport/internal/logger"
	"fundreport/internal/repository"
	"fundreport/internal/service"
	"fundreport/internal/util"
	"os"

	"github.com/spf13/cobra"
)

func newReportApp() app.ReportApp {
	return app.NewReportApp(
		repository.NewRecordRepository(),
		repository.NewReportRepository(),
		service.NewAggregationService(),
	)
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "fundreport",
		Short:        "aggregate daily fund performance into monthly reports",
		SilenceUsage: true,
	}

	var (
		inputPath  string
		outputPath string
		csvPath    string
	)
	aggregateCmd := &cobra.Command{
		Use:   "aggregate",
		Short: "read the daily feed, write the monthly report",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()
			ctx := context.WithValue(context.Background(), logger.ContextKey, log)

			report, err := newReportApp().GenerateReport(ctx, app.GenerateReportRequest{
				InputPath:  inputPath,
				OutputPath: outputPath,
				CSVPath:    csvPath,
			})
			if err != nil {
				return err
			}

			util.Pprint(report.Overall)
			return nil
		},
	}
	aggregateCmd.Flags().StringVar(&inputPath, "input", "fund_data.json", "path to the daily records feed")
	aggregateCmd.Flags().StringVar(&outputPath, "output", "monthly_report.json", "path to write the monthly report")
	aggregateCmd.Flags().StringVar(&csvPath, "csv", "", "optional path for a per-fund csv export")

	var port int
	apiCmd := &cobra.Command{
		Use:   "api",
		Short: "serve the aggregation api",
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := api.ApiHandler{
				AggregationService: service.NewAggregationService(),
			}
			return handler.StartApi(port)
		},
	}
	apiCmd.Flags().IntVar(&port, "port", 8080, "port to listen on")

	rootCmd.AddCommand(aggregateCmd, apiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
