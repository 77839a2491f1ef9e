package service

import (
	"context"
	"fundreport/internal/calculator"
	"fundreport/internal/domain"
	"fundreport/internal/logger"
	"sort"
)

// AggregationService rolls daily fund records up into monthly
// summaries. The whole pass is pure and in-memory - callers hand it an
// already-decoded record slice and serialize the report themselves.
type AggregationService interface {
	Aggregate(ctx context.Context, records []domain.DailyRecord) (*domain.MonthlyReport, error)
}

func NewAggregationService() AggregationService {
	return &aggregationServiceHandler{}
}

type aggregationServiceHandler struct{}

// monthBucket holds everything accumulated for one (month, year) key.
// fundOrder remembers first-appearance order within the month so that
// equal nominal rates rank deterministically.
type monthBucket struct {
	key       domain.MonthKey
	fundOrder []string
	funds     map[string]*domain.MetricAccumulator
	portfolio domain.MetricAccumulator
}

func (h *aggregationServiceHandler) Aggregate(ctx context.Context, records []domain.DailyRecord) (*domain.MonthlyReport, error) {
	log := logger.FromContext(ctx)

	if len(records) == 0 {
		return nil, &domain.IntegrityError{Detail: "empty input sequence"}
	}

	buckets := map[domain.MonthKey]*monthBucket{}
	skipped := 0
	for i, record := range records {
		key, err := domain.ParseMonthKey(record.Date)
		if err != nil {
			// bad record, not a bad run - skip it and keep going
			log.Warnf("skipping record %d: %v", i, err)
			skipped++
			continue
		}

		bucket, ok := buckets[key]
		if !ok {
			bucket = &monthBucket{
				key:   key,
				funds: map[string]*domain.MetricAccumulator{},
			}
			buckets[key] = bucket
		}

		for _, fund := range record.Funds {
			acc, ok := bucket.funds[fund.ManagerName]
			if !ok {
				acc = &domain.MetricAccumulator{}
				bucket.funds[fund.ManagerName] = acc
				bucket.fundOrder = append(bucket.fundOrder, fund.ManagerName)
			}
			acc.Add(fund.NominalRate, fund.AfterTaxReturn, fund.RealReturn)
		}

		// the feed's per-day cross-fund average goes into its own
		// accumulator, so monthly portfolio stats are a mean of the
		// daily means - matching the upstream report exactly
		bucket.portfolio.Add(
			record.PortfolioStats.NominalRate,
			record.PortfolioStats.AfterTaxReturn,
			record.PortfolioStats.RealReturn,
		)
	}
	if skipped > 0 {
		log.Warnf("skipped %d of %d records", skipped, len(records))
	}

	summaries := make([]domain.MonthSummary, 0, len(buckets))
	for _, bucket := range buckets {
		summaries = append(summaries, reduceBucket(bucket))
	}

	if err := sortChronologically(summaries); err != nil {
		return nil, err
	}

	return &domain.MonthlyReport{
		MonthlySummaries: summaries,
		Overall:          buildOverallSummary(summaries),
	}, nil
}

func reduceBucket(bucket *monthBucket) domain.MonthSummary {
	funds := make([]domain.FundSummary, 0, len(bucket.fundOrder))
	for _, name := range bucket.fundOrder {
		acc := bucket.funds[name]
		funds = append(funds, domain.FundSummary{
			ManagerName:    name,
			NominalRate:    calculator.Average(acc.NominalRates),
			AfterTaxReturn: calculator.Average(acc.AfterTaxReturns),
			RealReturn:     calculator.Average(acc.RealReturns),
			DataPoints:     acc.Count,
		})
	}

	// stable sort: funds tied on nominal rate keep their
	// first-appearance order within the month
	sort.SliceStable(funds, func(i, j int) bool {
		return funds[i].NominalRate > funds[j].NominalRate
	})
	for i := range funds {
		funds[i].Rank = i + 1
	}

	summary := domain.MonthSummary{
		Month: bucket.key.Month,
		Year:  bucket.key.Year,
		PortfolioStats: domain.MetricAverages{
			NominalRate:    calculator.Average(bucket.portfolio.NominalRates),
			AfterTaxReturn: calculator.Average(bucket.portfolio.AfterTaxReturns),
			RealReturn:     calculator.Average(bucket.portfolio.RealReturns),
		},
		PortfolioDetail: domain.PortfolioDetail{
			NominalRate:    reduceMetric(bucket.portfolio.NominalRates),
			AfterTaxReturn: reduceMetric(bucket.portfolio.AfterTaxReturns),
			RealReturn:     reduceMetric(bucket.portfolio.RealReturns),
		},
		Funds:      funds,
		TotalFunds: len(funds),
	}
	if len(funds) > 0 {
		summary.TopPerformer = funds[0]
		summary.BottomPerformer = funds[len(funds)-1]
	}

	return summary
}

func reduceMetric(xs []float64) domain.MetricDetail {
	return domain.MetricDetail{
		Average: calculator.Average(xs),
		Median:  calculator.Median(xs),
		StdDev:  calculator.StdDev(xs),
	}
}

func sortChronologically(summaries []domain.MonthSummary) error {
	sortValues := make(map[domain.MonthKey]int, len(summaries))
	for _, s := range summaries {
		v, err := s.Key().SortValue()
		if err != nil {
			return err
		}
		sortValues[s.Key()] = v
	}
	sort.Slice(summaries, func(i, j int) bool {
		return sortValues[summaries[i].Key()] < sortValues[summaries[j].Key()]
	})
	return nil
}

func buildOverallSummary(summaries []domain.MonthSummary) domain.OverallSummary {
	overall := domain.OverallSummary{
		TotalMonths: len(summaries),
	}
	if len(summaries) == 0 {
		return overall
	}

	overall.DateRange = domain.DateRange{
		Start: summaries[0].Key().String(),
		End:   summaries[len(summaries)-1].Key().String(),
	}

	totalFunds := 0
	for _, s := range summaries {
		totalFunds += s.TotalFunds
	}
	overall.AvgFundsPerMonth = calculator.Round2(float64(totalFunds) / float64(len(summaries)))

	return overall
}
