package domain

// MetricAccumulator collects the raw nominal/after-tax/real samples
// contributed to one bucket by one fund (or by the portfolio-level
// stats). Values are kept unrounded - rounding happens only when a
// summary is produced, so repeated means don't compound rounding error.
type MetricAccumulator struct {
	NominalRates    []float64
	AfterTaxReturns []float64
	RealReturns     []float64
	Count           int
}

func (a *MetricAccumulator) Add(nominal, afterTax, real float64) {
	a.NominalRates = append(a.NominalRates, nominal)
	a.AfterTaxReturns = append(a.AfterTaxReturns, afterTax)
	a.RealReturns = append(a.RealReturns, real)
	a.Count++
}
