package analytics

import "github.com/shopspring/decimal"

type ForecastResult struct {
	NextMonthExpense float64 `json:"next_month_exp"`
}

// Forecaster produces a one-step-ahead point estimate for a monthly series.
// Implementations are injectable so the numerical routine can be swapped.
type Forecaster interface {
	ForecastNext(series []float64) (float64, error)
}

// ForecastExpenses aggregates expenses into monthly sums and forecasts the
// next month. With at least 3 monthly data points the injected model runs;
// with fewer, or when the fit degenerates, the mean of the available monthly
// sums is used (0 when there are none). The result is a rough point
// estimate, not a confidence interval.
func ForecastExpenses(t *Table, f Forecaster) ForecastResult {
	monthly := monthlyTotals(t.expenses())
	if len(monthly) == 0 {
		return ForecastResult{}
	}

	series := make([]float64, len(monthly))
	sum := decimal.Zero
	for i, m := range monthly {
		series[i] = m.Total.InexactFloat64()
		sum = sum.Add(m.Total)
	}

	if len(monthly) >= 3 && f != nil {
		if v, err := f.ForecastNext(series); err == nil && isFinite(v) {
			return ForecastResult{NextMonthExpense: round2(decimal.NewFromFloat(v))}
		}
	}

	mean := sum.Div(decimal.NewFromInt(int64(len(monthly))))
	return ForecastResult{NextMonthExpense: round2(mean)}
}
