package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type MonthlySummary struct {
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	Balance       float64 `json:"balance"`
}

// Summarize totals income and expenses over the whole table.
func Summarize(t *Table) MonthlySummary {
	income := sumAmounts(t.incomes())
	expenses := sumAmounts(t.expenses())
	return MonthlySummary{
		TotalIncome:   round2(income),
		TotalExpenses: round2(expenses),
		Balance:       round2(income.Sub(expenses)),
	}
}

type MonthBreakdown struct {
	TotalExpenses float64            `json:"total_expenses"`
	Breakdown     map[string]float64 `json:"breakdown"`
}

// BreakdownExpenses sums expenses per category across the table.
func BreakdownExpenses(t *Table) MonthBreakdown {
	totals := sumByCategory(t.expenses())
	breakdown := make(map[string]float64, len(totals))
	sum := decimal.Zero
	for cat, total := range totals {
		breakdown[cat] = round2(total)
		sum = sum.Add(total)
	}
	return MonthBreakdown{
		TotalExpenses: round2(sum),
		Breakdown:     breakdown,
	}
}

type TrendData struct {
	Pie   map[string]float64 `json:"pie"`
	Trend map[string]float64 `json:"trend"`
}

// Visualize builds chart data: a pie of expense totals per category and a
// trend of all transaction amounts bucketed by period. Daily buckets are the
// date itself, weekly buckets close on Sunday, monthly buckets are labelled
// by the last day of the month. Only daily, weekly and monthly are valid.
func Visualize(t *Table, period string) (TrendData, error) {
	var bucket func(time.Time) time.Time
	switch period {
	case "daily":
		bucket = func(d time.Time) time.Time { return d }
	case "weekly":
		bucket = weekEnd
	case "monthly":
		bucket = monthEnd
	default:
		return TrendData{}, fmt.Errorf("%w: invalid period %q", ErrValidation, period)
	}

	pie := make(map[string]float64)
	for cat, total := range sumByCategory(t.expenses()) {
		pie[cat] = round2(total)
	}

	sums := make(map[time.Time]decimal.Decimal)
	for _, r := range t.Records {
		key := bucket(r.Date)
		sums[key] = sums[key].Add(r.Amount)
	}
	trend := make(map[string]float64, len(sums))
	for key, total := range sums {
		trend[key.Format("2006-01-02")] = round2(total)
	}

	return TrendData{Pie: pie, Trend: trend}, nil
}

// weekEnd returns the Sunday that closes the week containing d.
func weekEnd(d time.Time) time.Time {
	offset := (7 - int(d.Weekday())) % 7
	return d.AddDate(0, 0, offset)
}

// monthEnd returns the last day of d's month.
func monthEnd(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, time.UTC)
}
