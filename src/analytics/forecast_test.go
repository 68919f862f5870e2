package analytics

import (
	"errors"
	"testing"

	"fintrack-server/src/models"
)

type stubForecaster struct {
	value float64
	err   error
}

func (s stubForecaster) ForecastNext([]float64) (float64, error) {
	return s.value, s.err
}

func TestForecastExpensesEmpty(t *testing.T) {
	table, _ := Prepare(nil)
	got := ForecastExpenses(table, stubForecaster{value: 999})
	if got.NextMonthExpense != 0 {
		t.Errorf("forecast = %v, want 0 for empty ledger", got.NextMonthExpense)
	}
}

func TestForecastExpensesMeanFallbackUnderThreeMonths(t *testing.T) {
	table, _ := Prepare([]models.Transaction{
		tx(1, TypeExpense, "Food", 100, "2026-01-10"),
		tx(2, TypeExpense, "Food", 200, "2026-02-10"),
	})
	// Two monthly points: the model must not run.
	got := ForecastExpenses(table, stubForecaster{value: 999})
	if got.NextMonthExpense != 150.00 {
		t.Errorf("forecast = %v, want mean 150.00", got.NextMonthExpense)
	}
}

func TestForecastExpensesUsesModelAtThreeMonths(t *testing.T) {
	table, _ := Prepare([]models.Transaction{
		tx(1, TypeExpense, "Food", 100, "2026-01-10"),
		tx(2, TypeExpense, "Food", 200, "2026-02-10"),
		tx(3, TypeExpense, "Food", 300, "2026-03-10"),
	})
	got := ForecastExpenses(table, stubForecaster{value: 412.345})
	if got.NextMonthExpense != 412.35 {
		t.Errorf("forecast = %v, want 412.35 from model", got.NextMonthExpense)
	}
}

func TestForecastExpensesModelErrorFallsBackToMean(t *testing.T) {
	table, _ := Prepare([]models.Transaction{
		tx(1, TypeExpense, "Food", 100, "2026-01-10"),
		tx(2, TypeExpense, "Food", 200, "2026-02-10"),
		tx(3, TypeExpense, "Food", 300, "2026-03-10"),
	})
	got := ForecastExpenses(table, stubForecaster{err: errors.New("fit failed")})
	if got.NextMonthExpense != 200.00 {
		t.Errorf("forecast = %v, want mean 200.00", got.NextMonthExpense)
	}
}
