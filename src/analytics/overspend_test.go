package analytics

import (
	"testing"

	"fintrack-server/src/models"
)

func TestDetectOverspendingEmptyLedger(t *testing.T) {
	table, _ := Prepare([]models.Transaction{
		tx(1, TypeIncome, "Salary", 1000, "2026-01-01"),
	})
	report := DetectOverspending(table)
	if len(report.Overspend) != 0 {
		t.Errorf("overspend = %v, want empty", report.Overspend)
	}
	if report.PotentialSavings != 0 {
		t.Errorf("potential_savings = %v, want 0", report.PotentialSavings)
	}
}

func TestDetectOverspendingFlagsRecentSpike(t *testing.T) {
	// Two Food expenses of 100: category mean is 100, the recent window holds
	// both, so expected spend is 100*(2/30) and the 200 actually spent is
	// well past 120% of it.
	table, _ := Prepare([]models.Transaction{
		tx(1, TypeExpense, "Food", 100, "2026-01-05"),
		tx(2, TypeExpense, "Food", 100, "2026-01-10"),
	})
	report := DetectOverspending(table)
	over, ok := report.Overspend["Food"]
	if !ok {
		t.Fatalf("Food not flagged: %v", report.Overspend)
	}
	if over != 193.33 {
		t.Errorf("Food overspend = %v, want 193.33", over)
	}
	if report.PotentialSavings != 193.33 {
		t.Errorf("potential_savings = %v, want 193.33", report.PotentialSavings)
	}
}

func TestDetectOverspendingIgnoresDecliningSpend(t *testing.T) {
	// 30 old transactions of 100 followed by 30 recent ones of 1. The recent
	// window sums to 30 against an expectation of 50.5, no flag.
	var rows []models.Transaction
	id := int64(1)
	for i := 0; i < 30; i++ {
		rows = append(rows, tx(id, TypeExpense, "Food", 100, "2026-01-01"))
		id++
	}
	for i := 0; i < 30; i++ {
		rows = append(rows, tx(id, TypeExpense, "Food", 1, "2026-02-01"))
		id++
	}
	table, _ := Prepare(rows)
	report := DetectOverspending(table)
	if len(report.Overspend) != 0 {
		t.Errorf("overspend = %v, want empty", report.Overspend)
	}
}
