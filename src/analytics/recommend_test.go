package analytics

import (
	"testing"

	"fintrack-server/src/models"
)

func TestRecommendBudgetNoHistory(t *testing.T) {
	table, _ := Prepare(nil)
	rec := RecommendBudget(table, nil)
	// No income and no expenses: the 1000 baseline times 1.1.
	if rec.Total != 1100 {
		t.Fatalf("total = %v, want 1100", rec.Total)
	}
	if len(rec.Budgets) != len(defaultCategories) {
		t.Fatalf("budgets = %v, want the %d default categories", rec.Budgets, len(defaultCategories))
	}
	for _, cat := range defaultCategories {
		if rec.Budgets[cat] != 275 {
			t.Errorf("budget[%s] = %v, want 275", cat, rec.Budgets[cat])
		}
	}
	if rec.Warning != "Spending within budget" {
		t.Errorf("warning = %q", rec.Warning)
	}
}

func TestRecommendBudgetFromIncome(t *testing.T) {
	table, _ := Prepare([]models.Transaction{
		tx(1, TypeIncome, "Salary", 1000, "2026-01-01"),
		tx(2, TypeExpense, "Food", 990, "2026-01-05"),
		tx(3, TypeExpense, "Misc", 10, "2026-01-06"),
	})
	rec := RecommendBudget(table, nil)
	if rec.Total != 800 {
		t.Fatalf("total = %v, want 800 (80%% of average income)", rec.Total)
	}
	// Food's proportional share (792) is capped at 30% of the total.
	if rec.Budgets["Food"] != 240 {
		t.Errorf("budget[Food] = %v, want 240", rec.Budgets["Food"])
	}
	// Misc's share (8) is lifted to the floor.
	if rec.Budgets["Misc"] != 10 {
		t.Errorf("budget[Misc] = %v, want 10", rec.Budgets["Misc"])
	}
	// Monthly expenses average 1000 against an 800 budget.
	if rec.Warning != "Likely to exceed budget!" {
		t.Errorf("warning = %q", rec.Warning)
	}
}

func TestRecommendBudgetSavedOverride(t *testing.T) {
	table, _ := Prepare([]models.Transaction{
		tx(1, TypeIncome, "Salary", 1000, "2026-01-01"),
		tx(2, TypeExpense, "Food", 990, "2026-01-05"),
		tx(3, TypeExpense, "Misc", 10, "2026-01-06"),
	})
	saved := map[string]models.BudgetSetting{
		"Food": {Amount: 500, AlertEnabled: true},
	}
	rec := RecommendBudget(table, saved)
	if rec.Budgets["Food"] != 500 {
		t.Errorf("budget[Food] = %v, want saved override 500", rec.Budgets["Food"])
	}
	if rec.Budgets["Misc"] != 10 {
		t.Errorf("budget[Misc] = %v, want 10", rec.Budgets["Misc"])
	}
}

func TestRecommendBudgetSavingsTips(t *testing.T) {
	table, _ := Prepare([]models.Transaction{
		tx(1, TypeIncome, "Salary", 1000, "2026-01-01"),
		tx(2, TypeExpense, "Food", 990, "2026-01-05"),
		tx(3, TypeExpense, "Misc", 10, "2026-01-06"),
	})
	rec := RecommendBudget(table, nil)
	// Food spent 990 against a 240 budget: reduce by 10% of 990.
	if got := rec.SavingsTips["Food"]; got != "Reduce Food spending by 10% to save 99.00" {
		t.Errorf("tips[Food] = %q", got)
	}
	if got := rec.SavingsTips["Misc"]; got != "Maintain Misc spending within budget" {
		t.Errorf("tips[Misc] = %q", got)
	}
}
