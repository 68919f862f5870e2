package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fintrack-server/src/models"
)

// BudgetRecommendation is the recommender output. Spending is only populated
// by the service layer for the budget endpoint (current-month spend per
// budgeted category, zero-filled).
type BudgetRecommendation struct {
	Total       float64            `json:"total"`
	Budgets     map[string]float64 `json:"budgets"`
	SavingsTips map[string]string  `json:"savings_tips"`
	Warning     string             `json:"warning"`
	Spending    map[string]float64 `json:"spending,omitempty"`
}

// defaultCategories seed the budget split for users with no expense history.
var defaultCategories = []string{"Food", "Transport", "Utilities", "Other"}

// RecommendBudget derives a total budget from average income (80% of it) or,
// lacking income, from average monthly expenses (110%), then splits it across
// categories in proportion to historical spend. Saved budgets always override
// computed ones. No single computed category budget exceeds 30% of the total
// and none drops below 10.0.
func RecommendBudget(t *Table, saved map[string]models.BudgetSetting) BudgetRecommendation {
	expenses := t.expenses()

	monthlyAvg := decimal.Zero
	if monthly := monthlyTotals(expenses); len(monthly) > 0 {
		sum := decimal.Zero
		for _, m := range monthly {
			sum = sum.Add(m.Total)
		}
		monthlyAvg = sum.Div(decimal.NewFromInt(int64(len(monthly))))
	}
	if monthlyAvg.IsZero() {
		monthlyAvg = decimal.NewFromInt(1000)
	}

	incomeAvg := decimal.Zero
	if incomes := t.incomes(); len(incomes) > 0 {
		incomeAvg = sumAmounts(incomes).Div(decimal.NewFromInt(int64(len(incomes))))
	}

	var total decimal.Decimal
	if incomeAvg.IsPositive() {
		total = incomeAvg.Mul(decimal.NewFromFloat(0.8))
	} else {
		total = monthlyAvg.Mul(decimal.NewFromFloat(1.1))
	}
	total = total.Round(2)
	if !total.IsPositive() {
		total = decimal.NewFromInt(1000)
	}

	categoryTotals := sumByCategory(expenses)
	totalExpenses := sumAmounts(expenses)

	categories := defaultCategories
	if !totalExpenses.IsZero() {
		categories = sortedCategories(categoryTotals)
	}

	capPerCategory := total.Mul(decimal.NewFromFloat(0.3))
	floor := decimal.NewFromInt(10)
	recentExpenses := sortByDate(expenses)

	budgets := make(map[string]float64, len(categories))
	tips := make(map[string]string, len(categories))
	for _, cat := range categories {
		var budget decimal.Decimal
		switch {
		case hasSaved(saved, cat):
			budget = decimal.NewFromFloat(saved[cat].Amount)
		case totalExpenses.IsZero():
			budget = total.Div(decimal.NewFromInt(int64(len(categories)))).Round(2)
		default:
			budget = total.Mul(categoryTotals[cat]).Div(totalExpenses)
			if budget.GreaterThan(capPerCategory) {
				budget = capPerCategory
			}
			budget = budget.Round(2)
			if budget.LessThan(floor) {
				budget = floor
			}
		}
		budgets[cat] = budget.InexactFloat64()
		tips[cat] = savingsTip(recentExpenses, cat, budget)
	}

	warning := "Spending within budget"
	if monthlyAvg.GreaterThan(total) {
		warning = "Likely to exceed budget!"
	}

	return BudgetRecommendation{
		Total:       total.InexactFloat64(),
		Budgets:     budgets,
		SavingsTips: tips,
		Warning:     warning,
	}
}

func hasSaved(saved map[string]models.BudgetSetting, cat string) bool {
	_, ok := saved[cat]
	return ok
}

// savingsTip sums the category's most recent 30 expense transactions and, if
// they exceed the category budget, suggests a 10% reduction.
func savingsTip(sortedExpenses []Record, cat string, budget decimal.Decimal) string {
	var catRecords []Record
	for _, r := range sortedExpenses {
		if r.Category == cat {
			catRecords = append(catRecords, r)
		}
	}
	recentSpend := sumAmounts(tail(catRecords, recentWindow))
	if recentSpend.GreaterThan(budget) {
		saved := recentSpend.Mul(decimal.NewFromFloat(0.1)).Round(2)
		return fmt.Sprintf("Reduce %s spending by 10%% to save %s", cat, saved.StringFixed(2))
	}
	return fmt.Sprintf("Maintain %s spending within budget", cat)
}
