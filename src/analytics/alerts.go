package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// BudgetAlert is one alert entry. Category-level alerts carry all fields; the
// informational on-track entry carries only Message and an empty Category,
// so callers must handle both shapes.
type BudgetAlert struct {
	Category string  `json:"category,omitempty"`
	Spent    float64 `json:"spent,omitempty"`
	Budget   float64 `json:"budget,omitempty"`
	Over     float64 `json:"over,omitempty"`
	Message  string  `json:"message"`
}

type AlertReport struct {
	Alerts []BudgetAlert `json:"alerts"`
}

// GenerateBudgetAlerts compares the current calendar month's spend per
// category against the supplied budgets. When nothing is over budget the
// report holds exactly one informational entry instead of an empty list.
func GenerateBudgetAlerts(t *Table, budgets map[string]float64, now time.Time) AlertReport {
	spent := monthExpenseByCategory(t, now.Year(), now.Month())

	categories := make([]string, 0, len(budgets))
	for cat := range budgets {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	alerts := make([]BudgetAlert, 0, len(categories))
	for _, cat := range categories {
		budget := decimal.NewFromFloat(budgets[cat])
		catSpent := spent[cat]
		if !catSpent.GreaterThan(budget) {
			continue
		}
		over := catSpent.Sub(budget).Round(2)
		alerts = append(alerts, BudgetAlert{
			Category: cat,
			Spent:    round2(catSpent),
			Budget:   round2(budget),
			Over:     over.InexactFloat64(),
			Message: fmt.Sprintf("You have overspent by %s in %s this month. Consider cutting back!",
				over.StringFixed(2), cat),
		})
	}
	if len(alerts) == 0 {
		alerts = append(alerts, BudgetAlert{
			Message: "Great job! You're currently on track with your budget.",
		})
	}
	return AlertReport{Alerts: alerts}
}
