package analytics

import "github.com/shopspring/decimal"

// InvestmentSuggestions picks growth instruments when the savings rate
// (income minus expenses, over income) exceeds 20%, defensive actions
// otherwise. No income means a zero rate.
func InvestmentSuggestions(t *Table) []string {
	income := sumAmounts(t.incomes())
	expenses := sumAmounts(t.expenses())
	rate := decimal.Zero
	if income.IsPositive() {
		rate = income.Sub(expenses).Div(income)
	}
	if rate.GreaterThan(decimal.NewFromFloat(0.2)) {
		return []string{
			"Invest in Mutual Funds/SIPs (e.g., HDFC Sensex)",
			"Consider fixed deposits for stable returns",
		}
	}
	return []string{
		"Build an emergency fund (3-6 months of expenses)",
		"Start with low-risk bonds",
	}
}

var categoryOffers = map[string]string{
	"Food":     "10% off on groceries at LocalMart",
	"Travel":   "5% cashback on travel bookings",
	"Shopping": "15% discount on fashion outlets",
	"Other":    "General cashback on credit card spending",
}

// Offers maps the single highest-spend expense category through the static
// offer table. Ties resolve to the alphabetically first category; a ledger
// with no expenses falls back to "Other".
func Offers(t *Table) []string {
	totals := sumByCategory(t.expenses())
	top := "Other"
	if len(totals) > 0 {
		cats := sortedCategories(totals)
		top = cats[0]
		best := totals[top]
		for _, cat := range cats[1:] {
			if totals[cat].GreaterThan(best) {
				top, best = cat, totals[cat]
			}
		}
	}
	if offer, ok := categoryOffers[top]; ok {
		return []string{offer}
	}
	return []string{"No specific offers available"}
}
