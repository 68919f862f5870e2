package analytics

import "github.com/shopspring/decimal"

// OverspendReport maps each flagged category to the amount by which its
// recent spend exceeds the prorated historical average.
type OverspendReport struct {
	Overspend        map[string]float64 `json:"overspend"`
	PotentialSavings float64            `json:"potential_savings"`
}

// DetectOverspending compares each category's spend within the recent window
// (last 30 expense transactions by date) against its historical
// per-transaction mean, prorated by how full the window is. A category is
// flagged when recent spend exceeds 120% of the expectation. A ledger with no
// expenses yields an empty report, never an error.
func DetectOverspending(t *Table) OverspendReport {
	expenses := t.expenses()
	means := meanByCategory(expenses)
	recent := tail(sortByDate(expenses), recentWindow)
	scale := decimal.NewFromInt(int64(len(recent))).Div(decimal.NewFromInt(recentWindow))
	threshold := decimal.NewFromFloat(1.2)

	overspend := make(map[string]float64)
	savings := decimal.Zero
	for _, cat := range sortedCategories(means) {
		catSpend := decimal.Zero
		for _, r := range recent {
			if r.Category == cat {
				catSpend = catSpend.Add(r.Amount)
			}
		}
		expected := means[cat].Mul(scale)
		if catSpend.GreaterThan(expected.Mul(threshold)) {
			over := catSpend.Sub(expected).Round(2)
			overspend[cat] = over.InexactFloat64()
			savings = savings.Add(over)
		}
	}
	return OverspendReport{
		Overspend:        overspend,
		PotentialSavings: round2(savings),
	}
}
