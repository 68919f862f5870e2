package analytics

import (
	"github.com/shopspring/decimal"

	"fintrack-server/src/models"
)

type NetWorthReport struct {
	NetWorth float64        `json:"net_worth"`
	Assets   []models.Asset `json:"assets"`
	Debts    []models.Debt  `json:"debts"`
}

// CalculateNetWorth sums asset values and subtracts debt balances, rounded to
// two places. Net worth is advisory: any non-finite input makes the whole
// result 0 rather than propagating an error.
func CalculateNetWorth(assets []models.Asset, debts []models.Debt) float64 {
	total := decimal.Zero
	for _, a := range assets {
		if !isFinite(a.CurrentValue) {
			return 0
		}
		total = total.Add(decimal.NewFromFloat(a.CurrentValue))
	}
	for _, d := range debts {
		if !isFinite(d.AmountOwed) {
			return 0
		}
		total = total.Sub(decimal.NewFromFloat(d.AmountOwed))
	}
	return round2(total)
}
