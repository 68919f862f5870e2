package models

// BudgetSetting is the value half of the budgets table; the key is
// (user_id, category) and upserts never duplicate rows.
type BudgetSetting struct {
	Amount       float64 `json:"amount"`
	AlertEnabled bool    `json:"alert_enabled"`
}
