package models

// RecurringTransaction is a template only; nothing in this server
// materializes it into the transactions table.
type RecurringTransaction struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	Type      string  `json:"type"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	StartDate string  `json:"start_date"`
	Frequency string  `json:"frequency"`
}
