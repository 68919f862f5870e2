package models

type Debt struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"user_id"`
	Name         string  `json:"name"`
	AmountOwed   float64 `json:"amount_owed"`
	InterestRate float64 `json:"interest_rate"`
	MinPayment   float64 `json:"min_payment"`
	DueDate      string  `json:"due_date"`
}
