package models

// Transaction is one raw ledger row: the 7-column contract shared by the
// storage layer and the analytics normalizer. Date stays a plain YYYY-MM-DD
// string here; parsing and validation happen in the analytics table.
type Transaction struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"user_id"`
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	GoalID   int64   `json:"goal_id"`
}
