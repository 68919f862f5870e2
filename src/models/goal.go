package models

type Goal struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	Name          string  `json:"goal_name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	// Deadline is YYYY-MM-DD, empty when the goal has no deadline.
	Deadline string `json:"deadline"`
}
