package models

type Asset struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"user_id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	CurrentValue float64 `json:"current_value"`
}
