package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/models"
)

// UpsertBudget sets the budget for a (user, category) pair, overwriting any
// existing row. The primary key guarantees no duplicates.
func UpsertBudget(ctx context.Context, pool *pgxpool.Pool, userID int64, category string, amount float64, alertEnabled bool) error {
	query := `
		INSERT INTO budgets (user_id, category, amount, alert_enabled)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, category)
		DO UPDATE SET amount = EXCLUDED.amount, alert_enabled = EXCLUDED.alert_enabled
	`
	_, err := pool.Exec(ctx, query, userID, category, amount, alertEnabled)
	return err
}

func GetBudgets(ctx context.Context, pool *pgxpool.Pool, userID int64) (map[string]models.BudgetSetting, error) {
	query := `SELECT category, amount::float8, alert_enabled FROM budgets WHERE user_id = $1`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := make(map[string]models.BudgetSetting)
	for rows.Next() {
		var category string
		var setting models.BudgetSetting
		if err := rows.Scan(&category, &setting.Amount, &setting.AlertEnabled); err != nil {
			return nil, err
		}
		budgets[category] = setting
	}
	return budgets, rows.Err()
}
