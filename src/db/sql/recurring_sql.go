package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/analytics"
	"fintrack-server/src/models"
)

func AddRecurringTransaction(ctx context.Context, pool *pgxpool.Pool, rt *models.RecurringTransaction) error {
	query := `
		INSERT INTO recurring_transactions (user_id, type, category, amount, start_date, frequency)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return pool.QueryRow(ctx, query, rt.UserID, rt.Type, rt.Category, rt.Amount, rt.StartDate, rt.Frequency).
		Scan(&rt.ID)
}

func GetRecurringTransactions(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.RecurringTransaction, error) {
	query := `
		SELECT id, user_id, type, category, amount::float8, start_date::text, frequency
		FROM recurring_transactions
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []models.RecurringTransaction
	for rows.Next() {
		var rt models.RecurringTransaction
		err := rows.Scan(&rt.ID, &rt.UserID, &rt.Type, &rt.Category, &rt.Amount, &rt.StartDate, &rt.Frequency)
		if err != nil {
			return nil, err
		}
		templates = append(templates, rt)
	}
	return templates, rows.Err()
}

func DeleteRecurringTransaction(ctx context.Context, pool *pgxpool.Pool, userID, templateID int64) error {
	query := `DELETE FROM recurring_transactions WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, templateID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return analytics.ErrNotFound
	}
	return nil
}
