package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/analytics"
	"fintrack-server/src/models"
)

func AddTransaction(ctx context.Context, pool *pgxpool.Pool, t *models.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, type, category, amount, date, goal_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return pool.QueryRow(ctx, query, t.UserID, t.Type, t.Category, t.Amount, t.Date, t.GoalID).
		Scan(&t.ID)
}

// GetTransactions returns the user's ledger in insertion order, optionally
// narrowed by date range and category.
func GetTransactions(ctx context.Context, pool *pgxpool.Pool, userID int64, f analytics.TransactionFilter) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, type, category, amount::float8, date::text, goal_id
		FROM transactions
		WHERE user_id = $1`
	args := []interface{}{userID}

	if f.StartDate != "" {
		args = append(args, f.StartDate)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if f.EndDate != "" {
		args = append(args, f.EndDate)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	query += " ORDER BY id"

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Category, &t.Amount, &t.Date, &t.GoalID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", analytics.ErrDataFormat, err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, userID, transactionID int64) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return analytics.ErrNotFound
	}
	return nil
}
