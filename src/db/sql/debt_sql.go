package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/analytics"
	"fintrack-server/src/models"
)

func AddDebt(ctx context.Context, pool *pgxpool.Pool, d *models.Debt) error {
	query := `
		INSERT INTO debts (user_id, name, amount_owed, interest_rate, min_payment, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return pool.QueryRow(ctx, query, d.UserID, d.Name, d.AmountOwed, d.InterestRate, d.MinPayment, nullableDate(d.DueDate)).
		Scan(&d.ID)
}

func GetDebts(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Debt, error) {
	query := `
		SELECT id, user_id, name, amount_owed::float8, interest_rate::float8,
		       min_payment::float8, COALESCE(due_date::text, '')
		FROM debts
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var debts []models.Debt
	for rows.Next() {
		var d models.Debt
		err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.AmountOwed, &d.InterestRate, &d.MinPayment, &d.DueDate)
		if err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}
	return debts, rows.Err()
}

// PayDebt applies a payment; the balance never drops below zero.
func PayDebt(ctx context.Context, pool *pgxpool.Pool, userID, debtID int64, amount float64) error {
	query := `
		UPDATE debts
		SET amount_owed = GREATEST(amount_owed - $1, 0)
		WHERE id = $2 AND user_id = $3
	`
	cmd, err := pool.Exec(ctx, query, amount, debtID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return analytics.ErrNotFound
	}
	return nil
}

func DeleteDebt(ctx context.Context, pool *pgxpool.Pool, userID, debtID int64) error {
	query := `DELETE FROM debts WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, debtID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return analytics.ErrNotFound
	}
	return nil
}
