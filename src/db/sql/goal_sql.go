package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/analytics"
	"fintrack-server/src/models"
)

func AddGoal(ctx context.Context, pool *pgxpool.Pool, g *models.Goal) error {
	query := `
		INSERT INTO goals (user_id, goal_name, target_amount, current_amount, deadline)
		VALUES ($1, $2, $3, 0, $4)
		RETURNING id
	`
	return pool.QueryRow(ctx, query, g.UserID, g.Name, g.TargetAmount, nullableDate(g.Deadline)).
		Scan(&g.ID)
}

func GetGoals(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Goal, error) {
	query := `
		SELECT id, user_id, goal_name, target_amount::float8, current_amount::float8,
		       COALESCE(deadline::text, '')
		FROM goals
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// UpdateGoalProgress increments a goal's accumulated amount by delta.
func UpdateGoalProgress(ctx context.Context, pool *pgxpool.Pool, userID, goalID int64, delta float64) error {
	query := `
		UPDATE goals
		SET current_amount = current_amount + $1
		WHERE id = $2 AND user_id = $3
	`
	cmd, err := pool.Exec(ctx, query, delta, goalID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return analytics.ErrNotFound
	}
	return nil
}

func UpdateGoal(ctx context.Context, pool *pgxpool.Pool, g *models.Goal) error {
	query := `
		UPDATE goals
		SET goal_name = $1, target_amount = $2, deadline = $3
		WHERE id = $4 AND user_id = $5
	`
	cmd, err := pool.Exec(ctx, query, g.Name, g.TargetAmount, nullableDate(g.Deadline), g.ID, g.UserID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return analytics.ErrNotFound
	}
	return nil
}

func DeleteGoal(ctx context.Context, pool *pgxpool.Pool, userID, goalID int64) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, goalID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return analytics.ErrNotFound
	}
	return nil
}

// nullableDate maps the empty string to SQL NULL for DATE columns.
func nullableDate(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
