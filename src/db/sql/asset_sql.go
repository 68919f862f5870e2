package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/analytics"
	"fintrack-server/src/models"
)

func AddAsset(ctx context.Context, pool *pgxpool.Pool, a *models.Asset) error {
	query := `
		INSERT INTO assets (user_id, name, type, current_value)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return pool.QueryRow(ctx, query, a.UserID, a.Name, a.Type, a.CurrentValue).Scan(&a.ID)
}

func GetAssets(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]models.Asset, error) {
	query := `
		SELECT id, user_id, name, type, current_value::float8
		FROM assets
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Type, &a.CurrentValue); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func DeleteAsset(ctx context.Context, pool *pgxpool.Pool, userID, assetID int64) error {
	query := `DELETE FROM assets WHERE id = $1 AND user_id = $2`
	cmd, err := pool.Exec(ctx, query, assetID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return analytics.ErrNotFound
	}
	return nil
}
