package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/db"
)

// GetCategories lists the user's categories plus the global defaults owned by
// the sentinel user 0, served from cache when possible.
func GetCategories(ctx context.Context, pool *pgxpool.Pool, userID int64) ([]string, error) {
	cacheKey := db.CategoryCacheKey(userID)
	if cached, found := db.Cache.Get(cacheKey); found {
		if categories, ok := cached.([]string); ok {
			return categories, nil
		}
	}

	query := `SELECT category FROM categories WHERE user_id = $1 OR user_id = 0 ORDER BY category`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	db.SetCategoryCache(cacheKey, categories)
	return categories, nil
}

// AddCategory inserts a user-scoped category. Returns false when the
// category already exists for that user.
func AddCategory(ctx context.Context, pool *pgxpool.Pool, userID int64, category string) (bool, error) {
	query := `
		INSERT INTO categories (user_id, category)
		VALUES ($1, $2)
		ON CONFLICT (user_id, category) DO NOTHING
	`
	cmd, err := pool.Exec(ctx, query, userID, category)
	if err != nil {
		return false, err
	}
	if cmd.RowsAffected() == 0 {
		return false, nil
	}
	db.DelCategoryCache(db.CategoryCacheKey(userID))
	return true, nil
}
