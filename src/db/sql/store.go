package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/analytics"
	"fintrack-server/src/models"
)

// Store adapts the SQL layer to the analytics data-access contract. All
// methods stay scoped to the given user; queries never cross owners.
type Store struct {
	pool *pgxpool.Pool
}

var _ analytics.Store = (*Store)(nil)

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) GetTransactions(ctx context.Context, userID int64, f analytics.TransactionFilter) ([]models.Transaction, error) {
	return GetTransactions(ctx, s.pool, userID, f)
}

func (s *Store) AddTransaction(ctx context.Context, userID int64, t *models.Transaction) error {
	t.UserID = userID
	return AddTransaction(ctx, s.pool, t)
}

func (s *Store) DeleteTransaction(ctx context.Context, userID, transactionID int64) error {
	return DeleteTransaction(ctx, s.pool, userID, transactionID)
}

func (s *Store) GetGoals(ctx context.Context, userID int64) ([]models.Goal, error) {
	return GetGoals(ctx, s.pool, userID)
}

func (s *Store) UpdateGoalProgress(ctx context.Context, userID, goalID int64, delta float64) error {
	return UpdateGoalProgress(ctx, s.pool, userID, goalID, delta)
}

func (s *Store) GetBudgets(ctx context.Context, userID int64) (map[string]models.BudgetSetting, error) {
	return GetBudgets(ctx, s.pool, userID)
}

func (s *Store) GetAssets(ctx context.Context, userID int64) ([]models.Asset, error) {
	return GetAssets(ctx, s.pool, userID)
}

func (s *Store) GetDebts(ctx context.Context, userID int64) ([]models.Debt, error) {
	return GetDebts(ctx, s.pool, userID)
}
