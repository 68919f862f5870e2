package analytics

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"fintrack-server/src/models"
)

// TransactionFilter narrows a ledger fetch. Dates are YYYY-MM-DD; empty
// fields mean no bound.
type TransactionFilter struct {
	StartDate string
	EndDate   string
	Category  string
}

// Store is the data-access contract the analytics core consumes. Every call
// is scoped to a single user; implementations must never return or mutate
// another user's rows.
type Store interface {
	GetTransactions(ctx context.Context, userID int64, f TransactionFilter) ([]models.Transaction, error)
	AddTransaction(ctx context.Context, userID int64, t *models.Transaction) error
	DeleteTransaction(ctx context.Context, userID, transactionID int64) error
	GetGoals(ctx context.Context, userID int64) ([]models.Goal, error)
	UpdateGoalProgress(ctx context.Context, userID, goalID int64, delta float64) error
	GetBudgets(ctx context.Context, userID int64) (map[string]models.BudgetSetting, error)
	GetAssets(ctx context.Context, userID int64) ([]models.Asset, error)
	GetDebts(ctx context.Context, userID int64) ([]models.Debt, error)
}

// Service runs the analytics computations over per-call snapshots of one
// user's data. It holds no mutable state between requests; the store and
// forecaster are injected by the caller, which owns their lifecycle.
type Service struct {
	store      Store
	forecaster Forecaster
	now        func() time.Time
}

func NewService(store Store, forecaster Forecaster) *Service {
	return &Service{store: store, forecaster: forecaster, now: time.Now}
}

// snapshot fetches and normalizes one user's ledger. Unparseable dates are
// logged and dropped, never fatal.
func (s *Service) snapshot(ctx context.Context, userID int64, f TransactionFilter) (*Table, error) {
	rows, err := s.store.GetTransactions(ctx, userID, f)
	if err != nil {
		return nil, err
	}
	table, dropped := Prepare(rows)
	if dropped > 0 {
		log.Printf("WARN: excluded %d transactions with unparseable dates for user %d", dropped, userID)
	}
	return table, nil
}

// AddTransaction validates and records a transaction. A "Savings" income
// transaction is first routed through the goal resolver; when a goal is
// selected its progress is incremented as a second, dependent write after the
// insert succeeds. The two writes are not atomic: a failure in between leaves
// the transaction recorded without its goal credit, and two concurrent
// Savings deposits can each credit the same goal. Both gaps are accepted for
// a single-user tool.
func (s *Service) AddTransaction(ctx context.Context, userID int64, txType, category string, amount float64, date string) error {
	if txType != TypeIncome && txType != TypeExpense {
		return fmt.Errorf("%w: type must be income or expense", ErrValidation)
	}
	if category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if !isFinite(amount) || amount < 0 {
		return fmt.Errorf("%w: amount must be a non-negative number", ErrValidation)
	}
	if _, ok := parseDate(date); !ok {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	var goalID int64
	if txType == TypeIncome && category == "Savings" {
		goals, err := s.store.GetGoals(ctx, userID)
		if err != nil {
			return err
		}
		goalID = ResolveGoalContribution(goals, s.today())
	}

	tx := &models.Transaction{
		UserID:   userID,
		Type:     txType,
		Category: category,
		Amount:   amount,
		Date:     date,
		GoalID:   goalID,
	}
	if err := s.store.AddTransaction(ctx, userID, tx); err != nil {
		return err
	}
	if goalID > 0 {
		if err := s.store.UpdateGoalProgress(ctx, userID, goalID, amount); err != nil {
			return err
		}
		log.Printf("INFO: credited goal %d with %.2f for user %d", goalID, amount, userID)
	}
	return nil
}

func (s *Service) DeleteTransaction(ctx context.Context, userID, transactionID int64) error {
	return s.store.DeleteTransaction(ctx, userID, transactionID)
}

// Analyze runs overspend detection over the full ledger.
func (s *Service) Analyze(ctx context.Context, userID int64) (OverspendReport, error) {
	table, err := s.snapshot(ctx, userID, TransactionFilter{})
	if err != nil {
		return OverspendReport{}, err
	}
	return DetectOverspending(table), nil
}

// BudgetPlan produces the budget recommendation with the user's saved
// budgets applied, plus current-month spending zero-filled for every
// budgeted category.
func (s *Service) BudgetPlan(ctx context.Context, userID int64) (BudgetRecommendation, error) {
	table, err := s.snapshot(ctx, userID, TransactionFilter{})
	if err != nil {
		return BudgetRecommendation{}, err
	}
	saved, err := s.store.GetBudgets(ctx, userID)
	if err != nil {
		return BudgetRecommendation{}, err
	}
	rec := RecommendBudget(table, saved)

	now := s.now()
	spending := make(map[string]float64)
	for cat, total := range monthExpenseByCategory(table, now.Year(), now.Month()) {
		spending[cat] = round2(total)
	}
	for cat := range rec.Budgets {
		if _, ok := spending[cat]; !ok {
			spending[cat] = 0
		}
	}
	rec.Spending = spending
	return rec, nil
}

// BudgetAlerts compares current-month spending to the recommended-or-saved
// budgets.
func (s *Service) BudgetAlerts(ctx context.Context, userID int64) (AlertReport, error) {
	table, err := s.snapshot(ctx, userID, TransactionFilter{})
	if err != nil {
		return AlertReport{}, err
	}
	saved, err := s.store.GetBudgets(ctx, userID)
	if err != nil {
		return AlertReport{}, err
	}
	rec := RecommendBudget(table, saved)
	return GenerateBudgetAlerts(table, rec.Budgets, s.now()), nil
}

func (s *Service) Forecast(ctx context.Context, userID int64) (ForecastResult, error) {
	table, err := s.snapshot(ctx, userID, TransactionFilter{})
	if err != nil {
		return ForecastResult{}, err
	}
	return ForecastExpenses(table, s.forecaster), nil
}

func (s *Service) Investments(ctx context.Context, userID int64) ([]string, error) {
	table, err := s.snapshot(ctx, userID, TransactionFilter{})
	if err != nil {
		return nil, err
	}
	return InvestmentSuggestions(table), nil
}

func (s *Service) Offers(ctx context.Context, userID int64) ([]string, error) {
	table, err := s.snapshot(ctx, userID, TransactionFilter{})
	if err != nil {
		return nil, err
	}
	return Offers(table), nil
}

func (s *Service) NetWorth(ctx context.Context, userID int64) (NetWorthReport, error) {
	assets, err := s.store.GetAssets(ctx, userID)
	if err != nil {
		return NetWorthReport{}, err
	}
	debts, err := s.store.GetDebts(ctx, userID)
	if err != nil {
		return NetWorthReport{}, err
	}
	if assets == nil {
		assets = []models.Asset{}
	}
	if debts == nil {
		debts = []models.Debt{}
	}
	return NetWorthReport{
		NetWorth: CalculateNetWorth(assets, debts),
		Assets:   assets,
		Debts:    debts,
	}, nil
}

// MonthlySummary totals income, expenses and balance over the given range,
// defaulting to the current month to date.
func (s *Service) MonthlySummary(ctx context.Context, userID int64, startDate, endDate string) (MonthlySummary, error) {
	if startDate == "" || endDate == "" {
		now := s.now()
		startDate = formatDate(firstOfMonth(now))
		endDate = formatDate(now)
	}
	table, err := s.snapshot(ctx, userID, TransactionFilter{StartDate: startDate, EndDate: endDate})
	if err != nil {
		return MonthlySummary{}, err
	}
	return Summarize(table), nil
}

type ComparisonReport struct {
	CurrentMonth  MonthBreakdown `json:"current_month"`
	PreviousMonth MonthBreakdown `json:"previous_month"`
}

// MonthlyComparison breaks down expenses for the current month to date and
// the whole previous month.
func (s *Service) MonthlyComparison(ctx context.Context, userID int64) (ComparisonReport, error) {
	now := s.now()
	currentStart := firstOfMonth(now)

	current, err := s.snapshot(ctx, userID, TransactionFilter{
		StartDate: formatDate(currentStart),
		EndDate:   formatDate(now),
	})
	if err != nil {
		return ComparisonReport{}, err
	}

	prevEnd := currentStart.AddDate(0, 0, -1)
	previous, err := s.snapshot(ctx, userID, TransactionFilter{
		StartDate: formatDate(firstOfMonth(prevEnd)),
		EndDate:   formatDate(prevEnd),
	})
	if err != nil {
		return ComparisonReport{}, err
	}

	return ComparisonReport{
		CurrentMonth:  BreakdownExpenses(current),
		PreviousMonth: BreakdownExpenses(previous),
	}, nil
}

type SpendingTotal struct {
	TotalSpending float64 `json:"total_spending"`
}

// MonthlySpending totals the current month's expenses to date.
func (s *Service) MonthlySpending(ctx context.Context, userID int64) (SpendingTotal, error) {
	now := s.now()
	table, err := s.snapshot(ctx, userID, TransactionFilter{
		StartDate: formatDate(firstOfMonth(now)),
		EndDate:   formatDate(now),
	})
	if err != nil {
		return SpendingTotal{}, err
	}
	return SpendingTotal{TotalSpending: round2(sumAmounts(table.expenses()))}, nil
}

type DailySpending struct {
	Breakdown    map[string]float64   `json:"daily_breakdown"`
	Total        float64              `json:"total_daily_spending"`
	Transactions []models.Transaction `json:"daily_transactions"`
}

// TodaySpending breaks down today's expenses per category alongside the raw
// transactions.
func (s *Service) TodaySpending(ctx context.Context, userID int64) (DailySpending, error) {
	today := formatDate(s.now())
	rows, err := s.store.GetTransactions(ctx, userID, TransactionFilter{StartDate: today, EndDate: today})
	if err != nil {
		return DailySpending{}, err
	}
	table, _ := Prepare(rows)

	breakdown := make(map[string]float64)
	total := decimal.Zero
	for cat, sum := range sumByCategory(table.expenses()) {
		breakdown[cat] = round2(sum)
		total = total.Add(sum)
	}
	if rows == nil {
		rows = []models.Transaction{}
	}
	return DailySpending{
		Breakdown:    breakdown,
		Total:        round2(total),
		Transactions: rows,
	}, nil
}

// VisualizeLedger builds pie and trend chart data for the given period over
// an optional date range.
func (s *Service) VisualizeLedger(ctx context.Context, userID int64, period, startDate, endDate string) (TrendData, error) {
	table, err := s.snapshot(ctx, userID, TransactionFilter{StartDate: startDate, EndDate: endDate})
	if err != nil {
		return TrendData{}, err
	}
	return Visualize(table, period)
}

func (s *Service) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
