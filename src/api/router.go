package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/analytics"
	"fintrack-server/src/handlers"
	"fintrack-server/src/middleware"
)

func NewRouter(pool *pgxpool.Pool, svc *analytics.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", handlers.Login(pool))
		r.Post("/register", handlers.Register(pool))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware).Group(func(r chi.Router) {
			// User
			r.Get("/me", handlers.CurrentUser(pool))

			// Transactions
			r.Post("/transactions", handlers.AddTransaction(svc))
			r.Get("/transactions", handlers.GetTransactions(pool))
			r.Delete("/transactions/{transaction_id}", handlers.DeleteTransaction(svc))

			// Categories
			r.Get("/categories", handlers.GetCategories(pool))
			r.Post("/categories", handlers.AddCategory(pool))

			// Goals
			r.Post("/goals", handlers.AddGoal(pool))
			r.Get("/goals", handlers.GetGoals(pool))
			r.Put("/goals/{goal_id}", handlers.UpdateGoal(pool))
			r.Post("/goals/progress", handlers.UpdateGoalProgress(pool))
			r.Delete("/goals/{goal_id}", handlers.DeleteGoal(pool))

			// Debts
			r.Post("/debts", handlers.AddDebt(pool))
			r.Get("/debts", handlers.GetDebts(pool))
			r.Post("/debts/{debt_id}/pay", handlers.PayDebt(pool))
			r.Delete("/debts/{debt_id}", handlers.DeleteDebt(pool))

			// Assets
			r.Post("/assets", handlers.AddAsset(pool))
			r.Get("/assets", handlers.GetAssets(pool))
			r.Delete("/assets/{asset_id}", handlers.DeleteAsset(pool))

			// Recurring templates
			r.Post("/recurring", handlers.AddRecurringTransaction(pool))
			r.Get("/recurring", handlers.GetRecurringTransactions(pool))
			r.Get("/recurring/breakdown", handlers.RecurringBreakdown(pool))
			r.Delete("/recurring/{recurring_id}", handlers.DeleteRecurringTransaction(pool))

			// Budgets
			r.Get("/budget", handlers.GetBudgetPlan(svc))
			r.Post("/budgets", handlers.UpdateBudgets(pool))
			r.Get("/budget/alerts", handlers.BudgetAlerts(svc))

			// Analytics
			r.Get("/analyze", handlers.AnalyzeSpending(svc))
			r.Get("/forecast", handlers.ForecastExpenses(svc))
			r.Get("/investments", handlers.InvestmentSuggestions(svc))
			r.Get("/offers", handlers.PersonalizedOffers(svc))
			r.Get("/networth", handlers.NetWorth(svc))
			r.Get("/visualize/{period}", handlers.Visualize(svc))
			r.Get("/summary/monthly", handlers.MonthlySummary(svc))
			r.Get("/summary/comparison", handlers.MonthlyComparison(svc))
			r.Get("/summary/spending", handlers.MonthlySpending(svc))
			r.Get("/summary/today", handlers.TodaySpending(svc))
		})
	})

	return r
}
