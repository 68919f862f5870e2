package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/analytics"
	db "fintrack-server/src/db/sql"
)

// GetBudgetPlan returns the recommended budget with saved overrides applied
// and current-month spending per budgeted category.
func GetBudgetPlan(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		plan, err := svc.BudgetPlan(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to build budget plan for user %d: %v", userID, err)
			respondServiceError(w, err, "budget")
			return
		}
		respondJSON(w, http.StatusOK, plan)
	}
}

// UpdateBudgets upserts per-category budget settings. A category appearing
// twice in the payload keeps the last value; no duplicate rows are created.
func UpdateBudgets(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			Budgets map[string]struct {
				Amount       float64 `json:"amount"`
				AlertEnabled bool    `json:"alert_enabled"`
			} `json:"budgets"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update budgets request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if len(req.Budgets) == 0 {
			http.Error(w, "budgets payload is required", http.StatusBadRequest)
			return
		}
		for category, setting := range req.Budgets {
			if category == "" {
				http.Error(w, "budget category must not be empty", http.StatusBadRequest)
				return
			}
			if setting.Amount < 0 {
				http.Error(w, "budget amount must be non-negative", http.StatusBadRequest)
				return
			}
		}
		for category, setting := range req.Budgets {
			err := db.UpsertBudget(r.Context(), pool, userID, category, setting.Amount, setting.AlertEnabled)
			if err != nil {
				log.Printf("ERROR: Failed to upsert budget %s for user %d: %v", category, userID, err)
				http.Error(w, "failed to save budgets", http.StatusInternalServerError)
				return
			}
		}
		log.Printf("INFO: Saved %d budget categories for user %d", len(req.Budgets), userID)
		respondJSON(w, http.StatusOK, map[string]string{"status": "success"})
	}
}
