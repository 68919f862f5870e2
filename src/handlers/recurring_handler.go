package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"fintrack-server/src/analytics"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"
)

var validFrequencies = map[string]bool{
	"daily":   true,
	"weekly":  true,
	"monthly": true,
	"yearly":  true,
}

func AddRecurringTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			Type      string  `json:"type"`
			Category  string  `json:"category"`
			Amount    float64 `json:"amount"`
			StartDate string  `json:"start_date"`
			Frequency string  `json:"frequency"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode add recurring request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Type != analytics.TypeIncome && req.Type != analytics.TypeExpense {
			http.Error(w, "type must be income or expense", http.StatusBadRequest)
			return
		}
		if req.Category == "" || req.Amount <= 0 {
			http.Error(w, "category and a positive amount are required", http.StatusBadRequest)
			return
		}
		if !util.ValidDate(req.StartDate) {
			http.Error(w, "start_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		if !validFrequencies[req.Frequency] {
			http.Error(w, "frequency must be daily, weekly, monthly or yearly", http.StatusBadRequest)
			return
		}
		rt := &models.RecurringTransaction{
			UserID:    userID,
			Type:      req.Type,
			Category:  req.Category,
			Amount:    req.Amount,
			StartDate: req.StartDate,
			Frequency: req.Frequency,
		}
		if err := db.AddRecurringTransaction(r.Context(), pool, rt); err != nil {
			log.Printf("ERROR: Failed to add recurring transaction for user %d: %v", userID, err)
			http.Error(w, "failed to add recurring transaction", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Added recurring %s template id %d for user %d, category %s",
			rt.Type, rt.ID, userID, rt.Category)
		respondJSON(w, http.StatusCreated, map[string]string{"status": "success"})
	}
}

func GetRecurringTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		templates, err := db.GetRecurringTransactions(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get recurring transactions for user %d: %v", userID, err)
			http.Error(w, "failed to get recurring transactions", http.StatusInternalServerError)
			return
		}
		if templates == nil {
			templates = []models.RecurringTransaction{}
		}
		respondJSON(w, http.StatusOK, map[string][]models.RecurringTransaction{
			"recurring_transactions": templates,
		})
	}
}

// RecurringBreakdown totals the stored templates per frequency so clients can
// show committed monthly obligations without materializing any rows.
func RecurringBreakdown(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		templates, err := db.GetRecurringTransactions(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get recurring transactions for user %d: %v", userID, err)
			http.Error(w, "failed to get recurring transactions", http.StatusInternalServerError)
			return
		}

		income := make(map[string]float64)
		expense := make(map[string]float64)
		for _, rt := range templates {
			bucket := expense
			if rt.Type == analytics.TypeIncome {
				bucket = income
			}
			sum := decimal.NewFromFloat(bucket[rt.Frequency]).Add(decimal.NewFromFloat(rt.Amount))
			bucket[rt.Frequency] = sum.Round(2).InexactFloat64()
		}
		respondJSON(w, http.StatusOK, map[string]map[string]float64{
			"income":  income,
			"expense": expense,
		})
	}
}

func DeleteRecurringTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		templateID, err := parseIDParam(r, "recurring_id")
		if err != nil {
			http.Error(w, "invalid recurring transaction id", http.StatusBadRequest)
			return
		}
		if err := db.DeleteRecurringTransaction(r.Context(), pool, userID, templateID); err != nil {
			log.Printf("ERROR: Failed to delete recurring transaction id %d for user %d: %v", templateID, userID, err)
			respondServiceError(w, err, "recurring transaction")
			return
		}
		log.Printf("INFO: Deleted recurring transaction id %d for user %d", templateID, userID)
		respondJSON(w, http.StatusOK, map[string]string{"status": "success"})
	}
}
