package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/analytics"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
)

// AddTransaction records a transaction through the analytics service so a
// qualifying Savings income deposit is routed to a goal.
func AddTransaction(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			Type     string  `json:"type"`
			Category string  `json:"category"`
			Amount   float64 `json:"amount"`
			Date     string  `json:"date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode add transaction request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if err := svc.AddTransaction(r.Context(), userID, req.Type, req.Category, req.Amount, req.Date); err != nil {
			log.Printf("ERROR: Failed to add transaction for user %d: %v", userID, err)
			respondServiceError(w, err, "transaction")
			return
		}
		log.Printf("INFO: Added %s transaction for user %d, category %s, amount %.2f",
			req.Type, userID, req.Category, req.Amount)
		respondJSON(w, http.StatusCreated, map[string]string{"status": "success"})
	}
}

func GetTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		filter := analytics.TransactionFilter{
			StartDate: r.URL.Query().Get("start_date"),
			EndDate:   r.URL.Query().Get("end_date"),
			Category:  r.URL.Query().Get("category"),
		}
		transactions, err := db.GetTransactions(r.Context(), pool, userID, filter)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for user %d: %v", userID, err)
			http.Error(w, "failed to get transactions", http.StatusInternalServerError)
			return
		}
		if transactions == nil {
			transactions = []models.Transaction{}
		}
		respondJSON(w, http.StatusOK, transactions)
	}
}

func DeleteTransaction(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		idStr := chi.URLParam(r, "transaction_id")
		transactionID, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Printf("ERROR: Invalid transaction id param: %s", idStr)
			http.Error(w, "invalid transaction id", http.StatusBadRequest)
			return
		}
		if err := svc.DeleteTransaction(r.Context(), userID, transactionID); err != nil {
			log.Printf("ERROR: Failed to delete transaction id %d for user %d: %v", transactionID, userID, err)
			respondServiceError(w, err, "transaction")
			return
		}
		log.Printf("INFO: Deleted transaction id %d for user %d", transactionID, userID)
		respondJSON(w, http.StatusOK, map[string]string{"status": "success"})
	}
}
