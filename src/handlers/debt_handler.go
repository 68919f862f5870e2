package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"
)

func AddDebt(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			Name         string  `json:"name"`
			AmountOwed   float64 `json:"amount_owed"`
			InterestRate float64 `json:"interest_rate"`
			MinPayment   float64 `json:"min_payment"`
			DueDate      string  `json:"due_date"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode add debt request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.AmountOwed < 0 {
			http.Error(w, "name and a non-negative amount_owed are required", http.StatusBadRequest)
			return
		}
		if req.DueDate != "" && !util.ValidDate(req.DueDate) {
			http.Error(w, "due_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		debt := &models.Debt{
			UserID:       userID,
			Name:         req.Name,
			AmountOwed:   req.AmountOwed,
			InterestRate: req.InterestRate,
			MinPayment:   req.MinPayment,
			DueDate:      req.DueDate,
		}
		if err := db.AddDebt(r.Context(), pool, debt); err != nil {
			log.Printf("ERROR: Failed to add debt for user %d: %v", userID, err)
			http.Error(w, "failed to add debt", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Added debt id %d for user %d, name %s", debt.ID, userID, debt.Name)
		respondJSON(w, http.StatusCreated, map[string]string{"status": "success"})
	}
}

func GetDebts(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		debts, err := db.GetDebts(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get debts for user %d: %v", userID, err)
			http.Error(w, "failed to get debts", http.StatusInternalServerError)
			return
		}
		if debts == nil {
			debts = []models.Debt{}
		}
		respondJSON(w, http.StatusOK, map[string][]models.Debt{"debts": debts})
	}
}

// PayDebt records a payment against a debt; the stored balance floors at zero.
func PayDebt(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		debtID, err := parseIDParam(r, "debt_id")
		if err != nil {
			http.Error(w, "invalid debt id", http.StatusBadRequest)
			return
		}
		var req struct {
			Amount float64 `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode pay debt request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Amount <= 0 {
			http.Error(w, "amount must be a positive number", http.StatusBadRequest)
			return
		}
		if err := db.PayDebt(r.Context(), pool, userID, debtID, req.Amount); err != nil {
			log.Printf("ERROR: Failed to pay debt id %d for user %d: %v", debtID, userID, err)
			respondServiceError(w, err, "debt")
			return
		}
		log.Printf("INFO: Paid %.2f against debt id %d for user %d", req.Amount, debtID, userID)
		respondJSON(w, http.StatusOK, map[string]string{"status": "success"})
	}
}

func DeleteDebt(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		debtID, err := parseIDParam(r, "debt_id")
		if err != nil {
			http.Error(w, "invalid debt id", http.StatusBadRequest)
			return
		}
		if err := db.DeleteDebt(r.Context(), pool, userID, debtID); err != nil {
			log.Printf("ERROR: Failed to delete debt id %d for user %d: %v", debtID, userID, err)
			respondServiceError(w, err, "debt")
			return
		}
		log.Printf("INFO: Deleted debt id %d for user %d", debtID, userID)
		respondJSON(w, http.StatusOK, map[string]string{"status": "success"})
	}
}
