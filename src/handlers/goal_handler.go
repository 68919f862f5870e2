package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"
)

func AddGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			Name         string  `json:"goal_name"`
			TargetAmount float64 `json:"target_amount"`
			Deadline     string  `json:"deadline"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode add goal request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.TargetAmount <= 0 {
			http.Error(w, "goal_name and a positive target_amount are required", http.StatusBadRequest)
			return
		}
		if req.Deadline != "" && !util.ValidDate(req.Deadline) {
			http.Error(w, "deadline must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		goal := &models.Goal{
			UserID:       userID,
			Name:         req.Name,
			TargetAmount: req.TargetAmount,
			Deadline:     req.Deadline,
		}
		if err := db.AddGoal(r.Context(), pool, goal); err != nil {
			log.Printf("ERROR: Failed to add goal for user %d: %v", userID, err)
			http.Error(w, "failed to add goal", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Added goal id %d for user %d, name %s", goal.ID, userID, goal.Name)
		respondJSON(w, http.StatusCreated, map[string]string{"status": "success"})
	}
}

func GetGoals(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		goals, err := db.GetGoals(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get goals for user %d: %v", userID, err)
			http.Error(w, "failed to get goals", http.StatusInternalServerError)
			return
		}
		if goals == nil {
			goals = []models.Goal{}
		}
		respondJSON(w, http.StatusOK, map[string][]models.Goal{"goals": goals})
	}
}

func UpdateGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		goalID, err := parseIDParam(r, "goal_id")
		if err != nil {
			http.Error(w, "invalid goal id", http.StatusBadRequest)
			return
		}
		var req struct {
			Name         string  `json:"goal_name"`
			TargetAmount float64 `json:"target_amount"`
			Deadline     string  `json:"deadline"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update goal request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.TargetAmount <= 0 {
			http.Error(w, "goal_name and a positive target_amount are required", http.StatusBadRequest)
			return
		}
		goal := &models.Goal{
			ID:           goalID,
			UserID:       userID,
			Name:         req.Name,
			TargetAmount: req.TargetAmount,
			Deadline:     req.Deadline,
		}
		if err := db.UpdateGoal(r.Context(), pool, goal); err != nil {
			log.Printf("ERROR: Failed to update goal id %d for user %d: %v", goalID, userID, err)
			respondServiceError(w, err, "goal")
			return
		}
		log.Printf("INFO: Updated goal id %d for user %d", goalID, userID)
		respondJSON(w, http.StatusOK, map[string]string{"status": "success"})
	}
}

// UpdateGoalProgress applies a manual contribution to a goal.
func UpdateGoalProgress(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			ID     int64   `json:"id"`
			Amount float64 `json:"current_amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode goal progress request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.ID == 0 {
			http.Error(w, "goal id is required", http.StatusBadRequest)
			return
		}
		if err := db.UpdateGoalProgress(r.Context(), pool, userID, req.ID, req.Amount); err != nil {
			log.Printf("ERROR: Failed to update goal progress for goal %d, user %d: %v", req.ID, userID, err)
			respondServiceError(w, err, "goal")
			return
		}
		log.Printf("INFO: Updated progress for goal %d, user %d", req.ID, userID)
		respondJSON(w, http.StatusOK, map[string]string{"status": "success"})
	}
}

func DeleteGoal(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		goalID, err := parseIDParam(r, "goal_id")
		if err != nil {
			http.Error(w, "invalid goal id", http.StatusBadRequest)
			return
		}
		if err := db.DeleteGoal(r.Context(), pool, userID, goalID); err != nil {
			log.Printf("ERROR: Failed to delete goal id %d for user %d: %v", goalID, userID, err)
			respondServiceError(w, err, "goal")
			return
		}
		log.Printf("INFO: Deleted goal id %d for user %d", goalID, userID)
		respondJSON(w, http.StatusOK, map[string]string{"status": "success"})
	}
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
