package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	db "fintrack-server/src/db/sql"
)

func GetCategories(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		categories, err := db.GetCategories(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get categories for user %d: %v", userID, err)
			http.Error(w, "failed to get categories", http.StatusInternalServerError)
			return
		}
		if categories == nil {
			categories = []string{}
		}
		respondJSON(w, http.StatusOK, map[string][]string{"categories": categories})
	}
}

func AddCategory(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			Category string `json:"category"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode add category request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		category := strings.TrimSpace(req.Category)
		if category == "" {
			http.Error(w, "category name is required", http.StatusBadRequest)
			return
		}
		inserted, err := db.AddCategory(r.Context(), pool, userID, category)
		if err != nil {
			log.Printf("ERROR: Failed to add category %s for user %d: %v", category, userID, err)
			http.Error(w, "failed to add category", http.StatusInternalServerError)
			return
		}
		if !inserted {
			log.Printf("INFO: Category already exists: %s for user %d", category, userID)
			http.Error(w, "category already exists", http.StatusBadRequest)
			return
		}
		log.Printf("INFO: Added category %s for user %d", category, userID)
		respondJSON(w, http.StatusCreated, map[string]string{"status": "success", "category": category})
	}
}
