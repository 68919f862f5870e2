package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
)

func AddAsset(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req struct {
			Name         string  `json:"name"`
			Type         string  `json:"type"`
			CurrentValue float64 `json:"current_value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode add asset request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if req.Name == "" || req.Type == "" || req.CurrentValue < 0 {
			http.Error(w, "name, type and a non-negative current_value are required", http.StatusBadRequest)
			return
		}
		asset := &models.Asset{
			UserID:       userID,
			Name:         req.Name,
			Type:         req.Type,
			CurrentValue: req.CurrentValue,
		}
		if err := db.AddAsset(r.Context(), pool, asset); err != nil {
			log.Printf("ERROR: Failed to add asset for user %d: %v", userID, err)
			http.Error(w, "failed to add asset", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Added asset id %d for user %d, name %s", asset.ID, userID, asset.Name)
		respondJSON(w, http.StatusCreated, map[string]string{"status": "success"})
	}
}

func GetAssets(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		assets, err := db.GetAssets(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get assets for user %d: %v", userID, err)
			http.Error(w, "failed to get assets", http.StatusInternalServerError)
			return
		}
		if assets == nil {
			assets = []models.Asset{}
		}
		respondJSON(w, http.StatusOK, map[string][]models.Asset{"assets": assets})
	}
}

func DeleteAsset(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		assetID, err := parseIDParam(r, "asset_id")
		if err != nil {
			http.Error(w, "invalid asset id", http.StatusBadRequest)
			return
		}
		if err := db.DeleteAsset(r.Context(), pool, userID, assetID); err != nil {
			log.Printf("ERROR: Failed to delete asset id %d for user %d: %v", assetID, userID, err)
			respondServiceError(w, err, "asset")
			return
		}
		log.Printf("INFO: Deleted asset id %d for user %d", assetID, userID)
		respondJSON(w, http.StatusOK, map[string]string{"status": "success"})
	}
}
