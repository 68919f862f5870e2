package handlers

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fintrack-server/src/analytics"
)

func AnalyzeSpending(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		report, err := svc.Analyze(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to analyze spending for user %d: %v", userID, err)
			respondServiceError(w, err, "analysis")
			return
		}
		respondJSON(w, http.StatusOK, report)
	}
}

func ForecastExpenses(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		result, err := svc.Forecast(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to forecast expenses for user %d: %v", userID, err)
			respondServiceError(w, err, "forecast")
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

func InvestmentSuggestions(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		suggestions, err := svc.Investments(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to build investment suggestions for user %d: %v", userID, err)
			respondServiceError(w, err, "suggestions")
			return
		}
		respondJSON(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
	}
}

func PersonalizedOffers(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		offers, err := svc.Offers(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to build offers for user %d: %v", userID, err)
			respondServiceError(w, err, "offers")
			return
		}
		respondJSON(w, http.StatusOK, map[string][]string{"offers": offers})
	}
}

func BudgetAlerts(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		report, err := svc.BudgetAlerts(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to build budget alerts for user %d: %v", userID, err)
			respondServiceError(w, err, "alerts")
			return
		}
		respondJSON(w, http.StatusOK, report)
	}
}

func NetWorth(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		report, err := svc.NetWorth(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to calculate net worth for user %d: %v", userID, err)
			respondServiceError(w, err, "net worth")
			return
		}
		respondJSON(w, http.StatusOK, report)
	}
}

// Visualize builds pie and trend chart data bucketed weekly or monthly.
func Visualize(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		period := chi.URLParam(r, "period")
		data, err := svc.VisualizeLedger(r.Context(), userID, period,
			r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
		if err != nil {
			log.Printf("ERROR: Failed to build %s visualization for user %d: %v", period, userID, err)
			respondServiceError(w, err, "visualization")
			return
		}
		respondJSON(w, http.StatusOK, data)
	}
}

func MonthlySummary(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		summary, err := svc.MonthlySummary(r.Context(), userID,
			r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
		if err != nil {
			log.Printf("ERROR: Failed to build monthly summary for user %d: %v", userID, err)
			respondServiceError(w, err, "summary")
			return
		}
		respondJSON(w, http.StatusOK, summary)
	}
}

func MonthlyComparison(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		report, err := svc.MonthlyComparison(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to build monthly comparison for user %d: %v", userID, err)
			respondServiceError(w, err, "comparison")
			return
		}
		respondJSON(w, http.StatusOK, report)
	}
}

func MonthlySpending(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		total, err := svc.MonthlySpending(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to total monthly spending for user %d: %v", userID, err)
			respondServiceError(w, err, "spending")
			return
		}
		respondJSON(w, http.StatusOK, total)
	}
}

func TodaySpending(svc *analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		daily, err := svc.TodaySpending(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to total today's spending for user %d: %v", userID, err)
			respondServiceError(w, err, "spending")
			return
		}
		respondJSON(w, http.StatusOK, daily)
	}
}
