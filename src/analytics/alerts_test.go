package analytics

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"fintrack-server/src/models"
)

func TestGenerateBudgetAlertsOnTrack(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	table, _ := Prepare([]models.Transaction{
		tx(1, TypeExpense, "Food", 50, "2026-03-02"),
	})
	report := GenerateBudgetAlerts(table, map[string]float64{"Food": 200}, now)
	if len(report.Alerts) != 1 {
		t.Fatalf("alerts = %d, want exactly 1 informational entry", len(report.Alerts))
	}
	alert := report.Alerts[0]
	if alert.Category != "" {
		t.Errorf("category = %q, want empty", alert.Category)
	}
	if alert.Message != "Great job! You're currently on track with your budget." {
		t.Errorf("message = %q", alert.Message)
	}
}

func TestBudgetAlertShapesOnTheWire(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	table, _ := Prepare([]models.Transaction{
		tx(1, TypeExpense, "Food", 50, "2026-03-02"),
	})

	// The informational entry is message-only; no zeroed number fields leak.
	onTrack := GenerateBudgetAlerts(table, map[string]float64{"Food": 200}, now)
	raw, err := json.Marshal(onTrack.Alerts[0])
	if err != nil {
		t.Fatal(err)
	}
	want := `{"message":"Great job! You're currently on track with your budget."}`
	if string(raw) != want {
		t.Errorf("informational alert = %s, want %s", raw, want)
	}

	// A category alert carries all of its fields.
	over := GenerateBudgetAlerts(table, map[string]float64{"Food": 20}, now)
	raw, err = json.Marshal(over.Alerts[0])
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{`"category":"Food"`, `"spent":50`, `"budget":20`, `"over":30`} {
		if !strings.Contains(string(raw), field) {
			t.Errorf("category alert %s missing %s", raw, field)
		}
	}
}

func TestGenerateBudgetAlertsOverBudget(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	table, _ := Prepare([]models.Transaction{
		tx(1, TypeExpense, "Food", 150, "2026-03-02"),
		tx(2, TypeExpense, "Food", 100, "2026-03-10"),
		// Previous month's spend must not count.
		tx(3, TypeExpense, "Food", 500, "2026-02-10"),
	})
	report := GenerateBudgetAlerts(table, map[string]float64{"Food": 200, "Transport": 100}, now)
	if len(report.Alerts) != 1 {
		t.Fatalf("alerts = %d, want 1", len(report.Alerts))
	}
	alert := report.Alerts[0]
	if alert.Category != "Food" {
		t.Fatalf("category = %q, want Food", alert.Category)
	}
	if alert.Spent != 250 || alert.Budget != 200 || alert.Over != 50 {
		t.Errorf("spent/budget/over = %v/%v/%v, want 250/200/50", alert.Spent, alert.Budget, alert.Over)
	}
	want := "You have overspent by 50.00 in Food this month. Consider cutting back!"
	if alert.Message != want {
		t.Errorf("message = %q, want %q", alert.Message, want)
	}
}
