package analytics

import (
	"testing"
	"time"

	"fintrack-server/src/models"
)

func TestResolveGoalContribution(t *testing.T) {
	today := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		goals []models.Goal
		want  int64
	}{
		{
			name: "earliest future deadline wins",
			goals: []models.Goal{
				{ID: 1, Name: "Car", TargetAmount: 5000, CurrentAmount: 100, Deadline: "2026-08-01"},
				{ID: 2, Name: "Trip", TargetAmount: 2000, CurrentAmount: 0, Deadline: "2026-12-01"},
			},
			want: 1,
		},
		{
			name: "expired goal skipped",
			goals: []models.Goal{
				{ID: 1, Name: "Car", TargetAmount: 5000, CurrentAmount: 100, Deadline: "2026-05-01"},
				{ID: 2, Name: "Trip", TargetAmount: 2000, CurrentAmount: 0, Deadline: "2026-12-01"},
			},
			want: 2,
		},
		{
			name: "deadline today is not future",
			goals: []models.Goal{
				{ID: 1, Name: "Car", TargetAmount: 5000, Deadline: "2026-06-15"},
			},
			want: 0,
		},
		{
			name: "funded goal skipped",
			goals: []models.Goal{
				{ID: 1, Name: "Car", TargetAmount: 5000, CurrentAmount: 5000, Deadline: "2026-08-01"},
				{ID: 2, Name: "Trip", TargetAmount: 2000, CurrentAmount: 1999, Deadline: "2026-12-01"},
			},
			want: 2,
		},
		{
			name: "tie broken by lowest id",
			goals: []models.Goal{
				{ID: 7, Name: "A", TargetAmount: 100, Deadline: "2026-08-01"},
				{ID: 3, Name: "B", TargetAmount: 100, Deadline: "2026-08-01"},
			},
			want: 3,
		},
		{
			name: "no deadline skipped",
			goals: []models.Goal{
				{ID: 1, Name: "Car", TargetAmount: 5000, Deadline: ""},
			},
			want: 0,
		},
		{
			name:  "no goals",
			goals: nil,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveGoalContribution(tt.goals, today); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
