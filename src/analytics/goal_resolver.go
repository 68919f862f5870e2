package analytics

import (
	"sort"
	"time"

	"fintrack-server/src/models"
)

// ResolveGoalContribution picks the goal a "Savings" income transaction
// should credit: among goals with a deadline strictly in the future and
// current amount below target, the one with the earliest deadline wins, ties
// broken by lowest id. Returns 0 when no goal qualifies.
func ResolveGoalContribution(goals []models.Goal, today time.Time) int64 {
	type candidate struct {
		id       int64
		deadline time.Time
	}
	var candidates []candidate
	for _, g := range goals {
		deadline, ok := parseDate(g.Deadline)
		if !ok {
			continue
		}
		if !deadline.After(today) {
			continue
		}
		if g.CurrentAmount >= g.TargetAmount {
			continue
		}
		candidates = append(candidates, candidate{id: g.ID, deadline: deadline})
	}
	if len(candidates) == 0 {
		return 0
	}
	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].deadline.Equal(candidates[j].deadline) {
			return candidates[i].deadline.Before(candidates[j].deadline)
		}
		return candidates[i].id < candidates[j].id
	})
	return candidates[0].id
}
