package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"fintrack-server/src/models"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// recentWindow is the number of most recent expense transactions the
// overspend detector and savings tips look at.
const recentWindow = 30

// Record is one normalized ledger row: parsed date, exact decimal amount.
type Record struct {
	ID       int64
	UserID   int64
	Type     string
	Category string
	Amount   decimal.Decimal
	Date     time.Time
	GoalID   int64
}

// Table is a user's normalized ledger snapshot. Record order matches the
// input row order so downstream tie-breaks stay deterministic.
type Table struct {
	Records []Record
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Prepare converts raw storage rows into a Table. Rows whose date cannot be
// parsed are excluded; the second return value counts the exclusions so
// callers can report them as a warning rather than fail. Analytics must
// tolerate partial ledgers.
func Prepare(rows []models.Transaction) (*Table, int) {
	t := &Table{Records: make([]Record, 0, len(rows))}
	dropped := 0
	for _, row := range rows {
		date, ok := parseDate(row.Date)
		if !ok {
			dropped++
			continue
		}
		amount := row.Amount
		if !isFinite(amount) {
			amount = 0
		}
		t.Records = append(t.Records, Record{
			ID:       row.ID,
			UserID:   row.UserID,
			Type:     row.Type,
			Category: row.Category,
			Amount:   decimal.NewFromFloat(amount),
			Date:     date,
			GoalID:   row.GoalID,
		})
	}
	return t, dropped
}

func (t *Table) expenses() []Record {
	return t.ofType(TypeExpense)
}

func (t *Table) incomes() []Record {
	return t.ofType(TypeIncome)
}

func (t *Table) ofType(txType string) []Record {
	var out []Record
	for _, r := range t.Records {
		if r.Type == txType {
			out = append(out, r)
		}
	}
	return out
}

func sumAmounts(rs []Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rs {
		total = total.Add(r.Amount)
	}
	return total
}

func sumByCategory(rs []Record) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, r := range rs {
		totals[r.Category] = totals[r.Category].Add(r.Amount)
	}
	return totals
}

func meanByCategory(rs []Record) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int64)
	for _, r := range rs {
		totals[r.Category] = totals[r.Category].Add(r.Amount)
		counts[r.Category]++
	}
	means := make(map[string]decimal.Decimal, len(totals))
	for cat, total := range totals {
		means[cat] = total.Div(decimal.NewFromInt(counts[cat]))
	}
	return means
}

func sortedCategories(m map[string]decimal.Decimal) []string {
	cats := make([]string, 0, len(m))
	for cat := range m {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

// sortByDate returns a copy sorted by date ascending. The sort is stable so
// rows on the same day keep their ledger order.
func sortByDate(rs []Record) []Record {
	out := make([]Record, len(rs))
	copy(out, rs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func tail(rs []Record, n int) []Record {
	if len(rs) <= n {
		return rs
	}
	return rs[len(rs)-n:]
}

type monthTotal struct {
	Month time.Time
	Total decimal.Decimal
}

// monthlyTotals groups records by calendar month and sums their amounts,
// sorted chronologically. Months with no records do not appear.
func monthlyTotals(rs []Record) []monthTotal {
	sums := make(map[time.Time]decimal.Decimal)
	for _, r := range rs {
		key := time.Date(r.Date.Year(), r.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		sums[key] = sums[key].Add(r.Amount)
	}
	out := make([]monthTotal, 0, len(sums))
	for month, total := range sums {
		out = append(out, monthTotal{Month: month, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month.Before(out[j].Month)
	})
	return out
}

// monthExpenseByCategory sums expenses per category for one calendar month.
func monthExpenseByCategory(t *Table, year int, month time.Month) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, r := range t.Records {
		if r.Type != TypeExpense {
			continue
		}
		if r.Date.Year() == year && r.Date.Month() == month {
			totals[r.Category] = totals[r.Category].Add(r.Amount)
		}
	}
	return totals
}

// round2 rounds a decimal to two places at the output boundary. All monetary
// values in analytics results pass through here exactly once.
func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
