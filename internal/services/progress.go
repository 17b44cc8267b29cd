package services

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"budgettracker/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Progress is the derived state of a budget amount against what was spent.
type Progress struct {
	Budgeted  decimal.Decimal `json:"budgeted"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
	Percent   float64         `json:"percent"`
	// Ratio is spent/budgeted before clamping; used to order overspent budgets.
	Ratio float64 `json:"-"`
}

// ComputeProgress derives remaining and percent-consumed for a budgeted
// amount. Remaining is never clamped; percent is clamped to [0, 100] and
// is zero when nothing was budgeted.
func ComputeProgress(budgeted, spent decimal.Decimal) Progress {
	p := Progress{
		Budgeted:  budgeted,
		Spent:     spent,
		Remaining: budgeted.Sub(spent),
	}
	if !budgeted.IsPositive() {
		return p
	}

	p.Ratio = spent.Div(budgeted).Mul(hundred).InexactFloat64()
	p.Percent = math.Max(0, math.Min(100, p.Ratio))
	return p
}

// RankByProgress orders budgets by descending percent consumed. Ties on
// the clamped percent fall back to the unclamped ratio, then input order.
func RankByProgress(budgets []BudgetProgress) {
	sort.SliceStable(budgets, func(i, j int) bool {
		if budgets[i].Percent != budgets[j].Percent {
			return budgets[i].Percent > budgets[j].Percent
		}
		return budgets[i].Ratio > budgets[j].Ratio
	})
}

// CategorySpend is the total spent in one category.
type CategorySpend struct {
	CategoryID string          `json:"category_id"`
	Name       string          `json:"name"`
	Color      string          `json:"color"`
	Total      decimal.Decimal `json:"total"`
	Count      int64           `json:"count"`
}

// TopCategories returns the n categories with the largest totals. Ties are
// broken by name, then id, so the result is deterministic.
func TopCategories(spends []CategorySpend, n int) []CategorySpend {
	sorted := make([]CategorySpend, len(spends))
	copy(sorted, spends)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := sorted[i].Total.Cmp(sorted[j].Total); c != 0 {
			return c > 0
		}
		if c := strings.Compare(sorted[i].Name, sorted[j].Name); c != 0 {
			return c < 0
		}
		return sorted[i].CategoryID < sorted[j].CategoryID
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDateRange normalises both bounds to calendar days.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: models.Day(start), End: models.Day(end)}
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) DateRange {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(0, 1, -1)}
}

// Contains reports whether the calendar day of t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	day := models.Day(t)
	return !day.Before(r.Start) && !day.After(r.End)
}

// upperBound is the exclusive instant just past the last day.
func (r DateRange) upperBound() time.Time {
	return r.End.AddDate(0, 0, 1)
}

// DaysRemaining is the number of days left until end, rounded up and
// never negative.
func DaysRemaining(end, now time.Time) int {
	days := math.Ceil(end.Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}
	return int(days)
}
