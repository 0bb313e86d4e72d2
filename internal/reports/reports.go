// Package reports aggregates transaction lists into dashboard and report
// figures. Every function is pure: results depend only on the supplied
// transactions, which the caller has already scoped to a user and date range.
package reports

import (
	"sort"
	"time"

	"fintrack/internal/models"
)

// CategoryTotal is one row of a category breakdown. Percentage is the
// category's share of the breakdown's grand total.
type CategoryTotal struct {
	Category   string  `json:"category"`
	Total      int64   `json:"total"`
	Percentage float64 `json:"percentage"`
}

// MonthBucket holds income and expense totals for one calendar month.
type MonthBucket struct {
	Month    string `json:"month"` // e.g. "2026-08"
	Label    string `json:"label"` // e.g. "Aug"
	Income   int64  `json:"income"`
	Expenses int64  `json:"expenses"`
}

// SumByType sums the absolute amounts of all transactions matching the
// given type.
func SumByType(txs []models.Transaction, txType models.TransactionType) int64 {
	var total int64
	for i := range txs {
		if txs[i].Type != txType {
			continue
		}
		amount := txs[i].Amount
		if amount < 0 {
			amount = -amount
		}
		total += amount
	}
	return total
}

// GroupByCategory totals transactions of the given type per category,
// sorted descending by total. Categories are the raw strings stored on the
// transactions; no normalization is applied.
func GroupByCategory(txs []models.Transaction, txType models.TransactionType) []CategoryTotal {
	totals := make(map[string]int64)
	for i := range txs {
		if txs[i].Type != txType {
			continue
		}
		amount := txs[i].Amount
		if amount < 0 {
			amount = -amount
		}
		totals[txs[i].Category] += amount
	}

	var grand int64
	for _, total := range totals {
		grand += total
	}

	result := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		result = append(result, CategoryTotal{
			Category:   category,
			Total:      total,
			Percentage: PercentageOfTotal(total, grand),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// BucketByMonth assigns transactions to the trailing monthCount calendar
// months ending at now, oldest bucket first. Month boundaries follow now's
// location. Transactions outside the window are ignored.
func BucketByMonth(txs []models.Transaction, monthCount int, now time.Time) []MonthBucket {
	if monthCount <= 0 {
		return []MonthBucket{}
	}

	loc := now.Location()
	// Anchor on the first of the month so month arithmetic never skips a
	// short month.
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	buckets := make([]MonthBucket, monthCount)
	index := make(map[string]int, monthCount)
	for i := 0; i < monthCount; i++ {
		m := anchor.AddDate(0, i-monthCount+1, 0)
		key := monthKey(m.Year(), m.Month())
		buckets[i] = MonthBucket{Month: key, Label: m.Format("Jan")}
		index[key] = i
	}

	for i := range txs {
		date := txs[i].Date.In(loc)
		pos, ok := index[monthKey(date.Year(), date.Month())]
		if !ok {
			continue
		}
		amount := txs[i].Amount
		if amount < 0 {
			amount = -amount
		}
		switch txs[i].Type {
		case models.TransactionTypeIncome:
			buckets[pos].Income += amount
		case models.TransactionTypeExpense:
			buckets[pos].Expenses += amount
		}
	}
	return buckets
}

func monthKey(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// SavingsRate returns (income - expenses) / income as a percentage, or 0
// when income is zero so the rate is always defined.
func SavingsRate(income, expenses int64) float64 {
	if income <= 0 {
		return 0
	}
	return float64(income-expenses) / float64(income) * 100
}

// PercentageOfTotal returns value/total as a percentage, or 0 when total is
// zero.
func PercentageOfTotal(value, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(value) / float64(total) * 100
}
