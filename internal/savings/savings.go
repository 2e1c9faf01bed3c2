// internal/savings/savings.go
package savings

import (
	"subscription-tracker/internal/domain"

	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

type Totals struct {
	Count        int             `json:"count"`
	MonthlyTotal decimal.Decimal `json:"monthly_total"`
	YearlyTotal  decimal.Decimal `json:"yearly_total"`
}

// MonthlySavings is the monthly spend removed by cancelling sub.
func MonthlySavings(sub domain.Subscription) decimal.Decimal {
	return sub.MonthlyCost()
}

// NewEntry builds the ledger record for a cancellation. ID and SavedAt are
// assigned by storage.
func NewEntry(sub domain.Subscription) domain.SavingsEntry {
	return domain.SavingsEntry{
		UserID:           sub.UserID,
		SubscriptionName: sub.Name,
		MonthlySavings:   MonthlySavings(sub),
	}
}

func Total(entries []domain.SavingsEntry) Totals {
	monthly := decimal.Zero
	for _, e := range entries {
		monthly = monthly.Add(e.MonthlySavings)
	}
	return Totals{
		Count:        len(entries),
		MonthlyTotal: monthly,
		YearlyTotal:  monthly.Mul(monthsPerYear),
	}
}

// Recent returns at most n entries from a list already ordered newest first.
func Recent(entries []domain.SavingsEntry, n int) []domain.SavingsEntry {
	if n < 0 {
		n = 0
	}
	if len(entries) <= n {
		return entries
	}
	return entries[:n]
}
