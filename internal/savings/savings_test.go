package savings

import (
	"testing"

	"subscription-tracker/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMonthlySavings(t *testing.T) {
	yearly := domain.Subscription{Name: "Cloud", Cost: dec("120"), BillingCycle: domain.Yearly}
	if got := MonthlySavings(yearly); !got.Equal(dec("10")) {
		t.Fatalf("yearly 120 => %s, want 10", got)
	}

	monthly := domain.Subscription{Name: "Music", Cost: dec("15"), BillingCycle: domain.Monthly}
	if got := MonthlySavings(monthly); !got.Equal(dec("15")) {
		t.Fatalf("monthly 15 => %s, want 15", got)
	}
}

func TestNewEntrySnapshotsName(t *testing.T) {
	userID := uuid.New()
	sub := domain.Subscription{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         "Cloud",
		Cost:         dec("120"),
		BillingCycle: domain.Yearly,
	}

	entry := NewEntry(sub)
	sub.Name = "Renamed"

	if entry.SubscriptionName != "Cloud" {
		t.Errorf("SubscriptionName = %q, want Cloud", entry.SubscriptionName)
	}
	if entry.UserID != userID {
		t.Errorf("UserID = %v, want %v", entry.UserID, userID)
	}
	if !entry.MonthlySavings.Equal(dec("10")) {
		t.Errorf("MonthlySavings = %s, want 10", entry.MonthlySavings)
	}
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name        string
		entries     []string
		wantMonthly string
		wantYearly  string
	}{
		{"empty", nil, "0", "0"},
		{"single", []string{"10"}, "10", "120"},
		{"mixed", []string{"10", "15", "4.99"}, "29.99", "359.88"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entries []domain.SavingsEntry
			for _, v := range tt.entries {
				entries = append(entries, domain.SavingsEntry{MonthlySavings: dec(v)})
			}
			got := Total(entries)
			if got.Count != len(tt.entries) {
				t.Errorf("Count = %d, want %d", got.Count, len(tt.entries))
			}
			if !got.MonthlyTotal.Equal(dec(tt.wantMonthly)) {
				t.Errorf("MonthlyTotal = %s, want %s", got.MonthlyTotal, tt.wantMonthly)
			}
			if !got.YearlyTotal.Equal(dec(tt.wantYearly)) {
				t.Errorf("YearlyTotal = %s, want %s", got.YearlyTotal, tt.wantYearly)
			}
		})
	}
}

func TestRecent(t *testing.T) {
	entries := make([]domain.SavingsEntry, 7)
	if got := Recent(entries, 5); len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if got := Recent(entries[:3], 5); len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got := Recent(entries, -1); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}
