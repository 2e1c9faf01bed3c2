// internal/insights/insights.go
package insights

import (
	"sort"
	"time"

	"subscription-tracker/internal/domain"

	"github.com/shopspring/decimal"
)

const renewalWindowDays = 7

var (
	monthsPerYear = decimal.NewFromInt(12)
	hundred       = decimal.NewFromInt(100)
)

type CategoryTotal struct {
	Category     domain.Category `json:"category"`
	Count        int             `json:"count"`
	MonthlyTotal decimal.Decimal `json:"monthly_total"`
}

type Summary struct {
	Count        int             `json:"count"`
	MonthlyTotal decimal.Decimal `json:"monthly_total"`
	YearlyTotal  decimal.Decimal `json:"yearly_total"`
	ByCategory   []CategoryTotal `json:"by_category"`
}

type BudgetStatus struct {
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	MonthlySpend  decimal.Decimal `json:"monthly_spend"`
	Remaining     decimal.Decimal `json:"remaining"`
	UsedPercent   decimal.Decimal `json:"used_percent"`
	OverBudget    bool            `json:"over_budget"`
}

type SpendingInsights struct {
	MostExpensive    *domain.Subscription  `json:"most_expensive,omitempty"`
	TopCategory      *CategoryTotal        `json:"top_category,omitempty"`
	AverageMonthly   decimal.Decimal       `json:"average_monthly"`
	UpcomingRenewals []domain.Subscription `json:"upcoming_renewals"`
}

type Recommendation struct {
	Subscription   domain.Subscription `json:"subscription"`
	MonthlySavings decimal.Decimal     `json:"monthly_savings"`
	Reason         string              `json:"reason"`
}

// MonthlyCost normalizes a subscription's cost to a monthly figure.
func MonthlyCost(sub domain.Subscription) decimal.Decimal {
	return sub.MonthlyCost()
}

// Summarize computes spend totals. Categories without subscriptions are
// omitted from ByCategory; the rest follow domain.Categories order.
func Summarize(subs []domain.Subscription) Summary {
	monthly := decimal.Zero
	perCategory := make(map[domain.Category]*CategoryTotal)

	for _, sub := range subs {
		cost := MonthlyCost(sub)
		monthly = monthly.Add(cost)

		ct, ok := perCategory[sub.Category]
		if !ok {
			ct = &CategoryTotal{Category: sub.Category, MonthlyTotal: decimal.Zero}
			perCategory[sub.Category] = ct
		}
		ct.Count++
		ct.MonthlyTotal = ct.MonthlyTotal.Add(cost)
	}

	byCategory := make([]CategoryTotal, 0, len(perCategory))
	for _, c := range domain.Categories {
		if ct, ok := perCategory[c]; ok {
			byCategory = append(byCategory, *ct)
			delete(perCategory, c)
		}
	}
	// rows stored before the category list was fixed
	leftovers := make([]CategoryTotal, 0, len(perCategory))
	for _, ct := range perCategory {
		leftovers = append(leftovers, *ct)
	}
	sort.Slice(leftovers, func(i, j int) bool { return leftovers[i].Category < leftovers[j].Category })
	byCategory = append(byCategory, leftovers...)

	return Summary{
		Count:        len(subs),
		MonthlyTotal: monthly,
		YearlyTotal:  monthly.Mul(monthsPerYear),
		ByCategory:   byCategory,
	}
}

// CompareBudget returns nil when the user has not set a budget.
func CompareBudget(summary Summary, settings *domain.UserSettings) *BudgetStatus {
	if settings == nil {
		return nil
	}

	budget := settings.MonthlyBudget
	spend := summary.MonthlyTotal
	status := &BudgetStatus{
		MonthlyBudget: budget,
		MonthlySpend:  spend,
		Remaining:     budget.Sub(spend),
		UsedPercent:   decimal.Zero,
		OverBudget:    spend.GreaterThan(budget),
	}
	if budget.IsPositive() {
		status.UsedPercent = spend.Div(budget).Mul(hundred).Round(2)
	}
	return status
}

// Insights derives the dashboard highlights. now decides which renewals are
// upcoming.
func Insights(subs []domain.Subscription, now time.Time) SpendingInsights {
	result := SpendingInsights{
		AverageMonthly:   decimal.Zero,
		UpcomingRenewals: []domain.Subscription{},
	}
	if len(subs) == 0 {
		return result
	}

	summary := Summarize(subs)
	result.AverageMonthly = summary.MonthlyTotal.Div(decimal.NewFromInt(int64(len(subs)))).Round(2)

	for i := range subs {
		if result.MostExpensive == nil || MonthlyCost(subs[i]).GreaterThan(MonthlyCost(*result.MostExpensive)) {
			result.MostExpensive = &subs[i]
		}
	}

	for i := range summary.ByCategory {
		ct := summary.ByCategory[i]
		if result.TopCategory == nil || ct.MonthlyTotal.GreaterThan(result.TopCategory.MonthlyTotal) {
			result.TopCategory = &ct
		}
	}

	now = now.UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	horizon := today.AddDate(0, 0, renewalWindowDays)
	for _, sub := range subs {
		d := sub.NextRenewalDate.Time
		if !d.Before(today) && !d.After(horizon) {
			result.UpcomingRenewals = append(result.UpcomingRenewals, sub)
		}
	}
	sort.SliceStable(result.UpcomingRenewals, func(i, j int) bool {
		return result.UpcomingRenewals[i].NextRenewalDate.Before(result.UpcomingRenewals[j].NextRenewalDate.Time)
	})

	return result
}

func usageRank(u *domain.UsageFrequency) int {
	if u == nil {
		return 2
	}
	switch *u {
	case domain.UsageNever:
		return 0
	case domain.UsageRarely:
		return 1
	case domain.UsageMonthly:
		return 3
	case domain.UsageWeekly:
		return 4
	case domain.UsageDaily:
		return 5
	}
	return 2
}

func reasonFor(sub domain.Subscription) string {
	if sub.UsageFrequency == nil {
		return "one of your most expensive subscriptions"
	}
	switch *sub.UsageFrequency {
	case domain.UsageNever:
		return "you never use it"
	case domain.UsageRarely:
		return "you rarely use it"
	}
	return "cancelling it brings you closer to your budget"
}

// Recommend suggests cancellations when spend exceeds budget: least used
// first, then most expensive, until the projected spend fits.
func Recommend(subs []domain.Subscription, budget decimal.Decimal) []Recommendation {
	spend := Summarize(subs).MonthlyTotal
	if !spend.GreaterThan(budget) {
		return []Recommendation{}
	}

	candidates := make([]domain.Subscription, len(subs))
	copy(candidates, subs)
	sort.SliceStable(candidates, func(i, j int) bool {
		ri, rj := usageRank(candidates[i].UsageFrequency), usageRank(candidates[j].UsageFrequency)
		if ri != rj {
			return ri < rj
		}
		ci, cj := MonthlyCost(candidates[i]), MonthlyCost(candidates[j])
		if !ci.Equal(cj) {
			return ci.GreaterThan(cj)
		}
		return candidates[i].Name < candidates[j].Name
	})

	recs := []Recommendation{}
	for _, sub := range candidates {
		if !spend.GreaterThan(budget) {
			break
		}
		cost := MonthlyCost(sub)
		recs = append(recs, Recommendation{
			Subscription:   sub,
			MonthlySavings: cost,
			Reason:         reasonFor(sub),
		})
		spend = spend.Sub(cost)
	}
	return recs
}
