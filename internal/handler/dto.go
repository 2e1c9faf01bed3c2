// internal/handler/dto.go
package handler

import (
	"encoding/json"
	"fmt"
	"strings"

	"subscription-tracker/internal/domain"

	"github.com/shopspring/decimal"
)

type SubscriptionRequest struct {
	Name            string      `json:"name" validate:"required,notblank,max=100"`
	Cost            json.Number `json:"cost" validate:"required,money_positive"`
	BillingCycle    string      `json:"billing_cycle" validate:"required,billing_cycle"`
	NextRenewalDate string      `json:"next_renewal_date" validate:"required,isodate"`
	Category        string      `json:"category" validate:"required,category"`
	UsageFrequency  *string     `json:"usage_frequency" validate:"omitempty,usage_frequency"`
	LastUsedDate    *string     `json:"last_used_date" validate:"omitempty,isodate"`
}

// normalize treats "" in optional fields as absent.
func (r *SubscriptionRequest) normalize() {
	if r.UsageFrequency != nil && strings.TrimSpace(*r.UsageFrequency) == "" {
		r.UsageFrequency = nil
	}
	if r.LastUsedDate != nil && strings.TrimSpace(*r.LastUsedDate) == "" {
		r.LastUsedDate = nil
	}
}

// toInput converts an already validated request.
func (r SubscriptionRequest) toInput() (domain.SubscriptionInput, error) {
	cost, err := decimal.NewFromString(string(r.Cost))
	if err != nil {
		return domain.SubscriptionInput{}, fmt.Errorf("parse cost: %w", err)
	}
	renewal, err := domain.ParseDate(r.NextRenewalDate)
	if err != nil {
		return domain.SubscriptionInput{}, fmt.Errorf("parse next_renewal_date: %w", err)
	}

	in := domain.SubscriptionInput{
		Name:            r.Name,
		Cost:            cost,
		BillingCycle:    domain.BillingCycle(r.BillingCycle),
		NextRenewalDate: renewal,
		Category:        domain.Category(r.Category),
	}
	if r.UsageFrequency != nil {
		u := domain.UsageFrequency(*r.UsageFrequency)
		in.UsageFrequency = &u
	}
	if r.LastUsedDate != nil {
		d, err := domain.ParseDate(*r.LastUsedDate)
		if err != nil {
			return domain.SubscriptionInput{}, fmt.Errorf("parse last_used_date: %w", err)
		}
		in.LastUsedDate = &d
	}
	return in, nil
}

type SettingsRequest struct {
	MonthlyBudget json.Number `json:"monthly_budget" validate:"required,money_nonnegative"`
}

type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (r *CredentialsRequest) normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}
