// internal/domain/models.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates (renewal, last used).
const DateLayout = "2006-01-02"

type BillingCycle string

const (
	Monthly BillingCycle = "monthly"
	Yearly  BillingCycle = "yearly"
)

func (b BillingCycle) Valid() bool {
	return b == Monthly || b == Yearly
}

type Category string

const (
	Entertainment Category = "Entertainment"
	Productivity  Category = "Productivity"
	Health        Category = "Health"
	Shopping      Category = "Shopping"
	Other         Category = "Other"
)

// Categories is the canonical display order.
var Categories = []Category{Entertainment, Productivity, Health, Shopping, Other}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// UsageFrequency is how often the user says they actually use a subscription.
type UsageFrequency string

const (
	UsageDaily   UsageFrequency = "daily"
	UsageWeekly  UsageFrequency = "weekly"
	UsageMonthly UsageFrequency = "monthly"
	UsageRarely  UsageFrequency = "rarely"
	UsageNever   UsageFrequency = "never"
)

var UsageFrequencies = []UsageFrequency{UsageDaily, UsageWeekly, UsageMonthly, UsageRarely, UsageNever}

func (u UsageFrequency) Valid() bool {
	for _, known := range UsageFrequencies {
		if u == known {
			return true
		}
	}
	return false
}

// Date is a calendar date without time of day, encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return &time.ParseError{Layout: DateLayout, Value: s}
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

type Subscription struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"-"`
	Name            string          `json:"name"`
	Cost            decimal.Decimal `json:"cost"`
	BillingCycle    BillingCycle    `json:"billing_cycle"`
	NextRenewalDate Date            `json:"next_renewal_date"`
	Category        Category        `json:"category"`
	UsageFrequency  *UsageFrequency `json:"usage_frequency,omitempty"`
	LastUsedDate    *Date           `json:"last_used_date,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// SubscriptionInput holds the validated user-editable fields of a subscription.
type SubscriptionInput struct {
	Name            string
	Cost            decimal.Decimal
	BillingCycle    BillingCycle
	NextRenewalDate Date
	Category        Category
	UsageFrequency  *UsageFrequency
	LastUsedDate    *Date
}

var twelve = decimal.NewFromInt(12)

// MonthlyCost returns the cost expressed as a monthly figure regardless of
// billing cycle.
func (s Subscription) MonthlyCost() decimal.Decimal {
	if s.BillingCycle == Yearly {
		return s.Cost.Div(twelve)
	}
	return s.Cost
}

// SavingsEntry is written once when a subscription is cancelled and never
// changed afterwards. SubscriptionName is a snapshot, not a reference.
type SavingsEntry struct {
	ID               uuid.UUID       `json:"id"`
	UserID           uuid.UUID       `json:"-"`
	SubscriptionName string          `json:"subscription_name"`
	MonthlySavings   decimal.Decimal `json:"monthly_savings"`
	SavedAt          time.Time       `json:"saved_at"`
}

type UserSettings struct {
	UserID        uuid.UUID       `json:"-"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
