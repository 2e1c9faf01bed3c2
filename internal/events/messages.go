// internal/events/messages.go
package events

import (
	"encoding/json"
	"time"

	"subscription-tracker/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const TypeSubscriptionCancelled = "subscription.cancelled"

// CancellationMessage is published after a subscription has been cancelled
// and its savings entry committed.
type CancellationMessage struct {
	Type             string          `json:"type"`
	UserID           uuid.UUID       `json:"user_id"`
	SubscriptionName string          `json:"subscription_name"`
	MonthlySavings   decimal.Decimal `json:"monthly_savings"`
	OccurredAt       time.Time       `json:"occurred_at"`
}

func NewCancellationMessage(entry domain.SavingsEntry) *CancellationMessage {
	occurred := entry.SavedAt
	if occurred.IsZero() {
		occurred = time.Now().UTC()
	}
	return &CancellationMessage{
		Type:             TypeSubscriptionCancelled,
		UserID:           entry.UserID,
		SubscriptionName: entry.SubscriptionName,
		MonthlySavings:   entry.MonthlySavings,
		OccurredAt:       occurred,
	}
}

func (m *CancellationMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func CancellationMessageFromJSON(data []byte) (*CancellationMessage, error) {
	var msg CancellationMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
