// internal/storage/storage.go
package storage

import (
	"context"
	"errors"

	"subscription-tracker/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/storage.go -package=mocks subscription-tracker/internal/storage SubscriptionStorage,SavingsStorage,SettingsStorage,UserStorage,TelegramLinkStorage

var (
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")
)

type SubscriptionStorage interface {
	// ListSubscriptions returns the user's subscriptions by next renewal date, soonest first.
	ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]domain.Subscription, error)
	GetSubscription(ctx context.Context, userID, id uuid.UUID) (*domain.Subscription, error)
	CreateSubscription(ctx context.Context, userID uuid.UUID, in domain.SubscriptionInput) (*domain.Subscription, error)
	UpdateSubscription(ctx context.Context, userID, id uuid.UUID, in domain.SubscriptionInput) (*domain.Subscription, error)
	// CancelSubscription records entry in the savings history and deletes the
	// subscription in one transaction.
	CancelSubscription(ctx context.Context, userID, id uuid.UUID, entry domain.SavingsEntry) (*domain.SavingsEntry, error)
}

type SavingsStorage interface {
	// ListSavings returns entries newest first.
	ListSavings(ctx context.Context, userID uuid.UUID) ([]domain.SavingsEntry, error)
}

type SettingsStorage interface {
	// GetSettings returns nil, nil when the user has no settings row.
	GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error)
	UpsertSettings(ctx context.Context, settings domain.UserSettings) (*domain.UserSettings, error)
}

type UserStorage interface {
	CreateUser(ctx context.Context, email, passwordHash string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type TelegramLinkStorage interface {
	LinkTelegram(ctx context.Context, telegramUserID int64, userID uuid.UUID) error
	UserByTelegram(ctx context.Context, telegramUserID int64) (uuid.UUID, error)
}
