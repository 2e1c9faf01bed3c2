// internal/storage/postgres/postgres.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"subscription-tracker/internal/domain"
	"subscription-tracker/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// DB is the subset of *pgxpool.Pool the storage uses.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

var _ DB = (*pgxpool.Pool)(nil)

type Storage struct {
	db DB
}

func NewStorage(db DB) *Storage {
	return &Storage{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

const subscriptionColumns = `id, user_id, name, cost, billing_cycle, next_renewal_date, category,
	usage_frequency, last_used_date, created_at, updated_at`

func scanSubscription(row rowScanner) (*domain.Subscription, error) {
	var (
		sub      domain.Subscription
		cycle    string
		category string
		renewal  time.Time
		usage    *string
		lastUsed *time.Time
	)
	err := row.Scan(
		&sub.ID, &sub.UserID, &sub.Name, &sub.Cost, &cycle, &renewal, &category,
		&usage, &lastUsed, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	sub.BillingCycle = domain.BillingCycle(cycle)
	sub.Category = domain.Category(category)
	sub.NextRenewalDate = domain.Date{Time: renewal}
	if usage != nil {
		u := domain.UsageFrequency(*usage)
		sub.UsageFrequency = &u
	}
	if lastUsed != nil {
		d := domain.Date{Time: *lastUsed}
		sub.LastUsedDate = &d
	}
	return &sub, nil
}

// nullable converts optional input fields to driver values.
func nullable(in domain.SubscriptionInput) (usage *string, lastUsed *time.Time) {
	if in.UsageFrequency != nil {
		s := string(*in.UsageFrequency)
		usage = &s
	}
	if in.LastUsedDate != nil {
		t := in.LastUsedDate.Time
		lastUsed = &t
	}
	return usage, lastUsed
}

// === SubscriptionStorage ===

func (s *Storage) ListSubscriptions(ctx context.Context, userID uuid.UUID) ([]domain.Subscription, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE user_id = $1
		ORDER BY next_renewal_date ASC, name ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query subscriptions: %w", err)
	}
	defer rows.Close()

	subs := []domain.Subscription{}
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		subs = append(subs, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return subs, nil
}

func (s *Storage) GetSubscription(ctx context.Context, userID, id uuid.UUID) (*domain.Subscription, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	sub, err := scanSubscription(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return sub, nil
}

func (s *Storage) CreateSubscription(ctx context.Context, userID uuid.UUID, in domain.SubscriptionInput) (*domain.Subscription, error) {
	usage, lastUsed := nullable(in)
	row := s.db.QueryRow(ctx, `
		INSERT INTO subscriptions (user_id, name, cost, billing_cycle, next_renewal_date, category, usage_frequency, last_used_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+subscriptionColumns,
		userID, in.Name, in.Cost, string(in.BillingCycle), in.NextRenewalDate.Time, string(in.Category), usage, lastUsed,
	)
	sub, err := scanSubscription(row)
	if err != nil {
		return nil, fmt.Errorf("insert subscription: %w", err)
	}
	slog.Debug("Subscription created", "user_id", userID, "subscription_id", sub.ID)
	return sub, nil
}

func (s *Storage) UpdateSubscription(ctx context.Context, userID, id uuid.UUID, in domain.SubscriptionInput) (*domain.Subscription, error) {
	usage, lastUsed := nullable(in)
	row := s.db.QueryRow(ctx, `
		UPDATE subscriptions
		SET name = $3, cost = $4, billing_cycle = $5, next_renewal_date = $6, category = $7,
			usage_frequency = $8, last_used_date = $9, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+subscriptionColumns,
		id, userID, in.Name, in.Cost, string(in.BillingCycle), in.NextRenewalDate.Time, string(in.Category), usage, lastUsed,
	)
	sub, err := scanSubscription(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("update subscription: %w", err)
	}
	return sub, nil
}

func (s *Storage) CancelSubscription(ctx context.Context, userID, id uuid.UUID, entry domain.SavingsEntry) (*domain.SavingsEntry, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	saved := domain.SavingsEntry{UserID: userID}
	err = tx.QueryRow(ctx, `
		INSERT INTO savings_history (user_id, subscription_name, monthly_savings)
		VALUES ($1, $2, $3)
		RETURNING id, subscription_name, monthly_savings, saved_at
	`, userID, entry.SubscriptionName, entry.MonthlySavings).Scan(
		&saved.ID, &saved.SubscriptionName, &saved.MonthlySavings, &saved.SavedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert savings entry: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM subscriptions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return nil, fmt.Errorf("delete subscription: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, storage.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	slog.Debug("CancelSubscription completed", "user_id", userID, "subscription_id", id)
	return &saved, nil
}

// === SavingsStorage ===

func (s *Storage) ListSavings(ctx context.Context, userID uuid.UUID) ([]domain.SavingsEntry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, subscription_name, monthly_savings, saved_at
		FROM savings_history
		WHERE user_id = $1
		ORDER BY saved_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query savings: %w", err)
	}
	defer rows.Close()

	entries := []domain.SavingsEntry{}
	for rows.Next() {
		var e domain.SavingsEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.SubscriptionName, &e.MonthlySavings, &e.SavedAt); err != nil {
			return nil, fmt.Errorf("scan savings entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// === SettingsStorage ===

func (s *Storage) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.UserSettings, error) {
	var settings domain.UserSettings
	err := s.db.QueryRow(ctx, `
		SELECT user_id, monthly_budget, updated_at FROM user_settings WHERE user_id = $1
	`, userID).Scan(&settings.UserID, &settings.MonthlyBudget, &settings.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &settings, nil
}

func (s *Storage) UpsertSettings(ctx context.Context, settings domain.UserSettings) (*domain.UserSettings, error) {
	var saved domain.UserSettings
	err := s.db.QueryRow(ctx, `
		INSERT INTO user_settings (user_id, monthly_budget)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET monthly_budget = EXCLUDED.monthly_budget, updated_at = now()
		RETURNING user_id, monthly_budget, updated_at
	`, settings.UserID, settings.MonthlyBudget).Scan(&saved.UserID, &saved.MonthlyBudget, &saved.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert settings: %w", err)
	}
	return &saved, nil
}

// === UserStorage ===

func (s *Storage) CreateUser(ctx context.Context, email, passwordHash string) (*domain.User, error) {
	user := domain.User{Email: email, PasswordHash: passwordHash}
	err := s.db.QueryRow(ctx, `
		INSERT INTO users (email, password_hash) VALUES ($1, $2)
		RETURNING id, created_at
	`, email, passwordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, storage.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

func (s *Storage) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(ctx, `
		SELECT id, email, password_hash, created_at FROM users WHERE email = $1
	`, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// === TelegramLinkStorage ===

func (s *Storage) LinkTelegram(ctx context.Context, telegramUserID int64, userID uuid.UUID) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO telegram_links (telegram_user_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (telegram_user_id) DO UPDATE SET user_id = EXCLUDED.user_id, linked_at = now()
	`, telegramUserID, userID)
	if err != nil {
		return fmt.Errorf("link telegram: %w", err)
	}
	return nil
}

func (s *Storage) UserByTelegram(ctx context.Context, telegramUserID int64) (uuid.UUID, error) {
	var userID uuid.UUID
	err := s.db.QueryRow(ctx, `
		SELECT user_id FROM telegram_links WHERE telegram_user_id = $1
	`, telegramUserID).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, storage.ErrNotFound
		}
		return uuid.Nil, fmt.Errorf("find telegram link: %w", err)
	}
	return userID, nil
}
