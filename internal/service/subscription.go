// internal/service/subscription.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"subscription-tracker/internal/domain"
	"subscription-tracker/internal/events"
	"subscription-tracker/internal/insights"
	"subscription-tracker/internal/savings"
	"subscription-tracker/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const recentWinsLimit = 5

type SubscriptionService struct {
	subs      storage.SubscriptionStorage
	savings   storage.SavingsStorage
	settings  storage.SettingsStorage
	publisher events.Publisher
	now       func() time.Time
}

// NewSubscriptionService wires the service. publisher may be nil when event
// publishing is disabled.
func NewSubscriptionService(
	subs storage.SubscriptionStorage,
	savingsStore storage.SavingsStorage,
	settings storage.SettingsStorage,
	publisher events.Publisher,
) *SubscriptionService {
	return &SubscriptionService{
		subs:      subs,
		savings:   savingsStore,
		settings:  settings,
		publisher: publisher,
		now:       time.Now,
	}
}

func normalize(in domain.SubscriptionInput) domain.SubscriptionInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Cost = in.Cost.Round(2)
	return in
}

func (s *SubscriptionService) List(ctx context.Context, userID uuid.UUID) ([]domain.Subscription, error) {
	subs, err := s.subs.ListSubscriptions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return subs, nil
}

func (s *SubscriptionService) Get(ctx context.Context, userID, id uuid.UUID) (*domain.Subscription, error) {
	sub, err := s.subs.GetSubscription(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return sub, nil
}

func (s *SubscriptionService) Create(ctx context.Context, userID uuid.UUID, in domain.SubscriptionInput) (*domain.Subscription, error) {
	sub, err := s.subs.CreateSubscription(ctx, userID, normalize(in))
	if err != nil {
		return nil, fmt.Errorf("create subscription: %w", err)
	}
	slog.Info("Subscription added", "user_id", userID, "subscription_id", sub.ID)
	return sub, nil
}

func (s *SubscriptionService) Update(ctx context.Context, userID, id uuid.UUID, in domain.SubscriptionInput) (*domain.Subscription, error) {
	sub, err := s.subs.UpdateSubscription(ctx, userID, id, normalize(in))
	if err != nil {
		return nil, fmt.Errorf("update subscription: %w", err)
	}
	slog.Info("Subscription updated", "user_id", userID, "subscription_id", id)
	return sub, nil
}

// Cancel deletes the subscription and records what cancelling it saves per
// month. Both happen or neither does.
func (s *SubscriptionService) Cancel(ctx context.Context, userID, id uuid.UUID) (*domain.SavingsEntry, error) {
	sub, err := s.subs.GetSubscription(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("load subscription: %w", err)
	}

	entry := savings.NewEntry(*sub)
	entry.UserID = userID

	saved, err := s.subs.CancelSubscription(ctx, userID, id, entry)
	if err != nil {
		return nil, fmt.Errorf("cancel subscription: %w", err)
	}
	slog.Info("Subscription cancelled",
		"user_id", userID,
		"subscription_id", id,
		"monthly_savings", saved.MonthlySavings.StringFixed(2))

	if s.publisher != nil {
		// The row is already committed; a client disconnect must not drop the event.
		if err := s.publisher.PublishCancellation(context.WithoutCancel(ctx), *saved); err != nil {
			slog.Error("Failed to publish cancellation event", "user_id", userID, "error", err)
		}
	}
	return saved, nil
}

// FindByName matches a subscription name case-insensitively.
func (s *SubscriptionService) FindByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Subscription, error) {
	subs, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	for i := range subs {
		if strings.EqualFold(subs[i].Name, name) {
			return &subs[i], nil
		}
	}
	return nil, storage.ErrNotFound
}

type SavingsReport struct {
	Entries []domain.SavingsEntry `json:"entries"`
	Totals  savings.Totals        `json:"totals"`
}

func (s *SubscriptionService) Savings(ctx context.Context, userID uuid.UUID) (*SavingsReport, error) {
	entries, err := s.savings.ListSavings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list savings: %w", err)
	}
	return &SavingsReport{Entries: entries, Totals: savings.Total(entries)}, nil
}

type Dashboard struct {
	Summary         insights.Summary          `json:"summary"`
	Budget          *insights.BudgetStatus    `json:"budget"`
	Insights        insights.SpendingInsights `json:"insights"`
	Recommendations []insights.Recommendation `json:"recommendations"`
	Savings         savings.Totals            `json:"savings"`
	RecentWins      []domain.SavingsEntry     `json:"recent_wins"`
}

// Dashboard recomputes every figure from the current stored state.
func (s *SubscriptionService) Dashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	var (
		subs     []domain.Subscription
		entries  []domain.SavingsEntry
		settings *domain.UserSettings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		subs, err = s.List(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		if entries, err = s.savings.ListSavings(gctx, userID); err != nil {
			return fmt.Errorf("list savings: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if settings, err = s.settings.GetSettings(gctx, userID); err != nil {
			return fmt.Errorf("get settings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := insights.Summarize(subs)
	dash := &Dashboard{
		Summary:         summary,
		Budget:          insights.CompareBudget(summary, settings),
		Insights:        insights.Insights(subs, s.now()),
		Recommendations: []insights.Recommendation{},
		Savings:         savings.Total(entries),
		RecentWins:      savings.Recent(entries, recentWinsLimit),
	}
	if settings != nil {
		dash.Recommendations = insights.Recommend(subs, settings.MonthlyBudget)
	}
	return dash, nil
}
