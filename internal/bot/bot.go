// internal/bot/bot.go
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"subscription-tracker/internal/auth"
	"subscription-tracker/internal/domain"
	"subscription-tracker/internal/service"
	"subscription-tracker/internal/storage"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

const helpText = "💳 *Subscription tracker*\n\n" +
	"Commands:\n" +
	"`/link <token>` — connect this chat to your account\n" +
	"`/subs` — list subscriptions by renewal date\n" +
	"`/stats` — monthly and yearly spend, budget\n" +
	"`/savings` — money saved by cancelling\n" +
	"`/cancel <name>` — cancel a subscription and record the savings"

const notLinkedText = "🔗 This chat is not linked yet. Log in to the API and send `/link <token>`."

// Sender is the part of tgbotapi.BotAPI the bot needs.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	api    Sender
	links  storage.TelegramLinkStorage
	svc    *service.SubscriptionService
	tokens *auth.TokenService
}

func New(api Sender, links storage.TelegramLinkStorage, svc *service.SubscriptionService, tokens *auth.TokenService) *Bot {
	return &Bot{api: api, links: links, svc: svc, tokens: tokens}
}

// Run handles updates one at a time until ctx is done or updates is closed.
func (b *Bot) Run(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil || update.Message.Chat == nil {
		return
	}

	chatID := update.Message.Chat.ID
	tgUserID := update.Message.From.ID
	slog.Info("Message received", "component", "bot", "telegram_user_id", tgUserID)

	msg := tgbotapi.NewMessage(chatID, b.Reply(ctx, tgUserID, update.Message.Text))
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		slog.Error("Failed to send reply", "component", "bot", "chat_id", chatID, "error", err)
	}
}

// Reply computes the answer to one message.
func (b *Bot) Reply(ctx context.Context, tgUserID int64, text string) string {
	cmd, arg := parseCommand(text)

	switch cmd {
	case "/start", "/help":
		return helpText
	case "/link":
		return b.handleLink(ctx, tgUserID, arg)
	case "/subs", "/stats", "/savings", "/cancel":
	default:
		return "Unknown command. Send /help"
	}

	userID, err := b.links.UserByTelegram(ctx, tgUserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return notLinkedText
		}
		slog.Error("Link lookup failed", "component", "bot", "telegram_user_id", tgUserID, "error", err)
		return "❌ Something went wrong, try again later"
	}

	var reply string
	switch cmd {
	case "/subs":
		reply, err = b.handleSubs(ctx, userID)
	case "/stats":
		reply, err = b.handleStats(ctx, userID)
	case "/savings":
		reply, err = b.handleSavings(ctx, userID)
	case "/cancel":
		reply, err = b.handleCancel(ctx, userID, arg)
	}
	if err != nil {
		slog.Error("Command failed", "component", "bot", "command", cmd, "user_id", userID, "error", err)
		return "❌ Something went wrong, try again later"
	}
	return reply
}

func (b *Bot) handleLink(ctx context.Context, tgUserID int64, token string) string {
	if token == "" {
		return "❌ Usage: /link <token>"
	}
	userID, err := b.tokens.ParseToken(token)
	if err != nil {
		return "❌ That token is invalid or expired. Log in again and retry."
	}
	if err := b.links.LinkTelegram(ctx, tgUserID, userID); err != nil {
		slog.Error("Link failed", "component", "bot", "telegram_user_id", tgUserID, "error", err)
		return "❌ Something went wrong, try again later"
	}
	slog.Info("Telegram account linked", "component", "bot", "telegram_user_id", tgUserID, "user_id", userID)
	return "✅ Linked. Send /subs to see your subscriptions."
}

func (b *Bot) handleSubs(ctx context.Context, userID uuid.UUID) (string, error) {
	subs, err := b.svc.List(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(subs) == 0 {
		return "📭 No subscriptions yet", nil
	}

	lines := []string{"📋 *Your subscriptions*"}
	for _, s := range subs {
		lines = append(lines, fmt.Sprintf("- %s: %s/%s, renews %s",
			escape(s.Name), s.Cost.StringFixed(2), cycleUnit(s.BillingCycle), s.NextRenewalDate))
	}
	return strings.Join(lines, "\n"), nil
}

func (b *Bot) handleStats(ctx context.Context, userID uuid.UUID) (string, error) {
	dash, err := b.svc.Dashboard(ctx, userID)
	if err != nil {
		return "", err
	}

	lines := []string{
		"📊 *Spending*",
		fmt.Sprintf("Subscriptions: %d", dash.Summary.Count),
		fmt.Sprintf("Monthly: %s", dash.Summary.MonthlyTotal.StringFixed(2)),
		fmt.Sprintf("Yearly: %s", dash.Summary.YearlyTotal.StringFixed(2)),
	}
	for _, ct := range dash.Summary.ByCategory {
		lines = append(lines, fmt.Sprintf("- %s: %s", ct.Category, ct.MonthlyTotal.StringFixed(2)))
	}
	if budget := dash.Budget; budget != nil {
		status := "within budget"
		if budget.OverBudget {
			status = "over budget"
		}
		lines = append(lines, fmt.Sprintf("\nBudget: %s (%s%% used, %s)",
			budget.MonthlyBudget.StringFixed(2), budget.UsedPercent.StringFixed(0), status))
	}
	for _, rec := range dash.Recommendations {
		lines = append(lines, fmt.Sprintf("💡 Consider cancelling %s: %s",
			escape(rec.Subscription.Name), rec.Reason))
	}
	return strings.Join(lines, "\n"), nil
}

func (b *Bot) handleSavings(ctx context.Context, userID uuid.UUID) (string, error) {
	report, err := b.svc.Savings(ctx, userID)
	if err != nil {
		return "", err
	}
	if report.Totals.Count == 0 {
		return "📭 Nothing cancelled yet", nil
	}

	lines := []string{
		"💰 *Savings*",
		fmt.Sprintf("Monthly: %s", report.Totals.MonthlyTotal.StringFixed(2)),
		fmt.Sprintf("Yearly: %s", report.Totals.YearlyTotal.StringFixed(2)),
	}
	for _, e := range report.Entries {
		lines = append(lines, fmt.Sprintf("- %s: %s/mo since %s",
			escape(e.SubscriptionName), e.MonthlySavings.StringFixed(2), e.SavedAt.Format(domain.DateLayout)))
	}
	return strings.Join(lines, "\n"), nil
}

func (b *Bot) handleCancel(ctx context.Context, userID uuid.UUID, name string) (string, error) {
	if name == "" {
		return "❌ Usage: /cancel <name>", nil
	}
	sub, err := b.svc.FindByName(ctx, userID, name)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Sprintf("📭 No subscription named *%s*", escape(name)), nil
	}
	if err != nil {
		return "", err
	}

	entry, err := b.svc.Cancel(ctx, userID, sub.ID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Sprintf("📭 No subscription named *%s*", escape(name)), nil
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ Cancelled *%s*. You save %s per month.",
		escape(entry.SubscriptionName), entry.MonthlySavings.StringFixed(2)), nil
}

func cycleUnit(c domain.BillingCycle) string {
	if c == domain.Yearly {
		return "yr"
	}
	return "mo"
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}
