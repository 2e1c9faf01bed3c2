package bot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"subscription-tracker/internal/auth"
	"subscription-tracker/internal/config"
	"subscription-tracker/internal/domain"
	"subscription-tracker/internal/service"
	"subscription-tracker/internal/storage"
	"subscription-tracker/internal/storage/mocks"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const tgUser int64 = 4242

type fakeSender struct {
	sent []tgbotapi.MessageConfig
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

type botFixture struct {
	bot     *Bot
	sender  *fakeSender
	links   *mocks.MockTelegramLinkStorage
	subs    *mocks.MockSubscriptionStorage
	savings *mocks.MockSavingsStorage
	tokens  *auth.TokenService
	userID  uuid.UUID
}

func newBotFixture(t *testing.T) *botFixture {
	ctrl := gomock.NewController(t)
	f := &botFixture{
		sender:  &fakeSender{},
		links:   mocks.NewMockTelegramLinkStorage(ctrl),
		subs:    mocks.NewMockSubscriptionStorage(ctrl),
		savings: mocks.NewMockSavingsStorage(ctrl),
		tokens:  auth.NewTokenService(config.Config{JWTSecret: "test-secret", JWTExpiresIn: time.Hour}),
		userID:  uuid.New(),
	}
	svc := service.NewSubscriptionService(f.subs, f.savings, mocks.NewMockSettingsStorage(ctrl), nil)
	f.bot = New(f.sender, f.links, svc, f.tokens)
	return f
}

func (f *botFixture) linked() {
	f.links.EXPECT().UserByTelegram(gomock.Any(), tgUser).Return(f.userID, nil)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in      string
		wantCmd string
		wantArg string
	}{
		{"/help", "/help", ""},
		{"  /cancel   Netflix  ", "/cancel", "Netflix"},
		{"/cancel Apple TV+", "/cancel", "Apple TV+"},
		{"/subs@subtracker_bot", "/subs", ""},
		{"/LINK abc", "/link", "abc"},
		{"hello", "hello", ""},
	}
	for _, tt := range tests {
		cmd, arg := parseCommand(tt.in)
		if cmd != tt.wantCmd || arg != tt.wantArg {
			t.Errorf("parseCommand(%q) = %q, %q; want %q, %q", tt.in, cmd, arg, tt.wantCmd, tt.wantArg)
		}
	}
}

func TestFixEncoding(t *testing.T) {
	if got := fixEncoding("Кино"); got != "Кино" {
		t.Errorf("valid UTF-8 changed: %q", got)
	}
	// "Кино" in windows-1251
	if got := fixEncoding("\xca\xe8\xed\xee"); got != "Кино" {
		t.Errorf("fixEncoding(cp1251) = %q, want Кино", got)
	}
}

func TestReplyHelpAndUnknown(t *testing.T) {
	f := newBotFixture(t)
	if got := f.bot.Reply(context.Background(), tgUser, "/start"); got != helpText {
		t.Errorf("/start reply = %q", got)
	}
	if got := f.bot.Reply(context.Background(), tgUser, "what"); !strings.Contains(got, "/help") {
		t.Errorf("unknown reply = %q", got)
	}
}

func TestReplyRequiresLink(t *testing.T) {
	f := newBotFixture(t)
	f.links.EXPECT().UserByTelegram(gomock.Any(), tgUser).Return(uuid.Nil, storage.ErrNotFound)

	if got := f.bot.Reply(context.Background(), tgUser, "/subs"); got != notLinkedText {
		t.Errorf("reply = %q, want not-linked text", got)
	}
}

func TestLink(t *testing.T) {
	f := newBotFixture(t)
	token, err := f.tokens.GenerateToken(f.userID, "")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	f.links.EXPECT().LinkTelegram(gomock.Any(), tgUser, f.userID).Return(nil)

	if got := f.bot.Reply(context.Background(), tgUser, "/link "+token); !strings.HasPrefix(got, "✅") {
		t.Errorf("reply = %q", got)
	}
	if got := f.bot.Reply(context.Background(), tgUser, "/link nonsense"); !strings.Contains(got, "invalid") {
		t.Errorf("bad token reply = %q", got)
	}
	if got := f.bot.Reply(context.Background(), tgUser, "/link"); !strings.Contains(got, "Usage") {
		t.Errorf("empty token reply = %q", got)
	}
}

func TestSubs(t *testing.T) {
	f := newBotFixture(t)
	f.linked()
	f.subs.EXPECT().ListSubscriptions(gomock.Any(), f.userID).Return([]domain.Subscription{
		{Name: "Cloud_Drive", Cost: decimal.NewFromInt(120), BillingCycle: domain.Yearly, NextRenewalDate: domain.NewDate(2025, time.June, 1)},
	}, nil)

	got := f.bot.Reply(context.Background(), tgUser, "/subs")
	if !strings.Contains(got, `Cloud\_Drive: 120.00/yr, renews 2025-06-01`) {
		t.Errorf("reply = %q", got)
	}
}

func TestCancel(t *testing.T) {
	f := newBotFixture(t)
	f.linked()
	id := uuid.New()
	cloud := domain.Subscription{ID: id, Name: "Cloud", Cost: decimal.NewFromInt(120), BillingCycle: domain.Yearly}

	f.subs.EXPECT().ListSubscriptions(gomock.Any(), f.userID).Return([]domain.Subscription{cloud}, nil)
	f.subs.EXPECT().GetSubscription(gomock.Any(), f.userID, id).Return(&cloud, nil)
	f.subs.EXPECT().CancelSubscription(gomock.Any(), f.userID, id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, entry domain.SavingsEntry) (*domain.SavingsEntry, error) {
			return &entry, nil
		})

	got := f.bot.Reply(context.Background(), tgUser, "/cancel cloud")
	if !strings.Contains(got, "You save 10.00 per month") {
		t.Errorf("reply = %q", got)
	}
}

func TestCancelUnknownName(t *testing.T) {
	f := newBotFixture(t)
	f.linked()
	f.subs.EXPECT().ListSubscriptions(gomock.Any(), f.userID).Return([]domain.Subscription{}, nil)

	if got := f.bot.Reply(context.Background(), tgUser, "/cancel Hulu"); !strings.Contains(got, "No subscription named") {
		t.Errorf("reply = %q", got)
	}
}

func TestSavings(t *testing.T) {
	f := newBotFixture(t)
	f.linked()
	f.savings.EXPECT().ListSavings(gomock.Any(), f.userID).Return([]domain.SavingsEntry{
		{SubscriptionName: "Cloud", MonthlySavings: decimal.NewFromInt(10), SavedAt: time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)},
	}, nil)

	got := f.bot.Reply(context.Background(), tgUser, "/savings")
	if !strings.Contains(got, "Monthly: 10.00") || !strings.Contains(got, "Yearly: 120.00") {
		t.Errorf("reply = %q", got)
	}
}

func TestStorageErrorIsReported(t *testing.T) {
	f := newBotFixture(t)
	f.linked()
	f.subs.EXPECT().ListSubscriptions(gomock.Any(), f.userID).Return(nil, errors.New("db down"))

	if got := f.bot.Reply(context.Background(), tgUser, "/subs"); !strings.HasPrefix(got, "❌") {
		t.Errorf("reply = %q", got)
	}
}

func TestHandleUpdateSends(t *testing.T) {
	f := newBotFixture(t)
	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: "/help",
			Chat: &tgbotapi.Chat{ID: 99},
			From: &tgbotapi.User{ID: tgUser},
		},
	})
	f.bot.HandleUpdate(context.Background(), tgbotapi.Update{})

	if len(f.sender.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(f.sender.sent))
	}
	if f.sender.sent[0].ChatID != 99 || f.sender.sent[0].ParseMode != tgbotapi.ModeMarkdown {
		t.Errorf("unexpected message %+v", f.sender.sent[0])
	}
}
