// internal/bot/webhook.go
package bot

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SecretTokenHeader carries the secret_token registered with setWebhook.
const SecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// WebhookHandler serves Telegram webhook callbacks. Requests without the
// registered secret are rejected before the update is decoded.
func (b *Bot) WebhookHandler(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(SecretTokenHeader)
		if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			slog.Warn("Rejected webhook call", "component", "bot", "remote_addr", c.ClientIP())
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		var update tgbotapi.Update
		if err := c.ShouldBindJSON(&update); err != nil {
			slog.Error("Failed to parse update", "component", "bot", "error", err)
			c.Status(http.StatusBadRequest)
			return
		}
		b.HandleUpdate(c.Request.Context(), update)
		c.Status(http.StatusOK)
	}
}

// SetWebhook points Telegram at publicURL + "/telegram" with secret as the
// secret_token echoed back on every call.
func SetWebhook(api *tgbotapi.BotAPI, publicURL, secret string) error {
	webhookURL := publicURL + "/telegram"
	resp, err := api.MakeRequest("setWebhook", tgbotapi.Params{
		"url":          webhookURL,
		"secret_token": secret,
	})
	if err != nil {
		return err
	}
	if !resp.Ok {
		return fmt.Errorf("setWebhook: %s", resp.Description)
	}
	slog.Info("Telegram webhook set", "url", webhookURL)
	return nil
}
