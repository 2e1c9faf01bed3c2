package bot

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

const webhookSecret = "hook_secret-42"

func updateBody(text string) string {
	return `{"update_id":1,"message":{"message_id":1,"date":0,` +
		`"from":{"id":4242,"is_bot":false,"first_name":"A"},` +
		`"chat":{"id":777,"type":"private"},"text":"` + text + `"}}`
}

func TestWebhookHandlerSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		secret     string
		header     string
		wantStatus int
		wantSent   int
	}{
		{"missing header", webhookSecret, "", http.StatusUnauthorized, 0},
		{"wrong header", webhookSecret, "guess", http.StatusUnauthorized, 0},
		{"prefix of secret", webhookSecret, "hook_secret", http.StatusUnauthorized, 0},
		{"no secret configured", "", "", http.StatusUnauthorized, 0},
		{"matching header", webhookSecret, webhookSecret, http.StatusOK, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no storage expectations: any lookup fails the mock controller
			f := newBotFixture(t)
			router := gin.New()
			router.POST("/telegram", f.bot.WebhookHandler(tt.secret))

			text := "/cancel Cloud"
			if tt.wantStatus == http.StatusOK {
				text = "/help"
			}
			req := httptest.NewRequest(http.MethodPost, "/telegram", strings.NewReader(updateBody(text)))
			req.Header.Set("Content-Type", "application/json")
			if tt.header != "" {
				req.Header.Set(SecretTokenHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if len(f.sender.sent) != tt.wantSent {
				t.Fatalf("sent %d messages, want %d", len(f.sender.sent), tt.wantSent)
			}
		})
	}
}

func TestWebhookHandlerBadBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	f := newBotFixture(t)
	router := gin.New()
	router.POST("/telegram", f.bot.WebhookHandler(webhookSecret))

	req := httptest.NewRequest(http.MethodPost, "/telegram", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SecretTokenHeader, webhookSecret)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
