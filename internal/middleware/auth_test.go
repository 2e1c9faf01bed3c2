package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"subscription-tracker/internal/auth"
	"subscription-tracker/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequireAuth(t *testing.T) {
	ts := auth.NewTokenService(config.Config{JWTSecret: "test-secret", JWTExpiresIn: time.Hour})
	userID := uuid.New()
	token, err := ts.GenerateToken(userID, "a@example.com")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	router := gin.New()
	router.GET("/me", NewAuthMiddleware(ts).RequireAuth(), func(c *gin.Context) {
		id, ok := UserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.String())
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"bad token", "Bearer abc.def.ghi", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.wantStatus == http.StatusOK && w.Body.String() != userID.String() {
				t.Errorf("body = %q, want %q", w.Body.String(), userID.String())
			}
		})
	}
}

func TestUserIDMissing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if _, ok := UserID(c); ok {
		t.Fatal("expected no user id on a fresh context")
	}
}
