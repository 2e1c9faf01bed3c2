// internal/handler/settings.go
package handler

import (
	"log/slog"
	"net/http"

	"subscription-tracker/internal/domain"
	"subscription-tracker/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SettingsHandler struct {
	store storage.SettingsStorage
}

func NewSettingsHandler(store storage.SettingsStorage) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// Get responds with null when no budget has been set yet.
func (h *SettingsHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	settings, err := h.store.GetSettings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "GetSettings", userID, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Put(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req SettingsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	budget, err := decimal.NewFromString(string(req.MonthlyBudget))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": gin.H{"monthly_budget": "monthly_budget is invalid"}})
		return
	}

	saved, err := h.store.UpsertSettings(c.Request.Context(), domain.UserSettings{
		UserID:        userID,
		MonthlyBudget: budget.Round(2),
	})
	if err != nil {
		respondError(c, "UpsertSettings", userID, err)
		return
	}
	slog.Info("Budget updated", "user_id", userID, "monthly_budget", saved.MonthlyBudget.StringFixed(2))
	c.JSON(http.StatusOK, saved)
}
