// internal/handler/dashboard.go
package handler

import (
	"net/http"

	"subscription-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc *service.SubscriptionService
}

func NewDashboardHandler(svc *service.SubscriptionService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	dash, err := h.svc.Dashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "Dashboard", userID, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

// Savings returns the full ledger, newest first, with cumulative totals.
func (h *DashboardHandler) Savings(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	report, err := h.svc.Savings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "ListSavings", userID, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
