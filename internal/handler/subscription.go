// internal/handler/subscription.go
package handler

import (
	"log/slog"
	"net/http"

	"subscription-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	svc *service.SubscriptionService
}

func NewSubscriptionHandler(svc *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

// List godoc
// @Summary List subscriptions
// @Tags subscriptions
// @Produce json
// @Success 200 {array} domain.Subscription
// @Router /api/v1/subscriptions [get]
func (h *SubscriptionHandler) List(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	subs, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "ListSubscriptions", userID, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

// Get godoc
// @Summary Get one subscription
// @Tags subscriptions
// @Param id path string true "Subscription ID"
// @Success 200 {object} domain.Subscription
// @Failure 404 {object} map[string]string
// @Router /api/v1/subscriptions/{id} [get]
func (h *SubscriptionHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	sub, err := h.svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, "GetSubscription", userID, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Create godoc
// @Summary Add a subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body SubscriptionRequest true "Subscription"
// @Success 201 {object} domain.Subscription
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]any
// @Router /api/v1/subscriptions [post]
func (h *SubscriptionHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req SubscriptionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		slog.Error("Validated subscription did not convert", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	sub, err := h.svc.Create(c.Request.Context(), userID, in)
	if err != nil {
		respondError(c, "CreateSubscription", userID, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

// Update godoc
// @Summary Replace a subscription's fields
// @Tags subscriptions
// @Param id path string true "Subscription ID"
// @Param request body SubscriptionRequest true "Subscription"
// @Success 200 {object} domain.Subscription
// @Router /api/v1/subscriptions/{id} [put]
func (h *SubscriptionHandler) Update(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req SubscriptionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	in, err := req.toInput()
	if err != nil {
		slog.Error("Validated subscription did not convert", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	sub, err := h.svc.Update(c.Request.Context(), userID, id, in)
	if err != nil {
		respondError(c, "UpdateSubscription", userID, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

// Cancel godoc
// @Summary Cancel a subscription and record the savings
// @Tags subscriptions
// @Param id path string true "Subscription ID"
// @Success 200 {object} domain.SavingsEntry
// @Failure 404 {object} map[string]string
// @Router /api/v1/subscriptions/{id} [delete]
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	entry, err := h.svc.Cancel(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, "CancelSubscription", userID, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
