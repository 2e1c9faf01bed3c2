// internal/handler/handler.go
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"subscription-tracker/internal/middleware"
	"subscription-tracker/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "user_id missing"})
		return uuid.Nil, false
	}
	return userID, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps storage errors to status codes and logs the rest.
func respondError(c *gin.Context, op string, userID uuid.UUID, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	slog.Error(op+" failed", "error", err, "user_id", userID)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
}
