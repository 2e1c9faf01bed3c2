// internal/handler/auth.go
package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"subscription-tracker/internal/auth"
	"subscription-tracker/internal/domain"
	"subscription-tracker/internal/storage"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users  storage.UserStorage
	tokens *auth.TokenService
}

func NewAuthHandler(users storage.UserStorage, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req CredentialsRequest
	if !bindAndValidate(c, &req) {
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("Signup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), req.Email, hash)
	if err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		slog.Error("Signup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	h.respondWithToken(c, http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	req.normalize()

	user, err := h.users.FindUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidCredentials.Error()})
			return
		}
		slog.Error("Login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": auth.ErrInvalidCredentials.Error()})
			return
		}
		slog.Error("Login failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *domain.User) {
	token, err := h.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		slog.Error("Token generation failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}
	c.JSON(status, AuthResponse{Token: token, User: user})
}
