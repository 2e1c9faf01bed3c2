// internal/handler/router.go
package handler

import (
	"net/http"

	"subscription-tracker/internal/auth"
	"subscription-tracker/internal/middleware"
	"subscription-tracker/internal/service"
	"subscription-tracker/internal/storage"

	"github.com/gin-gonic/gin"
)

type Storage interface {
	storage.SettingsStorage
	storage.UserStorage
}

// NewRouter builds the HTTP API. Extra routes (the Telegram webhook) are
// added by the caller.
func NewRouter(store Storage, svc *service.SubscriptionService, tokens *auth.TokenService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := NewAuthHandler(store, tokens)
	subs := NewSubscriptionHandler(svc)
	dash := NewDashboardHandler(svc)
	settings := NewSettingsHandler(store)

	public := router.Group("/api/v1/auth")
	{
		public.POST("/signup", authHandler.Signup)
		public.POST("/login", authHandler.Login)
	}

	authMiddleware := middleware.NewAuthMiddleware(tokens)
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		v1.GET("/subscriptions", subs.List)
		v1.POST("/subscriptions", subs.Create)
		v1.GET("/subscriptions/:id", subs.Get)
		v1.PUT("/subscriptions/:id", subs.Update)
		v1.DELETE("/subscriptions/:id", subs.Cancel)

		v1.GET("/savings", dash.Savings)
		v1.GET("/dashboard", dash.Dashboard)

		v1.GET("/settings", settings.Get)
		v1.PUT("/settings", settings.Put)
	}

	return router
}
