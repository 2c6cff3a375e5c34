package app

import (
	"context"

	"sessions-service/internal/auth"
	"sessions-service/internal/auth/handler"
	"sessions-service/internal/config"
	"sessions-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	sessionStore, cleanup, err := setupStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	controller := auth.NewController(sessionStore)
	authHandler := handler.NewHandler(controller)
	authMiddleware := middleware.NewAuthMiddleware(controller)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.HandleMethodNotAllowed = true

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	api.GET("/me", authHandler.Me)

	return router, cleanup, nil
}
