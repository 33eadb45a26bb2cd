package handlers

import (
	"imagetags/internal/app"
	"imagetags/internal/http/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// SetupRoutes sets up all API routes
func SetupRoutes(api *echo.Group, services *app.Services) {
	// Auth routes (no authentication required)
	authHandler := NewAuthHandler(services.AuthService)
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	// WebSocket endpoint (handles authentication manually via query parameter)
	wsHandler := NewWebSocketHandler(services.AuthService, services.ProgressHub)
	api.GET("/ws", wsHandler.HandleProgress)

	// Protected routes (require an authenticated admin)
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(services.AuthService))
	protected.Use(middleware.AdminOnly())
	protected.Use(echomw.CSRFWithConfig(echomw.CSRFConfig{
		TokenLookup: "header:X-CSRF-Token",
	}))

	// Image metadata generation
	imagesHandler := NewImagesHandler(services.BatchService, services.PreviewService)
	images := protected.Group("/images")
	images.GET("/count", imagesHandler.GetCount)
	images.GET("/preview", imagesHandler.Preview)
	images.GET("/filter-options", imagesHandler.FilterOptions)
	images.POST("/process", imagesHandler.Process)
	images.GET("/remove/stats", imagesHandler.RemoveStats)
	images.POST("/remove", imagesHandler.Remove)

	// Metadata translation
	translationHandler := NewTranslationHandler(services.BatchService, services.PreviewService)
	translation := protected.Group("/translation")
	translation.GET("/stats", translationHandler.Stats)
	translation.POST("/process", translationHandler.Process)
	translation.POST("/test", translationHandler.Test)

	// Settings
	settingsHandler := NewSettingsHandler(services.SettingsService)
	settings := protected.Group("/settings")
	settings.GET("", settingsHandler.Get)
	settings.PUT("", settingsHandler.Update)
	settings.GET("/export", settingsHandler.Export)
	settings.POST("/import", settingsHandler.Import)

	// Processing history
	statsHandler := NewStatsHandler(services.PreviewService)
	protected.GET("/stats/logs", statsHandler.Logs)

	// Media upload with the on-upload tagging hook
	attachmentsHandler := NewAttachmentsHandler(services.AttachmentRepo, services.StorageService, services.BatchService)
	protected.POST("/attachments", attachmentsHandler.Upload)
}
