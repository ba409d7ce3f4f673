package routes

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/handlers"
	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/middleware"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, whatsapp *handlers.WhatsAppHandler, health *handlers.HealthHandler) {
	app.Get("/", health.HandleStatus)
	app.Get("/health", health.HandleHealth)

	webhooks := app.Group("/webhook")
	if os.Getenv("ENVIRONMENT") == "development" || os.Getenv("DISABLE_WEBHOOK_VALIDATION") == "true" {
		// Development: skip validation for ngrok
		webhooks.Post("/whatsapp", whatsapp.HandleWebhook)
	} else {
		webhooks.Post("/whatsapp", middleware.ValidateTwilioSignature(), whatsapp.HandleWebhook)
	}

	// Test endpoint (development only)
	app.Post("/test/whatsapp", whatsapp.HandleTestWebhook)
}
