package handlers

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/storage"
)

// HealthHandler reports service status for monitoring
type HealthHandler struct {
	sessions storage.SessionStore
	archive  storage.LeadArchive
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(sessions storage.SessionStore, archive storage.LeadArchive) *HealthHandler {
	return &HealthHandler{sessions: sessions, archive: archive}
}

// HandleStatus serves the root status page
func (h *HealthHandler) HandleStatus(c *fiber.Ctx) error {
	leadCount, err := h.archive.CountLeads()
	archiveStatus := "ok"
	if err != nil {
		archiveStatus = "error: " + err.Error()
	}

	return c.JSON(fiber.Map{
		"service": "Habiticon GYN Bot",
		"version": "1.0.0",
		"status":  "healthy",
		"webhook": fiber.Map{
			"crm_configured": os.Getenv("MAKE_WEBHOOK_URL") != "",
		},
		"sessions": fiber.Map{
			"active": h.sessions.SessionCount(),
		},
		"leads": fiber.Map{
			"archived": leadCount,
			"archive":  archiveStatus,
		},
	})
}

// HandleHealth serves the liveness probe
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"version": "1.0.0",
	})
}
