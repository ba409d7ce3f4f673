package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/models"
	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/services"
)

// WhatsAppHandler receives Twilio webhook calls and feeds them to the bot
type WhatsAppHandler struct {
	bot *services.BotService
}

// NewWhatsAppHandler creates a new WhatsApp webhook handler
func NewWhatsAppHandler(bot *services.BotService) *WhatsAppHandler {
	return &WhatsAppHandler{bot: bot}
}

// TwilioWebhookPayload represents an incoming WhatsApp message from Twilio
type TwilioWebhookPayload struct {
	MessageSid        string `form:"MessageSid"`
	AccountSid        string `form:"AccountSid"`
	From              string `form:"From"` // "whatsapp:+5562999998888"
	To                string `form:"To"`
	Body              string `form:"Body"`
	NumMedia          string `form:"NumMedia"`
	MediaUrl0         string `form:"MediaUrl0"`
	MediaContentType0 string `form:"MediaContentType0"`
}

// HandleWebhook processes incoming WhatsApp messages
func (h *WhatsAppHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload TwilioWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing webhook: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid webhook payload",
		})
	}

	if payload.From == "" {
		// Status callback, not a message
		return c.SendStatus(fiber.StatusOK)
	}

	msg := models.InboundMessage{
		ChatID:   strings.TrimPrefix(payload.From, "whatsapp:"),
		Text:     payload.Body,
		HasMedia: payload.NumMedia != "" && payload.NumMedia != "0",
	}

	if err := h.bot.HandleMessage(msg); err != nil {
		log.Printf("Error processing message from %s: %v", msg.ChatID, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// TestWebhookPayload lets development tooling inject messages without Twilio
type TestWebhookPayload struct {
	From     string `json:"from"`
	Message  string `json:"message"`
	HasMedia bool   `json:"has_media"`
}

// HandleTestWebhook processes test messages (for development)
func (h *WhatsAppHandler) HandleTestWebhook(c *fiber.Ctx) error {
	var payload TestWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid test payload",
		})
	}

	msg := models.InboundMessage{
		ChatID:   payload.From,
		Text:     payload.Message,
		HasMedia: payload.HasMedia,
	}

	if err := h.bot.HandleMessage(msg); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
