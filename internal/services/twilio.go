package services

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/models"
)

// Sender is the outbound side of the messaging transport
type Sender interface {
	SendText(chatID, body string) error
	SendImage(chatID, mediaURL, caption string) error
}

// TwilioService sends WhatsApp messages via the Twilio API
type TwilioService struct {
	client *twilio.RestClient
	from   string // Format: "whatsapp:+14155238886"
}

// NewTwilioService creates a Twilio-backed sender from environment credentials
func NewTwilioService() (*TwilioService, error) {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_WHATSAPP_FROM")

	if accountSid == "" || authToken == "" || from == "" {
		return nil, fmt.Errorf("missing Twilio credentials in environment variables")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	return &TwilioService{
		client: client,
		from:   from,
	}, nil
}

// SendText sends a plain WhatsApp text message
func (t *TwilioService) SendText(chatID, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo(whatsappAddress(chatID))
	params.SetBody(body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("❌ Failed to send WhatsApp message: %v", err)
		return err
	}

	log.Printf("✅ WhatsApp message sent! SID: %s", *resp.Sid)
	return nil
}

// SendImage sends a WhatsApp media message with an optional caption
func (t *TwilioService) SendImage(chatID, mediaURL, caption string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo(whatsappAddress(chatID))
	params.SetMediaUrl([]string{mediaURL})
	if caption != "" {
		params.SetBody(caption)
	}

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("❌ Failed to send WhatsApp media: %v", err)
		return err
	}

	log.Printf("✅ WhatsApp media sent! SID: %s", *resp.Sid)
	return nil
}

func whatsappAddress(chatID string) string {
	if strings.HasPrefix(chatID, "whatsapp:") {
		return chatID
	}
	return "whatsapp:" + models.PhoneFromChatID(chatID)
}
