package services

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// Notifier is an optional side channel for internal alerts (e.g. a Telegram
// bridge). Wired once at startup; nil means no channel is configured.
type Notifier interface {
	Notify(channel, message string)
}

// WebhookNotifier delivers notifications to a generic webhook bridge
type WebhookNotifier struct {
	url    string
	client *http.Client
}

// NewNotifierFromEnv returns a webhook notifier when NOTIFY_WEBHOOK_URL is
// set, nil otherwise.
func NewNotifierFromEnv() Notifier {
	url := os.Getenv("NOTIFY_WEBHOOK_URL")
	if url == "" {
		return nil
	}
	return &WebhookNotifier{
		url:    url,
		client: http.DefaultClient,
	}
}

// Notify fires the notification and forgets it; failures are only traced
func (n *WebhookNotifier) Notify(channel, message string) {
	payload, err := json.Marshal(map[string]string{
		"channel": channel,
		"message": message,
	})
	if err != nil {
		return
	}

	resp, err := n.client.Post(n.url, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Printf("[NOTIFY] Falha ao enviar notificação: %v", err)
		return
	}
	defer resp.Body.Close()

	log.Printf("[NOTIFY] Notificação enviada para o canal: %s", channel)
}
