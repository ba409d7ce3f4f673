package models

import (
	"strings"
	"time"
)

// ConversationState identifies the current phase of a WhatsApp conversation
type ConversationState string

const (
	StateInitialMenu             ConversationState = "inicio_menu"
	StateAwaitingMenuChoice      ConversationState = "aguardando_opcao_menu"
	StateAwaitingConsultantTopic ConversationState = "aguardando_opcao_consultor"
	StateStartCapture            ConversationState = "iniciando_captura"
	StateAwaitingName            ConversationState = "aguardando_nome"
	StateAwaitingEmail           ConversationState = "aguardando_email"
	StateLeadCaptured            ConversationState = "lead_capturado"
	StateLeadPartiallyCaptured   ConversationState = "lead_parcial_capturado"
	StateHumanHandoff            ConversationState = "atendimento_humano"
)

// LeadData holds the fields accumulated during capture. Phone is always
// derived from the chat id at submission time, never typed by the user.
type LeadData struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Session represents the conversation state for a single chat
type Session struct {
	State           ConversationState `json:"state"`
	Data            LeadData          `json:"data"`
	LastInteraction time.Time         `json:"last_interaction"`
	ReminderSent    bool              `json:"reminder_sent"`
}

// NewSession creates a fresh session at the initial menu
func NewSession() *Session {
	return &Session{
		State:           StateInitialMenu,
		LastInteraction: time.Now(),
	}
}

// InCapture reports whether the session is mid lead capture. Close keywords
// received in these states submit whatever data was collected so far.
func (s *Session) InCapture() bool {
	switch s.State {
	case StateStartCapture, StateAwaitingName, StateAwaitingEmail:
		return true
	}
	return false
}

// Stalled reports whether the session is in a state the recapture sweep
// is allowed to reclaim.
func (s *Session) Stalled() bool {
	switch s.State {
	case StateAwaitingName, StateAwaitingEmail, StateAwaitingConsultantTopic:
		return true
	}
	return false
}

// InboundMessage is the transport-agnostic shape of a received message
type InboundMessage struct {
	ChatID   string `json:"chat_id"`
	Text     string `json:"text"`
	IsGroup  bool   `json:"is_group"`
	IsStatus bool   `json:"is_status"`
	FromMe   bool   `json:"from_me"`
	HasMedia bool   `json:"has_media"`
}

// PhoneFromChatID strips messaging-channel decoration from a chat id,
// leaving the bare phone number ("whatsapp:+55629..." or "55629...@c.us").
func PhoneFromChatID(chatID string) string {
	phone := strings.TrimPrefix(chatID, "whatsapp:")
	if i := strings.IndexByte(phone, '@'); i >= 0 {
		phone = phone[:i]
	}
	return phone
}
