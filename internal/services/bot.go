package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/models"
	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/storage"
)

// BotConfig holds the tunables of the conversation flow
type BotConfig struct {
	// LogoPath is checked on disk before each fresh menu render; when the
	// file is missing the logo is skipped silently.
	LogoPath string
	// LogoURL is the public address Twilio fetches the logo from.
	LogoURL string
	// NotifyChannel names the side channel that receives new-lead alerts.
	NotifyChannel string
}

// BotService runs the per-conversation state machine. Processing is
// serialized per chat id, so the recapture sweep and live messages never
// race within one conversation.
type BotService struct {
	sessions storage.SessionStore
	locks    *storage.ChatLocks
	sender   Sender
	leads    *LeadService
	notifier Notifier
	cfg      BotConfig
}

// NewBotService wires the state machine to its collaborators. notifier may
// be nil when no side channel is configured.
func NewBotService(sessions storage.SessionStore, locks *storage.ChatLocks, sender Sender, leads *LeadService, notifier Notifier, cfg BotConfig) *BotService {
	return &BotService{
		sessions: sessions,
		locks:    locks,
		sender:   sender,
		leads:    leads,
		notifier: notifier,
		cfg:      cfg,
	}
}

// HandleMessage processes one inbound message through the state machine.
// A single message may advance through several states (menu choice straight
// into capture) before the bot needs more input.
func (b *BotService) HandleMessage(msg models.InboundMessage) error {
	if msg.IsGroup || msg.IsStatus || msg.FromMe {
		return nil
	}

	b.locks.Lock(msg.ChatID)
	defer b.locks.Unlock(msg.ChatID)

	text := strings.TrimSpace(msg.Text)
	normalized := Normalize(text)

	sess, ok := b.sessions.GetSession(msg.ChatID)
	if !ok {
		sess = models.NewSession()
	}
	sess.LastInteraction = time.Now()
	sess.ReminderSent = false

	log.Printf("[MENSAGEM] Recebida de %s. Estado: %s. Msg: %q", msg.ChatID, sess.State, text)

	if IsRestartKeyword(normalized) {
		sess.State = models.StateInitialMenu
		log.Printf("[ESTADO] Conversa com %s reiniciada pelo usuário.", msg.ChatID)
	}

	if IsCloseKeyword(normalized) {
		return b.closeConversation(msg.ChatID, sess)
	}

	// Fast path: buying-interest keywords skip the menu entirely.
	if sess.State == models.StateInitialMenu && ContainsCaptureKeyword(normalized) && !msg.HasMedia {
		sess.State = models.StateStartCapture
	}

	if msg.HasMedia && (sess.State == models.StateAwaitingMenuChoice || sess.State == models.StateAwaitingConsultantTopic) {
		return b.sender.SendText(msg.ChatID, msgMediaInMenu)
	}

	for {
		rerun, removed, err := b.dispatch(msg.ChatID, sess, msg, text)
		if err != nil {
			return err
		}
		if removed {
			return nil
		}
		if !rerun {
			break
		}
	}

	b.sessions.SetSession(msg.ChatID, sess)
	log.Printf("[ESTADO] Estado de %s atualizado para: %s", msg.ChatID, sess.State)
	return nil
}

// closeConversation handles an explicit close keyword. Mid-capture, the
// data collected so far is submitted before the session is discarded.
func (b *BotService) closeConversation(chatID string, sess *models.Session) error {
	var err error
	if sess.InCapture() {
		sess.Data.Phone = models.PhoneFromChatID(chatID)
		b.leads.Submit(sess.Data)
		err = b.sender.SendText(chatID, msgCloseDuringCapture)
	} else {
		err = b.sender.SendText(chatID, msgClosePlain)
	}

	b.sessions.DeleteSession(chatID)
	return err
}

// dispatch runs the handler for the current state. rerun asks the caller to
// dispatch again on the new state with the same message; removed means the
// session was deleted and processing must stop.
func (b *BotService) dispatch(chatID string, sess *models.Session, msg models.InboundMessage, text string) (rerun bool, removed bool, err error) {
	switch sess.State {
	case models.StateInitialMenu:
		if msg.HasMedia {
			if err := b.sender.SendText(chatID, msgMediaWelcome); err != nil {
				return false, false, err
			}
		} else {
			if err := b.sendLogo(chatID); err != nil {
				return false, false, err
			}
			if err := b.sender.SendText(chatID, msgWelcome); err != nil {
				return false, false, err
			}
		}
		if err := b.sender.SendText(chatID, msgMainMenu); err != nil {
			return false, false, err
		}
		sess.State = models.StateAwaitingMenuChoice
		return false, false, nil

	case models.StateAwaitingMenuChoice:
		return b.handleMenuChoice(chatID, sess, text)

	case models.StateAwaitingConsultantTopic:
		return b.handleConsultantTopic(chatID, sess, text)

	case models.StateStartCapture:
		if err := b.sender.SendText(chatID, msgAskName); err != nil {
			return false, false, err
		}
		sess.State = models.StateAwaitingName
		return false, false, nil

	case models.StateAwaitingName:
		sess.Data.Name = text
		if err := b.sender.SendText(chatID, fmt.Sprintf(msgAskEmailFmt, firstName(text))); err != nil {
			return false, false, err
		}
		sess.State = models.StateAwaitingEmail
		return false, false, nil

	case models.StateAwaitingEmail:
		return false, false, b.handleEmail(chatID, sess, text)

	case models.StateLeadCaptured, models.StateLeadPartiallyCaptured:
		return false, false, b.sender.SendText(chatID, msgAlreadyRegistered)

	case models.StateHumanHandoff:
		log.Printf("[ATENDIMENTO HUMANO] Mensagem de %s ignorada pelo bot.", chatID)
		return false, false, nil
	}

	return false, false, nil
}

func (b *BotService) handleMenuChoice(chatID string, sess *models.Session, text string) (bool, bool, error) {
	switch text {
	case "1":
		if err := b.sender.SendText(chatID, msgStartCaptureFromMenu); err != nil {
			return false, false, err
		}
		sess.State = models.StateStartCapture
		return true, false, nil
	case "2":
		if err := b.sender.SendText(chatID, msgConsultantMenu); err != nil {
			return false, false, err
		}
		sess.State = models.StateAwaitingConsultantTopic
	case "3":
		if err := b.sender.SendText(chatID, msgAbout); err != nil {
			return false, false, err
		}
		return false, false, b.sender.SendText(chatID, msgBackToMenuHint)
	case "4":
		if err := b.sender.SendText(chatID, msgExistingCustomer); err != nil {
			return false, false, err
		}
		sess.State = models.StateHumanHandoff
	case "5":
		if err := b.sender.SendText(chatID, msgGoodbye); err != nil {
			return false, false, err
		}
		b.sessions.DeleteSession(chatID)
		return false, true, nil
	default:
		return false, false, b.sender.SendText(chatID, msgOptionNotRecognized)
	}
	return false, false, nil
}

func (b *BotService) handleConsultantTopic(chatID string, sess *models.Session, text string) (bool, bool, error) {
	switch text {
	case "1":
		if err := b.sender.SendText(chatID, msgStartCaptureFromConsultant); err != nil {
			return false, false, err
		}
		sess.State = models.StateStartCapture
		return true, false, nil
	case "2":
		if err := b.sender.SendText(chatID, msgConsultantHandoff); err != nil {
			return false, false, err
		}
		sess.State = models.StateHumanHandoff
	default:
		return false, false, b.sender.SendText(chatID, msgOptionNotRecognized)
	}
	return false, false, nil
}

func (b *BotService) handleEmail(chatID string, sess *models.Session, text string) error {
	if !ValidateEmail(text) {
		return b.sender.SendText(chatID, msgInvalidEmail)
	}

	sess.Data.Email = text
	sess.Data.Phone = models.PhoneFromChatID(chatID)

	if b.leads.Submit(sess.Data) && b.notifier != nil {
		b.notifier.Notify(b.cfg.NotifyChannel, fmt.Sprintf(
			"🎉 Novo lead capturado (Habiticon)!\n\nNome: %s\nTelefone: %s\nE-mail: %s",
			sess.Data.Name, sess.Data.Phone, sess.Data.Email))
	}

	if err := b.sender.SendText(chatID, msgCaptureDone); err != nil {
		return err
	}
	if err := b.sender.SendText(chatID, msgCaptureDoneFollowup); err != nil {
		return err
	}
	sess.State = models.StateLeadCaptured
	return nil
}

// sendLogo sends the logo image before a fresh menu when the asset exists
// on disk and a public URL for it is configured.
func (b *BotService) sendLogo(chatID string) error {
	if b.cfg.LogoPath == "" || b.cfg.LogoURL == "" {
		return nil
	}
	if _, err := os.Stat(b.cfg.LogoPath); err != nil {
		return nil
	}
	return b.sender.SendImage(chatID, b.cfg.LogoURL, " ")
}

func firstName(fullName string) string {
	if fields := strings.Fields(fullName); len(fields) > 0 {
		return fields[0]
	}
	return fullName
}
