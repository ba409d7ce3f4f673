package jobs

import (
	"log"
	"time"

	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/models"
	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/services"
	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/storage"
)

const (
	sweepInterval    = 60 * time.Second
	reminderAfter    = 10 * time.Minute
	partialSendAfter = 20 * time.Minute
)

const (
	recaptureReminder = "👋 Olá! Notei que a nossa conversa ficou parada.\n\nPodemos continuar com o seu cadastro? Basta responder à minha última pergunta. Se mudou de ideias, não há problema, basta digitar *encerrar*."

	recaptureApology = "Olá! Notei que não conseguimos concluir seu cadastro, mas não se preocupe! Um de nossos consultores recebeu seus dados e entrará em contato para te ajudar. 😊"
)

// RecaptureJob reclaims stalled conversations: after ten minutes of
// silence it nudges the user once; after twenty it submits whatever data
// was collected and hands the conversation to a consultant.
type RecaptureJob struct {
	sessions storage.SessionStore
	locks    *storage.ChatLocks
	sender   services.Sender
	leads    *services.LeadService

	interval      time.Duration
	reminderAfter time.Duration
	partialAfter  time.Duration

	stop chan struct{}
}

// NewRecaptureJob creates the sweeper with the standard thresholds
func NewRecaptureJob(sessions storage.SessionStore, locks *storage.ChatLocks, sender services.Sender, leads *services.LeadService) *RecaptureJob {
	return &RecaptureJob{
		sessions:      sessions,
		locks:         locks,
		sender:        sender,
		leads:         leads,
		interval:      sweepInterval,
		reminderAfter: reminderAfter,
		partialAfter:  partialSendAfter,
		stop:          make(chan struct{}),
	}
}

// Start launches the sweep loop in the background
func (j *RecaptureJob) Start() {
	log.Println("Starting recapture sweep...")
	go j.run()
}

// Stop halts the sweep loop; an in-flight cycle finishes first
func (j *RecaptureJob) Stop() {
	close(j.stop)
}

func (j *RecaptureJob) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.Sweep(time.Now())
		case <-j.stop:
			log.Println("Recapture sweep stopped")
			return
		}
	}
}

// Sweep runs one pass over all sessions. Only sessions stalled mid-flow
// are touched; handed-off and captured conversations are left alone.
func (j *RecaptureJob) Sweep(now time.Time) {
	for _, chatID := range j.sessions.SessionIDs() {
		j.sweepChat(chatID, now)
	}
}

func (j *RecaptureJob) sweepChat(chatID string, now time.Time) {
	j.locks.Lock(chatID)
	defer j.locks.Unlock(chatID)

	sess, ok := j.sessions.GetSession(chatID)
	if !ok || !sess.Stalled() {
		return
	}

	inactive := now.Sub(sess.LastInteraction)

	if inactive > j.partialAfter {
		sess.Data.Phone = models.PhoneFromChatID(chatID)
		j.leads.Submit(sess.Data)
		sess.State = models.StateLeadPartiallyCaptured
		j.sessions.SetSession(chatID, sess)

		if err := j.sender.SendText(chatID, recaptureApology); err != nil {
			log.Printf("[RECAPTURA] Falha ao avisar %s: %v", chatID, err)
		}
		log.Printf("[RECAPTURA] Lead parcial enviado para %s", chatID)
		return
	}

	if inactive > j.reminderAfter && !sess.ReminderSent {
		if err := j.sender.SendText(chatID, recaptureReminder); err != nil {
			log.Printf("[RECAPTURA] Falha ao lembrar %s: %v", chatID, err)
			return
		}
		sess.ReminderSent = true
		j.sessions.SetSession(chatID, sess)
	}
}
