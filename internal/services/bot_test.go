package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/models"
	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/storage"
)

const testChat = "5562999998888@c.us"

type fakeSender struct {
	texts  []string
	images []string
}

func (f *fakeSender) SendText(chatID, body string) error {
	f.texts = append(f.texts, body)
	return nil
}

func (f *fakeSender) SendImage(chatID, mediaURL, caption string) error {
	f.images = append(f.images, mediaURL)
	return nil
}

type fakeNotifier struct {
	calls []string
}

func (f *fakeNotifier) Notify(channel, message string) {
	f.calls = append(f.calls, channel+": "+message)
}

type botFixture struct {
	bot         *BotService
	sender      *fakeSender
	notifier    *fakeNotifier
	store       *storage.MemoryStore
	submissions *atomic.Int64
	close       func()
}

func newBotFixture(t *testing.T) *botFixture {
	t.Helper()

	submissions := &atomic.Int64{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		submissions.Add(1)
		w.WriteHeader(http.StatusOK)
	}))

	store := storage.NewMemoryStore()
	sender := &fakeSender{}
	notifier := &fakeNotifier{}
	bot := NewBotService(store, storage.NewChatLocks(), sender,
		NewLeadService(server.URL, store), notifier,
		BotConfig{NotifyChannel: "Novos Leads"})

	return &botFixture{
		bot:         bot,
		sender:      sender,
		notifier:    notifier,
		store:       store,
		submissions: submissions,
		close:       server.Close,
	}
}

func (f *botFixture) text(t *testing.T, body string) {
	t.Helper()
	require.NoError(t, f.bot.HandleMessage(models.InboundMessage{ChatID: testChat, Text: body}))
}

func (f *botFixture) state(t *testing.T) models.ConversationState {
	t.Helper()
	sess, ok := f.store.GetSession(testChat)
	require.True(t, ok, "session should exist")
	return sess.State
}

func TestFirstContactRendersMenu(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	f.text(t, "oi")

	require.Len(t, f.sender.texts, 2)
	assert.Contains(t, f.sender.texts[0], "assistente virtual")
	assert.Contains(t, f.sender.texts[1], "1️⃣")
	assert.Equal(t, models.StateAwaitingMenuChoice, f.state(t))
}

func TestGroupStatusAndEchoMessagesAreIgnored(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	for _, msg := range []models.InboundMessage{
		{ChatID: testChat, Text: "oi", IsGroup: true},
		{ChatID: testChat, Text: "oi", IsStatus: true},
		{ChatID: testChat, Text: "oi", FromMe: true},
	} {
		require.NoError(t, f.bot.HandleMessage(msg))
	}

	assert.Empty(t, f.sender.texts)
	_, ok := f.store.GetSession(testChat)
	assert.False(t, ok)
}

func TestMenuOptionOneChainsIntoCapture(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	f.text(t, "oi")
	f.sender.texts = nil
	f.text(t, "1")

	// Confirmation and the name prompt arrive from the same inbound message
	require.Len(t, f.sender.texts, 2)
	assert.Contains(t, f.sender.texts[0], "Excelente escolha")
	assert.Contains(t, f.sender.texts[1], "nome completo")
	assert.Equal(t, models.StateAwaitingName, f.state(t))
}

func TestCaptureKeywordFastPathSkipsMenu(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	f.text(t, "Quero saber do lançamento em Firminópolis")

	require.Len(t, f.sender.texts, 1)
	assert.Contains(t, f.sender.texts[0], "nome completo")
	assert.Equal(t, models.StateAwaitingName, f.state(t))
}

func TestNameCaptureUsesFirstToken(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	f.text(t, "oi")
	f.text(t, "1")
	f.sender.texts = nil
	f.text(t, "Maria Silva")

	sess, _ := f.store.GetSession(testChat)
	assert.Equal(t, "Maria Silva", sess.Data.Name)
	assert.Equal(t, models.StateAwaitingEmail, sess.State)
	require.Len(t, f.sender.texts, 1)
	assert.Contains(t, f.sender.texts[0], "*Maria*")
}

func TestValidEmailCompletesCapture(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	f.text(t, "oi")
	f.text(t, "1")
	f.text(t, "Maria Silva")
	f.sender.texts = nil
	f.text(t, "maria@gmail.com")

	assert.Equal(t, models.StateLeadCaptured, f.state(t))
	assert.Equal(t, int64(1), f.submissions.Load())

	sess, _ := f.store.GetSession(testChat)
	assert.Equal(t, "5562999998888", sess.Data.Phone, "phone derives from the chat id")

	require.Len(t, f.sender.texts, 2)
	assert.Contains(t, f.sender.texts[0], "Cadastro concluído")

	// Side channel fires once on confirmed delivery
	require.Len(t, f.notifier.calls, 1)
	assert.Contains(t, f.notifier.calls[0], "Novos Leads")
	assert.Contains(t, f.notifier.calls[0], "maria@gmail.com")
}

func TestInvalidEmailReprompts(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	f.text(t, "oi")
	f.text(t, "1")
	f.text(t, "Maria Silva")
	f.sender.texts = nil
	f.text(t, "maria@empresa.com.br")

	assert.Equal(t, models.StateAwaitingEmail, f.state(t))
	assert.Equal(t, int64(0), f.submissions.Load())
	require.Len(t, f.sender.texts, 1)
	assert.Contains(t, f.sender.texts[0], "não parece válido")
}

func TestRestartKeywordForcesMenuFromAnyState(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	f.text(t, "oi")
	f.text(t, "1")
	f.text(t, "Maria Silva")
	require.Equal(t, models.StateAwaitingEmail, f.state(t))

	f.sender.texts = nil
	f.text(t, "Menu")

	// The restart falls through to a fresh menu render
	require.Len(t, f.sender.texts, 2)
	assert.Contains(t, f.sender.texts[1], "1️⃣")
	assert.Equal(t, models.StateAwaitingMenuChoice, f.state(t))
}

func TestCloseDuringCaptureSubmitsOnceAndDeletes(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	f.text(t, "oi")
	f.text(t, "1")
	f.text(t, "Maria Silva")
	f.sender.texts = nil
	f.text(t, "encerrar")

	assert.Equal(t, int64(1), f.submissions.Load())
	_, ok := f.store.GetSession(testChat)
	assert.False(t, ok, "session must be removed")
	require.Len(t, f.sender.texts, 1)
	assert.Contains(t, f.sender.texts[0], "informações foram salvas")
}

func TestCloseOutsideCaptureJustSaysGoodbye(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	f.text(t, "oi")
	f.sender.texts = nil
	f.text(t, "sair")

	assert.Equal(t, int64(0), f.submissions.Load())
	_, ok := f.store.GetSession(testChat)
	assert.False(t, ok)
	require.Len(t, f.sender.texts, 1)
	assert.Contains(t, f.sender.texts[0], "basta nos chamar")
}

func TestMenuOptionFiveEndsConversation(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	f.text(t, "oi")
	f.sender.texts = nil
	f.text(t, "5")

	_, ok := f.store.GetSession(testChat)
	assert.False(t, ok)
	require.Len(t, f.sender.texts, 1)
	assert.Contains(t, f.sender.texts[0], "Obrigado pelo seu contato")
}

func TestUnrecognizedMenuOptionReprompts(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	f.text(t, "oi")
	f.sender.texts = nil
	f.text(t, "banana")

	assert.Equal(t, models.StateAwaitingMenuChoice, f.state(t))
	require.Len(t, f.sender.texts, 1)
	assert.Contains(t, f.sender.texts[0], "Opção não reconhecida")
}

func TestConsultantTopicRouting(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	f.text(t, "oi")
	f.text(t, "2")
	assert.Equal(t, models.StateAwaitingConsultantTopic, f.state(t))

	f.sender.texts = nil
	f.text(t, "2")
	assert.Equal(t, models.StateHumanHandoff, f.state(t))
	require.Len(t, f.sender.texts, 1)
	assert.Contains(t, f.sender.texts[0], "transferindo")
}

func TestConsultantTopicOneChainsIntoCapture(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	f.text(t, "oi")
	f.text(t, "2")
	f.sender.texts = nil
	f.text(t, "1")

	require.Len(t, f.sender.texts, 2)
	assert.Contains(t, f.sender.texts[1], "nome completo")
	assert.Equal(t, models.StateAwaitingName, f.state(t))
}

func TestHumanHandoffSilencesBot(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	f.text(t, "oi")
	f.text(t, "4")
	require.Equal(t, models.StateHumanHandoff, f.state(t))

	f.sender.texts = nil
	f.text(t, "alguém aí?")

	assert.Empty(t, f.sender.texts)
	assert.Equal(t, models.StateHumanHandoff, f.state(t))
}

func TestCapturedLeadGetsStaticReply(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	f.text(t, "oi")
	f.text(t, "1")
	f.text(t, "Maria Silva")
	f.text(t, "maria@gmail.com")
	f.sender.texts = nil
	f.text(t, "e agora?")

	assert.Equal(t, models.StateLeadCaptured, f.state(t))
	require.Len(t, f.sender.texts, 1)
	assert.Contains(t, f.sender.texts[0], "já foi registrada")
	assert.Equal(t, int64(1), f.submissions.Load(), "no duplicate submission")
}

func TestMediaInMenuContextIsRejected(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	f.text(t, "oi")
	f.sender.texts = nil
	require.NoError(t, f.bot.HandleMessage(models.InboundMessage{ChatID: testChat, HasMedia: true}))

	assert.Equal(t, models.StateAwaitingMenuChoice, f.state(t))
	require.Len(t, f.sender.texts, 1)
	assert.Contains(t, f.sender.texts[0], "não consigo processar")
}

func TestMediaOnFirstContactIsAcknowledged(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	require.NoError(t, f.bot.HandleMessage(models.InboundMessage{ChatID: testChat, HasMedia: true}))

	require.Len(t, f.sender.texts, 2)
	assert.Contains(t, f.sender.texts[0], "Recebi o seu ficheiro")
	assert.Equal(t, models.StateAwaitingMenuChoice, f.state(t))
}

func TestInboundMessageClearsReminderFlag(t *testing.T) {
	f := newBotFixture(t)
	defer f.close()

	f.text(t, "oi")
	sess, _ := f.store.GetSession(testChat)
	sess.ReminderSent = true
	f.store.SetSession(testChat, sess)

	f.text(t, "3")

	sess, _ = f.store.GetSession(testChat)
	assert.False(t, sess.ReminderSent)
}

func TestFirstNameOfSingleToken(t *testing.T) {
	assert.Equal(t, "Maria", firstName("Maria"))
	assert.Equal(t, "João", firstName(strings.TrimSpace(" João Pedro ")))
}
