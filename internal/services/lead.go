package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/models"
	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/storage"
)

const leadSource = "WhatsApp Bot"

var ptBRMonths = []string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// LeadService delivers captured leads to the CRM webhook and archives the
// ones that went through. Callers only ever see a bool; delivery failures
// are absorbed here.
type LeadService struct {
	webhookURL string
	client     *http.Client
	archive    storage.LeadArchive
	location   *time.Location
	now        func() time.Time
}

// NewLeadService creates a lead submitter. An empty webhookURL disables
// submission: Submit returns false without calling anything.
func NewLeadService(webhookURL string, archive storage.LeadArchive) *LeadService {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		loc = time.FixedZone("-03", -3*60*60)
	}

	return &LeadService{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
		archive:    archive,
		location:   loc,
		now:        time.Now,
	}
}

// Submit posts the lead to the CRM webhook. Returns true only on confirmed
// delivery; partial records (missing name or email) are sent as-is.
func (s *LeadService) Submit(data models.LeadData) bool {
	if s.webhookURL == "" {
		return false
	}

	now := s.now().In(s.location)
	record := map[string]string{
		"Nome":          orNotProvided(data.Name),
		"Telefone":      data.Phone,
		"E-mail":        orNotProvided(data.Email),
		"URL da página": leadSource,
		"Data":          formatDatePTBR(now),
		"Horário":       now.Format("15:04"),
		"Status":        "Novo",
	}

	body, err := json.Marshal(record)
	if err != nil {
		log.Printf("[MAKE] Erro ao montar o lead: %v", err)
		return false
	}

	resp, err := s.client.Post(s.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Printf("[MAKE] Erro ao enviar lead para o webhook: %v", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[MAKE] Webhook respondeu %d ao enviar lead", resp.StatusCode)
		return false
	}

	log.Printf("[MAKE] Lead enviado com sucesso! %v", record)
	s.archiveLead(record, now)
	return true
}

// archiveLead keeps a local copy of a delivered lead. Best effort; a failed
// archive never fails the submission that already happened.
func (s *LeadService) archiveLead(record map[string]string, now time.Time) {
	if s.archive == nil {
		return
	}

	err := s.archive.SaveLead(&models.LeadRecord{
		ID:     uuid.NewString(),
		Name:   record["Nome"],
		Phone:  record["Telefone"],
		Email:  record["E-mail"],
		Status: record["Status"],
		Source: leadSource,
	})
	if err != nil {
		log.Printf("[MAKE] Falha ao arquivar lead: %v", err)
	}
}

func orNotProvided(value string) string {
	if value == "" {
		return "Não informado"
	}
	return value
}

// formatDatePTBR renders a date the way the CRM sheet expects it,
// e.g. "2 de setembro de 2026".
func formatDatePTBR(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), ptBRMonths[t.Month()-1], t.Year())
}
