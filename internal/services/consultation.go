package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"teleconsult-server/internal/llm"
	"teleconsult-server/internal/models"
	"teleconsult-server/internal/store"
)

// IntakeInput is the raw patient-submitted intake form.
type IntakeInput struct {
	TenantID string
	Name     string
	Age      string
	Concern  string
	Language string
	Phone    string
}

// ConsultationService orchestrates intake-to-match: summarize the concern,
// match a doctor within the tenant, and create the session with its
// introductory message.
type ConsultationService struct {
	tenants  *store.TenantStore
	matcher  *MatchingEngine
	sessions *store.SessionStore
	llm      llm.Client
}

// NewConsultationService wires the consultation flow.
func NewConsultationService(tenants *store.TenantStore, matcher *MatchingEngine, sessions *store.SessionStore, client llm.Client) *ConsultationService {
	return &ConsultationService{tenants: tenants, matcher: matcher, sessions: sessions, llm: client}
}

// Start runs the intake flow and returns the created session. It fails with
// store.ErrUnknownTenant for a tenant id that does not resolve and
// ErrNoDoctorAvailable when the tenant has no online doctor; in both cases
// no session is created. Summarization is an enhancement only: any failure
// or empty result falls back to the raw concern text and never blocks
// matching.
func (s *ConsultationService) Start(ctx context.Context, input IntakeInput) (models.ChatSession, error) {
	if !s.tenants.Has(input.TenantID) {
		return models.ChatSession{}, store.ErrUnknownTenant
	}

	// The summarizer call may suspend; no store lock is held across it, so
	// message traffic on other sessions is unaffected.
	concern := s.summarizeConcern(ctx, input.Concern)

	doctor, err := s.matcher.Match(input.TenantID)
	if err != nil {
		return models.ChatSession{}, err
	}

	session := models.ChatSession{
		ID:       uuid.New().String(),
		TenantID: input.TenantID,
		DoctorID: doctor.ID,
		Patient: models.PatientSession{
			ID:       uuid.New().String(),
			Name:     input.Name,
			Age:      input.Age,
			Concern:  concern,
			Language: input.Language,
			Phone:    input.Phone,
		},
		Status: models.SessionActive,
		Messages: []models.Message{
			{
				ID:         uuid.New().String(),
				SenderID:   "system",
				SenderType: models.SenderSystem,
				Content: fmt.Sprintf("Hello %s, I have received your concern about: %q. Connecting you to %s now.",
					input.Name, concern, doctor.Name),
			},
		},
	}
	if err := s.sessions.Create(session); err != nil {
		return models.ChatSession{}, err
	}
	return s.sessions.Get(session.ID)
}

func (s *ConsultationService) summarizeConcern(ctx context.Context, concern string) string {
	if s.llm == nil {
		return concern
	}
	summary, err := s.llm.SummarizeIntake(ctx, concern)
	if err != nil {
		return concern
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return concern
	}
	return summary
}
