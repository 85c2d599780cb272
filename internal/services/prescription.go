package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"teleconsult-server/internal/llm"
	"teleconsult-server/internal/models"
)

// Collaborator contract violations during prescription drafting. There is no
// safe fallback for a structured medical document, so these are surfaced to
// the caller rather than recovered.
var (
	ErrEmptyResponse     = errors.New("prescription drafter returned an empty response")
	ErrMalformedResponse = errors.New("prescription drafter returned a malformed response")
)

// PrescriptionService delegates structured drafting to the external
// collaborator and validates its output. It never persists the result; the
// caller decides what to do with the returned value.
type PrescriptionService struct {
	llm llm.Client
}

// NewPrescriptionService creates a PrescriptionService over the given client.
func NewPrescriptionService(client llm.Client) *PrescriptionService {
	return &PrescriptionService{llm: client}
}

type prescriptionDraft struct {
	Medicines    []models.Medicine `json:"medicines"`
	Instructions string            `json:"instructions"`
}

// Generate drafts a prescription for the given chat from the patient concern
// and clinician notes. It fails with ErrEmptyResponse when the collaborator
// returns no content and ErrMalformedResponse when the content does not parse
// into the expected medicine-list/instructions shape. Collaborator transport
// errors pass through untouched.
func (s *PrescriptionService) Generate(ctx context.Context, chatID, concern, notes string) (models.Prescription, error) {
	raw, err := s.llm.DraftPrescription(ctx, concern, notes)
	if err != nil {
		return models.Prescription{}, err
	}

	payload := stripCodeFence(strings.TrimSpace(raw))
	if payload == "" {
		return models.Prescription{}, ErrEmptyResponse
	}

	var draft prescriptionDraft
	if err := json.Unmarshal([]byte(payload), &draft); err != nil {
		return models.Prescription{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(draft.Medicines) == 0 || strings.TrimSpace(draft.Instructions) == "" {
		return models.Prescription{}, ErrMalformedResponse
	}
	for _, medicine := range draft.Medicines {
		if strings.TrimSpace(medicine.Name) == "" {
			return models.Prescription{}, ErrMalformedResponse
		}
	}

	return models.Prescription{
		ID:           uuid.New().String(),
		ChatID:       chatID,
		Medicines:    draft.Medicines,
		Instructions: draft.Instructions,
		CreatedAt:    time.Now(),
	}, nil
}

// stripCodeFence removes a surrounding markdown fence, which chat models add
// around JSON even when told not to.
func stripCodeFence(payload string) string {
	if !strings.HasPrefix(payload, "```") {
		return payload
	}
	payload = strings.TrimPrefix(payload, "```json")
	payload = strings.TrimPrefix(payload, "```")
	payload = strings.TrimSuffix(strings.TrimSpace(payload), "```")
	return strings.TrimSpace(payload)
}
