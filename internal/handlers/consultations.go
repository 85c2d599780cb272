package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"teleconsult-server/internal/models"
	"teleconsult-server/internal/services"
	"teleconsult-server/internal/store"
	"teleconsult-server/internal/utils"
)

// ConsultationHandler handles the consultation lifecycle: intake, chat
// messages, completion, cancellation and prescription generation.
type ConsultationHandler struct {
	Consultations *services.ConsultationService
	Prescriptions *services.PrescriptionService
	Sessions      *store.SessionStore
}

// NewConsultationHandler creates a new ConsultationHandler.
func NewConsultationHandler(consultations *services.ConsultationService, prescriptions *services.PrescriptionService, sessions *store.SessionStore) *ConsultationHandler {
	return &ConsultationHandler{Consultations: consultations, Prescriptions: prescriptions, Sessions: sessions}
}

// StartConsultationRequest represents the patient intake form.
type StartConsultationRequest struct {
	TenantID string `json:"tenantId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Age      string `json:"age" binding:"required"`
	Concern  string `json:"concern" binding:"required"`
	Language string `json:"language"`
	Phone    string `json:"phone"`
}

// StartConsultation runs intake: summarize the concern, match a doctor and
// create the session. "No doctor available" is reported as 503 so clients can
// retry later; a bad tenant id is 400 and not retryable as-is.
func (h *ConsultationHandler) StartConsultation(c *gin.Context) {
	var req StartConsultationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}
	if req.Language == "" {
		req.Language = "English"
	}

	session, err := h.Consultations.Start(c.Request.Context(), services.IntakeInput{
		TenantID: req.TenantID,
		Name:     req.Name,
		Age:      req.Age,
		Concern:  req.Concern,
		Language: req.Language,
		Phone:    req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUnknownTenant):
			utils.BadRequest(c, "Tenant does not exist: "+req.TenantID)
		case errors.Is(err, services.ErrNoDoctorAvailable):
			utils.ServiceUnavailable(c, "No doctor is available right now, please try again later")
		case errors.Is(err, store.ErrInvariantViolation):
			utils.UnprocessableEntity(c, "Session tenant does not match doctor tenant")
		default:
			utils.InternalServerError(c, "Failed to start consultation: "+err.Error())
		}
		return
	}

	utils.Created(c, "Consultation started successfully", session)
}

// GetConsultation returns a session by id, including its message log.
func (h *ConsultationHandler) GetConsultation(c *gin.Context) {
	session, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Consultation not found")
		return
	}
	utils.Success(c, "Consultation fetched successfully", session)
}

// SendMessageRequest represents the request body for sending a chat message.
type SendMessageRequest struct {
	SenderID   string `json:"senderId" binding:"required"`
	SenderType string `json:"senderType" binding:"required,oneof=patient doctor"`
	Content    string `json:"content" binding:"required"`
}

// SendMessage appends a message to an active consultation.
func (h *ConsultationHandler) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	message, err := h.Sessions.AppendMessage(c.Param("id"), models.Message{
		SenderID:   req.SenderID,
		SenderType: models.SenderType(req.SenderType),
		Content:    req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.NotFound(c, "Consultation not found")
		case errors.Is(err, store.ErrInvalidState):
			utils.Conflict(c, "Consultation is closed; no further messages can be sent")
		default:
			utils.InternalServerError(c, "Failed to send message: "+err.Error())
		}
		return
	}

	utils.Created(c, "Message sent successfully", message)
}

// ListMessages returns the consultation's messages in append order.
func (h *ConsultationHandler) ListMessages(c *gin.Context) {
	messages, err := h.Sessions.Messages(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Consultation not found")
		return
	}
	utils.Success(c, "Messages fetched successfully", messages)
}

// CompleteConsultationRequest represents the request body for ending a
// consultation.
type CompleteConsultationRequest struct {
	Notes string `json:"notes"`
}

// CompleteConsultation transitions the session to completed. Repeating the
// call succeeds and overwrites the notes, so duplicate end-session signals
// from the doctor console are harmless.
func (h *ConsultationHandler) CompleteConsultation(c *gin.Context) {
	var req CompleteConsultationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	sessionID := c.Param("id")
	if err := h.Sessions.Complete(sessionID, req.Notes); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.NotFound(c, "Consultation not found")
		case errors.Is(err, store.ErrInvalidState):
			utils.Conflict(c, "Consultation was cancelled and cannot be completed")
		default:
			utils.InternalServerError(c, "Failed to complete consultation: "+err.Error())
		}
		return
	}

	session, _ := h.Sessions.Get(sessionID)
	utils.Success(c, "Consultation completed successfully", session)
}

// CancelConsultation transitions the session to cancelled.
func (h *ConsultationHandler) CancelConsultation(c *gin.Context) {
	sessionID := c.Param("id")
	if err := h.Sessions.Cancel(sessionID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.NotFound(c, "Consultation not found")
		case errors.Is(err, store.ErrInvalidState):
			utils.Conflict(c, "Consultation was completed and cannot be cancelled")
		default:
			utils.InternalServerError(c, "Failed to cancel consultation: "+err.Error())
		}
		return
	}

	session, _ := h.Sessions.Get(sessionID)
	utils.Success(c, "Consultation cancelled successfully", session)
}

// GeneratePrescriptionRequest represents the request body for drafting a
// prescription.
type GeneratePrescriptionRequest struct {
	Notes string `json:"notes" binding:"required"`
}

// GeneratePrescription drafts a structured prescription for the consultation
// from the patient concern and the clinician's notes. Collaborator contract
// violations surface as 502; inventing medication data locally is never an
// option.
func (h *ConsultationHandler) GeneratePrescription(c *gin.Context) {
	var req GeneratePrescriptionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	session, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Consultation not found")
		return
	}

	prescription, err := h.Prescriptions.Generate(c.Request.Context(), session.ID, session.Patient.Concern, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyResponse):
			utils.BadGateway(c, "Prescription drafter returned an empty response")
		case errors.Is(err, services.ErrMalformedResponse):
			utils.BadGateway(c, "Prescription drafter returned a malformed response")
		default:
			utils.BadGateway(c, "Prescription drafting failed: "+err.Error())
		}
		return
	}

	utils.Created(c, "Prescription generated successfully", prescription)
}
