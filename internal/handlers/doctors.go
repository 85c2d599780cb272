package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"teleconsult-server/internal/models"
	"teleconsult-server/internal/store"
	"teleconsult-server/internal/utils"
)

// DoctorHandler handles doctor directory requests.
type DoctorHandler struct {
	Doctors  *store.DoctorStore
	Sessions *store.SessionStore
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(doctors *store.DoctorStore, sessions *store.SessionStore) *DoctorHandler {
	return &DoctorHandler{Doctors: doctors, Sessions: sessions}
}

// CreateDoctorRequest represents the request body for registering a doctor.
type CreateDoctorRequest struct {
	ID             string `json:"id"`
	TenantID       string `json:"tenantId" binding:"required"`
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Specialization string `json:"specialization"`
	LicenseNumber  string `json:"licenseNumber"`
	Qualification  string `json:"qualification"`
	Phone          string `json:"phone"`
	IsOnline       bool   `json:"isOnline"`
}

// CreateDoctor registers a new doctor under a tenant.
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	doctor := models.Doctor{
		ID:             req.ID,
		TenantID:       req.TenantID,
		Name:           req.Name,
		Email:          req.Email,
		Specialization: req.Specialization,
		LicenseNumber:  req.LicenseNumber,
		Qualification:  req.Qualification,
		Phone:          req.Phone,
		IsOnline:       req.IsOnline,
	}
	if doctor.ID == "" {
		doctor.ID = uuid.New().String()
	}

	if err := h.Doctors.Add(doctor); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateID):
			utils.Conflict(c, "A doctor with this id already exists")
		case errors.Is(err, store.ErrUnknownTenant):
			utils.BadRequest(c, "Tenant does not exist: "+req.TenantID)
		default:
			utils.InternalServerError(c, "Failed to register doctor: "+err.Error())
		}
		return
	}

	utils.Created(c, "Doctor registered successfully", doctor)
}

// ToggleOnline flips the doctor's availability for matching. Existing
// sessions are unaffected.
func (h *DoctorHandler) ToggleOnline(c *gin.Context) {
	doctor, err := h.Doctors.ToggleOnline(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Doctor not found")
		return
	}
	utils.Success(c, "Doctor availability updated", doctor)
}

// ListActiveConsultations returns the doctor's work queue: active sessions in
// creation order.
func (h *DoctorHandler) ListActiveConsultations(c *gin.Context) {
	doctorID := c.Param("id")
	if _, err := h.Doctors.Get(doctorID); err != nil {
		utils.NotFound(c, "Doctor not found")
		return
	}
	utils.Success(c, "Active consultations fetched successfully", h.Sessions.ListActiveByDoctor(doctorID))
}
