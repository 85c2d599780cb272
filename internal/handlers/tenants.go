package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"teleconsult-server/internal/models"
	"teleconsult-server/internal/store"
	"teleconsult-server/internal/utils"
)

// TenantHandler handles tenant directory requests.
type TenantHandler struct {
	Tenants *store.TenantStore
	Doctors *store.DoctorStore
}

// NewTenantHandler creates a new TenantHandler.
func NewTenantHandler(tenants *store.TenantStore, doctors *store.DoctorStore) *TenantHandler {
	return &TenantHandler{Tenants: tenants, Doctors: doctors}
}

// CreateTenantRequest represents the request body for registering a tenant.
type CreateTenantRequest struct {
	ID           string `json:"id"`
	CompanyName  string `json:"companyName" binding:"required"`
	PlanType     string `json:"planType" binding:"required"`
	PrimaryColor string `json:"primaryColor"`
	LogoURL      string `json:"logoUrl"`
	CustomDomain string `json:"customDomain"`
}

// CreateTenant registers a new tenant.
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req CreateTenantRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	plan := models.PlanType(req.PlanType)
	if !plan.Valid() {
		utils.BadRequest(c, "Invalid plan type: "+req.PlanType)
		return
	}

	tenant := models.Tenant{
		ID:           req.ID,
		CompanyName:  req.CompanyName,
		PlanType:     plan,
		PrimaryColor: req.PrimaryColor,
		LogoURL:      req.LogoURL,
		CustomDomain: req.CustomDomain,
	}
	if tenant.ID == "" {
		tenant.ID = uuid.New().String()
	}

	if err := h.Tenants.Add(tenant); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			utils.Conflict(c, "A tenant with this id already exists")
		} else {
			utils.InternalServerError(c, "Failed to register tenant: "+err.Error())
		}
		return
	}

	utils.Created(c, "Tenant registered successfully", tenant)
}

// ListTenants returns all tenants in registration order.
func (h *TenantHandler) ListTenants(c *gin.Context) {
	utils.Success(c, "Tenants fetched successfully", h.Tenants.List())
}

// GetTenant returns a single tenant by id.
func (h *TenantHandler) GetTenant(c *gin.Context) {
	tenant, err := h.Tenants.Get(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Tenant not found")
		return
	}
	utils.Success(c, "Tenant fetched successfully", tenant)
}

// ListTenantDoctors returns the tenant's doctors.
func (h *TenantHandler) ListTenantDoctors(c *gin.Context) {
	tenantID := c.Param("id")
	if !h.Tenants.Has(tenantID) {
		utils.NotFound(c, "Tenant not found")
		return
	}
	utils.Success(c, "Doctors fetched successfully", h.Doctors.ListByTenant(tenantID))
}
