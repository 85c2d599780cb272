package models

// PlanType enum
type PlanType string

const (
	PlanStarter      PlanType = "Starter"
	PlanProfessional PlanType = "Professional"
	PlanEnterprise   PlanType = "Enterprise"
)

// Valid reports whether the plan is one of the known tiers.
func (p PlanType) Valid() bool {
	switch p {
	case PlanStarter, PlanProfessional, PlanEnterprise:
		return true
	}
	return false
}

// Tenant represents an independent clinical organization on the platform.
// Branding fields drive the tenant's patient-facing landing page.
type Tenant struct {
	ID           string   `json:"id"`
	CompanyName  string   `json:"companyName"`
	PlanType     PlanType `json:"planType"`
	PrimaryColor string   `json:"primaryColor"`
	LogoURL      string   `json:"logoUrl"`
	CustomDomain string   `json:"customDomain,omitempty"`
}
