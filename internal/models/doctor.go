package models

// Doctor represents a clinician bound to a single tenant for its entire
// lifetime. Only IsOnline is mutable, and only through DoctorStore.ToggleOnline;
// matching reads the flag at match time and never re-checks it afterwards.
type Doctor struct {
	ID             string `json:"id"`
	TenantID       string `json:"tenantId"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Specialization string `json:"specialization"`
	LicenseNumber  string `json:"licenseNumber"`
	Qualification  string `json:"qualification"`
	Phone          string `json:"phone"`
	IsOnline       bool   `json:"isOnline"`
}
