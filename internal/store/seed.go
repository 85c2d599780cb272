package store

import "teleconsult-server/internal/models"

// SeedDemoData loads the demo tenants and doctors used for local development:
// two tenants with one doctor each, one of them online so intake can match
// immediately.
func SeedDemoData(tenants *TenantStore, doctors *DoctorStore) error {
	demoTenants := []models.Tenant{
		{
			ID:           "t1",
			CompanyName:  "City Hospital Network",
			PlanType:     models.PlanEnterprise,
			PrimaryColor: "#0f172a",
			LogoURL:      "https://picsum.photos/seed/hospital/200",
		},
		{
			ID:           "t2",
			CompanyName:  "Dr. Rajesh Clinic",
			PlanType:     models.PlanStarter,
			PrimaryColor: "#2563eb",
			LogoURL:      "https://picsum.photos/seed/clinic/200",
		},
	}
	demoDoctors := []models.Doctor{
		{
			ID:             "d1",
			TenantID:       "t1",
			Name:           "Dr. Sarah Smith",
			Email:          "sarah@cityhospital.com",
			Specialization: "General Medicine",
			LicenseNumber:  "LIC12345",
			Qualification:  "MD, Internal Medicine",
			Phone:          "9876543210",
			IsOnline:       true,
		},
		{
			ID:             "d2",
			TenantID:       "t2",
			Name:           "Dr. Rajesh Kumar",
			Email:          "rajesh@clinic.com",
			Specialization: "Pediatrics",
			LicenseNumber:  "LIC99999",
			Qualification:  "MBBS, DCH",
			Phone:          "9000000000",
			IsOnline:       false,
		},
	}

	for _, tenant := range demoTenants {
		if err := tenants.Add(tenant); err != nil {
			return err
		}
	}
	for _, doctor := range demoDoctors {
		if err := doctors.Add(doctor); err != nil {
			return err
		}
	}
	return nil
}
