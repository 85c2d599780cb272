package store

import (
	"sync"

	"teleconsult-server/internal/models"
)

// TenantResolver answers whether a tenant id exists. Satisfied by TenantStore.
type TenantResolver interface {
	Has(id string) bool
}

// DoctorStore holds all doctors across tenants and owns the isOnline flag.
// Tenant isolation is enforced at the ListByTenant boundary: a query never
// returns a doctor from a different tenant.
type DoctorStore struct {
	mu      sync.RWMutex
	byID    map[string]models.Doctor
	order   []string
	tenants TenantResolver
}

// NewDoctorStore creates an empty DoctorStore that resolves tenant ids
// against the given resolver.
func NewDoctorStore(tenants TenantResolver) *DoctorStore {
	return &DoctorStore{byID: make(map[string]models.Doctor), tenants: tenants}
}

// Add registers a new doctor. It fails with ErrDuplicateID on an id collision
// and ErrUnknownTenant when the doctor's tenant id does not resolve.
func (s *DoctorStore) Add(doctor models.Doctor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[doctor.ID]; exists {
		return ErrDuplicateID
	}
	if !s.tenants.Has(doctor.TenantID) {
		return ErrUnknownTenant
	}
	s.byID[doctor.ID] = doctor
	s.order = append(s.order, doctor.ID)
	return nil
}

// Get returns the doctor with the given id, or ErrNotFound.
func (s *DoctorStore) Get(id string) (models.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doctor, exists := s.byID[id]
	if !exists {
		return models.Doctor{}, ErrNotFound
	}
	return doctor, nil
}

// ListByTenant returns the tenant's doctors in insertion order.
func (s *DoctorStore) ListByTenant(tenantID string) []models.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var doctors []models.Doctor
	for _, id := range s.order {
		if d := s.byID[id]; d.TenantID == tenantID {
			doctors = append(doctors, d)
		}
	}
	return doctors
}

// ToggleOnline flips the doctor's availability flag and returns the updated
// doctor. The flip is atomic: a concurrent match observes either the old or
// the new value, never a partial write. Sessions already created with the
// doctor are unaffected.
func (s *DoctorStore) ToggleOnline(id string) (models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doctor, exists := s.byID[id]
	if !exists {
		return models.Doctor{}, ErrNotFound
	}
	doctor.IsOnline = !doctor.IsOnline
	s.byID[id] = doctor
	return doctor, nil
}
