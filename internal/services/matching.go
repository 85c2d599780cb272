package services

import (
	"errors"

	"teleconsult-server/internal/models"
	"teleconsult-server/internal/store"
)

// ErrNoDoctorAvailable is the expected outcome when a tenant has no online
// doctor. It is a normal branch for callers, not a system fault; the caller
// may retry later.
var ErrNoDoctorAvailable = errors.New("no doctor available for tenant")

// MatchingEngine selects a doctor for a new consultation within a tenant.
type MatchingEngine struct {
	doctors *store.DoctorStore
}

// NewMatchingEngine creates a MatchingEngine over the given doctor store.
func NewMatchingEngine(doctors *store.DoctorStore) *MatchingEngine {
	return &MatchingEngine{doctors: doctors}
}

// Match returns the first online doctor of the tenant in stable listing
// order, or ErrNoDoctorAvailable. The selection is deliberately simple; a
// fairer policy (round-robin, least-active) can replace it as long as tenant
// isolation and the ErrNoDoctorAvailable contract hold.
//
// Match is a pure read and does not reserve the doctor: two concurrent
// intakes can both land on the same doctor, who then holds multiple active
// sessions. That is the intended capacity model.
func (m *MatchingEngine) Match(tenantID string) (models.Doctor, error) {
	for _, doctor := range m.doctors.ListByTenant(tenantID) {
		if doctor.IsOnline {
			return doctor, nil
		}
	}
	return models.Doctor{}, ErrNoDoctorAvailable
}
