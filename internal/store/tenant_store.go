package store

import (
	"sync"

	"teleconsult-server/internal/models"
)

// TenantStore holds the set of tenants for the process lifetime. Reads are
// concurrent; mutations are serialized and never observable half-applied.
type TenantStore struct {
	mu    sync.RWMutex
	byID  map[string]models.Tenant
	order []string
}

// NewTenantStore creates an empty TenantStore.
func NewTenantStore() *TenantStore {
	return &TenantStore{byID: make(map[string]models.Tenant)}
}

// Add registers a new tenant. It fails with ErrDuplicateID when the id is
// already taken.
func (s *TenantStore) Add(tenant models.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[tenant.ID]; exists {
		return ErrDuplicateID
	}
	s.byID[tenant.ID] = tenant
	s.order = append(s.order, tenant.ID)
	return nil
}

// Get returns the tenant with the given id, or ErrNotFound.
func (s *TenantStore) Get(id string) (models.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tenant, exists := s.byID[id]
	if !exists {
		return models.Tenant{}, ErrNotFound
	}
	return tenant, nil
}

// Has reports whether a tenant with the given id exists.
func (s *TenantStore) Has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.byID[id]
	return exists
}

// List returns all tenants in insertion order.
func (s *TenantStore) List() []models.Tenant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tenants := make([]models.Tenant, 0, len(s.order))
	for _, id := range s.order {
		tenants = append(tenants, s.byID[id])
	}
	return tenants
}
