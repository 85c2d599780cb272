package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teleconsult-server/internal/models"
	"teleconsult-server/internal/store"
)

func newMatchingFixture(t *testing.T) (*store.TenantStore, *store.DoctorStore, *MatchingEngine) {
	t.Helper()
	tenants := store.NewTenantStore()
	require.NoError(t, tenants.Add(models.Tenant{ID: "t1", CompanyName: "City Hospital Network"}))
	require.NoError(t, tenants.Add(models.Tenant{ID: "t2", CompanyName: "Dr. Rajesh Clinic"}))
	doctors := store.NewDoctorStore(tenants)
	return tenants, doctors, NewMatchingEngine(doctors)
}

func TestMatchReturnsFirstOnlineDoctorOfTenant(t *testing.T) {
	_, doctors, matcher := newMatchingFixture(t)
	require.NoError(t, doctors.Add(models.Doctor{ID: "d1", TenantID: "t1", IsOnline: false}))
	require.NoError(t, doctors.Add(models.Doctor{ID: "d2", TenantID: "t1", IsOnline: true}))
	require.NoError(t, doctors.Add(models.Doctor{ID: "d3", TenantID: "t1", IsOnline: true}))

	// First online in stable listing order, deterministically.
	for i := 0; i < 3; i++ {
		doctor, err := matcher.Match("t1")
		require.NoError(t, err)
		assert.Equal(t, "d2", doctor.ID)
	}
}

func TestMatchNeverCrossesTenants(t *testing.T) {
	_, doctors, matcher := newMatchingFixture(t)
	require.NoError(t, doctors.Add(models.Doctor{ID: "d1", TenantID: "t1", IsOnline: true}))

	_, err := matcher.Match("t2")
	assert.ErrorIs(t, err, ErrNoDoctorAvailable)

	doctor, err := matcher.Match("t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", doctor.TenantID)
	assert.True(t, doctor.IsOnline)
}

func TestMatchNoOnlineDoctor(t *testing.T) {
	_, doctors, matcher := newMatchingFixture(t)
	require.NoError(t, doctors.Add(models.Doctor{ID: "d1", TenantID: "t1", IsOnline: false}))

	_, err := matcher.Match("t1")
	assert.ErrorIs(t, err, ErrNoDoctorAvailable)
}

func TestMatchSeesToggleImmediately(t *testing.T) {
	_, doctors, matcher := newMatchingFixture(t)
	require.NoError(t, doctors.Add(models.Doctor{ID: "d1", TenantID: "t1", IsOnline: false}))

	_, err := matcher.Match("t1")
	assert.ErrorIs(t, err, ErrNoDoctorAvailable)

	_, err = doctors.ToggleOnline("d1")
	require.NoError(t, err)

	doctor, err := matcher.Match("t1")
	require.NoError(t, err)
	assert.Equal(t, "d1", doctor.ID)
}
