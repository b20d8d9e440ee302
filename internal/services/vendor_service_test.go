package services

import (
	"testing"

	"jobboard_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateVendorForcesActive(t *testing.T) {
	svc := NewVendorService(newFakeVendorRepo())

	vendor, err := svc.CreateVendor(&models.Vendor{Name: "TalentCo", IsActive: false})
	require.NoError(t, err)
	assert.True(t, vendor.IsActive)
}

func TestCreateVendorRequiresName(t *testing.T) {
	svc := NewVendorService(newFakeVendorRepo())

	_, err := svc.CreateVendor(&models.Vendor{})
	require.Error(t, err)
}

func TestCreateVendorCommissionBounds(t *testing.T) {
	svc := NewVendorService(newFakeVendorRepo())

	_, err := svc.CreateVendor(&models.Vendor{Name: "x", CommissionRate: floatPtr(-1)})
	require.Error(t, err)

	_, err = svc.CreateVendor(&models.Vendor{Name: "x", CommissionRate: floatPtr(101)})
	require.Error(t, err)

	_, err = svc.CreateVendor(&models.Vendor{Name: "x", CommissionRate: floatPtr(15)})
	require.NoError(t, err)
}

func TestDeactivateVendorKeepsRecordReadable(t *testing.T) {
	repo := newFakeVendorRepo()
	svc := NewVendorService(repo)

	vendor, err := svc.CreateVendor(&models.Vendor{Name: "TalentCo"})
	require.NoError(t, err)

	require.NoError(t, svc.SetVendorActive(vendor.ID, false))

	reloaded, err := svc.GetVendor(vendor.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.IsActive)
}

func TestSetVendorActiveUnknownVendor(t *testing.T) {
	svc := NewVendorService(newFakeVendorRepo())
	require.Error(t, svc.SetVendorActive("missing", false))
}
