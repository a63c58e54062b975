package store

import (
	"testing"

	"slotifyme-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedData(t *testing.T) {
	s := NewMemoryStore()

	plans, err := s.ListPlans()
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, models.PlanSilver, plans[0].Code)

	addons, err := s.ListAddons()
	require.NoError(t, err)
	assert.Len(t, addons, 3)

	tenants, err := s.ListTenants()
	require.NoError(t, err)
	assert.Len(t, tenants, 3)

	admin, err := s.GetUserByEmail("arun@slotifyme.com")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)
}

func TestUpdatePlanMergesFields(t *testing.T) {
	s := NewMemoryStore()

	before, err := s.GetPlan(models.PlanGold)
	require.NoError(t, err)

	ref := "price_gold_v2"
	updated, err := s.UpdatePlan(models.PlanGold, models.UpdatePlanInput{PricingRef: &ref})
	require.NoError(t, err)
	assert.Equal(t, "price_gold_v2", updated.PricingRef)

	// All other fields unchanged, and the next list reflects the change.
	assert.Equal(t, before.Name, updated.Name)
	assert.Equal(t, before.Limits, updated.Limits)
	assert.Equal(t, before.Features, updated.Features)

	plans, err := s.ListPlans()
	require.NoError(t, err)
	for _, p := range plans {
		if p.Code == models.PlanGold {
			assert.Equal(t, "price_gold_v2", p.PricingRef)
		}
	}
}

func TestUpdatePlanNotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.UpdatePlan("bronze", models.UpdatePlanInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePlanDuplicateCode(t *testing.T) {
	s := NewMemoryStore()

	err := s.CreatePlan(&models.Plan{Code: models.PlanSilver, Name: "Another Silver"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestDeletePlanInUse(t *testing.T) {
	s := NewMemoryStore()

	// Seed tenants reference plans by display name.
	err := s.DeletePlan(models.PlanGold)
	assert.ErrorIs(t, err, ErrInUse)
}

func TestCreateTenantRejectsDuplicateSlug(t *testing.T) {
	s := NewMemoryStore()

	err := s.CreateTenant(&models.Tenant{
		Name:   "Another Beauty Haven",
		Slug:   "beauty-haven",
		Status: models.TenantStatusActive,
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestCreateTenantAssignsID(t *testing.T) {
	s := NewMemoryStore()

	tenant := models.Tenant{
		Name:   "Shear Genius",
		Slug:   "shear-genius",
		Status: models.TenantStatusPending,
	}
	require.NoError(t, s.CreateTenant(&tenant))
	assert.NotEmpty(t, tenant.TenantID)

	got, err := s.GetTenant(tenant.TenantID)
	require.NoError(t, err)
	assert.Equal(t, "shear-genius", got.Slug)

	tenants, err := s.ListTenants()
	require.NoError(t, err)
	assert.Len(t, tenants, 4)
}

func TestUpdateUserPassword(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.UpdateUserPassword("arun@slotifyme.com", "new-hash"))

	u, err := s.GetUserByEmail("arun@slotifyme.com")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", u.Password)

	assert.ErrorIs(t, s.UpdateUserPassword("nobody@slotifyme.com", "x"), ErrNotFound)
}
