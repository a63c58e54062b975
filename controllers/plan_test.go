package controllers_test

import (
	"net/http"
	"testing"

	"slotifyme-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPlans(t *testing.T) {
	r := newRouter(t, "http://bff.invalid")
	session := login(t, r)

	w := doJSON(r, http.MethodGet, "/api/admin/plans", nil, session)
	require.Equal(t, http.StatusOK, w.Code)

	var plans []models.Plan
	decodeBody(t, w, &plans)
	require.Len(t, plans, 3)
	assert.Equal(t, "silver", plans[0].Code)
	assert.Equal(t, 1, plans[0].Limits.LocationsIncluded)
	assert.True(t, plans[2].Features["api_access"])
}

func TestUpdatePlanReflectedInNextList(t *testing.T) {
	r := newRouter(t, "http://bff.invalid")
	session := login(t, r)

	w := doJSON(r, http.MethodPut, "/api/admin/plans/gold", map[string]string{
		"pricing_ref": "price_gold_2024",
	}, session)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Plan
	decodeBody(t, w, &updated)
	assert.Equal(t, "price_gold_2024", updated.PricingRef)
	assert.Equal(t, "Professional Plan", updated.Name, "unspecified fields stay unchanged")

	w = doJSON(r, http.MethodGet, "/api/admin/plans", nil, session)
	require.Equal(t, http.StatusOK, w.Code)

	var plans []models.Plan
	decodeBody(t, w, &plans)
	found := false
	for _, p := range plans {
		if p.Code == "gold" {
			found = true
			assert.Equal(t, "price_gold_2024", p.PricingRef)
			assert.Equal(t, 15, p.Limits.StylistsIncluded)
		}
	}
	assert.True(t, found)
}

func TestUpdateUnknownPlan(t *testing.T) {
	r := newRouter(t, "http://bff.invalid")
	session := login(t, r)

	w := doJSON(r, http.MethodPut, "/api/admin/plans/bronze", map[string]string{
		"pricing_ref": "x",
	}, session)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePlanDuplicate(t *testing.T) {
	r := newRouter(t, "http://bff.invalid")
	session := login(t, r)

	w := doJSON(r, http.MethodPost, "/api/admin/plans", map[string]interface{}{
		"code":   "silver",
		"name":   "Silver Again",
		"limits": map[string]int{"locations_included": 1, "stylists_included": 5},
	}, session)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreatePlanRejectsUnknownCode(t *testing.T) {
	r := newRouter(t, "http://bff.invalid")
	session := login(t, r)

	w := doJSON(r, http.MethodPost, "/api/admin/plans", map[string]interface{}{
		"code":   "bronze",
		"name":   "Bronze",
		"limits": map[string]int{"locations_included": 1, "stylists_included": 5},
	}, session)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	decodeBody(t, w, &body)
	assert.Contains(t, body.Errors, "code")
}

func TestDeletePlanInUseConflicts(t *testing.T) {
	r := newRouter(t, "http://bff.invalid")
	session := login(t, r)

	w := doJSON(r, http.MethodDelete, "/api/admin/plans/platinum", nil, session)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListAddons(t *testing.T) {
	r := newRouter(t, "http://bff.invalid")
	session := login(t, r)

	w := doJSON(r, http.MethodGet, "/api/admin/addons", nil, session)
	require.Equal(t, http.StatusOK, w.Code)

	var addons []models.Addon
	decodeBody(t, w, &addons)
	require.Len(t, addons, 3)
	assert.Equal(t, "ai_booking", addons[0].Code)
	assert.True(t, addons[0].Effect["ai_booking"])
}

func TestUpdateAddonPricingRef(t *testing.T) {
	r := newRouter(t, "http://bff.invalid")
	session := login(t, r)

	w := doJSON(r, http.MethodPut, "/api/admin/addons/value_pack", map[string]string{
		"pricing_ref": "price_value_pack",
	}, session)
	require.Equal(t, http.StatusOK, w.Code)

	var addon models.Addon
	decodeBody(t, w, &addon)
	assert.Equal(t, "price_value_pack", addon.PricingRef)
	assert.Equal(t, "Value Pack", addon.Name)
}
