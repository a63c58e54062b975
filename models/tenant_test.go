package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantsEnvelopeBareArray(t *testing.T) {
	raw := `[
		{"tenant_id": "1", "name": "Beauty Haven Salon", "slug": "beauty-haven", "locations_count": 1},
		{"tenant_id": "2", "name": "Urban Cuts", "slug": "urban-cuts", "locations_count": 1}
	]`

	var envelope TenantsEnvelope
	require.NoError(t, json.Unmarshal([]byte(raw), &envelope))

	assert.Len(t, envelope.Items, 2)
	assert.Equal(t, 2, envelope.Total)
	assert.Equal(t, "urban-cuts", envelope.Items[1].Slug)
}

func TestTenantsEnvelopeWrapped(t *testing.T) {
	raw := `{"items": [{"tenant_id": "1", "name": "Beauty Haven Salon", "slug": "beauty-haven"}], "page": 3, "total": 41}`

	var envelope TenantsEnvelope
	require.NoError(t, json.Unmarshal([]byte(raw), &envelope))

	assert.Len(t, envelope.Items, 1)
	assert.Equal(t, 3, envelope.Page)
	assert.Equal(t, 41, envelope.Total)
}

func TestTenantsEnvelopeShapeMismatch(t *testing.T) {
	var envelope TenantsEnvelope
	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &envelope))
}

func TestFeatureMapRejectsNonBoolean(t *testing.T) {
	var m FeatureMap
	assert.Error(t, json.Unmarshal([]byte(`{"sms_notifications": "yes"}`), &m))
	require.NoError(t, json.Unmarshal([]byte(`{"sms_notifications": true}`), &m))
	assert.True(t, m["sms_notifications"])
}

func TestUpdatePlanInputApply(t *testing.T) {
	plan := Plan{
		Code:     PlanGold,
		Name:     "Professional Plan",
		Limits:   PlanLimits{LocationsIncluded: 3, StylistsIncluded: 15},
		Features: FeatureMap{"sms_notifications": true},
	}

	ref := "price_123"
	UpdatePlanInput{PricingRef: &ref}.Apply(&plan)

	assert.Equal(t, "price_123", plan.PricingRef)
	assert.Equal(t, "Professional Plan", plan.Name)
	assert.Equal(t, 3, plan.Limits.LocationsIncluded)
	assert.True(t, plan.Features["sms_notifications"])
}
