package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Plan codes are a closed set; the console never invents new tiers.
const (
	PlanSilver   = "silver"
	PlanGold     = "gold"
	PlanPlatinum = "platinum"
)

type Plan struct {
	Code               string        `json:"code" gorm:"primaryKey;type:varchar(32)"`
	Name               string        `json:"name" gorm:"not null"`
	Limits             PlanLimits    `json:"limits" gorm:"type:jsonb;default:'{}'"`
	Features           FeatureMap    `json:"features" gorm:"type:jsonb;default:'{}'"`
	OveragePolicy      OveragePolicy `json:"overage_policy" gorm:"type:jsonb;default:'{}'"`
	PricingRef         string        `json:"pricing_ref,omitempty"`
	PreviewAmountCents *int          `json:"preview_amount_cents,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

type PlanLimits struct {
	LocationsIncluded int `json:"locations_included"`
	StylistsIncluded  int `json:"stylists_included"`
}

type OveragePolicy struct {
	AllowExtraLocations bool `json:"allow_extra_locations"`
	AllowExtraStylists  bool `json:"allow_extra_stylists"`
}

// FeatureMap is a sparse feature-name -> enabled map. Keys are free-form,
// values must be boolean; the JSON codec enforces that at the boundary.
type FeatureMap map[string]bool

func (f FeatureMap) Value() (driver.Value, error) {
	return json.Marshal(f)
}

func (f *FeatureMap) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &f)
}

func (l PlanLimits) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *PlanLimits) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &l)
}

func (o OveragePolicy) Value() (driver.Value, error) {
	return json.Marshal(o)
}

func (o *OveragePolicy) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &o)
}

// CreatePlanInput defines the expected JSON structure for creating a plan
type CreatePlanInput struct {
	Code               string        `json:"code" binding:"required,oneof=silver gold platinum"`
	Name               string        `json:"name" binding:"required"`
	Limits             PlanLimits    `json:"limits"`
	Features           FeatureMap    `json:"features"`
	OveragePolicy      OveragePolicy `json:"overage_policy"`
	PricingRef         string        `json:"pricing_ref"`
	PreviewAmountCents *int          `json:"preview_amount_cents" binding:"omitempty,min=0"`
}

// UpdatePlanInput defines the expected JSON structure for updating a plan.
// Unset fields leave the stored value unchanged.
type UpdatePlanInput struct {
	Name               *string        `json:"name"`
	Limits             *PlanLimits    `json:"limits"`
	Features           *FeatureMap    `json:"features"`
	OveragePolicy      *OveragePolicy `json:"overage_policy"`
	PricingRef         *string        `json:"pricing_ref"`
	PreviewAmountCents *int           `json:"preview_amount_cents" binding:"omitempty,min=0"`
}

// Apply merges the provided fields onto the plan.
func (in UpdatePlanInput) Apply(p *Plan) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Limits != nil {
		p.Limits = *in.Limits
	}
	if in.Features != nil {
		p.Features = *in.Features
	}
	if in.OveragePolicy != nil {
		p.OveragePolicy = *in.OveragePolicy
	}
	if in.PricingRef != nil {
		p.PricingRef = *in.PricingRef
	}
	if in.PreviewAmountCents != nil {
		p.PreviewAmountCents = in.PreviewAmountCents
	}
}
