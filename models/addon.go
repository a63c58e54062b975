package models

import "time"

const (
	AddonAIBooking       = "ai_booking"
	AddonVariablePricing = "variable_pricing"
	AddonValuePack       = "value_pack"
)

type Addon struct {
	Code               string     `json:"code" gorm:"primaryKey;type:varchar(32)"`
	Name               string     `json:"name" gorm:"not null"`
	Effect             FeatureMap `json:"effect" gorm:"type:jsonb;default:'{}'"`
	PricingRef         string     `json:"pricing_ref,omitempty"`
	PreviewAmountCents *int       `json:"preview_amount_cents,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// CreateAddonInput defines the expected JSON structure for creating an addon
type CreateAddonInput struct {
	Code               string     `json:"code" binding:"required,oneof=ai_booking variable_pricing value_pack"`
	Name               string     `json:"name" binding:"required"`
	Effect             FeatureMap `json:"effect"`
	PricingRef         string     `json:"pricing_ref"`
	PreviewAmountCents *int       `json:"preview_amount_cents" binding:"omitempty,min=0"`
}

// UpdateAddonInput defines the expected JSON structure for updating an addon
type UpdateAddonInput struct {
	Name               *string     `json:"name"`
	Effect             *FeatureMap `json:"effect"`
	PricingRef         *string     `json:"pricing_ref"`
	PreviewAmountCents *int        `json:"preview_amount_cents" binding:"omitempty,min=0"`
}

func (in UpdateAddonInput) Apply(a *Addon) {
	if in.Name != nil {
		a.Name = *in.Name
	}
	if in.Effect != nil {
		a.Effect = *in.Effect
	}
	if in.PricingRef != nil {
		a.PricingRef = *in.PricingRef
	}
	if in.PreviewAmountCents != nil {
		a.PreviewAmountCents = in.PreviewAmountCents
	}
}
