package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TenantStatusActive   = "active"
	TenantStatusInactive = "inactive"
	TenantStatusPending  = "pending"
)

type Tenant struct {
	TenantID       string    `json:"tenant_id" gorm:"primaryKey;type:uuid"`
	Name           string    `json:"name" gorm:"not null"`
	Slug           string    `json:"slug" gorm:"uniqueIndex;not null"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Status         string    `json:"status" gorm:"type:varchar(20);default:'active'"`
	Plan           string    `json:"plan"`
	LocationsCount int       `json:"locations_count" gorm:"default:0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Initialize UUID before creating
func (t *Tenant) BeforeCreate(tx *gorm.DB) (err error) {
	if t.TenantID == "" {
		t.TenantID = uuid.NewString()
	}
	return
}

// NewTenantRequest is the new-tenant form payload. Binding tags re-validate
// at the boundary everything the console checks client-side.
type NewTenantRequest struct {
	Tenant struct {
		Name string `json:"name" binding:"required"`
		Slug string `json:"slug" binding:"required,slug"`
	} `json:"tenant" binding:"required"`
	Location struct {
		Name        string `json:"name" binding:"required"`
		Slug        string `json:"slug" binding:"required,slug"`
		Timezone    string `json:"timezone" binding:"required"`
		Phone       string `json:"phone" binding:"required"`
		PhonePublic bool   `json:"phone_public"`
	} `json:"location" binding:"required"`
	Plan struct {
		Code       string   `json:"code" binding:"required,oneof=silver gold platinum"`
		Addons     []string `json:"addons" binding:"omitempty,dive,oneof=ai_booking variable_pricing value_pack"`
		PricingRef string   `json:"pricing_ref"`
	} `json:"plan" binding:"required"`
}

// TenantsEnvelope is the list response shape. The BFF historically returned
// either a bare array or a paginated envelope; UnmarshalJSON accepts both so
// only one shape exists past the boundary.
type TenantsEnvelope struct {
	Items []Tenant `json:"items"`
	Page  int      `json:"page,omitempty"`
	Total int      `json:"total,omitempty"`
}

func (e *TenantsEnvelope) UnmarshalJSON(data []byte) error {
	var bare []Tenant
	if err := json.Unmarshal(data, &bare); err == nil {
		e.Items = bare
		e.Page = 1
		e.Total = len(bare)
		return nil
	}

	type envelope TenantsEnvelope
	var wrapped envelope
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	*e = TenantsEnvelope(wrapped)
	if e.Total == 0 {
		e.Total = len(e.Items)
	}
	return nil
}
