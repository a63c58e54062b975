// controllers/tenant.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"slotifyme-admin/config"
	"slotifyme-admin/models"
	"slotifyme-admin/store"
	"slotifyme-admin/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TenantController struct {
	Cfg   config.Config
	Store store.Store
}

// GetTenants lists tenants in the paginated envelope shape.
func (ctl *TenantController) GetTenants(c *gin.Context) {
	tenants, err := ctl.Store.ListTenants()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tenants")
		return
	}

	c.JSON(http.StatusOK, models.TenantsEnvelope{
		Items: tenants,
		Page:  1,
		Total: len(tenants),
	})
}

// GetTenant retrieves a specific tenant by ID
func (ctl *TenantController) GetTenant(c *gin.Context) {
	tenant, err := ctl.Store.GetTenant(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Tenant not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Store error")
		}
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// CreateTenant provisions a tenant from the new-tenant form. The payload is
// re-validated here; client-side validation is bypassable.
func (ctl *TenantController) CreateTenant(c *gin.Context) {
	var input models.NewTenantRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	plan, err := ctl.Store.GetPlan(input.Plan.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{
			"plan.code": "Unknown plan code",
		}})
		return
	}

	tenant := models.Tenant{
		TenantID:       uuid.NewString(),
		Name:           input.Tenant.Name,
		Slug:           input.Tenant.Slug,
		Email:          fmt.Sprintf("%s@%s", input.Tenant.Slug, ctl.Cfg.PublicHostDomain),
		Phone:          input.Location.Phone,
		Status:         models.TenantStatusActive,
		Plan:           plan.Name,
		LocationsCount: 1,
	}

	if err := ctl.Store.CreateTenant(&tenant); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			utils.RespondWithError(c, http.StatusConflict, "Tenant with this slug already exists")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create tenant")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"tenant": tenant,
		"slugs":  []string{tenant.Slug, input.Location.Slug},
		"preview_url": fmt.Sprintf("https://%s.%s/%s",
			tenant.Slug, ctl.Cfg.PublicHostDomain, input.Location.Slug),
	})
}

// BootstrapSampleTenants seeds a couple of demo tenants. Duplicates from a
// previous run are skipped.
func (ctl *TenantController) BootstrapSampleTenants(c *gin.Context) {
	samples := []models.Tenant{
		{
			Name:           "Shear Genius",
			Slug:           "shear-genius",
			Email:          "book@sheargenius.com",
			Phone:          "+1-555-0199",
			Status:         models.TenantStatusPending,
			Plan:           "Basic Plan",
			LocationsCount: 1,
		},
		{
			Name:           "The Fade Factory",
			Slug:           "fade-factory",
			Email:          "hello@fadefactory.com",
			Phone:          "+1-555-0244",
			Status:         models.TenantStatusActive,
			Plan:           "Professional Plan",
			LocationsCount: 2,
		},
	}

	created := make([]models.Tenant, 0, len(samples))
	for i := range samples {
		if err := ctl.Store.CreateTenant(&samples[i]); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				continue
			}
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to seed tenants")
			return
		}
		created = append(created, samples[i])
	}

	c.JSON(http.StatusCreated, gin.H{"created": created})
}
