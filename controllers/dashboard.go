package controllers

import (
	"net/http"

	"slotifyme-admin/models"
	"slotifyme-admin/store"
	"slotifyme-admin/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Store store.Store
}

// GetDashboardOverview aggregates the counts shown on the home screen.
func (ctl *DashboardController) GetDashboardOverview(c *gin.Context) {
	tenants, err := ctl.Store.ListTenants()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve tenants")
		return
	}
	plans, err := ctl.Store.ListPlans()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve plans")
		return
	}
	addons, err := ctl.Store.ListAddons()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve addons")
		return
	}

	active, pending, locations := 0, 0, 0
	for _, t := range tenants {
		switch t.Status {
		case models.TenantStatusActive:
			active++
		case models.TenantStatusPending:
			pending++
		}
		locations += t.LocationsCount
	}

	c.JSON(http.StatusOK, gin.H{
		"tenants_total":   len(tenants),
		"tenants_active":  active,
		"tenants_pending": pending,
		"locations_total": locations,
		"plans_total":     len(plans),
		"addons_total":    len(addons),
	})
}
