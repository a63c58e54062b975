// controllers/plan.go
package controllers

import (
	"errors"
	"net/http"

	"slotifyme-admin/models"
	"slotifyme-admin/store"
	"slotifyme-admin/utils"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	Store store.Store
}

// GetPlans retrieves all plans
func (ctl *PlanController) GetPlans(c *gin.Context) {
	plans, err := ctl.Store.ListPlans()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve plans")
		return
	}

	c.JSON(http.StatusOK, plans)
}

// CreatePlan creates a new plan
func (ctl *PlanController) CreatePlan(c *gin.Context) {
	var input models.CreatePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	plan := models.Plan{
		Code:               input.Code,
		Name:               input.Name,
		Limits:             input.Limits,
		Features:           input.Features,
		OveragePolicy:      input.OveragePolicy,
		PricingRef:         input.PricingRef,
		PreviewAmountCents: input.PreviewAmountCents,
	}
	if plan.Features == nil {
		plan.Features = models.FeatureMap{}
	}

	if err := ctl.Store.CreatePlan(&plan); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			utils.RespondWithError(c, http.StatusConflict, "Plan with this code already exists")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create plan")
		}
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// UpdatePlan applies a partial update; unset fields stay unchanged.
func (ctl *PlanController) UpdatePlan(c *gin.Context) {
	code := c.Param("code")

	var input models.UpdatePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	plan, err := ctl.Store.UpdatePlan(code, input)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Plan not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update plan")
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlan removes a plan unless a tenant still references it.
func (ctl *PlanController) DeletePlan(c *gin.Context) {
	code := c.Param("code")

	if err := ctl.Store.DeletePlan(code); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Plan not found")
		case errors.Is(err, store.ErrInUse):
			utils.RespondWithError(c, http.StatusConflict, "Cannot delete plan that is in use by tenants")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete plan")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
