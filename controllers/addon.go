// controllers/addon.go
package controllers

import (
	"errors"
	"net/http"

	"slotifyme-admin/models"
	"slotifyme-admin/store"
	"slotifyme-admin/utils"

	"github.com/gin-gonic/gin"
)

type AddonController struct {
	Store store.Store
}

// GetAddons retrieves all addons
func (ctl *AddonController) GetAddons(c *gin.Context) {
	addons, err := ctl.Store.ListAddons()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve addons")
		return
	}

	c.JSON(http.StatusOK, addons)
}

// CreateAddon creates a new addon
func (ctl *AddonController) CreateAddon(c *gin.Context) {
	var input models.CreateAddonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	addon := models.Addon{
		Code:               input.Code,
		Name:               input.Name,
		Effect:             input.Effect,
		PricingRef:         input.PricingRef,
		PreviewAmountCents: input.PreviewAmountCents,
	}
	if addon.Effect == nil {
		addon.Effect = models.FeatureMap{}
	}

	if err := ctl.Store.CreateAddon(&addon); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			utils.RespondWithError(c, http.StatusConflict, "Addon with this code already exists")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create addon")
		}
		return
	}

	c.JSON(http.StatusCreated, addon)
}

// UpdateAddon applies a partial update; unset fields stay unchanged.
func (ctl *AddonController) UpdateAddon(c *gin.Context) {
	code := c.Param("code")

	var input models.UpdateAddonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": utils.BindingErrors(err)})
		return
	}

	addon, err := ctl.Store.UpdateAddon(code, input)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Addon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update addon")
		}
		return
	}

	c.JSON(http.StatusOK, addon)
}
