// controllers/proxy.go
package controllers

import (
	"net/http"
	"strings"

	"slotifyme-admin/bff"
	"slotifyme-admin/config"
	"slotifyme-admin/utils"

	"github.com/gin-gonic/gin"
)

// ProxyController forwards unmatched /api/* calls to the BFF with the
// session token as bearer. Routes with dedicated handlers are matched by the
// router first and never reach it.
type ProxyController struct {
	Cfg    config.Config
	Client *bff.Client
}

func NewProxyController(cfg config.Config) *ProxyController {
	return &ProxyController{
		Cfg:    cfg,
		Client: bff.NewClient(cfg.BFFBaseURL),
	}
}

// Passthrough is the NoRoute handler.
func (ctl *ProxyController) Passthrough(c *gin.Context) {
	path := c.Request.URL.Path
	if !strings.HasPrefix(path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	upstreamPath := strings.TrimPrefix(path, "/api/")

	// No session, no upstream call.
	token := utils.SessionToken(c, ctl.Cfg)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := ctl.Client.Do(
		c.Request.Method,
		upstreamPath,
		c.Request.URL.RawQuery,
		c.Request.Body,
		c.ContentType(),
		token,
	)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadGateway, "Upstream unavailable")
		return
	}
	defer resp.Body.Close()

	// The single re-authentication trigger: an upstream 401 invalidates the
	// local session. No retry, no refresh.
	if resp.StatusCode == http.StatusUnauthorized {
		utils.ClearSessionCookie(c, ctl.Cfg)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	c.DataFromReader(resp.StatusCode, resp.ContentLength, contentType, resp.Body, nil)
}
