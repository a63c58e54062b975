package routes

import (
	"net/http"

	"slotifyme-admin/config"
	"slotifyme-admin/controllers"
	"slotifyme-admin/services"
	"slotifyme-admin/store"
	"slotifyme-admin/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg config.Config, st store.Store, notify *services.NotifyService) *gin.Engine {
	utils.RegisterValidators()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://admin." + cfg.PublicHostDomain,
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	authCtl := &controllers.AuthController{Cfg: cfg, Store: st, Notify: notify}
	planCtl := &controllers.PlanController{Store: st}
	addonCtl := &controllers.AddonController{Store: st}
	tenantCtl := &controllers.TenantController{Cfg: cfg, Store: st}
	dashCtl := &controllers.DashboardController{Store: st}
	proxyCtl := controllers.NewProxyController(cfg)

	r.POST("/logout", authCtl.Logout)

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", authCtl.Login)
		auth.POST("/forgot-password", authCtl.ForgotPassword)
		auth.POST("/verify-security-questions", authCtl.VerifySecurityQuestions)
		auth.POST("/reset-password", authCtl.ResetPassword)

		auth.Use(utils.AuthMiddleware(cfg))
		auth.GET("/me", authCtl.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(cfg))
	{
		// Plan routes
		plans := api.Group("/admin/plans")
		{
			plans.GET("", planCtl.GetPlans)
			plans.POST("", planCtl.CreatePlan)
			plans.PUT("/:code", planCtl.UpdatePlan)
			plans.DELETE("/:code", planCtl.DeletePlan)
		}

		// Addon routes
		addons := api.Group("/admin/addons")
		{
			addons.GET("", addonCtl.GetAddons)
			addons.POST("", addonCtl.CreateAddon)
			addons.PUT("/:code", addonCtl.UpdateAddon)
		}

		// Tenant routes
		tenants := api.Group("/admin/tenants")
		{
			tenants.GET("", tenantCtl.GetTenants)
			tenants.GET("/:id", tenantCtl.GetTenant)
			tenants.POST("", tenantCtl.CreateTenant)
		}

		api.POST("/bootstrap/sample-tenants", tenantCtl.BootstrapSampleTenants)

		// Dashboard routes
		api.GET("/dashboard", dashCtl.GetDashboardOverview)
	}

	// Server-rendered shells. The admin tree is gated before any protected
	// content is produced.
	r.GET("/login", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", loginShell(cfg.AppName))
	})
	// /admin redirects to /admin/ via the router's trailing-slash handling.
	admin := r.Group("/admin")
	admin.Use(utils.RequirePage(cfg))
	{
		admin.GET("/*page", adminShellHandler(cfg))
	}

	// Anything else under /api falls through to the BFF.
	r.NoRoute(proxyCtl.Passthrough)

	return r
}

func adminShellHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", adminShell(cfg.AppName))
	}
}

func loginShell(appName string) []byte {
	return []byte(`<!doctype html><html><head><title>` + appName +
		` - Login</title></head><body><div id="root" data-page="login"></div></body></html>`)
}

func adminShell(appName string) []byte {
	return []byte(`<!doctype html><html><head><title>` + appName +
		`</title></head><body><div id="root" data-page="admin"></div></body></html>`)
}
