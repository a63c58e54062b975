package main

import (
	"fmt"
	"log"

	"slotifyme-admin/config"
	"slotifyme-admin/routes"
	"slotifyme-admin/services"
	"slotifyme-admin/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	var backing store.Store
	var cached *store.CachedStore
	if cfg.DBURL != "" {
		db := config.ConnectDB(cfg.DBURL)
		gs := store.NewGormStore(db)
		if err := gs.AutoMigrate(); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		cached = store.NewCachedStore(gs, store.DefaultCacheTTL)
		backing = cached
	} else {
		log.Println("DB_URL not set, using in-memory store")
		cached = store.NewCachedStore(store.NewMemoryStore(), store.DefaultCacheTTL)
		backing = cached
	}

	notify := services.NewNotifyService()

	maintenance := services.NewMaintenanceService(backing, cached)
	maintenance.StartScheduler()

	r := routes.SetupRouter(cfg, backing, notify)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
