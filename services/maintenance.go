// services/maintenance.go
package services

import (
	"log"

	"slotifyme-admin/store"

	"github.com/robfig/cron/v3"
)

// MaintenanceService runs the background housekeeping: hourly cache sweep
// and a daily tenant summary in the logs.
type MaintenanceService struct {
	store store.Store
	cache *store.CachedStore
}

func NewMaintenanceService(s store.Store, cache *store.CachedStore) *MaintenanceService {
	return &MaintenanceService{store: s, cache: cache}
}

func (s *MaintenanceService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 * * * *", func() {
		if s.cache != nil {
			s.cache.Sweep()
		}
	})

	// Daily at 9 AM
	c.AddFunc("0 9 * * *", s.LogTenantSummary)

	c.Start()
	log.Println("Maintenance scheduler started")
}

func (s *MaintenanceService) LogTenantSummary() {
	tenants, err := s.store.ListTenants()
	if err != nil {
		log.Printf("Failed to fetch tenants for summary: %v", err)
		return
	}

	byStatus := map[string]int{}
	for _, t := range tenants {
		byStatus[t.Status]++
	}
	log.Printf("Tenant summary: total=%d active=%d pending=%d inactive=%d",
		len(tenants), byStatus["active"], byStatus["pending"], byStatus["inactive"])
}
