package store

import (
	"sync"
	"time"

	"slotifyme-admin/models"
)

// DefaultCacheTTL is the freshness window for list reads.
const DefaultCacheTTL = 30 * time.Second

const (
	cacheKeyPlans   = "plans"
	cacheKeyAddons  = "addons"
	cacheKeyTenants = "tenants"
)

type cacheEntry struct {
	value   interface{}
	expires time.Time
}

// CachedStore is a read-through cache over another Store, keyed by resource
// name with a short freshness window. Every successful mutation invalidates
// the affected key before the call returns, so a list issued after a
// mutation always reflects it.
type CachedStore struct {
	Store

	ttl     time.Duration
	mu      sync.Mutex
	entries map[string]cacheEntry
}

func NewCachedStore(inner Store, ttl time.Duration) *CachedStore {
	return &CachedStore{
		Store:   inner,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (s *CachedStore) ListPlans() ([]models.Plan, error) {
	if v, ok := s.get(cacheKeyPlans); ok {
		return v.([]models.Plan), nil
	}
	plans, err := s.Store.ListPlans()
	if err != nil {
		return nil, err
	}
	s.put(cacheKeyPlans, plans)
	return plans, nil
}

func (s *CachedStore) CreatePlan(plan *models.Plan) error {
	if err := s.Store.CreatePlan(plan); err != nil {
		return err
	}
	s.invalidate(cacheKeyPlans)
	return nil
}

func (s *CachedStore) UpdatePlan(code string, input models.UpdatePlanInput) (*models.Plan, error) {
	plan, err := s.Store.UpdatePlan(code, input)
	if err != nil {
		return nil, err
	}
	s.invalidate(cacheKeyPlans)
	return plan, nil
}

func (s *CachedStore) DeletePlan(code string) error {
	if err := s.Store.DeletePlan(code); err != nil {
		return err
	}
	s.invalidate(cacheKeyPlans)
	return nil
}

func (s *CachedStore) ListAddons() ([]models.Addon, error) {
	if v, ok := s.get(cacheKeyAddons); ok {
		return v.([]models.Addon), nil
	}
	addons, err := s.Store.ListAddons()
	if err != nil {
		return nil, err
	}
	s.put(cacheKeyAddons, addons)
	return addons, nil
}

func (s *CachedStore) CreateAddon(addon *models.Addon) error {
	if err := s.Store.CreateAddon(addon); err != nil {
		return err
	}
	s.invalidate(cacheKeyAddons)
	return nil
}

func (s *CachedStore) UpdateAddon(code string, input models.UpdateAddonInput) (*models.Addon, error) {
	addon, err := s.Store.UpdateAddon(code, input)
	if err != nil {
		return nil, err
	}
	s.invalidate(cacheKeyAddons)
	return addon, nil
}

func (s *CachedStore) ListTenants() ([]models.Tenant, error) {
	if v, ok := s.get(cacheKeyTenants); ok {
		return v.([]models.Tenant), nil
	}
	tenants, err := s.Store.ListTenants()
	if err != nil {
		return nil, err
	}
	s.put(cacheKeyTenants, tenants)
	return tenants, nil
}

func (s *CachedStore) CreateTenant(tenant *models.Tenant) error {
	if err := s.Store.CreateTenant(tenant); err != nil {
		return err
	}
	s.invalidate(cacheKeyTenants)
	return nil
}

// Sweep drops expired entries. Called periodically by the maintenance
// scheduler; reads already ignore stale entries, this just frees them.
func (s *CachedStore) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for key, entry := range s.entries {
		if entry.expires.Before(now) {
			delete(s.entries, key)
		}
	}
}

func (s *CachedStore) get(key string) (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || entry.expires.Before(time.Now()) {
		return nil, false
	}
	return entry.value, true
}

func (s *CachedStore) put(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = cacheEntry{value: value, expires: time.Now().Add(s.ttl)}
}

func (s *CachedStore) invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
}
