package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"slotifyme-admin/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MemoryStore is the demo/test implementation. All mutation goes through the
// mutex; callers never see the internal slices or maps directly.
type MemoryStore struct {
	mu      sync.RWMutex
	plans   map[string]models.Plan
	addons  map[string]models.Addon
	tenants map[string]models.Tenant
	users   map[string]models.User // keyed by lowercased email
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		plans:   make(map[string]models.Plan),
		addons:  make(map[string]models.Addon),
		tenants: make(map[string]models.Tenant),
		users:   make(map[string]models.User),
	}
	s.seed()
	return s
}

func (s *MemoryStore) ListPlans() ([]models.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plans := make([]models.Plan, 0, len(s.plans))
	for _, p := range s.plans {
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].CreatedAt.Before(plans[j].CreatedAt)
	})
	return plans, nil
}

func (s *MemoryStore) GetPlan(code string) (*models.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.plans[code]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) CreatePlan(plan *models.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.plans[plan.Code]; ok {
		return ErrDuplicate
	}
	now := time.Now().UTC()
	plan.CreatedAt = now
	plan.UpdatedAt = now
	s.plans[plan.Code] = *plan
	return nil
}

func (s *MemoryStore) UpdatePlan(code string, input models.UpdatePlanInput) (*models.Plan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.plans[code]
	if !ok {
		return nil, ErrNotFound
	}
	input.Apply(&p)
	p.UpdatedAt = time.Now().UTC()
	s.plans[code] = p
	return &p, nil
}

func (s *MemoryStore) DeletePlan(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.plans[code]
	if !ok {
		return ErrNotFound
	}
	for _, t := range s.tenants {
		if t.Plan == p.Code || t.Plan == p.Name {
			return ErrInUse
		}
	}
	delete(s.plans, code)
	return nil
}

func (s *MemoryStore) ListAddons() ([]models.Addon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	addons := make([]models.Addon, 0, len(s.addons))
	for _, a := range s.addons {
		addons = append(addons, a)
	}
	sort.Slice(addons, func(i, j int) bool {
		return addons[i].Code < addons[j].Code
	})
	return addons, nil
}

func (s *MemoryStore) GetAddon(code string) (*models.Addon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.addons[code]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (s *MemoryStore) CreateAddon(addon *models.Addon) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.addons[addon.Code]; ok {
		return ErrDuplicate
	}
	now := time.Now().UTC()
	addon.CreatedAt = now
	addon.UpdatedAt = now
	s.addons[addon.Code] = *addon
	return nil
}

func (s *MemoryStore) UpdateAddon(code string, input models.UpdateAddonInput) (*models.Addon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.addons[code]
	if !ok {
		return nil, ErrNotFound
	}
	input.Apply(&a)
	a.UpdatedAt = time.Now().UTC()
	s.addons[code] = a
	return &a, nil
}

func (s *MemoryStore) ListTenants() ([]models.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tenants := make([]models.Tenant, 0, len(s.tenants))
	for _, t := range s.tenants {
		tenants = append(tenants, t)
	}
	sort.Slice(tenants, func(i, j int) bool {
		return tenants[i].CreatedAt.Before(tenants[j].CreatedAt)
	})
	return tenants, nil
}

func (s *MemoryStore) GetTenant(id string) (*models.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tenants[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (s *MemoryStore) CreateTenant(tenant *models.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tenants {
		if t.Slug == tenant.Slug {
			return ErrDuplicate
		}
	}
	if tenant.TenantID == "" {
		tenant.TenantID = uuid.NewString()
	}
	now := time.Now().UTC()
	tenant.CreatedAt = now
	tenant.UpdatedAt = now
	s.tenants[tenant.TenantID] = *tenant
	return nil
}

func (s *MemoryStore) GetUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) UpdateUserPassword(email, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	u, ok := s.users[key]
	if !ok {
		return ErrNotFound
	}
	u.Password = passwordHash
	s.users[key] = u
	return nil
}

func intPtr(v int) *int { return &v }

// seedHash uses the default bcrypt cost; the demo seed runs at startup and
// cost 14 would add seconds to it.
func seedHash(value string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(value), bcrypt.DefaultCost)
	return string(b)
}

func (s *MemoryStore) seed() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	plans := []models.Plan{
		{
			Code: models.PlanSilver,
			Name: "Basic Plan",
			Limits: models.PlanLimits{
				LocationsIncluded: 1,
				StylistsIncluded:  5,
			},
			Features: models.FeatureMap{
				"locations_included":     true,
				"stylists_included":      true,
				"appointments_per_month": true,
				"customer_support":       true,
				"basic_analytics":        true,
				"sms_notifications":      false,
				"email_marketing":        false,
				"advanced_analytics":     false,
				"custom_branding":        false,
				"api_access":             false,
			},
			OveragePolicy: models.OveragePolicy{
				AllowExtraLocations: true,
				AllowExtraStylists:  true,
			},
			PreviewAmountCents: intPtr(2999),
		},
		{
			Code: models.PlanGold,
			Name: "Professional Plan",
			Limits: models.PlanLimits{
				LocationsIncluded: 3,
				StylistsIncluded:  15,
			},
			Features: models.FeatureMap{
				"locations_included":     true,
				"stylists_included":      true,
				"appointments_per_month": true,
				"customer_support":       true,
				"basic_analytics":        true,
				"sms_notifications":      true,
				"email_marketing":        true,
				"advanced_analytics":     false,
				"custom_branding":        false,
				"api_access":             false,
			},
			OveragePolicy: models.OveragePolicy{
				AllowExtraLocations: true,
				AllowExtraStylists:  true,
			},
			PreviewAmountCents: intPtr(7999),
		},
		{
			Code: models.PlanPlatinum,
			Name: "Enterprise Plan",
			Limits: models.PlanLimits{
				LocationsIncluded: 10,
				StylistsIncluded:  50,
			},
			Features: models.FeatureMap{
				"locations_included":     true,
				"stylists_included":      true,
				"appointments_per_month": true,
				"customer_support":       true,
				"basic_analytics":        true,
				"sms_notifications":      true,
				"email_marketing":        true,
				"advanced_analytics":     true,
				"custom_branding":        true,
				"api_access":             true,
			},
			OveragePolicy: models.OveragePolicy{
				AllowExtraLocations: true,
				AllowExtraStylists:  true,
			},
			PreviewAmountCents: intPtr(19999),
		},
	}
	for i, p := range plans {
		p.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		p.UpdatedAt = p.CreatedAt
		s.plans[p.Code] = p
	}

	addons := []models.Addon{
		{
			Code:               models.AddonAIBooking,
			Name:               "AI Booking Assistant",
			Effect:             models.FeatureMap{"ai_booking": true},
			PreviewAmountCents: intPtr(1999),
		},
		{
			Code:               models.AddonVariablePricing,
			Name:               "Variable Pricing",
			Effect:             models.FeatureMap{"variable_pricing": true},
			PreviewAmountCents: intPtr(999),
		},
		{
			Code:               models.AddonValuePack,
			Name:               "Value Pack",
			Effect:             models.FeatureMap{"value_pack": true},
			PreviewAmountCents: intPtr(1499),
		},
	}
	for _, a := range addons {
		a.CreatedAt = base
		a.UpdatedAt = base
		s.addons[a.Code] = a
	}

	tenants := []models.Tenant{
		{
			TenantID:       uuid.NewString(),
			Name:           "Beauty Haven Salon",
			Slug:           "beauty-haven",
			Email:          "contact@beautyhaven.com",
			Phone:          "+1-555-0123",
			Status:         models.TenantStatusActive,
			Plan:           "Professional Plan",
			LocationsCount: 1,
		},
		{
			TenantID:       uuid.NewString(),
			Name:           "Elite Hair Studio",
			Slug:           "elite-hair",
			Email:          "info@elitehair.com",
			Phone:          "+1-555-0456",
			Status:         models.TenantStatusActive,
			Plan:           "Enterprise Plan",
			LocationsCount: 2,
		},
		{
			TenantID:       uuid.NewString(),
			Name:           "Urban Cuts",
			Slug:           "urban-cuts",
			Email:          "hello@urbancuts.com",
			Phone:          "+1-555-0789",
			Status:         models.TenantStatusActive,
			Plan:           "Basic Plan",
			LocationsCount: 1,
		},
	}
	for i, t := range tenants {
		t.CreatedAt = base.Add(time.Duration(i) * 24 * time.Hour)
		t.UpdatedAt = t.CreatedAt
		s.tenants[t.TenantID] = t
	}

	admin := models.User{
		ID:       uuid.New(),
		Email:    "arun@slotifyme.com",
		Password: seedHash("admin123"),
		Name:     "Arun",
		Phone:    "+14155550100",
		Role:     "admin",
		SecurityAnswers: models.JSONB{
			"question1": seedHash("downtown barbershop"),
			"question2": seedHash("johnson"),
			"question3": seedHash("2015"),
		},
		IsActive: true,
	}
	s.users[admin.Email] = admin
}
