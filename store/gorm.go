package store

import (
	"errors"
	"strings"

	"slotifyme-admin/models"

	"gorm.io/gorm"
)

// GormStore is the Postgres-backed implementation, selected when DB_URL is
// configured.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate creates or updates the schema.
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.Plan{},
		&models.Addon{},
		&models.Tenant{},
		&models.User{},
	)
}

func (s *GormStore) ListPlans() ([]models.Plan, error) {
	var plans []models.Plan
	if err := s.db.Order("created_at").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *GormStore) GetPlan(code string) (*models.Plan, error) {
	var plan models.Plan
	if err := s.db.First(&plan, "code = ?", code).Error; err != nil {
		return nil, translate(err)
	}
	return &plan, nil
}

func (s *GormStore) CreatePlan(plan *models.Plan) error {
	var existing models.Plan
	err := s.db.First(&existing, "code = ?", plan.Code).Error
	if err == nil {
		return ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(plan).Error
}

func (s *GormStore) UpdatePlan(code string, input models.UpdatePlanInput) (*models.Plan, error) {
	var plan models.Plan
	if err := s.db.First(&plan, "code = ?", code).Error; err != nil {
		return nil, translate(err)
	}

	input.Apply(&plan)

	if err := s.db.Save(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *GormStore) DeletePlan(code string) error {
	var plan models.Plan
	if err := s.db.First(&plan, "code = ?", code).Error; err != nil {
		return translate(err)
	}

	var count int64
	if err := s.db.Model(&models.Tenant{}).
		Where("plan = ? OR plan = ?", plan.Code, plan.Name).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrInUse
	}

	return s.db.Delete(&plan).Error
}

func (s *GormStore) ListAddons() ([]models.Addon, error) {
	var addons []models.Addon
	if err := s.db.Order("code").Find(&addons).Error; err != nil {
		return nil, err
	}
	return addons, nil
}

func (s *GormStore) GetAddon(code string) (*models.Addon, error) {
	var addon models.Addon
	if err := s.db.First(&addon, "code = ?", code).Error; err != nil {
		return nil, translate(err)
	}
	return &addon, nil
}

func (s *GormStore) CreateAddon(addon *models.Addon) error {
	var existing models.Addon
	err := s.db.First(&existing, "code = ?", addon.Code).Error
	if err == nil {
		return ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(addon).Error
}

func (s *GormStore) UpdateAddon(code string, input models.UpdateAddonInput) (*models.Addon, error) {
	var addon models.Addon
	if err := s.db.First(&addon, "code = ?", code).Error; err != nil {
		return nil, translate(err)
	}

	input.Apply(&addon)

	if err := s.db.Save(&addon).Error; err != nil {
		return nil, err
	}
	return &addon, nil
}

func (s *GormStore) ListTenants() ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := s.db.Order("created_at").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

func (s *GormStore) GetTenant(id string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := s.db.First(&tenant, "tenant_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &tenant, nil
}

func (s *GormStore) CreateTenant(tenant *models.Tenant) error {
	var existing models.Tenant
	err := s.db.First(&existing, "slug = ?", tenant.Slug).Error
	if err == nil {
		return ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(tenant).Error
}

func (s *GormStore) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", strings.ToLower(email)).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) UpdateUserPassword(email, passwordHash string) error {
	result := s.db.Model(&models.User{}).
		Where("email = ?", strings.ToLower(email)).
		Update("password", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
