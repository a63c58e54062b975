// Package store isolates the backing data behind a repository interface:
// the in-memory implementation serves demo and tests, the gorm one serves a
// real Postgres deployment. Mutable state is owned here and injected, never
// imported as a singleton.
package store

import (
	"errors"

	"slotifyme-admin/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
	ErrInUse     = errors.New("record is in use")
)

type Store interface {
	ListPlans() ([]models.Plan, error)
	GetPlan(code string) (*models.Plan, error)
	CreatePlan(plan *models.Plan) error
	UpdatePlan(code string, input models.UpdatePlanInput) (*models.Plan, error)
	DeletePlan(code string) error

	ListAddons() ([]models.Addon, error)
	GetAddon(code string) (*models.Addon, error)
	CreateAddon(addon *models.Addon) error
	UpdateAddon(code string, input models.UpdateAddonInput) (*models.Addon, error)

	ListTenants() ([]models.Tenant, error)
	GetTenant(id string) (*models.Tenant, error)
	CreateTenant(tenant *models.Tenant) error

	GetUserByEmail(email string) (*models.User, error)
	UpdateUserPassword(email, passwordHash string) error
}
