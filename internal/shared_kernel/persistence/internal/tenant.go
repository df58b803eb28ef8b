package internal

import (
	"time"

	"formflow-server/internal/shared_kernel/domain"
)

type Tenant struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	Version   int        `json:"version"`
	Name      string     `json:"name" gorm:"not null"`
	Subdomain string     `json:"subdomain" gorm:"uniqueIndex;not null"`
	Plan      string     `json:"plan" gorm:"not null;default:free"`
	MaxUsers  int        `json:"max_users"`
	MaxForms  int        `json:"max_forms"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (Tenant) TableName() string {
	return "tenants"
}

func (t Tenant) ToDomain() domain.Tenant {
	return domain.Tenant{
		ID:        domain.ID(t.ID),
		Name:      t.Name,
		Subdomain: t.Subdomain,
		Plan:      domain.PlanType(t.Plan),
		MaxUsers:  t.MaxUsers,
		MaxForms:  t.MaxForms,
		IsActive:  t.IsActive,
		Version:   t.Version,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		DeletedAt: t.DeletedAt,
	}
}

func FromTenant(value domain.Tenant) Tenant {
	return Tenant{
		ID:        value.ID.String(),
		Version:   value.Version,
		Name:      value.Name,
		Subdomain: value.Subdomain,
		Plan:      string(value.Plan),
		MaxUsers:  value.MaxUsers,
		MaxForms:  value.MaxForms,
		IsActive:  value.IsActive,
		CreatedAt: value.CreatedAt,
		UpdatedAt: value.UpdatedAt,
		DeletedAt: value.DeletedAt,
	}
}
