package internal

import (
	"time"

	"formflow-server/internal/shared_kernel/domain"
)

type TenantCreateRequest struct {
	Name      string `json:"name"`
	Subdomain string `json:"subdomain"`
	Plan      string `json:"plan,omitempty"`
}

type TenantUpdateRequest struct {
	Name      string `json:"name,omitempty"`
	Subdomain string `json:"subdomain,omitempty"`
	Version   int    `json:"version,omitempty"`
}

type TenantChangePlanRequest struct {
	Plan string `json:"plan"`
}

type TenantResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Subdomain string     `json:"subdomain"`
	Plan      string     `json:"plan"`
	MaxUsers  int        `json:"max_users"`
	MaxForms  int        `json:"max_forms"`
	IsActive  bool       `json:"is_active"`
	Version   int        `json:"version"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

func ToTenantResponse(tenant domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:        tenant.ID.String(),
		Name:      tenant.Name,
		Subdomain: tenant.Subdomain,
		Plan:      string(tenant.Plan),
		MaxUsers:  tenant.MaxUsers,
		MaxForms:  tenant.MaxForms,
		IsActive:  tenant.IsActive,
		Version:   tenant.Version,
		CreatedAt: tenant.CreatedAt,
		UpdatedAt: tenant.UpdatedAt,
		DeletedAt: tenant.DeletedAt,
	}
}
