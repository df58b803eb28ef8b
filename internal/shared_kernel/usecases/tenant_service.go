package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"formflow-server/internal/shared_kernel/domain"
)

type TenantService interface {
	CreateTenant(ctx context.Context, tenant domain.Tenant) error
	GetTenant(ctx context.Context, id domain.ID) (domain.Tenant, error)
	GetTenantBySubdomain(ctx context.Context, subdomain string) (domain.Tenant, error)
	ListTenants(ctx context.Context, includeDeleted bool, pagination Pagination) ([]domain.Tenant, int, error)
	UpdateTenant(ctx context.Context, tenant domain.Tenant) error
	ChangeTenantPlan(ctx context.Context, id domain.ID, plan domain.PlanType) error
	SoftDeleteTenant(ctx context.Context, id domain.ID) error
	ActivateTenant(ctx context.Context, id domain.ID) error
	DeactivateTenant(ctx context.Context, id domain.ID) error
}

func NewTenantService(repository TenantRepository) *SimpleTenantService {
	return &SimpleTenantService{
		repository: repository,
	}
}

var _ TenantService = &SimpleTenantService{}

type SimpleTenantService struct {
	repository TenantRepository
}

func (s *SimpleTenantService) CreateTenant(ctx context.Context, tenant domain.Tenant) error {
	existingTenant, err := s.repository.GetBySubdomain(ctx, tenant.Subdomain)
	if err != nil && !errors.Is(err, ErrTenantNotFound) {
		slog.Error("checking existing tenant", slog.String("error", err.Error()))
		return fmt.Errorf("checking existing tenant: %w", err)
	}

	if existingTenant.ID != "" {
		slog.Warn("tenant already exists", slog.String("subdomain", tenant.Subdomain))
		return ErrTenantDuplicated
	}

	err = s.repository.Create(ctx, tenant)
	if err != nil {
		slog.Error("creating tenant", slog.String("error", err.Error()))
		return fmt.Errorf("creating tenant: %w", err)
	}

	slog.Info("tenant created successfully",
		slog.String("id", tenant.ID.String()),
		slog.String("subdomain", tenant.Subdomain),
		slog.String("plan", string(tenant.Plan)))

	return nil
}

func (s *SimpleTenantService) GetTenant(ctx context.Context, id domain.ID) (domain.Tenant, error) {
	tenant, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return domain.Tenant{}, ErrTenantNotFound
		}
		slog.Error("getting tenant", slog.String("error", err.Error()))
		return domain.Tenant{}, fmt.Errorf("getting tenant: %w", err)
	}

	return tenant, nil
}

func (s *SimpleTenantService) GetTenantBySubdomain(ctx context.Context, subdomain string) (domain.Tenant, error) {
	tenant, err := s.repository.GetBySubdomain(ctx, subdomain)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return domain.Tenant{}, ErrTenantNotFound
		}
		slog.Error("getting tenant by subdomain", slog.String("error", err.Error()))
		return domain.Tenant{}, fmt.Errorf("getting tenant by subdomain: %w", err)
	}

	return tenant, nil
}

func (s *SimpleTenantService) ListTenants(ctx context.Context, includeDeleted bool, pagination Pagination) ([]domain.Tenant, int, error) {
	tenants, total, err := s.repository.FindAll(ctx, includeDeleted, pagination)
	if err != nil {
		slog.Error("listing tenants", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing tenants: %w", err)
	}

	return tenants, total, nil
}

func (s *SimpleTenantService) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	existingTenant, err := s.repository.GetByID(ctx, tenant.ID)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return ErrTenantNotFound
		}
		return fmt.Errorf("getting tenant: %w", err)
	}

	if existingTenant.IsDeleted() {
		return ErrTenantSoftDeleted
	}

	// Check version for optimistic locking
	if tenant.Version != 0 && tenant.Version != existingTenant.Version {
		return ErrTenantVersionConflict
	}

	// Check if new subdomain conflicts with another tenant
	if tenant.Subdomain != "" && tenant.Subdomain != existingTenant.Subdomain {
		existing, err := s.repository.GetBySubdomain(ctx, tenant.Subdomain)
		if err != nil && !errors.Is(err, ErrTenantNotFound) {
			return fmt.Errorf("checking subdomain conflict: %w", err)
		}
		if err == nil && existing.ID != tenant.ID {
			return ErrTenantDuplicated
		}
	}

	existingTenant.UpdateInfo(tenant.Name, tenant.Subdomain)

	err = s.repository.Update(ctx, existingTenant)
	if err != nil {
		slog.Error("updating tenant", slog.String("error", err.Error()))
		return fmt.Errorf("updating tenant: %w", err)
	}

	slog.Info("tenant updated successfully", slog.String("id", tenant.ID.String()), slog.Int("version", existingTenant.Version))
	return nil
}

func (s *SimpleTenantService) ChangeTenantPlan(ctx context.Context, id domain.ID, plan domain.PlanType) error {
	tenant, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return ErrTenantNotFound
		}
		return fmt.Errorf("getting tenant: %w", err)
	}

	if tenant.IsDeleted() {
		return ErrTenantSoftDeleted
	}

	if err := tenant.ChangePlan(plan); err != nil {
		return fmt.Errorf("changing plan: %w", err)
	}

	err = s.repository.Update(ctx, tenant)
	if err != nil {
		slog.Error("changing tenant plan", slog.String("error", err.Error()))
		return fmt.Errorf("changing tenant plan: %w", err)
	}

	slog.Info("tenant plan changed",
		slog.String("id", id.String()),
		slog.String("plan", string(plan)))
	return nil
}

func (s *SimpleTenantService) SoftDeleteTenant(ctx context.Context, id domain.ID) error {
	tenant, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return ErrTenantNotFound
		}
		return fmt.Errorf("getting tenant: %w", err)
	}

	if tenant.IsDeleted() {
		return ErrTenantSoftDeleted
	}

	tenant.SoftDelete()

	err = s.repository.Update(ctx, tenant)
	if err != nil {
		slog.Error("soft deleting tenant", slog.String("error", err.Error()))
		return fmt.Errorf("soft deleting tenant: %w", err)
	}

	slog.Info("tenant soft deleted successfully", slog.String("id", id.String()))
	return nil
}

func (s *SimpleTenantService) ActivateTenant(ctx context.Context, id domain.ID) error {
	tenant, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return ErrTenantNotFound
		}
		return fmt.Errorf("getting tenant: %w", err)
	}

	if tenant.IsDeleted() {
		return ErrTenantSoftDeleted
	}

	tenant.Activate()

	err = s.repository.Update(ctx, tenant)
	if err != nil {
		slog.Error("activating tenant", slog.String("error", err.Error()))
		return fmt.Errorf("activating tenant: %w", err)
	}

	slog.Info("tenant activated successfully", slog.String("id", id.String()))
	return nil
}

func (s *SimpleTenantService) DeactivateTenant(ctx context.Context, id domain.ID) error {
	tenant, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return ErrTenantNotFound
		}
		return fmt.Errorf("getting tenant: %w", err)
	}

	if tenant.IsDeleted() {
		return ErrTenantSoftDeleted
	}

	tenant.Deactivate()

	err = s.repository.Update(ctx, tenant)
	if err != nil {
		slog.Error("deactivating tenant", slog.String("error", err.Error()))
		return fmt.Errorf("deactivating tenant: %w", err)
	}

	slog.Info("tenant deactivated successfully", slog.String("id", id.String()))
	return nil
}
