package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"formflow-server/internal/forms/domain"
	shareddomain "formflow-server/internal/shared_kernel/domain"
	sharedusecases "formflow-server/internal/shared_kernel/usecases"
)

//go:generate mockgen -source=form_service.go -destination=../../../test/unit/doubles/forms/usecases/form_service_mock.go -package=usecases -mock_names=FormService=MockFormService

type FormService interface {
	CreateForm(ctx context.Context, form domain.Form) error
	GetForm(ctx context.Context, id shareddomain.ID) (domain.Form, error)
	ListForms(ctx context.Context, tenantID shareddomain.ID, includeDeleted bool, pagination Pagination) ([]domain.Form, int, error)
	UpdateForm(ctx context.Context, form domain.Form) error
	PublishForm(ctx context.Context, id, tenantID shareddomain.ID) error
	UnpublishForm(ctx context.Context, id, tenantID shareddomain.ID) error
	SoftDeleteForm(ctx context.Context, id, tenantID shareddomain.ID) error
}

func NewFormService(forms FormRepository, tenants sharedusecases.TenantRepository, cache FormCache) *SimpleFormService {
	return &SimpleFormService{
		forms:   forms,
		tenants: tenants,
		cache:   cache,
	}
}

var _ FormService = &SimpleFormService{}

type SimpleFormService struct {
	forms   FormRepository
	tenants sharedusecases.TenantRepository
	cache   FormCache
}

// CreateForm enforces the tenant plan's form quota. The count check and the
// insert are not atomic; two concurrent requests can both pass the check.
func (s *SimpleFormService) CreateForm(ctx context.Context, form domain.Form) error {
	tenant, err := s.tenants.GetByID(ctx, form.TenantID)
	if err != nil {
		if errors.Is(err, sharedusecases.ErrTenantNotFound) {
			return sharedusecases.ErrTenantNotFound
		}
		return fmt.Errorf("getting tenant: %w", err)
	}

	if tenant.IsDeleted() || !tenant.IsActive {
		return sharedusecases.ErrTenantSoftDeleted
	}

	currentCount, err := s.forms.CountByTenant(ctx, form.TenantID)
	if err != nil {
		return fmt.Errorf("counting tenant forms: %w", err)
	}

	if !tenant.IsWithinFormLimit(currentCount) {
		slog.Warn("form limit reached",
			slog.String("tenant_id", tenant.ID.String()),
			slog.String("plan", string(tenant.Plan)),
			slog.Int("current_count", currentCount))
		return ErrFormLimitExceeded
	}

	err = s.forms.Create(ctx, form)
	if err != nil {
		slog.Error("creating form", slog.String("error", err.Error()))
		return fmt.Errorf("creating form: %w", err)
	}

	slog.Info("form created successfully",
		slog.String("id", form.ID.String()),
		slog.String("tenant_id", form.TenantID.String()),
		slog.Int("field_count", len(form.Fields)))

	return nil
}

func (s *SimpleFormService) GetForm(ctx context.Context, id shareddomain.ID) (domain.Form, error) {
	if form, ok := s.cache.GetForm(ctx, id); ok {
		return form, nil
	}

	form, err := s.forms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrFormNotFound) {
			return domain.Form{}, ErrFormNotFound
		}
		slog.Error("getting form", slog.String("error", err.Error()))
		return domain.Form{}, fmt.Errorf("getting form: %w", err)
	}

	s.cache.SetForm(ctx, form)

	return form, nil
}

func (s *SimpleFormService) ListForms(ctx context.Context, tenantID shareddomain.ID, includeDeleted bool, pagination Pagination) ([]domain.Form, int, error) {
	forms, total, err := s.forms.FindByTenant(ctx, tenantID, includeDeleted, pagination)
	if err != nil {
		slog.Error("listing forms", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing forms: %w", err)
	}

	return forms, total, nil
}

func (s *SimpleFormService) UpdateForm(ctx context.Context, form domain.Form) error {
	existing, err := s.forms.GetByID(ctx, form.ID)
	if err != nil {
		if errors.Is(err, ErrFormNotFound) {
			return ErrFormNotFound
		}
		return fmt.Errorf("getting form: %w", err)
	}

	if existing.IsDeleted() {
		return ErrFormSoftDeleted
	}
	if existing.TenantID != form.TenantID {
		return ErrFormNotFound
	}

	err = s.forms.Update(ctx, form)
	if err != nil {
		slog.Error("updating form", slog.String("error", err.Error()))
		return fmt.Errorf("updating form: %w", err)
	}

	s.cache.Invalidate(ctx, form.ID)

	slog.Info("form updated successfully", slog.String("id", form.ID.String()))
	return nil
}

func (s *SimpleFormService) PublishForm(ctx context.Context, id, tenantID shareddomain.ID) error {
	return s.mutateForm(ctx, id, tenantID, "publishing form", func(form *domain.Form) {
		form.Publish()
	})
}

func (s *SimpleFormService) UnpublishForm(ctx context.Context, id, tenantID shareddomain.ID) error {
	return s.mutateForm(ctx, id, tenantID, "unpublishing form", func(form *domain.Form) {
		form.Unpublish()
	})
}

func (s *SimpleFormService) SoftDeleteForm(ctx context.Context, id, tenantID shareddomain.ID) error {
	return s.mutateForm(ctx, id, tenantID, "soft deleting form", func(form *domain.Form) {
		form.SoftDelete()
	})
}

func (s *SimpleFormService) mutateForm(ctx context.Context, id, tenantID shareddomain.ID, operation string, mutate func(*domain.Form)) error {
	form, err := s.forms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrFormNotFound) {
			return ErrFormNotFound
		}
		return fmt.Errorf("getting form: %w", err)
	}

	if form.TenantID != tenantID {
		return ErrFormNotFound
	}
	if form.IsDeleted() {
		return ErrFormSoftDeleted
	}

	mutate(&form)

	err = s.forms.Update(ctx, form)
	if err != nil {
		slog.Error(operation, slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", operation, err)
	}

	s.cache.Invalidate(ctx, id)

	slog.Info(operation, slog.String("id", id.String()), slog.String("status", "ok"))
	return nil
}
