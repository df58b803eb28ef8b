package persistence

import (
	"context"
	"errors"
	"fmt"

	"formflow-server/internal/forms/domain"
	"formflow-server/internal/forms/persistence/internal"
	"formflow-server/internal/forms/usecases"
	"formflow-server/internal/infra/sql"
	shareddomain "formflow-server/internal/shared_kernel/domain"
)

func NewFormRepository(orm sql.ORM) (*SimpleFormRepository, error) {
	err := orm.AutoMigrate(&internal.Form{}, &internal.FormField{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFormRepository{
		orm: orm,
	}, nil
}

var _ usecases.FormRepository = (*SimpleFormRepository)(nil)

type SimpleFormRepository struct {
	orm sql.ORM
}

func (r *SimpleFormRepository) Create(ctx context.Context, form domain.Form) error {
	entity, err := internal.FromForm(form)
	if err != nil {
		return fmt.Errorf("converting form: %w", err)
	}

	err = r.orm.
		WithContext(ctx).
		Create(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleFormRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.Form, error) {
	var entity internal.Form
	err := r.orm.
		WithContext(ctx).
		Preload("Fields", sql.OrderedBy("field_order")).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Form{}, usecases.ErrFormNotFound
	}

	if err != nil {
		return domain.Form{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain()
}

// Update replaces the form row and its entire field set. Fields are treated
// as a value collection owned by the form, not as independently mutable rows.
func (r *SimpleFormRepository) Update(ctx context.Context, form domain.Form) error {
	entity, err := internal.FromForm(form)
	if err != nil {
		return fmt.Errorf("converting form: %w", err)
	}

	fields := entity.Fields
	entity.Fields = nil

	err = r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.Save(&entity).Error(); err != nil {
			return fmt.Errorf("saving form: %w", err)
		}

		if err := tx.Where("form_id = ?", entity.ID).Delete(&internal.FormField{}).Error(); err != nil {
			return fmt.Errorf("deleting old fields: %w", err)
		}

		for i := range fields {
			if err := tx.Create(&fields[i]).Error(); err != nil {
				return fmt.Errorf("inserting field: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

func (r *SimpleFormRepository) FindByTenant(ctx context.Context, tenantID shareddomain.ID, includeDeleted bool, pagination usecases.Pagination) ([]domain.Form, int, error) {
	query := r.orm.WithContext(ctx).Model(&internal.Form{}).Where("tenant_id = ?", tenantID.String())

	if !includeDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var total int64
	err := query.Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database count: %w", err)
	}

	var entities []internal.Form
	err = query.
		Preload("Fields", sql.OrderedBy("field_order")).
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Form, len(entities))
	for i, entity := range entities {
		form, err := entity.ToDomain()
		if err != nil {
			return nil, 0, err
		}
		result[i] = form
	}

	return result, int(total), nil
}

func (r *SimpleFormRepository) CountByTenant(ctx context.Context, tenantID shareddomain.ID) (int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Form{}).
		Where("tenant_id = ? AND deleted_at IS NULL", tenantID.String()).
		Count(&total).
		Error()
	if err != nil {
		return 0, fmt.Errorf("database count: %w", err)
	}

	return int(total), nil
}
