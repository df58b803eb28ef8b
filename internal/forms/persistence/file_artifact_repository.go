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

func NewFileArtifactRepository(orm sql.ORM) (*SimpleFileArtifactRepository, error) {
	err := orm.AutoMigrate(&internal.FileArtifact{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFileArtifactRepository{
		orm: orm,
	}, nil
}

var _ usecases.FileArtifactRepository = (*SimpleFileArtifactRepository)(nil)

type SimpleFileArtifactRepository struct {
	orm sql.ORM
}

func (r *SimpleFileArtifactRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.FileArtifact, error) {
	var entity internal.FileArtifact
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.FileArtifact{}, usecases.ErrArtifactNotFound
	}

	if err != nil {
		return domain.FileArtifact{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleFileArtifactRepository) FindByTenant(ctx context.Context, tenantID shareddomain.ID, pagination usecases.Pagination) ([]domain.FileArtifact, int, error) {
	query := r.orm.WithContext(ctx).Model(&internal.FileArtifact{}).Where("tenant_id = ?", tenantID.String())

	var total int64
	err := query.Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database count: %w", err)
	}

	var entities []internal.FileArtifact
	err = query.
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.FileArtifact, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}
