package persistence

import (
	"context"
	"errors"
	"fmt"

	"formflow-server/internal/infra/sql"
	"formflow-server/internal/shared_kernel/domain"
	"formflow-server/internal/shared_kernel/persistence/internal"
	"formflow-server/internal/shared_kernel/usecases"
)

func NewUserRepository(orm sql.ORM) (*SimpleUserRepository, error) {
	err := orm.AutoMigrate(&internal.User{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleUserRepository{
		orm: orm,
	}, nil
}

var _ usecases.UserRepository = (*SimpleUserRepository)(nil)

type SimpleUserRepository struct {
	orm sql.ORM
}

func (r *SimpleUserRepository) Create(ctx context.Context, user domain.User) error {
	entity := internal.FromUser(user)
	err := r.orm.
		WithContext(ctx).
		Create(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleUserRepository) GetByID(ctx context.Context, id domain.ID) (domain.User, error) {
	var entity internal.User
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.User{}, usecases.ErrUserNotFound
	}

	if err != nil {
		return domain.User{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var entity internal.User
	err := r.orm.
		WithContext(ctx).
		Where("email = ?", email).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.User{}, usecases.ErrUserNotFound
	}

	if err != nil {
		return domain.User{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleUserRepository) Update(ctx context.Context, user domain.User) error {
	entity := internal.FromUser(user)
	err := r.orm.
		WithContext(ctx).
		Save(&entity).
		Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

func (r *SimpleUserRepository) FindByTenant(ctx context.Context, tenantID domain.ID, pagination usecases.Pagination) ([]domain.User, int, error) {
	query := r.orm.
		WithContext(ctx).
		Model(&internal.User{}).
		Where("tenant_id = ?", tenantID.String())

	var total int64
	err := query.Count(&total).Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database count: %w", err)
	}

	var entities []internal.User
	err = query.
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	users := make([]domain.User, len(entities))
	for i, entity := range entities {
		users[i] = entity.ToDomain()
	}

	return users, int(total), nil
}

func (r *SimpleUserRepository) CountByTenant(ctx context.Context, tenantID domain.ID) (int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.User{}).
		Where("tenant_id = ?", tenantID.String()).
		Count(&total).
		Error()
	if err != nil {
		return 0, fmt.Errorf("database count: %w", err)
	}

	return int(total), nil
}
