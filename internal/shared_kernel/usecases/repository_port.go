package usecases

import (
	"context"
	"errors"

	"formflow-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/shared_kernel/usecases/repository_port_mock.go -package=usecases -mock_names=TenantRepository=MockTenantRepository,UserRepository=MockUserRepository

var (
	ErrTenantNotFound        = errors.New("tenant not found")
	ErrTenantDuplicated      = errors.New("tenant already exists")
	ErrTenantSoftDeleted     = errors.New("tenant is soft deleted")
	ErrTenantVersionConflict = errors.New("tenant version conflict")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserDuplicated        = errors.New("user already exists")
	ErrUserLimitExceeded     = errors.New("user limit exceeded for tenant plan")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)

// Pagination encapsulates pagination parameters for repository queries
type Pagination struct {
	Limit  int
	Offset int
}

type TenantRepository interface {
	Create(ctx context.Context, tenant domain.Tenant) error
	GetByID(ctx context.Context, id domain.ID) (domain.Tenant, error)
	GetBySubdomain(ctx context.Context, subdomain string) (domain.Tenant, error)
	Update(ctx context.Context, tenant domain.Tenant) error
	FindAll(ctx context.Context, includeDeleted bool, pagination Pagination) ([]domain.Tenant, int, error)
}

type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id domain.ID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Update(ctx context.Context, user domain.User) error
	FindByTenant(ctx context.Context, tenantID domain.ID, pagination Pagination) ([]domain.User, int, error)
	CountByTenant(ctx context.Context, tenantID domain.ID) (int, error)
}
