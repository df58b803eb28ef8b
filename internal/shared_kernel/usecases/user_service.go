package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"formflow-server/internal/shared_kernel/domain"
)

type UserService interface {
	CreateUser(ctx context.Context, user domain.User) error
	GetUser(ctx context.Context, id domain.ID) (domain.User, error)
	ListUsers(ctx context.Context, tenantID domain.ID, pagination Pagination) ([]domain.User, int, error)
	Authenticate(ctx context.Context, email, password string) (domain.User, error)
	DeactivateUser(ctx context.Context, id domain.ID) error
}

func NewUserService(users UserRepository, tenants TenantRepository) *SimpleUserService {
	return &SimpleUserService{
		users:   users,
		tenants: tenants,
	}
}

var _ UserService = &SimpleUserService{}

type SimpleUserService struct {
	users   UserRepository
	tenants TenantRepository
}

// CreateUser enforces the tenant plan's user quota. The count check and the
// insert are not atomic; two concurrent requests can both pass the check.
func (s *SimpleUserService) CreateUser(ctx context.Context, user domain.User) error {
	tenant, err := s.tenants.GetByID(ctx, user.TenantID)
	if err != nil {
		if errors.Is(err, ErrTenantNotFound) {
			return ErrTenantNotFound
		}
		return fmt.Errorf("getting tenant: %w", err)
	}

	if tenant.IsDeleted() || !tenant.IsActive {
		return ErrTenantSoftDeleted
	}

	currentCount, err := s.users.CountByTenant(ctx, user.TenantID)
	if err != nil {
		return fmt.Errorf("counting tenant users: %w", err)
	}

	if !tenant.IsWithinUserLimit(currentCount) {
		slog.Warn("user limit reached",
			slog.String("tenant_id", tenant.ID.String()),
			slog.String("plan", string(tenant.Plan)),
			slog.Int("current_count", currentCount))
		return ErrUserLimitExceeded
	}

	existing, err := s.users.GetByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("checking existing user: %w", err)
	}
	if existing.ID != "" {
		return ErrUserDuplicated
	}

	err = s.users.Create(ctx, user)
	if err != nil {
		slog.Error("creating user", slog.String("error", err.Error()))
		return fmt.Errorf("creating user: %w", err)
	}

	slog.Info("user created successfully",
		slog.String("id", user.ID.String()),
		slog.String("tenant_id", user.TenantID.String()),
		slog.String("role", string(user.Role)))

	return nil
}

func (s *SimpleUserService) GetUser(ctx context.Context, id domain.ID) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		slog.Error("getting user", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("getting user: %w", err)
	}

	return user, nil
}

func (s *SimpleUserService) ListUsers(ctx context.Context, tenantID domain.ID, pagination Pagination) ([]domain.User, int, error) {
	users, total, err := s.users.FindByTenant(ctx, tenantID, pagination)
	if err != nil {
		slog.Error("listing users", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing users: %w", err)
	}

	return users, total, nil
}

// Authenticate verifies credentials and records the login time. It returns
// ErrInvalidCredentials for unknown emails and wrong passwords alike so the
// response does not leak which accounts exist.
func (s *SimpleUserService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		slog.Error("getting user by email", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("getting user by email: %w", err)
	}

	if !user.IsActive || !user.CheckPassword(password) {
		return domain.User{}, ErrInvalidCredentials
	}

	user.RecordLogin()
	if err := s.users.Update(ctx, user); err != nil {
		slog.Error("recording login", slog.String("error", err.Error()))
	}

	slog.Info("user authenticated",
		slog.String("id", user.ID.String()),
		slog.String("tenant_id", user.TenantID.String()))

	return user, nil
}

func (s *SimpleUserService) DeactivateUser(ctx context.Context, id domain.ID) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("getting user: %w", err)
	}

	user.Deactivate()

	err = s.users.Update(ctx, user)
	if err != nil {
		slog.Error("deactivating user", slog.String("error", err.Error()))
		return fmt.Errorf("deactivating user: %w", err)
	}

	slog.Info("user deactivated successfully", slog.String("id", id.String()))
	return nil
}
