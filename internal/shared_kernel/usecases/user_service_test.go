package usecases_test

import (
	"context"

	"formflow-server/internal/shared_kernel/domain"
	"formflow-server/internal/shared_kernel/usecases"
	mockshared "formflow-server/test/unit/doubles/shared_kernel/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("SimpleUserService", func() {
	var (
		ctrl        *gomock.Controller
		mockUsers   *mockshared.MockUserRepository
		mockTenants *mockshared.MockTenantRepository
		service     usecases.UserService
		ctx         context.Context
		tenant      domain.Tenant
		user        domain.User
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockUsers = mockshared.NewMockUserRepository(ctrl)
		mockTenants = mockshared.NewMockTenantRepository(ctrl)
		service = usecases.NewUserService(mockUsers, mockTenants)
		ctx = context.Background()

		var err error
		tenant, err = domain.NewTenantBuilder().
			WithName("Acme").
			WithSubdomain("acme").
			WithPlan(domain.PlanPro).
			Build()
		Expect(err).ToNot(HaveOccurred())

		user, err = domain.NewUserBuilder().
			WithTenantID(tenant.ID).
			WithEmail("ada@acme.test").
			WithRole(domain.RoleEditor).
			WithPassword("correct horse battery").
			Build()
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("CreateUser", func() {
		It("creates a user within the plan limit", func() {
			mockTenants.EXPECT().GetByID(ctx, tenant.ID).Return(tenant, nil)
			mockUsers.EXPECT().CountByTenant(ctx, tenant.ID).Return(3, nil)
			mockUsers.EXPECT().GetByEmail(ctx, user.Email).Return(domain.User{}, usecases.ErrUserNotFound)
			mockUsers.EXPECT().Create(ctx, user).Return(nil)

			err := service.CreateUser(ctx, user)

			Expect(err).ToNot(HaveOccurred())
		})

		It("enforces the plan's user quota", func() {
			mockTenants.EXPECT().GetByID(ctx, tenant.ID).Return(tenant, nil)
			mockUsers.EXPECT().CountByTenant(ctx, tenant.ID).Return(tenant.MaxUsers, nil)

			err := service.CreateUser(ctx, user)

			Expect(err).To(MatchError(usecases.ErrUserLimitExceeded))
		})

		It("rejects duplicate emails", func() {
			mockTenants.EXPECT().GetByID(ctx, tenant.ID).Return(tenant, nil)
			mockUsers.EXPECT().CountByTenant(ctx, tenant.ID).Return(0, nil)
			mockUsers.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)

			err := service.CreateUser(ctx, user)

			Expect(err).To(MatchError(usecases.ErrUserDuplicated))
		})

		It("refuses deactivated tenants", func() {
			deactivated := tenant
			deactivated.Deactivate()

			mockTenants.EXPECT().GetByID(ctx, tenant.ID).Return(deactivated, nil)

			err := service.CreateUser(ctx, user)

			Expect(err).To(MatchError(usecases.ErrTenantSoftDeleted))
		})
	})

	Context("Authenticate", func() {
		It("returns the user and records the login", func() {
			mockUsers.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)
			mockUsers.EXPECT().
				Update(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, updated domain.User) error {
					Expect(updated.LastLoginAt).ToNot(BeNil())
					return nil
				})

			authenticated, err := service.Authenticate(ctx, user.Email, "correct horse battery")

			Expect(err).ToNot(HaveOccurred())
			Expect(authenticated.ID).To(Equal(user.ID))
		})

		It("rejects a wrong password", func() {
			mockUsers.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)

			_, err := service.Authenticate(ctx, user.Email, "wrong")

			Expect(err).To(MatchError(usecases.ErrInvalidCredentials))
		})

		It("does not reveal unknown accounts", func() {
			mockUsers.EXPECT().
				GetByEmail(ctx, "ghost@acme.test").
				Return(domain.User{}, usecases.ErrUserNotFound)

			_, err := service.Authenticate(ctx, "ghost@acme.test", "anything")

			Expect(err).To(MatchError(usecases.ErrInvalidCredentials))
		})

		It("rejects deactivated users", func() {
			inactive := user
			inactive.Deactivate()

			mockUsers.EXPECT().GetByEmail(ctx, user.Email).Return(inactive, nil)

			_, err := service.Authenticate(ctx, user.Email, "correct horse battery")

			Expect(err).To(MatchError(usecases.ErrInvalidCredentials))
		})
	})

	Context("DeactivateUser", func() {
		It("persists the deactivation", func() {
			mockUsers.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
			mockUsers.EXPECT().
				Update(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, updated domain.User) error {
					Expect(updated.IsActive).To(BeFalse())
					return nil
				})

			err := service.DeactivateUser(ctx, user.ID)

			Expect(err).ToNot(HaveOccurred())
		})
	})
})
