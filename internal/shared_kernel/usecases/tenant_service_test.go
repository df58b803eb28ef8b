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

var _ = Describe("SimpleTenantService", func() {
	var (
		ctrl           *gomock.Controller
		mockRepository *mockshared.MockTenantRepository
		service        usecases.TenantService
		ctx            context.Context
		tenant         domain.Tenant
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRepository = mockshared.NewMockTenantRepository(ctrl)
		service = usecases.NewTenantService(mockRepository)
		ctx = context.Background()

		var err error
		tenant, err = domain.NewTenantBuilder().
			WithName("Acme").
			WithSubdomain("acme").
			WithPlan(domain.PlanFree).
			Build()
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("CreateTenant", func() {
		It("creates a tenant when the subdomain is free", func() {
			mockRepository.EXPECT().
				GetBySubdomain(ctx, "acme").
				Return(domain.Tenant{}, usecases.ErrTenantNotFound)
			mockRepository.EXPECT().
				Create(ctx, tenant).
				Return(nil)

			err := service.CreateTenant(ctx, tenant)

			Expect(err).ToNot(HaveOccurred())
		})

		It("rejects a taken subdomain", func() {
			mockRepository.EXPECT().
				GetBySubdomain(ctx, "acme").
				Return(tenant, nil)

			other, err := domain.NewTenantBuilder().
				WithName("Other Acme").
				WithSubdomain("acme").
				Build()
			Expect(err).ToNot(HaveOccurred())

			err = service.CreateTenant(ctx, other)

			Expect(err).To(MatchError(usecases.ErrTenantDuplicated))
		})
	})

	Context("UpdateTenant", func() {
		It("detects version conflicts", func() {
			stored := tenant
			stored.Version = 3

			mockRepository.EXPECT().
				GetByID(ctx, tenant.ID).
				Return(stored, nil)

			update := tenant
			update.Version = 2

			err := service.UpdateTenant(ctx, update)

			Expect(err).To(MatchError(usecases.ErrTenantVersionConflict))
		})

		It("refuses updates to soft deleted tenants", func() {
			stored := tenant
			stored.SoftDelete()

			mockRepository.EXPECT().
				GetByID(ctx, tenant.ID).
				Return(stored, nil)

			err := service.UpdateTenant(ctx, tenant)

			Expect(err).To(MatchError(usecases.ErrTenantSoftDeleted))
		})
	})

	Context("ChangeTenantPlan", func() {
		It("applies the new plan's limits", func() {
			mockRepository.EXPECT().
				GetByID(ctx, tenant.ID).
				Return(tenant, nil)
			mockRepository.EXPECT().
				Update(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, updated domain.Tenant) error {
					Expect(updated.Plan).To(Equal(domain.PlanPro))
					Expect(updated.MaxUsers).To(Equal(10))
					Expect(updated.MaxForms).To(Equal(30))
					return nil
				})

			err := service.ChangeTenantPlan(ctx, tenant.ID, domain.PlanPro)

			Expect(err).ToNot(HaveOccurred())
		})

		It("propagates not found", func() {
			mockRepository.EXPECT().
				GetByID(ctx, tenant.ID).
				Return(domain.Tenant{}, usecases.ErrTenantNotFound)

			err := service.ChangeTenantPlan(ctx, tenant.ID, domain.PlanPro)

			Expect(err).To(MatchError(usecases.ErrTenantNotFound))
		})
	})

	Context("SoftDeleteTenant", func() {
		It("marks the tenant deleted", func() {
			mockRepository.EXPECT().
				GetByID(ctx, tenant.ID).
				Return(tenant, nil)
			mockRepository.EXPECT().
				Update(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, updated domain.Tenant) error {
					Expect(updated.IsDeleted()).To(BeTrue())
					return nil
				})

			err := service.SoftDeleteTenant(ctx, tenant.ID)

			Expect(err).ToNot(HaveOccurred())
		})

		It("fails when the tenant is already deleted", func() {
			stored := tenant
			stored.SoftDelete()

			mockRepository.EXPECT().
				GetByID(ctx, tenant.ID).
				Return(stored, nil)

			err := service.SoftDeleteTenant(ctx, tenant.ID)

			Expect(err).To(MatchError(usecases.ErrTenantSoftDeleted))
		})
	})
})
