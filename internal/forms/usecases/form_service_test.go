package usecases_test

import (
	"context"

	formsDomain "formflow-server/internal/forms/domain"
	formsUsecases "formflow-server/internal/forms/usecases"
	shareddomain "formflow-server/internal/shared_kernel/domain"
	sharedUsecases "formflow-server/internal/shared_kernel/usecases"
	mockforms "formflow-server/test/unit/doubles/forms/usecases"
	mockshared "formflow-server/test/unit/doubles/shared_kernel/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("SimpleFormService", func() {
	var (
		ctrl        *gomock.Controller
		mockRepo    *mockforms.MockFormRepository
		mockTenants *mockshared.MockTenantRepository
		mockCache   *mockforms.MockFormCache
		service     formsUsecases.FormService
		ctx         context.Context

		tenant shareddomain.Tenant
		form   formsDomain.Form
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRepo = mockforms.NewMockFormRepository(ctrl)
		mockTenants = mockshared.NewMockTenantRepository(ctrl)
		mockCache = mockforms.NewMockFormCache(ctrl)
		service = formsUsecases.NewFormService(mockRepo, mockTenants, mockCache)
		ctx = context.Background()

		var err error
		tenant, err = shareddomain.NewTenantBuilder().
			WithName("Acme").
			WithSubdomain("acme").
			WithPlan(shareddomain.PlanFree).
			Build()
		Expect(err).ToNot(HaveOccurred())

		form, err = formsDomain.NewFormBuilder().
			WithTenantID(tenant.ID).
			WithTitle("Site Inspection").
			Build()
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("CreateForm", func() {
		It("creates a form while the plan quota has room", func() {
			mockTenants.EXPECT().GetByID(gomock.Any(), tenant.ID).Return(tenant, nil)
			mockRepo.EXPECT().CountByTenant(gomock.Any(), tenant.ID).Return(2, nil)
			mockRepo.EXPECT().Create(gomock.Any(), form).Return(nil)

			err := service.CreateForm(ctx, form)

			Expect(err).ToNot(HaveOccurred())
		})

		It("refuses the form that would exceed the plan quota", func() {
			mockTenants.EXPECT().GetByID(gomock.Any(), tenant.ID).Return(tenant, nil)
			mockRepo.EXPECT().CountByTenant(gomock.Any(), tenant.ID).Return(tenant.MaxForms, nil)

			err := service.CreateForm(ctx, form)

			Expect(err).To(MatchError(formsUsecases.ErrFormLimitExceeded))
		})

		It("refuses forms for deactivated tenants", func() {
			tenant.Deactivate()
			mockTenants.EXPECT().GetByID(gomock.Any(), tenant.ID).Return(tenant, nil)

			err := service.CreateForm(ctx, form)

			Expect(err).To(MatchError(sharedUsecases.ErrTenantSoftDeleted))
		})

		It("propagates tenant not found", func() {
			mockTenants.EXPECT().GetByID(gomock.Any(), tenant.ID).Return(shareddomain.Tenant{}, sharedUsecases.ErrTenantNotFound)

			err := service.CreateForm(ctx, form)

			Expect(err).To(MatchError(sharedUsecases.ErrTenantNotFound))
		})
	})

	Context("GetForm", func() {
		It("serves a cached form without touching the repository", func() {
			mockCache.EXPECT().GetForm(gomock.Any(), form.ID).Return(form, true)

			result, err := service.GetForm(ctx, form.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.ID).To(Equal(form.ID))
		})

		It("falls back to the repository and caches the result", func() {
			mockCache.EXPECT().GetForm(gomock.Any(), form.ID).Return(formsDomain.Form{}, false)
			mockRepo.EXPECT().GetByID(gomock.Any(), form.ID).Return(form, nil)
			mockCache.EXPECT().SetForm(gomock.Any(), form)

			result, err := service.GetForm(ctx, form.ID)

			Expect(err).ToNot(HaveOccurred())
			Expect(result.ID).To(Equal(form.ID))
		})

		It("propagates not found", func() {
			mockCache.EXPECT().GetForm(gomock.Any(), form.ID).Return(formsDomain.Form{}, false)
			mockRepo.EXPECT().GetByID(gomock.Any(), form.ID).Return(formsDomain.Form{}, formsUsecases.ErrFormNotFound)

			_, err := service.GetForm(ctx, form.ID)

			Expect(err).To(MatchError(formsUsecases.ErrFormNotFound))
		})
	})

	Context("PublishForm", func() {
		It("publishes and invalidates the cache", func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), form.ID).Return(form, nil)
			mockRepo.EXPECT().
				Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, updated formsDomain.Form) error {
					Expect(updated.IsPublished).To(BeTrue())
					Expect(updated.PublishedAt).ToNot(BeNil())
					return nil
				})
			mockCache.EXPECT().Invalidate(gomock.Any(), form.ID)

			err := service.PublishForm(ctx, form.ID, tenant.ID)

			Expect(err).ToNot(HaveOccurred())
		})

		It("hides forms that belong to another tenant", func() {
			mockRepo.EXPECT().GetByID(gomock.Any(), form.ID).Return(form, nil)

			err := service.PublishForm(ctx, form.ID, "other-tenant")

			Expect(err).To(MatchError(formsUsecases.ErrFormNotFound))
		})
	})

	Context("UpdateForm", func() {
		It("refuses updates to soft deleted forms", func() {
			form.SoftDelete()
			mockRepo.EXPECT().GetByID(gomock.Any(), form.ID).Return(form, nil)

			err := service.UpdateForm(ctx, form)

			Expect(err).To(MatchError(formsUsecases.ErrFormSoftDeleted))
		})
	})
})
