package usecases_test

import (
	"context"
	"errors"

	"formflow-server/internal/forms/domain"
	"formflow-server/internal/forms/usecases"
	shareddomain "formflow-server/internal/shared_kernel/domain"
	mockforms "formflow-server/test/unit/doubles/forms/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("SimpleFileArtifactService", func() {
	var (
		ctrl           *gomock.Controller
		mockRepository *mockforms.MockFileArtifactRepository
		service        usecases.FileArtifactService
		ctx            context.Context
		artifact       domain.FileArtifact
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRepository = mockforms.NewMockFileArtifactRepository(ctrl)
		service = usecases.NewFileArtifactService(mockRepository)
		ctx = context.Background()

		artifact = domain.NewFileArtifact(
			"tenant-1", nil,
			"signature_Approval.png", "signature_stored.png",
			"signatures/signature_stored.png", 128, "image/png",
		)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("GetArtifact", func() {
		It("returns the artifact to its own tenant", func() {
			mockRepository.EXPECT().GetByID(ctx, artifact.ID).Return(artifact, nil)

			got, err := service.GetArtifact(ctx, artifact.ID, "tenant-1")

			Expect(err).ToNot(HaveOccurred())
			Expect(got.StoredFilename).To(Equal("signature_stored.png"))
			Expect(got.MimeType).To(Equal("image/png"))
		})

		It("hides artifacts from other tenants", func() {
			mockRepository.EXPECT().GetByID(ctx, artifact.ID).Return(artifact, nil)

			_, err := service.GetArtifact(ctx, artifact.ID, "tenant-2")

			Expect(err).To(MatchError(usecases.ErrArtifactNotFound))
		})

		It("propagates not found", func() {
			mockRepository.EXPECT().
				GetByID(ctx, shareddomain.ID("missing")).
				Return(domain.FileArtifact{}, usecases.ErrArtifactNotFound)

			_, err := service.GetArtifact(ctx, "missing", "tenant-1")

			Expect(err).To(MatchError(usecases.ErrArtifactNotFound))
		})

		It("wraps repository failures", func() {
			mockRepository.EXPECT().
				GetByID(ctx, artifact.ID).
				Return(domain.FileArtifact{}, errors.New("connection reset"))

			_, err := service.GetArtifact(ctx, artifact.ID, "tenant-1")

			Expect(err).To(HaveOccurred())
			Expect(err).ToNot(MatchError(usecases.ErrArtifactNotFound))
		})
	})

	Context("ListArtifacts", func() {
		It("lists the tenant's artifacts with the total", func() {
			pagination := usecases.Pagination{Limit: 10}
			mockRepository.EXPECT().
				FindByTenant(ctx, shareddomain.ID("tenant-1"), pagination).
				Return([]domain.FileArtifact{artifact}, 7, nil)

			artifacts, total, err := service.ListArtifacts(ctx, "tenant-1", pagination)

			Expect(err).ToNot(HaveOccurred())
			Expect(artifacts).To(HaveLen(1))
			Expect(total).To(Equal(7))
		})
	})
})
